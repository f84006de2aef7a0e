// Package query implements the bidirectional query engine (§4.6): one-to-one
// routes, many-to-many matrices, and bounded alternatives over a
// ch.Hierarchy, plus shortcut unpacking back to edge-expanded-graph edges
// and underlying node-based geometry.
//
// The forward and reverse searches are plain Dijkstra runs restricted to
// upward edges, falling back to the full edge set once either search enters
// the uncontracted core, mirroring the lazy-decrease-key heap pattern used
// throughout this module's preprocessing stages.
package query
