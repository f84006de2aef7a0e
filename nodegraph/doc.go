// Package nodegraph holds the compressed node-based street graph (C1 of the
// routing engine): the raw, directed graph produced by the OSM parser after
// degree-2 through-traffic chains have been folded into single compressed
// edges.
//
// Nodes and edges live in contiguous arenas addressed by integer id — no
// owning references between nodes, no dangling-pointer risk (§9 "cyclic
// graph ownership"). Two independent sync.RWMutex locks guard the identity
// tables (nodes) and the adjacency/weight tables (edges, adjacency list)
// respectively, so concurrent readers never block on each other and writers
// to one concern never block readers of the other — the same split-lock
// shape the teacher's core.Graph uses for muVert/muEdgeAdj.
package nodegraph
