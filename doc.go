// Package meridian is a road-network routing engine: an edge-expanded
// graph builder, a contraction-hierarchy preprocessor, a bidirectional
// query engine, an HMM-based GPS map matcher, and a TSP-style round-trip
// solver over the resulting hierarchy.
//
// The pipeline runs in three phases, each its own command under cmd/:
//
//	extract/  — raw source -> edge-expanded graph + on-disk artifacts
//	contract/ — edge-expanded graph -> contraction hierarchy (.hsgr)
//	query/    — loads the artifacts, serves one-to-one, alternatives,
//	            many-to-many, map-matching, and round-trip queries
//
// Package layout mirrors the pipeline: nodegraph and eeg build the graph,
// ch contracts it, query and match read the hierarchy, spatial indexes
// geometry for coordinate snapping, trip layers a round-trip solver on
// top of a query.Matrix, and artifact defines the on-disk format
// everything above is serialized to and restored from. engine ties all
// of it together behind a reloadable Dataset/Router pair for the cmd/
// binaries to drive.
package meridian
