// Package restriction implements C2: the turn-restriction and barrier index
// consulted while building the edge-expanded graph.
//
// Two independent lookup structures are built from the raw OSM restrictions
// and barrier nodes: a node-restriction map keyed by (from edge, via node),
// and a way-restriction prefix trie keyed by an ordered path of via edges so
// that a candidate turn sequence can extend its active restriction state in
// O(1) per step (§4.2). Barriers are exposed as a CanTraverseThrough
// predicate consulted during edge-expanded graph construction.
package restriction
