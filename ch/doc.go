// Package ch implements the contraction-hierarchy contractor (§4.5): it
// consumes an edge-expanded graph (package eeg) and produces the full set
// of query edges (original plus shortcuts), a per-node contraction level,
// a core bitset, and the shortcut unpack table the bidirectional query
// engine (package query) needs to recover a full path.
package ch
