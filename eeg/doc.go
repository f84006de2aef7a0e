// Package eeg builds the edge-expanded graph (§4.4): one node per directed
// node-based edge, one edge per admissible turn between two node-based
// edges sharing an intersection. It ties together nodegraph (the
// node-based graph), restriction (turn and barrier admissibility), turn
// (intersection geometry and penalties), and profile (classification and
// weighting), and emits the packed geometry reference table and the
// segment rectangles package spatial needs to build its R*-tree.
package eeg
