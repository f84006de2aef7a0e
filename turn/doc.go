// Package turn implements C3: the intersection analyser. For every
// intersection it enumerates admissible (in-edge, out-edge) pairs and
// computes each pair's turn angle, coarse direction bucket, and turn
// penalty, adjusted for intersection complexity (§4.3).
//
// turn has no dependency on package profile — penalties and validity
// predicates are supplied as plain function values by the caller (package
// eeg), so profile can depend on turn's bucket/complexity vocabulary
// without creating an import cycle.
package turn
