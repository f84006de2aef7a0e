// Package match implements the Hidden-Markov-Model map matcher (§4.7, C7):
// fitting a noisy GPS trace onto the road network by layering emission
// probabilities (how plausible a candidate is given its distance from the
// trace point) and transition probabilities (how plausible a candidate
// pair is given the discrepancy between network and great-circle
// distance) over repeated calls into the query engine, with Viterbi
// finding the most likely state sequence and explicit handling for traces
// that break partway through (no viable candidate at some point in time).
//
// Network distance between two candidates is measured as the geometric
// length of the route package C6 returns between them, not its routing
// weight: the default profile's weight is a time cost (seconds), and
// comparing a time to the great-circle distance in meters would be
// comparing different units entirely. Summing the haversine length of the
// returned route geometry keeps the discrepancy Δ a meters-to-meters
// comparison, which is what the emission/transition formulas in §4.7
// assume throughout.
package match
