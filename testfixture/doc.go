// Package testfixture builds small, deterministic synthetic road
// networks and GPS traces for the Testable Scenarios: a square lattice,
// a straight compressible chain, and a straight-line trace sampled along
// either. Adapted from builder's Grid constructor (deterministic
// row-major vertex order, fixed coordinate id scheme) and gridgraph's
// 4-neighborhood model, rebuilt against this module's nodegraph.Graph
// instead of the generic core.Graph they target.
package testfixture
