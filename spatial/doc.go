// Package spatial implements the R-tree index over the edge-expanded
// graph's segment rectangles (§4.8, C8): bulk load from a built eeg.Graph,
// nearest-segment lookup, radius search, and projection of a raw coordinate
// onto its nearest segment to produce a phantom node.
//
// The index wraps github.com/tidwall/rtree, the same minimal-bounding-
// rectangle tree the rest of the corpus reaches for when a concern needs
// one. It holds no reference back to the eeg.Graph or nodegraph.Graph it
// was built from; callers pass those in explicitly to Snap so the index
// itself stays a pure geometric structure, cheap to rebuild or swap during
// a dataset reload (§5).
package spatial
