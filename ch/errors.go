package ch

import "errors"

// ErrEmptyGraph indicates Contract was called on an edge-expanded graph
// with zero nodes.
var ErrEmptyGraph = errors.New("ch: edge-expanded graph has no nodes")
