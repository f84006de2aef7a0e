package parser

import "errors"

// ErrUnsupportedGeometry is returned when a GeoJSON feature carries a
// geometry type the fixture loader doesn't assign any meaning to
// (anything but Point and LineString).
var ErrUnsupportedGeometry = errors.New("parser: unsupported geometry type in fixture")
