package parser

import "context"

// OSMSource is the external boundary between a real OSM XML/PBF reader
// and this module's extraction pipeline: anything that can stream an
// Extract implements it. The only implementation shipped here is
// GeoJSONSource; a production build links a real PBF reader in behind
// the same interface without touching package nodegraph, restriction,
// or profile.
type OSMSource interface {
	Load(ctx context.Context) (Extract, error)
}
