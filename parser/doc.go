// Package parser defines the external boundary between a real OSM
// XML/PBF reader and this module's extraction pipeline, and ships the
// only implementation of that boundary this module actually carries: a
// GeoJSON-based test fixture loader. A production build links a real PBF
// reader in behind the same OSMSource interface; parsing OSM's wire
// formats is explicitly out of scope here (spec §1 Non-goals).
package parser
