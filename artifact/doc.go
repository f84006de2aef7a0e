// Package artifact reads and writes the on-disk files extraction and
// contraction produce and the query server loads (§6.1): edge-expanded
// edges and nodes, packed geometry, the contracted hierarchy, per-node
// weights, the spatial index's leaves, restrictions, interned names,
// profile-derived properties, and the build timestamp.
//
// Every file starts with a 4-byte fingerprint tying it to the schema
// version that wrote it; Read* functions reject a mismatch before
// touching the rest of the file (§6.1, §7 "artifact version mismatch").
// Every Write* function writes to a temporary file beside the target path
// and renames it into place only once the write succeeds, so a failure
// partway through never leaves a truncated artifact at the real path
// (§7 "no partial artifacts left on disk").
//
// Each file's functions operate on a small record type mirroring its
// documented byte layout, independent of the live in-memory graph types —
// the same separation the extractor/contractor/query-server split in §1
// already draws between producing a dataset and serving from one.
package artifact
