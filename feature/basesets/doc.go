// Package basesets serves the base sets found in the media source.
//
// # Kinds
//
// Three kinds are supported: graphics (.obg), sound (.obs) and music (.obm).
// Each kind has its own registry; see core/baseset for the reconciliation
// rules.
//
// # Sources
//
// DiskSource walks a directory tree through afero. BucketSource lists the
// objects below a key prefix of a MinIO/S3 bucket. Both expose a manifest
// loader and a file checker matching their storage.
//
// # Service
//
// The Service guards the registries with a mutex. Rescan builds fresh
// registries, scanning the kinds concurrently, then restores the selection of
// each kind: the previously active set, the configured set, the persisted set
// and finally the best available set. Concurrent rescans share one run.
//
// # Endpoints
//
//   - GET  /basesets/:kind           visible sets (all=true for every set)
//   - GET  /basesets/:kind/report    plain text listing
//   - PUT  /basesets/:kind/active    select a set by name
//   - GET  /basesets/:kind/content   match a content offer by short id and MD5
//   - POST /basesets/:kind/manifests add a newly installed manifest
//   - POST /basesets/rescan          rescan every kind
package basesets
