// Package checks implements the individual integrity checks: the file problems
// of the active base sets, the presence of the media source and its manifests,
// and the schema of the inventory tables.
package checks
