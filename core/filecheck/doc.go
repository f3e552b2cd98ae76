// Package filecheck verifies the files declared by base set manifests.
//
// Two checkers implement baseset.Checker:
//
//   - DiskChecker hashes files of a search scope, an afero filesystem
//     restricted to the media root with Scope, and caches digests in an LRU keyed by path, size and modification time,
//     so rescans only rehash files that changed.
//   - StorageChecker hashes objects below a prefix of an object storage bucket.
//
// Paths are relative to the scope and may not climb above it; such paths are
// reported as missing without touching the filesystem.
//
// A file that cannot be opened is reported as missing; a file that cannot be
// read to the end, or whose digest differs, is reported as mismatched.
package filecheck
