// Package baseset implements the registry of base sets: versioned collections of
// required data files (graphics, sound, music) an application needs at runtime.
//
// # Sets
//
// A Set is one candidate installation described by a manifest. Fill reads the
// manifest, decodes the per-file checksums and asks a Checker whether each
// required file is present and intact. Malformed manifests are rejected with
// ErrMalformedManifest; missing or corrupt files are not errors and are only
// recorded on the set.
//
// # Registry
//
// A Registry holds the sets of one Kind. Sets live in an arena addressed by
// SetID; the accepted and superseded lists are ordered slices of ids. When two
// sets share a name or short name only one stays accepted:
//
//  1. more valid files wins;
//  2. with equal valid files, a strictly higher version wins;
//  3. otherwise the incumbent stays.
//
// A winning challenger takes the loser's position in the accepted list, and the
// active set follows it. Losers are kept on the superseded list so that remote
// content can still be matched against them.
//
// # Visibility
//
// Count, IndexOfActive, ByIndex and List only consider visible sets: the active
// set and any set without missing files.
//
// # Concurrency
//
// A Registry is not safe for concurrent use. Callers serialise Add and
// SelectActive against each other and against readers.
package baseset
