// Package manifest reads base set manifests.
//
// A manifest is a grouped key/value file: a [metadata] group describing the set,
// a [files] group naming the file for each slot, an [md5s] group with the
// checksum of each named file, and an optional [origin] group with the message
// shown when a file is missing.
//
// The registry only needs two capabilities from a manifest: finding a group by
// name and finding an item in a group. Those are exposed through the Manifest
// and Group interfaces so other formats can be plugged in; the default
// implementation is backed by go-ini.
//
// An item that is present with an empty value (e.g. "theme =") is treated as
// explicitly absent, which music sets use for optional slots.
//
// # Usage
//
//	m, err := manifest.LoadFile(afero.NewOsFs(), "/srv/media/opengfx/opengfx.obg")
//	if err != nil {
//	    return err
//	}
//	meta, ok := m.Group("metadata")
package manifest
