package baseset

import "basemedia/core/checksum"

// ContentQuery identifies a set offered by a remote content source.
type ContentQuery struct {
	// ShortID is the packed short name of the set.
	ShortID uint32
	// Digest is the XOR fold of the set's file checksums.
	Digest checksum.Digest
	// CheckDigest requires Digest to match as well.
	CheckDigest bool
}

// FindContent looks for a complete set, accepted or superseded, that satisfies
// the query and returns the path of its first file.
func (r *Registry) FindContent(q ContentQuery) (string, bool) {
	if path, ok := r.findIn(r.accepted, q); ok {
		return path, true
	}
	return r.findIn(r.superseded, q)
}

// HasContent reports whether FindContent would find a set.
func (r *Registry) HasContent(q ContentQuery) bool {
	_, ok := r.FindContent(q)
	return ok
}

func (r *Registry) findIn(ids []SetID, q ContentQuery) (string, bool) {
	for _, id := range ids {
		s := r.sets[id]
		if s.NumMissing() != 0 {
			continue
		}
		if s.ShortID != q.ShortID {
			continue
		}
		if !q.CheckDigest || s.Digest() == q.Digest {
			return s.PrimaryPath(), true
		}
	}
	return "", false
}
