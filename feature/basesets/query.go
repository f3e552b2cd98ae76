package basesets

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"basemedia/core/baseset"
	"basemedia/core/checksum"
)

// ErrInvalidContentID is returned for an id that names no short id.
var ErrInvalidContentID = errors.New("invalid content id")

// Content id prefixes forcing one reading of the id.
const (
	IDPrefix   = "id:"
	NamePrefix = "name:"
)

// ParseContentQuery builds the content queries for a short id and an optional
// folded checksum, in the order they should be tried.
//
// "id:<n>" is a numeric short id and "name:<s>" a short name of up to four
// characters. Without a prefix a decimal id is read as a number and anything
// else as a name; a decimal id of up to four digits is also tried as a name,
// so sets with an all-digit short name stay reachable.
func ParseContentQuery(id, sum string) ([]baseset.ContentQuery, error) {
	var ids []uint32
	switch {
	case strings.HasPrefix(id, IDPrefix):
		n, err := strconv.ParseUint(strings.TrimPrefix(id, IDPrefix), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidContentID, id)
		}
		ids = append(ids, uint32(n))
	case strings.HasPrefix(id, NamePrefix):
		name := strings.TrimPrefix(id, NamePrefix)
		if name == "" {
			return nil, fmt.Errorf("%w: %s", ErrInvalidContentID, id)
		}
		ids = append(ids, baseset.PackShortName(name))
	default:
		if n, err := strconv.ParseUint(id, 10, 32); err == nil {
			ids = append(ids, uint32(n))
			if len(id) <= 4 {
				ids = append(ids, baseset.PackShortName(id))
			}
		} else {
			ids = append(ids, baseset.PackShortName(id))
		}
	}

	var digest checksum.Digest
	check := sum != ""
	if check {
		d, err := checksum.Decode(sum)
		if err != nil {
			return nil, err
		}
		digest = d
	}

	queries := make([]baseset.ContentQuery, len(ids))
	for i, shortID := range ids {
		queries[i] = baseset.ContentQuery{ShortID: shortID, Digest: digest, CheckDigest: check}
	}
	return queries, nil
}
