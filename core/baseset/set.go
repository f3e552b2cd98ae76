package baseset

import (
	"sort"
	"strings"

	"basemedia/core/checksum"
)

// SetID addresses a set within its registry's arena.
type SetID int

// NoSet is the SetID of "no set".
const NoSet SetID = -1

// FileRecord is one required file of a set.
type FileRecord struct {
	// Slot is the file slot name from the kind.
	Slot string
	// Path is the location of the file relative to the search scope.
	// It is empty when the manifest declares the slot without a file.
	Path string
	// Digest is the expected checksum; only meaningful when Path is set.
	Digest checksum.Digest
	// MissingMessage is shown to the user when the file cannot be found.
	MissingMessage string
	// Status is the result of the integrity check.
	Status Status
}

// Set is one candidate installation of a base set.
type Set struct {
	id SetID

	// Name is the display name and the identifier used for selection.
	Name string
	// Descriptions maps a language tag to a description; "" is the default.
	Descriptions map[string]string
	// ShortName is the raw shortname from the manifest.
	ShortName string
	// ShortID packs up to four bytes of ShortName, byte i shifted by 8*i.
	ShortID uint32
	// Version is the manifest version, 0 when absent or not a number.
	Version int
	// Fallback marks a set usable as last-resort default.
	Fallback bool
	// Files holds one record per file slot of the kind.
	Files []FileRecord
	// ValidFiles counts files whose checksum matched.
	ValidFiles int
	// FoundFiles counts files that exist, whether or not they matched.
	FoundFiles int
	// Dir is the directory of the manifest relative to the scan root.
	Dir string
	// Source is the manifest path the set was read from.
	Source string
}

// ID returns the arena id assigned by the registry, or NoSet.
func (s *Set) ID() SetID {
	return s.id
}

// NumFiles returns the number of file slots.
func (s *Set) NumFiles() int {
	return len(s.Files)
}

// NumMissing returns the number of files that could not be found.
func (s *Set) NumMissing() int {
	return len(s.Files) - s.FoundFiles
}

// NumInvalid returns the number of files that are missing or corrupt.
func (s *Set) NumInvalid() int {
	return len(s.Files) - s.ValidFiles
}

// PrimaryPath returns the path of the first file slot.
func (s *Set) PrimaryPath() string {
	if len(s.Files) == 0 {
		return ""
	}
	return s.Files[0].Path
}

// Digest returns the XOR fold of all file checksums in slot order.
func (s *Set) Digest() checksum.Digest {
	digests := make([]checksum.Digest, len(s.Files))
	for i, f := range s.Files {
		digests[i] = f.Digest
	}
	return checksum.Fold(digests...)
}

// Description returns the description for the language tag.
// It tries the full tag, then its two-letter prefix, then the default.
func (s *Set) Description(lang string) string {
	if d, ok := s.localized(lang); ok {
		return d
	}
	return s.Descriptions[""]
}

// HasDescription reports whether a description exists for the language tag
// other than the default one.
func (s *Set) HasDescription(lang string) bool {
	_, ok := s.localized(lang)
	return ok
}

func (s *Set) localized(lang string) (string, bool) {
	if lang == "" {
		return "", false
	}
	if d, ok := s.Descriptions[lang]; ok {
		return d, true
	}
	if len(lang) < 2 {
		return "", false
	}
	tags := make([]string, 0, len(s.Descriptions))
	for tag := range s.Descriptions {
		if tag != "" && strings.HasPrefix(tag, lang[:2]) {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return "", false
	}
	sort.Strings(tags)
	return s.Descriptions[tags[0]], true
}

// PackShortName converts up to the first four bytes of a shortname into its
// packed identifier.
func PackShortName(name string) uint32 {
	var id uint32
	for i := 0; i < len(name) && i < 4; i++ {
		id |= uint32(name[i]) << (8 * i)
	}
	return id
}
