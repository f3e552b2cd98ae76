package baseset

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"

	"basemedia/core/checksum"
	"basemedia/core/manifest"

	"github.com/stretchr/testify/require"
)

var testKind = Kind{
	Name:      "graphics",
	Extension: ".obg",
	Files:     []string{"base", "logos", "extra"},
}

var optionalKind = Kind{
	Name:       "music",
	Extension:  ".obm",
	Files:      []string{"theme", "old_0"},
	AllowEmpty: true,
}

// manifestText renders a manifest declaring one file per slot, named
// <slot>.dat, with the digest of the slot index.
func manifestText(name, short string, version int, slots []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[metadata]\nname = %s\nshortname = %s\nversion = %d\ndescription = %s set\n\n", name, short, version, name)
	b.WriteString("[files]\n")
	for _, slot := range slots {
		fmt.Fprintf(&b, "%s = %s.dat\n", slot, slot)
	}
	b.WriteString("\n[md5s]\n")
	for i, slot := range slots {
		fmt.Fprintf(&b, "%s.dat = %s\n", slot, digestFor(i))
	}
	return b.String()
}

func digestFor(i int) checksum.Digest {
	var d checksum.Digest
	d[0] = byte(i + 1)
	d[15] = byte(0xF0 | i)
	return d
}

func parse(t *testing.T, text string) manifest.Manifest {
	t.Helper()
	m, err := manifest.Parse([]byte(text))
	require.NoError(t, err)
	return m
}

// statusChecker reports the configured status per path and Matched otherwise.
type statusChecker map[string]Status

func (c statusChecker) Check(_ context.Context, path string, _ checksum.Digest) Status {
	if s, ok := c[path]; ok {
		return s
	}
	return Matched
}

// newSet builds a filled set without a manifest.
func newSet(name, short string, version, total, valid, found int) *Set {
	s := &Set{
		id:           NoSet,
		Name:         name,
		Descriptions: map[string]string{"": name + " set"},
		ShortName:    short,
		ShortID:      PackShortName(short),
		Version:      version,
		Fallback:     true,
		Files:        make([]FileRecord, total),
		ValidFiles:   valid,
		FoundFiles:   found,
	}
	for i := range s.Files {
		s.Files[i] = FileRecord{
			Slot:   fmt.Sprintf("slot%d", i),
			Path:   fmt.Sprintf("%s/file%d.dat", strings.ToLower(name), i),
			Digest: digestFor(i),
			Status: Matched,
		}
	}
	return s
}

func names(sets []*Set) []string {
	out := make([]string, len(sets))
	for i, s := range sets {
		out[i] = s.Name
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
