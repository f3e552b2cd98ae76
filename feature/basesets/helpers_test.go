package basesets

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"path"
	"strings"
	"testing"

	"basemedia/core/baseset"
	"basemedia/core/media"
	"basemedia/feature/basesets/store"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testRoot = "/media"

// setFixture describes a set written to a test filesystem.
type setFixture struct {
	Dir     string
	Kind    baseset.Kind
	Name    string
	Short   string
	Version int
	// Missing slots are declared but not written.
	Missing []string
	// Corrupt slots are written with content not matching their checksum.
	Corrupt []string
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func fileContent(name, slot string) []byte {
	return []byte(name + "/" + slot)
}

func md5Hex(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

// manifestPath returns the manifest path of f relative to the root.
func (f setFixture) manifestPath() string {
	return path.Join(f.Dir, strings.ToLower(f.Name)+f.Kind.Extension)
}

func writeSet(t *testing.T, fs afero.Fs, f setFixture) {
	t.Helper()
	dir := path.Join(testRoot, f.Dir)

	var b strings.Builder
	fmt.Fprintf(&b, "[metadata]\nname = %s\nshortname = %s\nversion = %d\n", f.Name, f.Short, f.Version)
	fmt.Fprintf(&b, "description = %s %s\ndescription.de = %s (deutsch)\n\n", f.Name, f.Kind.Name, f.Name)

	b.WriteString("[files]\n")
	for _, slot := range f.Kind.Files {
		fmt.Fprintf(&b, "%s = %s.dat\n", slot, slot)
	}
	b.WriteString("\n[md5s]\n")
	for _, slot := range f.Kind.Files {
		fmt.Fprintf(&b, "%s.dat = %s\n", slot, md5Hex(fileContent(f.Name, slot)))
	}
	b.WriteString("\n[origin]\ndefault = Download it through the content service\n")

	require.NoError(t, afero.WriteFile(fs, path.Join(testRoot, f.manifestPath()), []byte(b.String()), 0o644))

	for _, slot := range f.Kind.Files {
		if contains(f.Missing, slot) {
			continue
		}
		content := fileContent(f.Name, slot)
		if contains(f.Corrupt, slot) {
			content = append(content, '!')
		}
		require.NoError(t, afero.WriteFile(fs, path.Join(dir, slot+".dat"), content, 0o644))
	}
}

// standardFixtures is a media tree with a replaced graphics set, a complete
// and an incomplete sound set, and no music.
func standardFixtures() []setFixture {
	return []setFixture{
		{Dir: "opengfx-1", Kind: Graphics, Name: "OpenGFX", Short: "OGFX", Version: 1},
		{Dir: "opengfx-2", Kind: Graphics, Name: "OpenGFX", Short: "OGFX", Version: 2},
		{Dir: "broken", Kind: Sound, Name: "Broken", Short: "BRKN", Version: 1, Missing: []string{"samples"}},
		{Dir: "opensfx", Kind: Sound, Name: "OpenSFX", Short: "OSFX", Version: 3},
	}
}

func newTestFs(t *testing.T, fixtures ...setFixture) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(testRoot, 0o755))
	for _, f := range fixtures {
		writeSet(t, fs, f)
	}
	return fs
}

func newTestService(t *testing.T, fs afero.Fs, cfg media.Config, opts ...Option) *Service {
	t.Helper()
	src, err := NewDiskSource(fs, testRoot, 16, nil)
	require.NoError(t, err)
	return NewService(src, cfg, nil, opts...)
}

// mockStore is a testify mock of Store.
type mockStore struct {
	mock.Mock
}

func (m *mockStore) SaveInventory(ctx context.Context, kind string, records []store.SetRecord) error {
	return m.Called(ctx, kind, records).Error(0)
}

func (m *mockStore) SaveSelection(ctx context.Context, kind, name string) error {
	return m.Called(ctx, kind, name).Error(0)
}

func (m *mockStore) LoadSelection(ctx context.Context, kind string) (string, error) {
	args := m.Called(ctx, kind)
	return args.String(0), args.Error(1)
}

func viewNames(views []SetView) []string {
	names := make([]string, len(views))
	for i, v := range views {
		names[i] = v.Name
	}
	return names
}

func md5Sum(data []byte) [16]byte {
	return md5.Sum(data)
}
