package manifest

import (
	"context"
	"fmt"

	"github.com/go-ini/ini"
	"github.com/spf13/afero"
)

// Group is a named collection of key/value items.
type Group interface {
	// Item returns the value stored under key and whether the key exists.
	Item(key string) (string, bool)
	// Keys returns the item keys in declaration order.
	Keys() []string
}

// Manifest is a parsed manifest file.
type Manifest interface {
	// Group returns the group with the given name.
	Group(name string) (Group, bool)
}

// Loader reads and parses the manifest stored at path.
type Loader func(ctx context.Context, path string) (Manifest, error)

var loadOptions = ini.LoadOptions{
	KeyValueDelimiters:  "=",
	IgnoreInlineComment: true,
}

type iniManifest struct {
	file *ini.File
}

type iniGroup struct {
	section *ini.Section
}

// Parse parses manifest content.
func Parse(data []byte) (Manifest, error) {
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &iniManifest{file: f}, nil
}

// LoadFile reads and parses the manifest at path on fs.
func LoadFile(fs afero.Fs, path string) (Manifest, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// FileLoader returns a Loader reading manifests from fs.
func FileLoader(fs afero.Fs) Loader {
	return func(_ context.Context, path string) (Manifest, error) {
		return LoadFile(fs, path)
	}
}

func (m *iniManifest) Group(name string) (Group, bool) {
	section, err := m.file.GetSection(name)
	if err != nil {
		return nil, false
	}
	return &iniGroup{section: section}, true
}

func (g *iniGroup) Item(key string) (string, bool) {
	if !g.section.HasKey(key) {
		return "", false
	}
	return g.section.Key(key).String(), true
}

func (g *iniGroup) Keys() []string {
	return g.section.KeyStrings()
}
