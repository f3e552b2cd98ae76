package baseset

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"basemedia/core/checksum"
	"basemedia/core/manifest"
	"basemedia/core/utils"

	"go.uber.org/zap"
)

// ErrMalformedManifest is returned when a manifest lacks required data.
var ErrMalformedManifest = errors.New("malformed base set manifest")

// FillOptions carries everything Fill needs besides the manifest.
type FillOptions struct {
	// Kind selects the file slots to read.
	Kind Kind
	// BasePath is prepended to every file name.
	BasePath string
	// Filename is the manifest location, used in diagnostics.
	Filename string
	// Checker verifies each declared file.
	Checker Checker
	// Logger receives diagnostics; nil discards them.
	Logger *zap.Logger
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedManifest, fmt.Sprintf(format, args...))
}

// Fill builds a Set from a parsed manifest.
// It fails only when the manifest itself is incomplete; missing or corrupt
// files are recorded on the returned set.
func Fill(ctx context.Context, m manifest.Manifest, opts FillOptions) (*Set, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	kind := opts.Kind

	meta, ok := m.Group("metadata")
	if !ok {
		return nil, malformed("metadata group missing in %s", opts.Filename)
	}

	fields := make(map[string]string, 4)
	for _, key := range []string{"name", "description", "shortname", "version"} {
		value, ok := meta.Item(key)
		if !ok || value == "" {
			return nil, malformed("%s field missing in %s", key, opts.Filename)
		}
		fields[key] = value
	}

	set := &Set{
		id:           NoSet,
		Name:         fields["name"],
		Descriptions: map[string]string{"": fields["description"]},
		ShortName:    fields["shortname"],
		ShortID:      PackShortName(fields["shortname"]),
		Version:      utils.LeadingInt(fields["version"]),
		Fallback:     true,
		Files:        make([]FileRecord, kind.NumFiles()),
		Dir:          opts.BasePath,
		Source:       opts.Filename,
	}

	for _, key := range meta.Keys() {
		if lang, ok := strings.CutPrefix(key, "description."); ok && lang != "" {
			value, _ := meta.Item(key)
			set.Descriptions[lang] = value
		}
	}

	if value, ok := meta.Item("fallback"); ok {
		set.Fallback = value != "0" && value != "false"
	}

	files := groupOrEmpty(m, "files")
	md5s := groupOrEmpty(m, "md5s")
	origin := groupOrEmpty(m, "origin")

	for i, slot := range kind.Files {
		file := &set.Files[i]
		file.Slot = slot

		filename, ok := files.Item(slot)
		if !ok || (filename == "" && !kind.AllowEmpty) {
			return nil, malformed("no %s file for %s in %s", kind.Name, slot, opts.Filename)
		}

		if filename == "" {
			// A slot listed without a file is valid by definition.
			file.Status = Matched
			set.ValidFiles++
			set.FoundFiles++
			continue
		}

		file.Path = opts.BasePath + filename

		sum, ok := md5s.Item(filename)
		if !ok || sum == "" {
			return nil, malformed("no MD5 checksum specified for %s in %s", filename, opts.Filename)
		}
		digest, err := checksum.Decode(sum)
		if err != nil {
			return nil, malformed("malformed MD5 checksum specified for %s in %s", filename, opts.Filename)
		}
		file.Digest = digest

		if msg, ok := origin.Item(filename); ok {
			file.MissingMessage = msg
		} else if msg, ok := origin.Item("default"); ok {
			file.MissingMessage = msg
		} else {
			logger.Debug("No origin warning message specified", zap.String("file", filename))
		}

		file.Status = opts.Checker.Check(ctx, file.Path, digest)
		switch file.Status {
		case Matched:
			set.ValidFiles++
			set.FoundFiles++
		case Mismatched:
			logger.Debug("MD5 checksum mismatch", zap.String("file", filename), zap.String("manifest", opts.Filename))
			set.FoundFiles++
		case Missing:
			logger.Debug("Required file is missing", zap.String("file", filename), zap.String("manifest", opts.Filename))
		}
	}

	return set, nil
}

type emptyGroup struct{}

func (emptyGroup) Item(string) (string, bool) { return "", false }
func (emptyGroup) Keys() []string             { return nil }

func groupOrEmpty(m manifest.Manifest, name string) manifest.Group {
	if g, ok := m.Group(name); ok {
		return g
	}
	return emptyGroup{}
}
