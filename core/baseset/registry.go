package baseset

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"basemedia/core/manifest"

	"go.uber.org/zap"
)

// Outcome describes what Add did with a candidate set.
type Outcome int

const (
	// Rejected means the manifest was malformed or unreadable.
	Rejected Outcome = iota
	// Added means the set was appended to the accepted list.
	Added
	// Replaced means the set took the place of a weaker duplicate.
	Replaced
	// Superseded means an equal or better duplicate was already accepted.
	Superseded
)

// String returns the lower-case name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Added:
		return "added"
	case Replaced:
		return "replaced"
	case Superseded:
		return "superseded"
	default:
		return "rejected"
	}
}

// Accepted reports whether the set ended up in the accepted list.
func (o Outcome) Accepted() bool {
	return o == Added || o == Replaced
}

// Options configures a Registry.
type Options struct {
	// Kind is the family of sets the registry holds.
	Kind Kind
	// Loader reads manifests for Add.
	Loader manifest.Loader
	// Checker verifies the files declared by manifests.
	Checker Checker
	// Logger receives diagnostics; nil discards them.
	Logger *zap.Logger
	// Language is the preferred description language.
	Language string
	// Policy picks a set when SelectActive is called without a name.
	// Defaults to PreferBest(Language).
	Policy Policy
	// Hook runs after every successful selection. Defaults to LogProblems.
	Hook Hook
}

// Registry holds the accepted and superseded sets of one kind.
type Registry struct {
	kind     Kind
	loader   manifest.Loader
	checker  Checker
	logger   *zap.Logger
	language string
	policy   Policy
	hook     Hook

	sets       []*Set
	accepted   []SetID
	superseded []SetID
	active     SetID
}

// NewRegistry creates an empty registry.
func NewRegistry(opts Options) *Registry {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("kind", opts.Kind.Name))

	r := &Registry{
		kind:     opts.Kind,
		loader:   opts.Loader,
		checker:  opts.Checker,
		logger:   logger,
		language: opts.Language,
		policy:   opts.Policy,
		hook:     opts.Hook,
		active:   NoSet,
	}
	if r.policy == nil {
		r.policy = PreferBest(opts.Language)
	}
	if r.hook == nil {
		r.hook = LogProblems(logger)
	}
	return r
}

// Kind returns the kind of sets held by the registry.
func (r *Registry) Kind() Kind {
	return r.kind
}

// Add reads the manifest at path and reconciles the resulting set with the
// accepted list. basePathLen is the length of the scan root prefix of path;
// the remainder up to the last separator becomes the set's directory.
func (r *Registry) Add(ctx context.Context, path string, basePathLen int) (Outcome, error) {
	r.logger.Debug("Checking manifest for base set", zap.String("manifest", path))

	if r.loader == nil || r.checker == nil {
		return Rejected, fmt.Errorf("registry for %s sets has no loader or checker", r.kind.Name)
	}

	m, err := r.loader(ctx, path)
	if err != nil {
		r.logger.Warn("Failed to load base set manifest", zap.String("manifest", path), zap.Error(err))
		return Rejected, err
	}

	set, err := Fill(ctx, m, FillOptions{
		Kind:     r.kind,
		BasePath: storageDir(path, basePathLen),
		Filename: path,
		Checker:  r.checker,
		Logger:   r.logger,
	})
	if err != nil {
		r.logger.Warn("Base set detail loading failed", zap.String("manifest", path), zap.Error(err))
		return Rejected, err
	}

	return r.Insert(set), nil
}

// Insert reconciles an already filled set with the accepted list.
func (r *Registry) Insert(set *Set) Outcome {
	set.id = SetID(len(r.sets))
	r.sets = append(r.sets, set)

	pos := -1
	for i, id := range r.accepted {
		c := r.sets[id]
		if c.Name == set.Name || c.ShortID == set.ShortID {
			pos = i
			break
		}
	}

	if pos < 0 {
		r.accepted = append(r.accepted, set.id)
		r.logAdded(set)
		return Added
	}

	dup := r.sets[r.accepted[pos]]
	if (dup.ValidFiles == set.ValidFiles && dup.Version >= set.Version) || dup.ValidFiles > set.ValidFiles {
		reason := "lower version"
		if dup.ValidFiles > set.ValidFiles {
			reason = "less valid files"
		}
		r.logger.Debug("Not adding base set (duplicate)",
			zap.String("name", set.Name), zap.Int("version", set.Version), zap.String("reason", reason))
		r.superseded = prepend(r.superseded, set.id)
		return Superseded
	}

	r.accepted[pos] = set.id
	// A rescan may replace the active set; the reported version changes
	// until the next full selection.
	if r.active == dup.id {
		r.active = set.id
	}

	reason := "lower version"
	if dup.ValidFiles < set.ValidFiles {
		reason = "less valid files"
	}
	r.logger.Debug("Removing base set (duplicate)",
		zap.String("name", dup.Name), zap.Int("version", dup.Version), zap.String("reason", reason))
	r.superseded = prepend(r.superseded, dup.id)
	r.logAdded(set)
	return Replaced
}

func (r *Registry) logAdded(set *Set) {
	r.logger.Debug("Adding base set", zap.String("name", set.Name), zap.Int("version", set.Version))
}

func prepend(ids []SetID, id SetID) []SetID {
	return append([]SetID{id}, ids...)
}

// storageDir returns the directory of path below its base prefix, including
// the trailing separator, or "" when the manifest sits at the root.
func storageDir(path string, basePathLen int) string {
	if basePathLen < 0 || basePathLen > len(path) {
		basePathLen = 0
	}
	rel := filepath.ToSlash(path[basePathLen:])
	if i := strings.LastIndexByte(rel, '/'); i >= 0 {
		return rel[:i+1]
	}
	return ""
}

// Accepted returns the accepted sets in list order.
func (r *Registry) Accepted() []*Set {
	return r.resolve(r.accepted)
}

// Superseded returns the superseded sets, most recent first.
func (r *Registry) Superseded() []*Set {
	return r.resolve(r.superseded)
}

func (r *Registry) resolve(ids []SetID) []*Set {
	out := make([]*Set, len(ids))
	for i, id := range ids {
		out[i] = r.sets[id]
	}
	return out
}

// Find returns the accepted set with the given name.
func (r *Registry) Find(name string) (*Set, bool) {
	for _, id := range r.accepted {
		if r.sets[id].Name == name {
			return r.sets[id], true
		}
	}
	return nil, false
}

// Active returns the active set, or nil when none is selected.
func (r *Registry) Active() *Set {
	if r.active == NoSet {
		return nil
	}
	return r.sets[r.active]
}
