package basesets

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"basemedia/core/baseset"
	"basemedia/core/media"
	"basemedia/core/metrics"
	"basemedia/feature/basesets/store"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrUnknownKind is returned for a kind name that is not supported.
	ErrUnknownKind = errors.New("unknown base set kind")
	// ErrSetNotFound is returned when a named set is not accepted.
	ErrSetNotFound = errors.New("base set not found")
	// ErrNoUsableSet is returned when no set can be selected.
	ErrNoUsableSet = errors.New("no usable base set")
)

// Store persists scan results. The service works without one.
type Store interface {
	SaveInventory(ctx context.Context, kind string, records []store.SetRecord) error
	SaveSelection(ctx context.Context, kind, name string) error
	LoadSelection(ctx context.Context, kind string) (string, error)
}

// ScanSummary reports what a scan of one kind found.
type ScanSummary struct {
	Kind       string        `json:"kind"`
	Added      int           `json:"added"`
	Replaced   int           `json:"replaced"`
	Superseded int           `json:"superseded"`
	Rejected   int           `json:"rejected"`
	Active     string        `json:"active"`
	Duration   time.Duration `json:"duration"`
}

// Service owns one registry per kind. Registries are not safe for concurrent
// use, so every access goes through the service mutex.
type Service struct {
	source  Source
	media   media.Config
	logger  *zap.Logger
	store   Store
	metrics *metrics.Recorder

	mu         sync.RWMutex
	registries map[string]*baseset.Registry
	scannedAt  time.Time
	sf         singleflight.Group
}

// Option configures optional service dependencies.
type Option func(*Service)

// WithStore persists inventories and selections to st.
func WithStore(st Store) Option {
	return func(s *Service) { s.store = st }
}

// WithMetrics records scan and selection metrics with rec.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(s *Service) { s.metrics = rec }
}

// NewService creates a service with empty registries. Call Rescan to populate them.
func NewService(source Source, cfg media.Config, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		source:     source,
		media:      cfg,
		logger:     logger,
		registries: make(map[string]*baseset.Registry),
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, kind := range Kinds() {
		s.registries[kind.Name] = s.newRegistry(kind)
	}
	return s
}

func (s *Service) newRegistry(kind baseset.Kind) *baseset.Registry {
	return baseset.NewRegistry(baseset.Options{
		Kind:     kind,
		Loader:   s.source.Loader(),
		Checker:  s.source.Checker(),
		Logger:   s.logger,
		Language: s.media.Language,
	})
}

// Logger returns the service logger.
func (s *Service) Logger() *zap.Logger {
	return s.logger
}

// ScannedAt returns the completion time of the last rescan.
func (s *Service) ScannedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scannedAt
}

// Rescan rebuilds every registry from the source. Concurrent calls share one scan.
func (s *Service) Rescan(ctx context.Context) ([]ScanSummary, error) {
	result, err, shared := s.sf.Do("rescan", func() (interface{}, error) {
		return s.rescan(ctx)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("Joined running rescan")
	}
	return result.([]ScanSummary), nil
}

type scanResult struct {
	registry *baseset.Registry
	summary  ScanSummary
	err      error
}

func (s *Service) rescan(ctx context.Context) ([]ScanSummary, error) {
	kinds := Kinds()
	results := make([]scanResult, len(kinds))

	// Kinds have separate registries, so they are scanned concurrently.
	var wg sync.WaitGroup
	wg.Add(len(kinds))
	for i, kind := range kinds {
		go func(i int, kind baseset.Kind) {
			defer wg.Done()
			results[i] = s.scanKind(ctx, kind)
		}(i, kind)
	}
	wg.Wait()

	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
	}

	summaries := make([]ScanSummary, len(kinds))
	for i, kind := range kinds {
		reg := results[i].registry
		s.restoreSelection(ctx, kind, reg)
		summaries[i] = results[i].summary
		if active := reg.Active(); active != nil {
			summaries[i].Active = active.Name
		}
	}

	s.mu.Lock()
	for i, kind := range kinds {
		s.registries[kind.Name] = results[i].registry
	}
	s.scannedAt = time.Now()
	scannedAt := s.scannedAt
	s.mu.Unlock()

	for i, kind := range kinds {
		s.persist(ctx, kind.Name, results[i].registry, scannedAt)
		s.logger.Info("Base sets scanned",
			zap.String("kind", kind.Name),
			zap.String("source", s.source.Name()),
			zap.Int("added", summaries[i].Added),
			zap.Int("replaced", summaries[i].Replaced),
			zap.Int("superseded", summaries[i].Superseded),
			zap.Int("rejected", summaries[i].Rejected),
			zap.String("active", summaries[i].Active),
		)
	}

	return summaries, nil
}

func (s *Service) scanKind(ctx context.Context, kind baseset.Kind) scanResult {
	start := time.Now()
	reg := s.newRegistry(kind)
	summary := ScanSummary{Kind: kind.Name}

	paths, err := s.source.Manifests(ctx, kind)
	if err != nil {
		return scanResult{err: err}
	}

	for _, p := range paths {
		outcome, _ := reg.Add(ctx, p, s.source.BasePathLen())
		switch outcome {
		case baseset.Added:
			summary.Added++
		case baseset.Replaced:
			summary.Replaced++
		case baseset.Superseded:
			summary.Superseded++
		default:
			summary.Rejected++
		}
		if s.metrics != nil {
			s.metrics.ManifestProcessed(kind.Name, outcome.String())
		}
	}

	summary.Duration = time.Since(start)
	if s.metrics != nil {
		s.metrics.ScanDuration(kind.Name, summary.Duration)
	}
	return scanResult{registry: reg, summary: summary}
}

// restoreSelection activates, in order, the previously active set, the
// configured set, the persisted set, and finally the policy's choice.
func (s *Service) restoreSelection(ctx context.Context, kind baseset.Kind, reg *baseset.Registry) {
	var candidates []string

	s.mu.RLock()
	if prev := s.registries[kind.Name].Active(); prev != nil {
		candidates = append(candidates, prev.Name)
	}
	s.mu.RUnlock()

	candidates = append(candidates, s.media.Preferred(kind.Name))

	if s.store != nil {
		name, err := s.store.LoadSelection(ctx, kind.Name)
		if err != nil {
			s.logger.Warn("Failed to load persisted selection", zap.String("kind", kind.Name), zap.Error(err))
		}
		candidates = append(candidates, name)
	}

	for _, name := range candidates {
		if name != "" && reg.SelectActive(name) {
			return
		}
	}
	if !reg.SelectActive("") {
		s.logger.Warn("No usable base set found", zap.String("kind", kind.Name))
	}
}

func (s *Service) persist(ctx context.Context, kind string, reg *baseset.Registry, scannedAt time.Time) {
	if s.metrics != nil {
		s.metrics.SetCounts(kind, len(reg.Accepted()), len(reg.Superseded()))
		s.recordActive(kind, reg.Active())
	}
	if s.store == nil {
		return
	}

	records := Records(reg, scannedAt)
	if err := s.store.SaveInventory(ctx, kind, records); err != nil {
		s.logger.Warn("Failed to persist base set inventory", zap.String("kind", kind), zap.Error(err))
	}
	if active := reg.Active(); active != nil {
		if err := s.store.SaveSelection(ctx, kind, active.Name); err != nil {
			s.logger.Warn("Failed to persist base set selection", zap.String("kind", kind), zap.Error(err))
		}
	}
}

func (s *Service) recordActive(kind string, active *baseset.Set) {
	if active == nil {
		s.metrics.ActiveProblems(kind, 0, 0)
		return
	}
	missing := active.NumMissing()
	s.metrics.ActiveProblems(kind, missing, active.NumInvalid()-missing)
}

func (s *Service) registry(kind string) (*baseset.Registry, error) {
	reg, ok := s.registries[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return reg, nil
}

// List returns the visible sets of kind. With all set, every accepted and
// superseded set is returned; invisible sets carry index -1.
func (s *Service) List(kind string, all bool) ([]SetView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reg, err := s.registry(kind)
	if err != nil {
		return nil, err
	}
	return Views(reg, s.media.Language, all), nil
}

// Active returns the active set of kind.
func (s *Service) Active(kind string) (*SetView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reg, err := s.registry(kind)
	if err != nil {
		return nil, err
	}
	active := reg.Active()
	if active == nil {
		return nil, nil
	}
	v := newView(reg, active, store.StateAccepted, s.media.Language)
	return &v, nil
}

// Select activates the named set of kind; an empty name picks the best set.
func (s *Service) Select(ctx context.Context, kind, name string) (SetView, error) {
	s.mu.Lock()
	reg, err := s.registry(kind)
	if err != nil {
		s.mu.Unlock()
		return SetView{}, err
	}

	ok := reg.SelectActive(name)
	if s.metrics != nil {
		s.metrics.Selection(kind, ok)
	}
	if !ok {
		s.mu.Unlock()
		if name == "" {
			return SetView{}, fmt.Errorf("%w: %s", ErrNoUsableSet, kind)
		}
		return SetView{}, fmt.Errorf("%w: %s set %q", ErrSetNotFound, kind, name)
	}

	active := reg.Active()
	view := newView(reg, active, store.StateAccepted, s.media.Language)
	if s.metrics != nil {
		s.recordActive(kind, active)
	}
	s.mu.Unlock()

	s.logger.Info("Base set selected", zap.String("kind", kind), zap.String("name", active.Name))
	if s.store != nil {
		if err := s.store.SaveSelection(ctx, kind, active.Name); err != nil {
			s.logger.Warn("Failed to persist base set selection", zap.String("kind", kind), zap.Error(err))
		}
	}
	return view, nil
}

// Match looks for a complete set of kind satisfying one of queries, tried in
// order, and returns the path of its first file.
func (s *Service) Match(kind string, queries ...baseset.ContentQuery) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reg, err := s.registry(kind)
	if err != nil {
		return "", false, err
	}
	for _, q := range queries {
		if path, ok := reg.FindContent(q); ok {
			return path, true, nil
		}
	}
	return "", false, nil
}

// AddManifest adds one manifest, given relative to the source root, to the
// live registry of kind. It is used after new content has been downloaded.
func (s *Service) AddManifest(ctx context.Context, kind, rel string) (baseset.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reg, err := s.registry(kind)
	if err != nil {
		return baseset.Rejected, err
	}

	outcome, err := reg.Add(ctx, s.source.Path(rel), s.source.BasePathLen())
	if s.metrics != nil {
		s.metrics.ManifestProcessed(kind, outcome.String())
		if err == nil {
			s.metrics.SetCounts(kind, len(reg.Accepted()), len(reg.Superseded()))
			s.recordActive(kind, reg.Active())
		}
	}
	if err != nil {
		return outcome, err
	}

	s.logger.Info("Base set manifest added",
		zap.String("kind", kind), zap.String("manifest", rel), zap.String("outcome", outcome.String()))
	return outcome, nil
}

// Report renders the listing of kind.
func (s *Service) Report(kind string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reg, err := s.registry(kind)
	if err != nil {
		return "", err
	}
	return reg.List(), nil
}

// Problems returns the active set of kind and its missing or corrupt files.
// The set is nil when nothing is active.
func (s *Service) Problems(kind string) (*SetView, []baseset.FileProblem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reg, err := s.registry(kind)
	if err != nil {
		return nil, nil, err
	}
	active := reg.Active()
	if active == nil {
		return nil, nil, nil
	}
	view := newView(reg, active, store.StateAccepted, s.media.Language)
	return &view, baseset.Problems(active), nil
}
