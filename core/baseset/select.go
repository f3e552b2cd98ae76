package baseset

import (
	"fmt"

	"go.uber.org/zap"
)

// Policy picks the best set among the accepted candidates when no explicit
// name is requested. It returns nil when nothing is usable.
type Policy func(candidates []*Set, active *Set) *Set

// Hook runs after a set became active.
type Hook func(set *Set)

// PreferBest returns the default selection policy. An already active set is
// kept. Otherwise, among sets without missing files, a non-fallback set beats
// a fallback one, more valid files beat fewer, and on a tie a newer version of
// the same short name or a set described in lang wins.
func PreferBest(lang string) Policy {
	return func(candidates []*Set, active *Set) *Set {
		if active != nil {
			return active
		}

		var best *Set
		for _, c := range candidates {
			if c.NumMissing() != 0 {
				continue
			}
			if best == nil ||
				(best.Fallback && !c.Fallback) ||
				best.ValidFiles < c.ValidFiles ||
				(best.ValidFiles == c.ValidFiles &&
					((best.ShortID == c.ShortID && best.Version < c.Version) ||
						(!best.HasDescription(lang) && c.HasDescription(lang)))) {
				best = c
			}
		}
		return best
	}
}

// LogProblems returns a hook that warns about every missing or corrupt file of
// the selected set.
func LogProblems(logger *zap.Logger) Hook {
	return func(set *Set) {
		for _, p := range Problems(set) {
			logger.Warn("Base set file problem",
				zap.String("set", set.Name),
				zap.String("file", p.Path),
				zap.String("status", p.Status.String()),
				zap.String("hint", p.Message),
			)
		}
	}
}

// SelectActive makes the named accepted set active. An empty name lets the
// policy choose. It returns false when no set could be selected; the active
// set is left unchanged in that case.
func (r *Registry) SelectActive(name string) bool {
	if name == "" {
		best := r.policy(r.Accepted(), r.Active())
		if best == nil || !r.isAccepted(best.id) {
			return false
		}
		r.activate(best)
		return true
	}

	set, ok := r.Find(name)
	if !ok {
		return false
	}
	r.activate(set)
	return true
}

func (r *Registry) activate(set *Set) {
	r.active = set.id
	r.logger.Debug("Selected base set", zap.String("name", set.Name), zap.Int("version", set.Version))
	r.hook(set)
}

func (r *Registry) isAccepted(id SetID) bool {
	for _, a := range r.accepted {
		if a == id {
			return true
		}
	}
	return false
}

func (r *Registry) visible(id SetID) bool {
	return id == r.active || r.sets[id].NumMissing() == 0
}

// Count returns the number of visible sets.
func (r *Registry) Count() int {
	n := 0
	for _, id := range r.accepted {
		if r.visible(id) {
			n++
		}
	}
	return n
}

// IndexOfActive returns the rank of the active set among the visible sets,
// or -1 when no set is active.
func (r *Registry) IndexOfActive() int {
	n := 0
	for _, id := range r.accepted {
		if id == r.active {
			return n
		}
		if !r.visible(id) {
			continue
		}
		n++
	}
	return -1
}

// ByIndex returns the i-th visible set. An index outside [0, Count()) is a
// programming error and panics.
func (r *Registry) ByIndex(i int) *Set {
	n := i
	for _, id := range r.accepted {
		if !r.visible(id) {
			continue
		}
		if n == 0 {
			return r.sets[id]
		}
		n--
	}
	panic(fmt.Sprintf("baseset: %s set index %d out of range", r.kind.Name, i))
}

// Visible returns the visible sets in list order.
func (r *Registry) Visible() []*Set {
	var out []*Set
	for _, id := range r.accepted {
		if r.visible(id) {
			out = append(out, r.sets[id])
		}
	}
	return out
}
