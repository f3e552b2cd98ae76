package baseset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRegistry_SelectActive(t *testing.T) {
	t.Run("ByName", func(t *testing.T) {
		var hooked []string
		r := NewRegistry(Options{Kind: testKind, Hook: func(s *Set) { hooked = append(hooked, s.Name) }})
		r.Insert(newSet("A", "AAAA", 1, 3, 3, 3))
		b := newSet("B", "BBBB", 1, 3, 3, 3)
		r.Insert(b)

		assert.True(t, r.SelectActive("B"))
		assert.Same(t, b, r.Active())
		assert.Equal(t, []string{"B"}, hooked)
	})

	t.Run("UnknownNameKeepsActive", func(t *testing.T) {
		r := NewRegistry(Options{Kind: testKind})
		a := newSet("A", "AAAA", 1, 3, 3, 3)
		r.Insert(a)
		require.True(t, r.SelectActive("A"))

		assert.False(t, r.SelectActive("Z"))
		assert.Same(t, a, r.Active())
	})

	t.Run("EmptyNameUsesPolicy", func(t *testing.T) {
		r := NewRegistry(Options{Kind: testKind, Policy: func(c []*Set, _ *Set) *Set { return c[len(c)-1] }})
		r.Insert(newSet("A", "AAAA", 1, 3, 3, 3))
		b := newSet("B", "BBBB", 1, 3, 3, 3)
		r.Insert(b)

		assert.True(t, r.SelectActive(""))
		assert.Same(t, b, r.Active())
	})

	t.Run("EmptyNamePolicyFails", func(t *testing.T) {
		hooked := false
		r := NewRegistry(Options{
			Kind:   testKind,
			Policy: func([]*Set, *Set) *Set { return nil },
			Hook:   func(*Set) { hooked = true },
		})
		r.Insert(newSet("A", "AAAA", 1, 3, 3, 3))

		assert.False(t, r.SelectActive(""))
		assert.Nil(t, r.Active())
		assert.False(t, hooked)
	})

	t.Run("PolicyReturningSupersededSetFails", func(t *testing.T) {
		r := NewRegistry(Options{Kind: testKind})
		r.Insert(newSet("A", "AAAA", 2, 3, 3, 3))
		loser := newSet("A", "AAAA", 1, 3, 3, 3)
		r.Insert(loser)
		r.policy = func([]*Set, *Set) *Set { return loser }

		assert.False(t, r.SelectActive(""))
	})

	t.Run("DefaultHookLogsProblems", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		r := NewRegistry(Options{Kind: testKind, Logger: zap.New(core)})
		s := newSet("A", "AAAA", 1, 3, 1, 2)
		s.Files[1].Status = Mismatched
		s.Files[2].Status = Missing
		s.Files[2].MissingMessage = "download it"
		r.Insert(s)

		require.True(t, r.SelectActive("A"))
		require.Equal(t, 2, logs.Len())
		entry := logs.All()[1]
		assert.Equal(t, "missing", entry.ContextMap()["status"])
		assert.Equal(t, "download it", entry.ContextMap()["hint"])
	})
}

func TestPreferBest(t *testing.T) {
	t.Run("KeepsActive", func(t *testing.T) {
		active := newSet("A", "AAAA", 1, 3, 3, 3)
		better := newSet("B", "BBBB", 9, 3, 3, 3)
		better.Fallback = false
		assert.Same(t, active, PreferBest("")([]*Set{active, better}, active))
	})

	t.Run("SkipsIncomplete", func(t *testing.T) {
		broken := newSet("A", "AAAA", 1, 3, 2, 2)
		ok := newSet("B", "BBBB", 1, 3, 3, 3)
		assert.Same(t, ok, PreferBest("")([]*Set{broken, ok}, nil))
		assert.Nil(t, PreferBest("")([]*Set{broken}, nil))
	})

	t.Run("PrefersNonFallback", func(t *testing.T) {
		fallback := newSet("A", "AAAA", 1, 3, 3, 3)
		regular := newSet("B", "BBBB", 1, 3, 3, 3)
		regular.Fallback = false
		assert.Same(t, regular, PreferBest("")([]*Set{fallback, regular}, nil))
	})

	t.Run("PrefersMoreValidFiles", func(t *testing.T) {
		corrupt := newSet("A", "AAAA", 1, 3, 2, 3)
		clean := newSet("B", "BBBB", 1, 3, 3, 3)
		assert.Same(t, clean, PreferBest("")([]*Set{corrupt, clean}, nil))
	})

	t.Run("PrefersNewerVersionOfSameShortName", func(t *testing.T) {
		older := newSet("A", "AAAA", 1, 3, 3, 3)
		newer := newSet("A2", "AAAA", 2, 3, 3, 3)
		assert.Same(t, newer, PreferBest("")([]*Set{older, newer}, nil))
	})

	t.Run("PrefersLanguage", func(t *testing.T) {
		plain := newSet("A", "AAAA", 1, 3, 3, 3)
		localized := newSet("B", "BBBB", 1, 3, 3, 3)
		localized.Descriptions["nl_NL"] = "Nederlands"
		assert.Same(t, localized, PreferBest("nl_NL")([]*Set{plain, localized}, nil))
		assert.Same(t, plain, PreferBest("de_DE")([]*Set{plain, localized}, nil))
	})
}

func TestRegistry_Enumeration(t *testing.T) {
	r := NewRegistry(Options{Kind: testKind})
	a := newSet("A", "AAAA", 1, 3, 3, 3)
	broken := newSet("Broken", "BRKN", 1, 3, 2, 2)
	c := newSet("C", "CCCC", 1, 3, 2, 3)
	r.Insert(a)
	r.Insert(broken)
	r.Insert(c)

	t.Run("NoActive", func(t *testing.T) {
		assert.Equal(t, 2, r.Count())
		assert.Equal(t, -1, r.IndexOfActive())
		assert.Same(t, a, r.ByIndex(0))
		assert.Same(t, c, r.ByIndex(1))
		assert.Equal(t, []string{"A", "C"}, names(r.Visible()))
	})

	t.Run("OutOfRangePanics", func(t *testing.T) {
		assert.Panics(t, func() { r.ByIndex(2) })
		assert.Panics(t, func() { r.ByIndex(-1) })
	})

	t.Run("BrokenActiveIsVisible", func(t *testing.T) {
		require.True(t, r.SelectActive("Broken"))
		assert.Equal(t, 3, r.Count())
		assert.Equal(t, 1, r.IndexOfActive())
		assert.Same(t, broken, r.ByIndex(1))
		assert.Same(t, c, r.ByIndex(2))
	})

	t.Run("ActiveAfterHiddenSet", func(t *testing.T) {
		require.True(t, r.SelectActive("C"))
		assert.Equal(t, 2, r.Count())
		assert.Equal(t, 1, r.IndexOfActive())
		assert.Same(t, c, r.ByIndex(r.IndexOfActive()))
	})
}
