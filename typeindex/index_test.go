package typeindex

import (
	"testing"

	"github.com/hupe1980/annostore/core"
	"github.com/hupe1980/annostore/idset"
	"github.com/hupe1980/annostore/ontology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const (
	tAnnotation core.TypeID = iota + 1
	tToken
	tSubword
	tSentence
)

func newHierarchy() *ontology.Registry {
	return ontology.NewRegistry().MustRegister(
		ontology.TypeSpec{ID: tAnnotation, Name: "Annotation", Kind: core.KindAnnotation},
		ontology.TypeSpec{ID: tToken, Name: "Token", Parent: ontology.Parent(tAnnotation)},
		ontology.TypeSpec{ID: tSubword, Name: "Subword", Parent: ontology.Parent(tToken)},
		ontology.TypeSpec{ID: tSentence, Name: "Sentence", Parent: ontology.Parent(tAnnotation)},
	)
}

func TestQueryByTypePartition(t *testing.T) {
	ix := New(newHierarchy())

	ix.Add(tToken, 1)
	ix.Add(tToken, 2)
	ix.Add(tSentence, 3)
	ix.Add(tToken, 4)

	assert.Equal(t, []core.TID{1, 2, 4}, ix.QueryByType(tToken).Slice())
	assert.Equal(t, []core.TID{3}, ix.QueryByType(tSentence).Slice())

	assert.True(t, ix.Remove(tToken, 2))
	assert.False(t, ix.Remove(tToken, 2))
	assert.False(t, ix.Remove(tSubword, 1))

	assert.Equal(t, []core.TID{1, 4}, ix.QueryByType(tToken).Slice())
	assert.True(t, ix.Contains(tToken, 4))
	assert.False(t, ix.Contains(tToken, 2))
}

func TestQueryUnknownTypeDoesNotRegister(t *testing.T) {
	ix := New(newHierarchy())

	assert.True(t, ix.QueryByType(tSubword).IsEmpty())
	assert.True(t, ix.QueryByTypeSubtype(tSubword).IsEmpty())
	assert.Empty(t, ix.IndexedTypes())
}

func TestQueryResultIsSnapshot(t *testing.T) {
	ix := New(newHierarchy())
	ix.Add(tToken, 1)

	exact := ix.QueryByType(tToken)
	sub := ix.QueryByTypeSubtype(tAnnotation)
	exact.Add(99)
	sub.Add(99)

	assert.Equal(t, []core.TID{1}, ix.QueryByType(tToken).Slice())
	assert.Equal(t, []core.TID{1}, ix.QueryByTypeSubtype(tAnnotation).Slice())
}

func TestSubtypeQuery(t *testing.T) {
	ix := New(newHierarchy())
	ix.Add(tAnnotation, 1)
	ix.Add(tToken, 2)
	ix.Add(tSubword, 3)
	ix.Add(tSentence, 4)

	assert.Equal(t, []core.TID{1, 2, 3, 4}, ix.QueryByTypeSubtype(tAnnotation).Slice())
	assert.Equal(t, []core.TID{2, 3}, ix.QueryByTypeSubtype(tToken).Slice())
	assert.Equal(t, []core.TID{3}, ix.QueryByTypeSubtype(tSubword).Slice())
	assert.Equal(t, []core.TypeID{tToken, tSubword}, ix.MatchingTypes(tToken))

	s := ix.Stats()
	assert.Equal(t, uint64(3), s.Misses)
	assert.Equal(t, uint64(0), s.Hits)

	ix.QueryByTypeSubtype(tToken)
	assert.Equal(t, uint64(1), ix.Stats().Hits)
}

func TestSubtypeCacheRefreshOnNewType(t *testing.T) {
	ix := New(newHierarchy())
	ix.Add(tToken, 1)

	assert.Equal(t, []core.TID{1}, ix.QueryByTypeSubtype(tAnnotation).Slice())
	require.True(t, ix.Cached(tAnnotation))

	// Subword has never been seen: the cache must be discarded, not patched.
	assert.True(t, ix.Add(tSubword, 2))
	assert.False(t, ix.Cached(tAnnotation))
	assert.Equal(t, uint64(1), ix.Stats().Invalidations)

	assert.Equal(t, []core.TID{1, 2}, ix.QueryByTypeSubtype(tAnnotation).Slice())
	assert.Equal(t, uint64(2), ix.Stats().Misses)
}

func TestSubtypeCachePatchedOnKnownType(t *testing.T) {
	ix := New(newHierarchy())
	ix.Add(tToken, 1)
	ix.Add(tSentence, 2)

	ix.QueryByTypeSubtype(tAnnotation)
	ix.QueryByTypeSubtype(tToken)
	ix.QueryByTypeSubtype(tSentence)

	assert.False(t, ix.Add(tToken, 3))

	assert.True(t, ix.Cached(tAnnotation))
	assert.Equal(t, []core.TID{1, 2, 3}, ix.QueryByTypeSubtype(tAnnotation).Slice())
	assert.Equal(t, []core.TID{1, 3}, ix.QueryByTypeSubtype(tToken).Slice())
	assert.Equal(t, []core.TID{2}, ix.QueryByTypeSubtype(tSentence).Slice())

	s := ix.Stats()
	assert.Equal(t, uint64(3), s.Misses)
	assert.Equal(t, uint64(0), s.Invalidations)
}

// Deletion is deliberately asymmetric with insertion of a new type: the cache
// survives and no rebuild happens, yet the removed id is gone from the result.
func TestSubtypeCacheSurvivesRemoval(t *testing.T) {
	ix := New(newHierarchy())
	ix.Add(tToken, 1)
	ix.Add(tSubword, 2)

	assert.Equal(t, []core.TID{1, 2}, ix.QueryByTypeSubtype(tAnnotation).Slice())
	before := ix.Stats()

	require.True(t, ix.Remove(tSubword, 2))

	assert.True(t, ix.Cached(tAnnotation))
	assert.Equal(t, []core.TID{1}, ix.QueryByTypeSubtype(tAnnotation).Slice())

	after := ix.Stats()
	assert.Equal(t, before.Misses, after.Misses)
	assert.Equal(t, before.Invalidations, after.Invalidations)
	assert.Equal(t, before.Hits+1, after.Hits)

	// The emptied type stays known, so re-adding to it patches instead of invalidating.
	assert.Contains(t, ix.IndexedTypes(), tSubword)
	assert.False(t, ix.Add(tSubword, 3))
	assert.Equal(t, []core.TID{1, 3}, ix.QueryByTypeSubtype(tAnnotation).Slice())
}

func TestNilHierarchyIsReflexive(t *testing.T) {
	ix := New(nil)
	ix.Add(1, 10)
	ix.Add(2, 20)

	assert.Equal(t, []core.TID{10}, ix.QueryByTypeSubtype(1).Slice())
	assert.Equal(t, []core.TypeID{1, 2}, ix.IndexedTypes())
}

func TestConcurrentSubtypeQueries(t *testing.T) {
	ix := New(newHierarchy())
	for i := core.TID(1); i <= 100; i++ {
		switch i % 3 {
		case 0:
			ix.Add(tToken, i)
		case 1:
			ix.Add(tSubword, i)
		default:
			ix.Add(tSentence, i)
		}
	}

	want := ix.QueryByType(tToken)
	want.Union(ix.QueryByType(tSubword))

	results := make([]*idset.Set, 16)
	var g errgroup.Group
	for i := range results {
		g.Go(func() error {
			results[i] = ix.QueryByTypeSubtype(tToken)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for _, r := range results {
		assert.True(t, want.Equal(r))
	}

	// Callers that join an in-flight fill count as neither hit nor miss.
	s := ix.Stats()
	assert.LessOrEqual(t, s.Hits+s.Misses, uint64(len(results)))
	assert.GreaterOrEqual(t, s.Misses, uint64(1))
}
