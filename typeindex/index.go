package typeindex

import (
	"slices"
	"strconv"
	"sync"

	"github.com/hupe1980/annostore/core"
	"github.com/hupe1980/annostore/idset"
	"github.com/hupe1980/annostore/ontology"
	"golang.org/x/sync/singleflight"
)

// Stats reports subtype cache activity.
type Stats struct {
	Hits          uint64
	Misses        uint64
	Invalidations uint64
}

// Index maps each type to the TIDs of exactly that type, and caches the union
// over all subtypes of a type on demand.
//
// Add and Remove must be serialized by the caller and must not run
// concurrently with queries. Queries may run concurrently with each other: the
// cache fill on a miss is synchronized internally.
type Index struct {
	hierarchy ontology.Hierarchy
	buckets   map[core.TypeID]*idset.Set

	mu    sync.Mutex // protects cache and stats
	cache map[core.TypeID]*idset.Set
	stats Stats
	fills singleflight.Group
}

// New creates an empty index. A nil hierarchy only knows that every type is a
// subtype of itself.
func New(h ontology.Hierarchy) *Index {
	if h == nil {
		h = reflexive{}
	}
	return &Index{
		hierarchy: h,
		buckets:   make(map[core.TypeID]*idset.Set),
		cache:     make(map[core.TypeID]*idset.Set),
	}
}

// Add registers tid under type t. It reports whether t was not known before,
// in which case the whole subtype cache has been discarded.
func (ix *Index) Add(t core.TypeID, tid core.TID) bool {
	b, ok := ix.buckets[t]
	if !ok {
		b = idset.New(tid)
		ix.buckets[t] = b

		// A new type may satisfy any cached ancestor query.
		ix.mu.Lock()
		if len(ix.cache) > 0 {
			ix.cache = make(map[core.TypeID]*idset.Set)
			ix.stats.Invalidations++
		}
		ix.mu.Unlock()
		return true
	}

	b.Add(tid)

	ix.mu.Lock()
	for ancestor, set := range ix.cache {
		if ix.hierarchy.IsSubtype(t, ancestor) {
			set.Add(tid)
		}
	}
	ix.mu.Unlock()
	return false
}

// Remove unregisters tid from type t and reports whether it was present.
//
// Removal never discards the subtype cache; tid is dropped from the cached
// sets in place. The type stays known even when its bucket becomes empty.
func (ix *Index) Remove(t core.TypeID, tid core.TID) bool {
	b, ok := ix.buckets[t]
	if !ok || !b.Contains(tid) {
		return false
	}
	b.Remove(tid)

	ix.mu.Lock()
	for ancestor, set := range ix.cache {
		if ix.hierarchy.IsSubtype(t, ancestor) {
			set.Remove(tid)
		}
	}
	ix.mu.Unlock()
	return true
}

// QueryByType returns a snapshot of the TIDs of exactly type t. Querying an
// unknown type returns an empty set and does not register the type.
func (ix *Index) QueryByType(t core.TypeID) *idset.Set {
	return ix.buckets[t].Clone()
}

// QueryByTypeSubtype returns a snapshot of the TIDs whose type is t or a
// subtype of t. A cache miss scans every known type.
func (ix *Index) QueryByTypeSubtype(t core.TypeID) *idset.Set {
	ix.mu.Lock()
	if set, ok := ix.cache[t]; ok {
		ix.stats.Hits++
		out := set.Clone()
		ix.mu.Unlock()
		return out
	}
	ix.mu.Unlock()

	v, _, _ := ix.fills.Do(strconv.FormatUint(uint64(t), 10), func() (any, error) {
		set := idset.New()
		for typ, b := range ix.buckets {
			if ix.hierarchy.IsSubtype(typ, t) {
				set.Union(b)
			}
		}

		ix.mu.Lock()
		ix.cache[t] = set
		ix.stats.Misses++
		ix.mu.Unlock()
		return set, nil
	})

	ix.mu.Lock()
	defer ix.mu.Unlock()
	return v.(*idset.Set).Clone()
}

// Contains reports whether tid is registered under type t.
func (ix *Index) Contains(t core.TypeID, tid core.TID) bool {
	return ix.buckets[t].Contains(tid)
}

// IndexedTypes returns every known type in ascending order.
func (ix *Index) IndexedTypes() []core.TypeID {
	out := make([]core.TypeID, 0, len(ix.buckets))
	for t := range ix.buckets {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// MatchingTypes returns the known types that are t or a subtype of t, in
// ascending order.
func (ix *Index) MatchingTypes(t core.TypeID) []core.TypeID {
	var out []core.TypeID
	for typ := range ix.buckets {
		if ix.hierarchy.IsSubtype(typ, t) {
			out = append(out, typ)
		}
	}
	slices.Sort(out)
	return out
}

// Cached reports whether a subtype result for t is currently cached.
func (ix *Index) Cached(t core.TypeID) bool {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	_, ok := ix.cache[t]
	return ok
}

// Stats returns a snapshot of the cache counters.
func (ix *Index) Stats() Stats {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.stats
}

type reflexive struct{}

func (reflexive) IsSubtype(t, ancestor core.TypeID) bool { return t == ancestor }
