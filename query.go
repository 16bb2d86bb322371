package annostore

import (
	"iter"
	"time"

	"github.com/hupe1980/annostore/core"
	"github.com/hupe1980/annostore/idset"
	"github.com/hupe1980/annostore/typeindex"
)

// Get returns the entries of type t, or of t and its subtypes when
// includeSubtype is set.
//
// The entries are snapshotted when Get is called. Mutating the store while
// ranging over the sequence does not change what it yields. Exact-type
// results follow collection order; subtype results visit matching types in
// ascending id order and each type in collection order.
func (s *Store) Get(t core.TypeID, includeSubtype bool) iter.Seq[Entry] {
	start := time.Now()

	var (
		types  []core.TypeID
		filter *idset.Set
	)
	if includeSubtype {
		s.metrics.RecordSubtypeCache(s.types.Cached(t))
		filter = s.types.QueryByTypeSubtype(t)
		types = s.types.MatchingTypes(t)
	} else {
		types = []core.TypeID{t}
	}

	var out []Entry
	for _, typ := range types {
		for _, tid := range s.entries.IDs(typ) {
			if filter != nil && !filter.Contains(tid) {
				continue
			}
			e, err := s.entries.Get(tid)
			if err != nil {
				continue
			}
			out = append(out, e)
		}
	}
	s.metrics.RecordQuery(includeSubtype, len(out), time.Since(start))

	return func(yield func(Entry) bool) {
		for _, e := range out {
			if !yield(e) {
				return
			}
		}
	}
}

// QueryByType returns a snapshot of the TIDs of exactly type t.
func (s *Store) QueryByType(t core.TypeID) *idset.Set {
	start := time.Now()
	set := s.types.QueryByType(t)
	s.metrics.RecordQuery(false, set.Len(), time.Since(start))
	return set
}

// QueryByTypeSubtype returns a snapshot of the TIDs whose type is t or a
// subtype of t according to the schema.
//
// Results are cached per t. Inserting the first entry of a type the store has
// not seen before discards the whole cache; inserts into known types and
// deletes keep cached sets current in place.
func (s *Store) QueryByTypeSubtype(t core.TypeID) *idset.Set {
	start := time.Now()
	s.metrics.RecordSubtypeCache(s.types.Cached(t))
	set := s.types.QueryByTypeSubtype(t)
	s.metrics.RecordQuery(true, set.Len(), time.Since(start))
	return set
}

// IndexedTypes returns every type that ever held an entry, in ascending order.
func (s *Store) IndexedTypes() []core.TypeID {
	return s.types.IndexedTypes()
}

// SubtypeCacheStats returns the subtype cache counters.
func (s *Store) SubtypeCacheStats() typeindex.Stats {
	return s.types.Stats()
}
