package idset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/annostore/core"
)

// Set is a set of TIDs backed by a 64-bit Roaring Bitmap.
//
// Iteration is always in ascending TID order. A nil *Set is a valid empty set
// for every read method.
type Set struct {
	rb *roaring64.Bitmap
}

// New creates a set holding ids.
func New(ids ...core.TID) *Set {
	s := &Set{rb: roaring64.New()}
	for _, id := range ids {
		s.rb.Add(uint64(id))
	}
	return s
}

// Add adds id to the set.
func (s *Set) Add(id core.TID) {
	s.rb.Add(uint64(id))
}

// Remove removes id from the set.
func (s *Set) Remove(id core.TID) {
	s.rb.Remove(uint64(id))
}

// Contains checks if id is in the set.
func (s *Set) Contains(id core.TID) bool {
	if s == nil {
		return false
	}
	return s.rb.Contains(uint64(id))
}

// Len returns the number of ids in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return int(s.rb.GetCardinality())
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	if s == nil {
		return true
	}
	return s.rb.IsEmpty()
}

// Clone returns a deep copy of the set. Cloning nil yields an empty set.
func (s *Set) Clone() *Set {
	if s == nil {
		return New()
	}
	return &Set{rb: s.rb.Clone()}
}

// Union adds every id of other to s.
func (s *Set) Union(other *Set) {
	if other == nil {
		return
	}
	s.rb.Or(other.rb)
}

// Intersect keeps only the ids that are also in other.
func (s *Set) Intersect(other *Set) {
	if other == nil {
		s.rb.Clear()
		return
	}
	s.rb.And(other.rb)
}

// Difference removes every id of other from s.
func (s *Set) Difference(other *Set) {
	if other == nil {
		return
	}
	s.rb.AndNot(other.rb)
}

// Equal reports whether s and other hold the same ids.
func (s *Set) Equal(other *Set) bool {
	if s.IsEmpty() || other.IsEmpty() {
		return s.IsEmpty() == other.IsEmpty()
	}
	return s.rb.Equals(other.rb)
}

// All returns an iterator over the ids in ascending order.
func (s *Set) All() iter.Seq[core.TID] {
	return func(yield func(core.TID) bool) {
		if s == nil {
			return
		}
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(core.TID(it.Next())) {
				return
			}
		}
	}
}

// Slice returns the ids in ascending order.
func (s *Set) Slice() []core.TID {
	if s == nil {
		return nil
	}
	out := make([]core.TID, 0, s.Len())
	for id := range s.All() {
		out = append(out, id)
	}
	return out
}

// Clear removes all ids from the set.
func (s *Set) Clear() {
	s.rb.Clear()
}

// GetSizeInBytes returns the size of the set in bytes.
func (s *Set) GetSizeInBytes() uint64 {
	if s == nil {
		return 0
	}
	return s.rb.GetSizeInBytes()
}
