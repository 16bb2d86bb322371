package idset

import (
	"testing"

	"github.com/hupe1980/annostore/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetBasics(t *testing.T) {
	s := New(3, 1, 2)

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(1))
	assert.False(t, s.Contains(4))
	assert.Equal(t, []core.TID{1, 2, 3}, s.Slice())

	s.Remove(2)
	assert.False(t, s.Contains(2))
	assert.Equal(t, 2, s.Len())

	s.Clear()
	assert.True(t, s.IsEmpty())
}

func TestSetNilIsEmpty(t *testing.T) {
	var s *Set

	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(1))
	assert.Nil(t, s.Slice())
	assert.Equal(t, uint64(0), s.GetSizeInBytes())

	for range s.All() {
		t.Fatal("nil set must not yield")
	}

	c := s.Clone()
	require.NotNil(t, c)
	assert.True(t, c.IsEmpty())
}

func TestSetCloneIsSnapshot(t *testing.T) {
	s := New(1, 2)
	snap := s.Clone()

	s.Add(3)
	s.Remove(1)

	assert.Equal(t, []core.TID{1, 2}, snap.Slice())
	assert.Equal(t, []core.TID{2, 3}, s.Slice())
}

func TestSetAlgebra(t *testing.T) {
	a := New(1, 2, 3)
	a.Union(New(3, 4))
	assert.Equal(t, []core.TID{1, 2, 3, 4}, a.Slice())

	a.Intersect(New(2, 4, 6))
	assert.Equal(t, []core.TID{2, 4}, a.Slice())

	a.Difference(New(4))
	assert.Equal(t, []core.TID{2}, a.Slice())

	a.Union(nil)
	a.Difference(nil)
	assert.Equal(t, []core.TID{2}, a.Slice())

	a.Intersect(nil)
	assert.True(t, a.IsEmpty())
}

func TestSetEqual(t *testing.T) {
	var nilSet *Set

	assert.True(t, New(1, 2).Equal(New(2, 1)))
	assert.False(t, New(1).Equal(New(2)))
	assert.True(t, New().Equal(nilSet))
	assert.False(t, New(1).Equal(nilSet))
}

func TestSetAllEarlyStop(t *testing.T) {
	s := New(1, 2, 3, 4)

	var seen []core.TID
	for id := range s.All() {
		seen = append(seen, id)
		if id == 2 {
			break
		}
	}

	assert.Equal(t, []core.TID{1, 2}, seen)
}

func TestSetLargeIDs(t *testing.T) {
	big := core.TID(1) << 40
	s := New(big, big+1)

	assert.True(t, s.Contains(big))
	assert.Equal(t, []core.TID{big, big + 1}, s.Slice())
}
