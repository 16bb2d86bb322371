package entrystore

import (
	"cmp"
	"slices"
)

// appendList keeps links or groups of one type in insertion order.
//
// Records are only ever appended with a fresh, larger tid, so the slice is
// sorted by tid and can be searched. Deletion compacts the slice: positions
// handed out earlier are not stable.
type appendList struct {
	items []*record
}

func (l *appendList) search(r *record) (int, bool) {
	return slices.BinarySearchFunc(l.items, r, func(item, target *record) int {
		return cmp.Compare(item.tid, target.tid)
	})
}

func (l *appendList) insert(r *record) int {
	l.items = append(l.items, r)
	return len(l.items) - 1
}

func (l *appendList) remove(r *record) bool {
	i, ok := l.search(r)
	if !ok {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

func (l *appendList) indexOf(r *record) int {
	i, ok := l.search(r)
	if !ok {
		return -1
	}
	return i
}

func (l *appendList) len() int { return len(l.items) }

func (l *appendList) at(i int) *record {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}
