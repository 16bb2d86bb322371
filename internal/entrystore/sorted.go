package entrystore

import (
	"cmp"
	"slices"

	"github.com/hupe1980/annostore/core"
)

// spanList keeps the annotations of one type ordered by (begin, end, tid).
//
// TIDs grow monotonically, so ordering ties by tid is ordering them by
// insertion. The key is unique per record, which makes every locate an exact
// binary search.
type spanList struct {
	items []*record
}

func compareSpan(r *record, begin, end int, tid core.TID) int {
	if c := cmp.Compare(r.begin, begin); c != 0 {
		return c
	}
	if c := cmp.Compare(r.end, end); c != 0 {
		return c
	}
	return cmp.Compare(r.tid, tid)
}

func (l *spanList) search(r *record) (int, bool) {
	return slices.BinarySearchFunc(l.items, r, func(item, target *record) int {
		return compareSpan(item, target.begin, target.end, target.tid)
	})
}

func (l *spanList) insert(r *record) int {
	i, _ := l.search(r)
	l.items = slices.Insert(l.items, i, r)
	return i
}

func (l *spanList) remove(r *record) bool {
	i, ok := l.search(r)
	if !ok {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

func (l *spanList) indexOf(r *record) int {
	i, ok := l.search(r)
	if !ok {
		return -1
	}
	return i
}

func (l *spanList) len() int { return len(l.items) }

func (l *spanList) at(i int) *record {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}

// within returns the annotations whose span lies inside [begin, end], in order.
func (l *spanList) within(begin, end int) []*record {
	start, _ := slices.BinarySearchFunc(l.items, begin, func(item *record, b int) int {
		return cmp.Compare(item.begin, b)
	})

	var out []*record
	for _, r := range l.items[start:] {
		if r.begin > end {
			break
		}
		if r.end <= end {
			out = append(out, r)
		}
	}
	return out
}
