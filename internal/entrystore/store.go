package entrystore

import (
	"fmt"
	"slices"

	"github.com/hupe1980/annostore/attr"
	"github.com/hupe1980/annostore/core"
	"github.com/hupe1980/annostore/idset"
)

// collection is the backing storage for all entries of one type.
type collection interface {
	insert(r *record) int
	remove(r *record) bool
	indexOf(r *record) int
	len() int
	at(i int) *record
}

type bucket struct {
	kind core.Kind
	coll collection
}

// Store owns entry payloads and their per-type collections.
//
// A Store is not safe for concurrent mutation. Readers may run concurrently
// with each other as long as no mutation is in flight.
type Store struct {
	entries map[core.TID]*record
	buckets map[core.TypeID]*bucket
	next    core.TID
}

// New creates an empty store whose first allocated TID is start.
// A start of core.NilTID is bumped to 1.
func New(start core.TID) *Store {
	if start == core.NilTID {
		start = 1
	}
	return &Store{
		entries: make(map[core.TID]*record),
		buckets: make(map[core.TypeID]*bucket),
		next:    start,
	}
}

// Len returns the number of live entries.
func (s *Store) Len() int { return len(s.entries) }

// NextTID returns the TID the next Add will allocate.
func (s *Store) NextTID() core.TID { return s.next }

func (s *Store) allocate() (core.TID, error) {
	if s.next == core.MaxTID {
		return core.NilTID, ErrTIDExhausted
	}
	tid := s.next
	s.next++
	return tid, nil
}

// bucketFor returns the bucket of t, checking that it holds entries of kind.
// A missing bucket is returned as nil without being created.
func (s *Store) bucketFor(t core.TypeID, kind core.Kind) (*bucket, error) {
	b, ok := s.buckets[t]
	if !ok {
		return nil, nil
	}
	if b.kind != kind {
		return nil, fmt.Errorf("%w: type %d holds %s entries, not %s", ErrKindMismatch, t, b.kind, kind)
	}
	return b, nil
}

func (s *Store) commit(r *record, b *bucket) int {
	if b == nil {
		b = &bucket{kind: r.kind}
		if r.kind == core.KindAnnotation {
			b.coll = &spanList{}
		} else {
			b.coll = &appendList{}
		}
		s.buckets[r.typ] = b
	}
	s.entries[r.tid] = r
	return b.coll.insert(r)
}

// AddAnnotation stores a span of type t and returns its TID.
func (s *Store) AddAnnotation(t core.TypeID, begin, end int) (core.TID, error) {
	if begin < 0 || end < 0 || begin > end {
		return core.NilTID, fmt.Errorf("%w: begin=%d end=%d", ErrInvalidSpan, begin, end)
	}
	b, err := s.bucketFor(t, core.KindAnnotation)
	if err != nil {
		return core.NilTID, err
	}
	tid, err := s.allocate()
	if err != nil {
		return core.NilTID, err
	}
	s.commit(&record{tid: tid, typ: t, kind: core.KindAnnotation, begin: begin, end: end}, b)
	return tid, nil
}

// AddLink stores a directed edge of type t between two live entries.
// The returned index is the link's position in its collection at insertion.
func (s *Store) AddLink(t core.TypeID, parent, child core.TID) (core.TID, int, error) {
	if _, ok := s.entries[parent]; !ok {
		return core.NilTID, -1, fmt.Errorf("%w: link parent %d", ErrNotFound, parent)
	}
	if _, ok := s.entries[child]; !ok {
		return core.NilTID, -1, fmt.Errorf("%w: link child %d", ErrNotFound, child)
	}
	b, err := s.bucketFor(t, core.KindLink)
	if err != nil {
		return core.NilTID, -1, err
	}
	tid, err := s.allocate()
	if err != nil {
		return core.NilTID, -1, err
	}
	idx := s.commit(&record{tid: tid, typ: t, kind: core.KindLink, parent: parent, child: child}, b)
	return tid, idx, nil
}

// AddGroup stores an empty group of type t whose members are of memberType.
func (s *Store) AddGroup(t core.TypeID, memberType core.TypeID) (core.TID, int, error) {
	b, err := s.bucketFor(t, core.KindGroup)
	if err != nil {
		return core.NilTID, -1, err
	}
	tid, err := s.allocate()
	if err != nil {
		return core.NilTID, -1, err
	}
	idx := s.commit(&record{tid: tid, typ: t, kind: core.KindGroup, memberType: memberType, members: idset.New()}, b)
	return tid, idx, nil
}

func (s *Store) lookup(tid core.TID) (*record, error) {
	r, ok := s.entries[tid]
	if !ok {
		return nil, fmt.Errorf("%w: tid %d", ErrNotFound, tid)
	}
	return r, nil
}

func (s *Store) lookupKind(tid core.TID, kind core.Kind) (*record, error) {
	r, err := s.lookup(tid)
	if err != nil {
		return nil, err
	}
	if r.kind != kind {
		return nil, fmt.Errorf("%w: tid %d is a %s, not a %s", ErrKindMismatch, tid, r.kind, kind)
	}
	return r, nil
}

// AddMembers adds live entries to a group. Either all members are added or,
// on error, none.
func (s *Store) AddMembers(group core.TID, members ...core.TID) error {
	g, err := s.lookupKind(group, core.KindGroup)
	if err != nil {
		return err
	}
	for _, m := range members {
		if _, ok := s.entries[m]; !ok {
			return fmt.Errorf("%w: group member %d", ErrNotFound, m)
		}
	}
	for _, m := range members {
		g.members.Add(m)
	}
	return nil
}

// TypeOf returns the type of a live entry.
func (s *Store) TypeOf(tid core.TID) (core.TypeID, error) {
	r, err := s.lookup(tid)
	if err != nil {
		return 0, err
	}
	return r.typ, nil
}

// KindOf returns the kind of a live entry.
func (s *Store) KindOf(tid core.TID) (core.Kind, error) {
	r, err := s.lookup(tid)
	if err != nil {
		return core.KindUnknown, err
	}
	return r.kind, nil
}

// Contains reports whether tid is live.
func (s *Store) Contains(tid core.TID) bool {
	_, ok := s.entries[tid]
	return ok
}

// SetAttr sets attribute id of tid to v. A null value clears the attribute.
func (s *Store) SetAttr(tid core.TID, id core.AttrID, v attr.Value) error {
	r, err := s.lookup(tid)
	if err != nil {
		return err
	}
	if v.IsNull() {
		delete(r.attrs, id)
		return nil
	}
	if r.attrs == nil {
		r.attrs = make(map[core.AttrID]attr.Value)
	}
	r.attrs[id] = v.Clone()
	return nil
}

// GetAttr returns attribute id of tid, or attr.Null() when it was never set.
func (s *Store) GetAttr(tid core.TID, id core.AttrID) (attr.Value, error) {
	r, err := s.lookup(tid)
	if err != nil {
		return attr.Value{}, err
	}
	v, ok := r.attrs[id]
	if !ok {
		return attr.Null(), nil
	}
	return v.Clone(), nil
}

// Delete removes tid from its collection and returns its last snapshot.
func (s *Store) Delete(tid core.TID) (Entry, error) {
	r, err := s.lookup(tid)
	if err != nil {
		return Entry{}, err
	}
	b := s.buckets[r.typ]
	idx := b.coll.indexOf(r)
	b.coll.remove(r)
	delete(s.entries, tid)
	return r.snapshot(idx), nil
}

// Get returns a snapshot of tid.
func (s *Store) Get(tid core.TID) (Entry, error) {
	r, err := s.lookup(tid)
	if err != nil {
		return Entry{}, err
	}
	return r.snapshot(s.buckets[r.typ].coll.indexOf(r)), nil
}

// Link returns the endpoints of a link.
func (s *Store) Link(tid core.TID) (parent, child core.TID, err error) {
	r, err := s.lookupKind(tid, core.KindLink)
	if err != nil {
		return core.NilTID, core.NilTID, err
	}
	return r.parent, r.child, nil
}

// Group returns the member type and a snapshot of the members of a group.
func (s *Store) Group(tid core.TID) (core.TypeID, *idset.Set, error) {
	r, err := s.lookupKind(tid, core.KindGroup)
	if err != nil {
		return 0, nil, err
	}
	return r.memberType, r.members.Clone(), nil
}

// neighbor returns the annotation offset positions away from tid in its
// type's sorted collection, or core.NilTID past either end.
func (s *Store) neighbor(tid core.TID, offset int) (core.TID, error) {
	r, err := s.lookupKind(tid, core.KindAnnotation)
	if err != nil {
		return core.NilTID, err
	}
	coll := s.buckets[r.typ].coll
	n := coll.at(coll.indexOf(r) + offset)
	if n == nil {
		return core.NilTID, nil
	}
	return n.tid, nil
}

// Next returns the annotation following tid within its type.
func (s *Store) Next(tid core.TID) (core.TID, error) { return s.neighbor(tid, 1) }

// Prev returns the annotation preceding tid within its type.
func (s *Store) Prev(tid core.TID) (core.TID, error) { return s.neighbor(tid, -1) }

// IDs returns the TIDs of type t in collection order: (begin, end) order for
// annotations, insertion order for links and groups.
func (s *Store) IDs(t core.TypeID) []core.TID {
	b, ok := s.buckets[t]
	if !ok {
		return nil
	}
	out := make([]core.TID, b.coll.len())
	for i := range out {
		out[i] = b.coll.at(i).tid
	}
	return out
}

// KindOfType returns the kind of the entries stored under t.
func (s *Store) KindOfType(t core.TypeID) (core.Kind, bool) {
	b, ok := s.buckets[t]
	if !ok {
		return core.KindUnknown, false
	}
	return b.kind, true
}

// Types returns every type that ever held an entry, in ascending order.
func (s *Store) Types() []core.TypeID {
	out := make([]core.TypeID, 0, len(s.buckets))
	for t := range s.buckets {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// Within returns the annotations of type t whose span lies in [begin, end],
// ordered by (begin, end).
func (s *Store) Within(t core.TypeID, begin, end int) ([]core.TID, error) {
	if begin < 0 || end < 0 || begin > end {
		return nil, fmt.Errorf("%w: begin=%d end=%d", ErrInvalidSpan, begin, end)
	}
	b, err := s.bucketFor(t, core.KindAnnotation)
	if err != nil || b == nil {
		return nil, err
	}
	recs := b.coll.(*spanList).within(begin, end)
	out := make([]core.TID, len(recs))
	for i, r := range recs {
		out[i] = r.tid
	}
	return out, nil
}
