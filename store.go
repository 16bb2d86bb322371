package annostore

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/annostore/attr"
	"github.com/hupe1980/annostore/core"
	"github.com/hupe1980/annostore/internal/entrystore"
	"github.com/hupe1980/annostore/ontology"
	"github.com/hupe1980/annostore/relindex"
	"github.com/hupe1980/annostore/typeindex"
)

// Entry is a read-only snapshot of a stored entry.
type Entry = entrystore.Entry

// Store holds annotations, links and groups over one text, together with
// their type and relation indexes.
//
// A Store is not safe for concurrent mutation: callers must serialize Add*,
// Set*, Delete*, Build* and Update* calls. Read-only queries may run
// concurrently with each other when no mutation is in flight.
type Store struct {
	id      uuid.UUID
	schema  ontology.Schema
	entries *entrystore.Store
	types   *typeindex.Index
	rels    *relindex.Index
	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty Store that resolves attributes and subtypes through
// schema. A nil schema behaves like an empty ontology.Registry: no attributes
// are declared and every type is only a subtype of itself.
func New(schema ontology.Schema, optFns ...Option) *Store {
	if schema == nil {
		schema = ontology.NewRegistry()
	}
	o := applyOptions(optFns)

	id := uuid.New()
	s := &Store{
		id:      id,
		schema:  schema,
		entries: entrystore.New(o.startTID),
		types:   typeindex.New(schema),
		rels:    relindex.New(),
		logger:  o.logger.WithStore(id.String()),
		metrics: o.metricsCollector,
	}
	if o.linkIndex {
		s.rels.BuildLinkIndex(nil)
	}
	if o.groupIndex {
		s.rels.BuildGroupIndex(nil)
	}
	return s
}

// ID returns the instance id of the store.
func (s *Store) ID() string { return s.id.String() }

// Schema returns the schema the store was created with.
func (s *Store) Schema() ontology.Schema { return s.schema }

// Len returns the number of live entries.
func (s *Store) Len() int { return s.entries.Len() }

func (s *Store) checkKind(t core.TypeID, want core.Kind) error {
	if k, ok := s.schema.Kind(t); ok && k != core.KindUnknown && k != want {
		return fmt.Errorf("%w: type %d is declared as %s, not %s", ErrInvalidArgument, t, k, want)
	}
	return nil
}

func (s *Store) register(t core.TypeID, tid core.TID) {
	if s.types.Add(t, tid) {
		s.logger.LogSubtypeInvalidation(t)
	}
}

func (s *Store) observeAdd(kind core.Kind, t core.TypeID, tid core.TID, start time.Time, err error) error {
	err = translateError(err)
	s.metrics.RecordAdd(kind, time.Since(start), err)
	s.logger.LogAdd(kind, t, tid, err)
	return err
}

// AddAnnotation stores a span [begin, end] of type t and returns its TID.
// The annotation is placed in (begin, end) order among the annotations of t;
// equal spans keep their insertion order.
func (s *Store) AddAnnotation(t core.TypeID, begin, end int) (core.TID, error) {
	start := time.Now()
	tid, err := s.addAnnotation(t, begin, end)
	return tid, s.observeAdd(core.KindAnnotation, t, tid, start, err)
}

func (s *Store) addAnnotation(t core.TypeID, begin, end int) (core.TID, error) {
	if begin < 0 || end < 0 || begin > end {
		return core.NilTID, &SpanError{Begin: begin, End: end}
	}
	if err := s.checkKind(t, core.KindAnnotation); err != nil {
		return core.NilTID, err
	}
	tid, err := s.entries.AddAnnotation(t, begin, end)
	if err != nil {
		return core.NilTID, err
	}
	s.register(t, tid)
	return tid, nil
}

// AddLink stores a directed link of type t from parent to child. Both
// endpoints must exist.
//
// The returned index is the position of the link among the links of t at
// insertion time. It is advisory: deleting an earlier link of the same type
// shifts it. Use the TID as the stable handle.
func (s *Store) AddLink(t core.TypeID, parent, child core.TID) (core.TID, int, error) {
	start := time.Now()
	tid, idx, err := s.addLink(t, parent, child)
	return tid, idx, s.observeAdd(core.KindLink, t, tid, start, err)
}

func (s *Store) addLink(t core.TypeID, parent, child core.TID) (core.TID, int, error) {
	if err := s.checkKind(t, core.KindLink); err != nil {
		return core.NilTID, -1, err
	}
	tid, idx, err := s.entries.AddLink(t, parent, child)
	if err != nil {
		return core.NilTID, -1, err
	}
	s.register(t, tid)
	if s.rels.LinkStatus() == relindex.Built {
		_ = s.rels.AddLinkParent(parent, tid)
		_ = s.rels.AddLinkChild(child, tid)
	}
	return tid, idx, nil
}

// AddGroup stores an empty group of type t whose members must be of
// memberType or one of its subtypes. The returned index is advisory, as for
// AddLink.
func (s *Store) AddGroup(t core.TypeID, memberType core.TypeID) (core.TID, int, error) {
	start := time.Now()
	tid, idx, err := s.addGroup(t, memberType)
	return tid, idx, s.observeAdd(core.KindGroup, t, tid, start, err)
}

func (s *Store) addGroup(t core.TypeID, memberType core.TypeID) (core.TID, int, error) {
	if err := s.checkKind(t, core.KindGroup); err != nil {
		return core.NilTID, -1, err
	}
	tid, idx, err := s.entries.AddGroup(t, memberType)
	if err != nil {
		return core.NilTID, -1, err
	}
	s.register(t, tid)
	return tid, idx, nil
}

// AddGroupMembers adds entries to a group. Every member must exist and be of
// the group's member type or a subtype of it. On error no member is added.
func (s *Store) AddGroupMembers(group core.TID, members ...core.TID) error {
	return translateError(s.addGroupMembers(group, members))
}

func (s *Store) addGroupMembers(group core.TID, members []core.TID) error {
	memberType, _, err := s.entries.Group(group)
	if err != nil {
		return err
	}
	for _, m := range members {
		t, err := s.entries.TypeOf(m)
		if err != nil {
			return err
		}
		if !s.schema.IsSubtype(t, memberType) {
			return fmt.Errorf("%w: member %d has type %d, group %d holds type %d", ErrInvalidArgument, m, t, group, memberType)
		}
	}
	if err := s.entries.AddMembers(group, members...); err != nil {
		return err
	}
	if s.rels.GroupStatus() == relindex.Built {
		for _, m := range members {
			_ = s.rels.AddGroupMember(m, group)
		}
	}
	return nil
}

// SetAttribute sets the attribute name of tid. The name is resolved through
// the schema for the entry's type; a declared field type restricts the value
// kind. Setting attr.Null() clears the attribute.
func (s *Store) SetAttribute(tid core.TID, name string, v attr.Value) error {
	id, err := s.resolveAttr(tid, name)
	if err != nil {
		return translateError(err)
	}
	return s.SetAttr(tid, id, v)
}

// GetAttribute returns the attribute name of tid, or attr.Null() when unset.
func (s *Store) GetAttribute(tid core.TID, name string) (attr.Value, error) {
	id, err := s.resolveAttr(tid, name)
	if err != nil {
		return attr.Value{}, translateError(err)
	}
	return s.GetAttr(tid, id)
}

func (s *Store) resolveAttr(tid core.TID, name string) (core.AttrID, error) {
	t, err := s.entries.TypeOf(tid)
	if err != nil {
		return 0, err
	}
	id, ok := s.schema.AttrID(t, name)
	if !ok {
		return 0, &AttributeError{Type: t, Name: name}
	}
	return id, nil
}

// SetAttr sets attribute id of tid.
func (s *Store) SetAttr(tid core.TID, id core.AttrID, v attr.Value) error {
	t, err := s.entries.TypeOf(tid)
	if err != nil {
		return translateError(err)
	}
	if ft := s.schema.AttrType(t, id); !ft.Accepts(v.Kind) {
		return fmt.Errorf("%w: attribute %d of type %d expects %s, got %s", ErrInvalidArgument, id, t, ft, v.Kind)
	}
	return translateError(s.entries.SetAttr(tid, id, v))
}

// GetAttr returns attribute id of tid, or attr.Null() when unset.
func (s *Store) GetAttr(tid core.TID, id core.AttrID) (attr.Value, error) {
	v, err := s.entries.GetAttr(tid, id)
	return v, translateError(err)
}

// DeleteEntry removes tid from its collection and from the type index.
//
// Any delete disables both relation indexes, whether or not tid took part in
// a relation; rebuild them before the next relational query. Links and groups
// that reference tid are left in place.
func (s *Store) DeleteEntry(tid core.TID) error {
	start := time.Now()
	err := translateError(s.deleteEntry(tid))
	s.metrics.RecordDelete(time.Since(start), err)
	s.logger.LogDelete(tid, err)
	return err
}

func (s *Store) deleteEntry(tid core.TID) error {
	e, err := s.entries.Delete(tid)
	if err != nil {
		return err
	}
	s.types.Remove(e.Type, tid)
	s.rels.Disable()
	return nil
}

// GetEntry returns a snapshot of tid, including its current index in its
// type's collection.
func (s *Store) GetEntry(tid core.TID) (Entry, error) {
	e, err := s.entries.Get(tid)
	return e, translateError(err)
}

// Link returns the endpoints of a link.
func (s *Store) Link(tid core.TID) (parent, child core.TID, err error) {
	parent, child, err = s.entries.Link(tid)
	return parent, child, translateError(err)
}

// Group returns the member type and a snapshot of the members of a group.
func (s *Store) Group(tid core.TID) (memberType core.TypeID, members []core.TID, err error) {
	memberType, set, err := s.entries.Group(tid)
	if err != nil {
		return 0, nil, translateError(err)
	}
	return memberType, set.Slice(), nil
}

// NextEntry returns the annotation that follows tid among the annotations of
// its type, or core.NilTID when tid is the last one.
func (s *Store) NextEntry(tid core.TID) (core.TID, error) {
	next, err := s.entries.Next(tid)
	return next, translateError(err)
}

// PrevEntry returns the annotation that precedes tid among the annotations of
// its type, or core.NilTID when tid is the first one.
func (s *Store) PrevEntry(tid core.TID) (core.TID, error) {
	prev, err := s.entries.Prev(tid)
	return prev, translateError(err)
}

// Within returns the annotations of type t whose span lies inside
// [begin, end], in (begin, end) order.
func (s *Store) Within(t core.TypeID, begin, end int) ([]core.TID, error) {
	if begin < 0 || end < 0 || begin > end {
		return nil, &SpanError{Begin: begin, End: end}
	}
	ids, err := s.entries.Within(t, begin, end)
	return ids, translateError(err)
}
