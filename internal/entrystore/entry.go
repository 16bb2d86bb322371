package entrystore

import (
	"maps"
	"slices"

	"github.com/hupe1980/annostore/attr"
	"github.com/hupe1980/annostore/core"
	"github.com/hupe1980/annostore/idset"
)

// record is the payload owned by the store.
type record struct {
	tid   core.TID
	typ   core.TypeID
	kind  core.Kind
	attrs map[core.AttrID]attr.Value

	// annotation
	begin, end int

	// link
	parent, child core.TID

	// group
	memberType core.TypeID
	members    *idset.Set
}

// Entry is a read-only snapshot of one stored entry.
type Entry struct {
	TID   core.TID
	Type  core.TypeID
	Kind  core.Kind
	Attrs map[core.AttrID]attr.Value

	// Index is the position of the entry in its type's collection when the
	// snapshot was taken. It is advisory; deletions shift it.
	Index int

	// Begin and End are set for annotations.
	Begin, End int

	// Parent and Child are set for links.
	Parent, Child core.TID

	// MemberType and Members are set for groups.
	MemberType core.TypeID
	Members    *idset.Set
}

func (r *record) snapshot(index int) Entry {
	e := Entry{
		TID:        r.tid,
		Type:       r.typ,
		Kind:       r.kind,
		Index:      index,
		Begin:      r.begin,
		End:        r.end,
		Parent:     r.parent,
		Child:      r.child,
		MemberType: r.memberType,
	}
	if len(r.attrs) > 0 {
		e.Attrs = make(map[core.AttrID]attr.Value, len(r.attrs))
		for id, v := range r.attrs {
			e.Attrs[id] = v.Clone()
		}
	}
	if r.kind == core.KindGroup {
		e.Members = r.members.Clone()
	}
	return e
}

// Attr returns the attribute value, or attr.Null() when unset.
func (e Entry) Attr(id core.AttrID) attr.Value {
	if v, ok := e.Attrs[id]; ok {
		return v
	}
	return attr.Null()
}

// Span returns the annotation offsets.
func (e Entry) Span() (begin, end int) { return e.Begin, e.End }

// AttrIDs returns the ids of all set attributes.
func (e Entry) AttrIDs() []core.AttrID {
	return slices.Sorted(maps.Keys(e.Attrs))
}
