package core

import "fmt"

// TID identifies one entry within a single store instance.
// TIDs are allocated monotonically and never reused, even after deletion.
type TID uint64

// NilTID is never allocated. Neighbor queries return it at a boundary.
const NilTID TID = 0

// MaxTID is the largest TID an allocator may hand out.
const MaxTID = ^TID(0)

// IsNil reports whether t is the NilTID sentinel.
func (t TID) IsNil() bool { return t == NilTID }

// TypeID identifies a declared entry type. It is scoped to the schema.
type TypeID uint32

// AttrID identifies an attribute of a declared entry type.
type AttrID uint32

// Kind is the structural category of an entry.
type Kind uint8

const (
	// KindUnknown is the zero Kind. Schemas use it for types that do not
	// constrain which Add operation may create them.
	KindUnknown Kind = iota
	// KindAnnotation is a span over the text.
	KindAnnotation
	// KindLink is a directed edge between two entries.
	KindLink
	// KindGroup is a homogeneous set of member entries.
	KindGroup
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "unknown"
	case KindAnnotation:
		return "annotation"
	case KindLink:
		return "link"
	case KindGroup:
		return "group"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}
