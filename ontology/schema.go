package ontology

import (
	"github.com/hupe1980/annostore/attr"
	"github.com/hupe1980/annostore/core"
)

// Hierarchy answers subtype questions over declared entry types.
type Hierarchy interface {
	// IsSubtype reports whether t is ancestor or a declared descendant of it.
	// Every type is a subtype of itself, declared or not.
	IsSubtype(t, ancestor core.TypeID) bool
}

// Schema is the attribute and type schema consumed by the store.
//
// Implementations must be safe for concurrent reads; the store never mutates
// a schema.
type Schema interface {
	Hierarchy

	// Kind returns the structural kind declared for t. ok is false for
	// undeclared types.
	Kind(t core.TypeID) (kind core.Kind, ok bool)

	// AttrID resolves an attribute name declared on t or one of its ancestors.
	AttrID(t core.TypeID, name string) (id core.AttrID, ok bool)

	// AttrType returns the declared field type of an attribute of t.
	// Unknown attributes report attr.FieldTypeAny.
	AttrType(t core.TypeID, id core.AttrID) attr.FieldType
}
