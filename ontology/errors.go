package ontology

import "errors"

var (
	// ErrDuplicateType is returned when a TypeID or type name is registered twice.
	ErrDuplicateType = errors.New("ontology: type already registered")

	// ErrUnknownParent is returned when a type names a parent that is not registered.
	ErrUnknownParent = errors.New("ontology: parent type not registered")

	// ErrDuplicateAttribute is returned when a type redeclares an attribute name.
	ErrDuplicateAttribute = errors.New("ontology: attribute already declared")

	// ErrKindMismatch is returned when a subtype declares a kind different from its parent.
	ErrKindMismatch = errors.New("ontology: kind differs from parent kind")
)
