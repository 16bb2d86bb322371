package entrystore

import "errors"

var (
	// ErrNotFound is returned when a TID is not live in the store.
	//
	// This is a store-layer sentinel; the annostore package translates it into
	// its public error contract.
	ErrNotFound = errors.New("entry not found")

	// ErrInvalidSpan is returned for a span with begin > end or a negative offset.
	ErrInvalidSpan = errors.New("invalid span")

	// ErrKindMismatch is returned when an operation does not fit the entry kind,
	// or when a type already holds entries of another kind.
	ErrKindMismatch = errors.New("entry kind mismatch")

	// ErrTIDExhausted is returned when the identifier space is used up.
	ErrTIDExhausted = errors.New("tid space exhausted")
)
