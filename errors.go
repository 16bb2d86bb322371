package annostore

import (
	"errors"
	"fmt"

	"github.com/hupe1980/annostore/core"
	"github.com/hupe1980/annostore/internal/entrystore"
	"github.com/hupe1980/annostore/relindex"
)

var (
	// ErrNotFound is returned when an operation references an unknown TID.
	ErrNotFound = errors.New("annostore: entry not found")

	// ErrIndexUnavailable is returned when a link or group index is queried or
	// updated while it is not built. Rebuild the index and retry.
	ErrIndexUnavailable = errors.New("annostore: relation index unavailable")

	// ErrInvalidArgument is returned for malformed input: a span with
	// begin > end, an undeclared attribute, a value of the wrong field type, or
	// an operation applied to the wrong kind of entry.
	ErrInvalidArgument = errors.New("annostore: invalid argument")

	// ErrExhausted is returned when the store ran out of identifiers.
	ErrExhausted = errors.New("annostore: identifier space exhausted")
)

// SpanError indicates a malformed annotation span.
//
// It matches ErrInvalidArgument via errors.Is.
type SpanError struct {
	Begin int
	End   int
}

func (e *SpanError) Error() string {
	return fmt.Sprintf("annostore: invalid span [%d, %d]", e.Begin, e.End)
}

func (e *SpanError) Unwrap() error { return ErrInvalidArgument }

// AttributeError indicates an attribute name that the schema does not declare
// for the entry's type.
//
// It matches ErrInvalidArgument via errors.Is.
type AttributeError struct {
	Type core.TypeID
	Name string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("annostore: type %d has no attribute %q", e.Type, e.Name)
}

func (e *AttributeError) Unwrap() error { return ErrInvalidArgument }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, entrystore.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, relindex.ErrIndexNotBuilt):
		return fmt.Errorf("%w: %w", ErrIndexUnavailable, err)
	case errors.Is(err, entrystore.ErrKindMismatch), errors.Is(err, entrystore.ErrInvalidSpan):
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	case errors.Is(err, entrystore.ErrTIDExhausted):
		return fmt.Errorf("%w: %w", ErrExhausted, err)
	}

	return err
}
