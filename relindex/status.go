package relindex

import (
	"errors"
	"fmt"
)

// ErrIndexNotBuilt is returned when a sub-index is queried or updated while it
// is not built.
var ErrIndexNotBuilt = errors.New("relindex: index not built")

// Status is the state of one sub-index.
type Status uint8

const (
	// Unbuilt means the sub-index was never built.
	Unbuilt Status = iota
	// Built means the sub-index is consistent and may be queried.
	Built
	// Disabled means the sub-index was built and then invalidated; it must be
	// rebuilt before further use.
	Disabled
)

// String returns the string representation of the Status.
func (s Status) String() string {
	switch s {
	case Unbuilt:
		return "unbuilt"
	case Built:
		return "built"
	case Disabled:
		return "disabled"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

func notBuilt(name string, s Status) error {
	return fmt.Errorf("%w: %s index is %s", ErrIndexNotBuilt, name, s)
}
