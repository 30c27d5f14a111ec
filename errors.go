package tabulatedfunction

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned by the constructors and options for
	// malformed input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange is matched by every *IndexError.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidPointPlacement is returned when a new x would break the
	// strict ascending order of the table.
	ErrInvalidPointPlacement = errors.New("invalid point placement")

	// ErrInvalidState is returned when deleting would leave fewer than two
	// points.
	ErrInvalidState = errors.New("invalid state")
)

// IndexError reports an index outside [0, Count).
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Count)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
