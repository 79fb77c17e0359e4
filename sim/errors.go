package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: the process ID is absent from the queue the operation requires.
	ErrNotFound = errors.New("process not found")
	// ErrInvalidArgument: an argument would be meaningless to the core, such as a
	// non-positive ID or a zero page size used as a divisor.
	ErrInvalidArgument = errors.New("invalid argument")
)

func notFound(id int, q QueueID) error {
	return fmt.Errorf("process %d in %s queue: %w", id, q, ErrNotFound)
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidArgument)
}

func checkID(id int) error {
	if id <= 0 {
		return invalidf("process ID must be > 0, got %d", id)
	}
	return nil
}
