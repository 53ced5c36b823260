package build

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownTask is returned when a task name is not registered.
	ErrUnknownTask = errors.New("unknown task")

	// ErrInvalidDependency is returned for malformed dependency coordinates.
	ErrInvalidDependency = errors.New("invalid dependency coordinate")

	// ErrMissingDependency is returned when a coordinate cannot be resolved to a file.
	ErrMissingDependency = errors.New("missing dependency")
)

func unknownTaskError(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownTask, name)
}
