package napt

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrConfigurationConflict means a foreign file occupies a path the trigger needs.
	ErrConfigurationConflict = errors.New("configuration conflict")

	// ErrPermissionDenied means the operating system refused a filesystem operation.
	ErrPermissionDenied = errors.New("filesystem access denied")
)

func notDirError(path string) error {
	return fmt.Errorf("%w: %s exists and is not a directory", ErrConfigurationConflict, path)
}

func isDirError(path string) error {
	return fmt.Errorf("%w: %s is a directory", ErrConfigurationConflict, path)
}

// fsError wraps err with op, tagging permission failures.
func fsError(op string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%s: %w (%w)", op, err, ErrPermissionDenied)
	}
	return fmt.Errorf("%s: %w", op, err)
}
