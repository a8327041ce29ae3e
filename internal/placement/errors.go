package placement

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnrecognizedFormat marks filenames that do not match the screenshot
	// naming convention. The file is left in place.
	ErrUnrecognizedFormat = errors.New("unrecognized filename format")

	// ErrDuplicate marks a destination that already holds byte-identical
	// content. The source is redundant.
	ErrDuplicate = errors.New("duplicate content")

	// ErrSourceUnavailable marks a candidate that vanished or became
	// unreadable between detection and the move. Recoverable by skipping.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrPermission marks a destination that cannot be created or written.
	// Fatal for the file, not for the run.
	ErrPermission = errors.New("permission denied")

	// ErrIO marks a filesystem failure that is neither the source's fault nor
	// a permission problem, such as a full disk or a destination path blocked
	// by a regular file. Fatal for the file, not for the run.
	ErrIO = errors.New("io failure")

	// ErrInvalidRoot marks a root path that is missing, not a directory, or
	// not writable. Fatal for the whole process.
	ErrInvalidRoot = errors.New("invalid root directory")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "placement failure"
	}
	return strings.Join(parts, ": ")
}
