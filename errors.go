package imgsniff

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedFormat is returned when the image format cannot be detected.
	ErrUnsupportedFormat = errors.New("imgsniff: unsupported format")

	// ErrInvalidSource is returned when the provided data source cannot be read.
	ErrInvalidSource = errors.New("imgsniff: invalid source")

	// ErrFetchFailed indicates that fetching a remote resource failed.
	ErrFetchFailed = errors.New("imgsniff: fetch failed")

	// ErrInvalidSize is returned for resize targets that are not strictly positive.
	ErrInvalidSize = errors.New("imgsniff: invalid resize dimensions")

	// ErrConvertNotFound is returned when no ImageMagick convert executable exists.
	ErrConvertNotFound = errors.New("imgsniff: convert executable not found")

	// ErrResizeTimeout is returned when a resize does not finish within its timeout.
	ErrResizeTimeout = errors.New("imgsniff: resize timed out")
)

// ConvertError reports a convert process that exited unsuccessfully.
type ConvertError struct {
	ExitCode int
	Stderr   string
}

func (e *ConvertError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("imgsniff: convert exited with status %d", e.ExitCode)
	}
	return fmt.Sprintf("imgsniff: convert exited with status %d: %s", e.ExitCode, e.Stderr)
}

// sourceError ties a loader failure to one of the sentinel errors while
// keeping the underlying cause reachable through errors.Is and errors.As.
type sourceError struct {
	kind   error
	source string
	err    error
}

func (e *sourceError) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.kind, e.source, e.err)
}

func (e *sourceError) Unwrap() []error {
	return []error{e.kind, e.err}
}
