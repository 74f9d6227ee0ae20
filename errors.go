package glcompose

import (
	"errors"
	"fmt"

	"github.com/gogpu/glcompose/gles"
)

// Errors returned by compositor operations. Environmental failures such
// as a lost context or a missing view come back as (wrapped) errors and
// may be retried on a later frame. Host protocol violations never do;
// those panic, see the package documentation.
var (
	// ErrNilContextManager is returned by New when no context manager
	// is supplied.
	ErrNilContextManager = errors.New("glcompose: nil context manager")

	// ErrNoView is returned by Present when no view is attached.
	ErrNoView = errors.New("glcompose: no view attached")

	// ErrInvalidDimensions is returned when a requested backing store
	// size is not strictly positive.
	ErrInvalidDimensions = errors.New("glcompose: invalid dimensions")

	// ErrNoLoaderAvailable is returned by Initialize when no function
	// table loader is registered or available.
	ErrNoLoaderAvailable = errors.New("glcompose: no table loader available")

	// ErrIncompleteFramebuffer is returned when a freshly built backing
	// store does not reach framebuffer completeness.
	ErrIncompleteFramebuffer = errors.New("glcompose: incomplete framebuffer")
)

// LoaderNotFoundError indicates a named table loader is not registered.
type LoaderNotFoundError struct {
	Name string
}

func (e *LoaderNotFoundError) Error() string {
	return "glcompose: table loader not found: " + e.Name
}

// LoaderUnavailableError indicates a table loader is registered but not
// available on this system.
type LoaderUnavailableError struct {
	Name string
}

func (e *LoaderUnavailableError) Error() string {
	return "glcompose: table loader unavailable: " + e.Name
}

// GLError carries the raw error flag drained from the function table
// after a failed GL sequence.
type GLError struct {
	Code gles.Enum
}

func (e *GLError) Error() string {
	return fmt.Sprintf("glcompose: gl error 0x%04x", uint32(e.Code))
}

// glError drains the table's oldest error flag, nil when clear.
func glError(api gles.API) error {
	if code := api.GetError(); code != gles.NO_ERROR {
		return &GLError{Code: code}
	}
	return nil
}
