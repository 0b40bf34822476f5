// Package store defines the byte-store collaborator: something that can fetch
// the full contents of a named resource as text, or persist text to a named
// resource, each possibly failing.
package store

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotExist is returned by ReadAll when the named resource does not exist.
var ErrNotExist = errors.New("store: resource does not exist")

// Store reads and writes whole named text resources.
//
// Each call is a single atomic request/response: no partial reads, retries,
// or cancellation beyond what the context provides.
//
// Different implementations are possible:
//   - in-memory (for tests and scratch data)
//   - a directory of files
//   - a sqlite database
type Store interface {
	// ReadAll returns the full contents of the named resource.
	ReadAll(ctx context.Context, name string) (string, error)

	// WriteAll replaces the named resource with text, creating it if needed.
	WriteAll(ctx context.Context, name string, text string) error
}

// Operation names carried by AccessError.
const (
	OpRead  = "read"
	OpWrite = "write"
)

// AccessError reports a failed store operation: which operation, on which
// resource, and the underlying cause.
type AccessError struct {
	Op   string
	Name string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("store: %s %q: %v", e.Op, e.Name, e.Err)
}

// Unwrap returns the underlying cause.
func (e *AccessError) Unwrap() error {
	return e.Err
}
