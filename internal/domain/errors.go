package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound marks a single queried entity that does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports malformed or missing caller input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ProductNotFoundError reports referenced products missing from the
// catalog. An order creation referencing any missing product fails as a
// whole with this error, nothing is persisted.
type ProductNotFoundError struct {
	IDs []uuid.UUID
}

func (e ProductNotFoundError) Error() string {
	ids := make([]string, 0, len(e.IDs))
	for _, id := range e.IDs {
		ids = append(ids, id.String())
	}
	return fmt.Sprintf("products not found: %s", strings.Join(ids, ", "))
}

// StorageError wraps a failed or unreachable store operation.
type StorageError struct {
	Op  string
	Err error
}

func (e StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e StorageError) Unwrap() error { return e.Err }
