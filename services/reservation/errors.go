package reservation

import (
	"errors"
	"fmt"
)

var (
	// ErrCategoryNotFound is returned for a category missing from the catalog.
	ErrCategoryNotFound = errors.New("reservation category not found")
	// ErrSubmitFailed wraps any failure after validation passed.
	ErrSubmitFailed = errors.New("reservation submit failed")
)

// ValidationError rejects a form before any read or write. Message is localized.
type ValidationError struct {
	Field   string
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Key)
}
