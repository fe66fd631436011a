package stock

import "fmt"

// ValidationError reports a rejected submission. The store is untouched when
// one is returned: no mutation, no persistence.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
