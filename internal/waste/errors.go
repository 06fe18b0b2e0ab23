package waste

import (
	"fmt"
)

// ValidationError reports the first unmet input constraint. Field names the
// offending draft field so the presentation layer can highlight it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// InvalidTransitionError rejects a status change the state machine forbids.
// The requested state is never silently coerced to a legal one.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition %s -> %s", e.From, e.To)
}

// ConflictError signals another mutation is in flight on the same report.
// Callers should retry the whole operation rather than merge partial state.
type ConflictError struct {
	ID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("concurrent mutation on report %s", e.ID)
}
