package booking

import "fmt"

// ValidationError carries the per-field messages for a rejected submission.
// It never reaches the network layer: submissions failing validation are
// turned away before any store or notification call.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// StoreError wraps a booking store failure. No record exists when it is
// returned from Create.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("booking store: %v", e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// NotifyError wraps a notification dispatch failure. The booking record is
// already durable when it is returned; it is never rolled back.
type NotifyError struct {
	Err error
}

func (e *NotifyError) Error() string {
	return fmt.Sprintf("booking notification: %v", e.Err)
}

func (e *NotifyError) Unwrap() error { return e.Err }
