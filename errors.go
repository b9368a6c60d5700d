// errors.go typed errors shared by the repository and HTTP layers
package main

import "fmt"

// ValidationError reports malformed input, keyed by field name. It is
// always raised before any store mutation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// NotFoundError reports an update or delete whose target row does not exist.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Resource, e.ID)
}

// ConflictError reports a violated uniqueness invariant, such as a second
// personal-info row. With the upsert done in a single conflict-handling
// statement this should not surface in practice.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// StoreError wraps any underlying storage failure not otherwise categorized.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return "storage error: " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErr(err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Err: err}
}
