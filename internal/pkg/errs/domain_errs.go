package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the domain-level error taxonomy.
var (
	ErrAccessForbidden         = errors.New("access forbidden")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrOrderStateConflict      = errors.New("order state does not allow operation")
	ErrConflict                = errors.New("object already exists")
)

// AccessForbiddenError indicates the caller lacks ownership or role for an
// operation on an entity that does exist. It is deliberately distinct from
// ObjectNotFoundError so callers can tell "doesn't exist" from "exists but
// not yours".
type AccessForbiddenError struct {
	Operation string
	Cause     error
}

// NewAccessForbiddenError creates an AccessForbiddenError without a cause.
func NewAccessForbiddenError(operation string) *AccessForbiddenError {
	return &AccessForbiddenError{Operation: operation}
}

// NewAccessForbiddenErrorWithCause creates an AccessForbiddenError wrapping a cause.
func NewAccessForbiddenErrorWithCause(operation string, cause error) *AccessForbiddenError {
	return &AccessForbiddenError{Operation: operation, Cause: cause}
}

func (e *AccessForbiddenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrAccessForbidden, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrAccessForbidden, e.Operation)
}

func (e *AccessForbiddenError) Unwrap() error {
	return ErrAccessForbidden
}

// InvalidOrderTransitionError indicates a requested status is not reachable
// from the current status. Both states are named in the message.
type InvalidOrderTransitionError struct {
	From string
	To   string
}

// NewInvalidOrderTransitionError creates an InvalidOrderTransitionError naming
// the current and the requested status.
func NewInvalidOrderTransitionError(from, to string) *InvalidOrderTransitionError {
	return &InvalidOrderTransitionError{From: from, To: to}
}

func (e *InvalidOrderTransitionError) Error() string {
	return fmt.Sprintf("%s from %s to %s", ErrInvalidStatusTransition, e.From, e.To)
}

func (e *InvalidOrderTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}

// OrderStateError indicates a content edit or delete was attempted while the
// order is in a status that does not allow it. The current status is named.
type OrderStateError struct {
	Operation string
	Status    string
}

// NewOrderStateError creates an OrderStateError naming the rejected operation
// and the order's current status.
func NewOrderStateError(operation, status string) *OrderStateError {
	return &OrderStateError{Operation: operation, Status: status}
}

func (e *OrderStateError) Error() string {
	return fmt.Sprintf("cannot %s order in %s status", e.Operation, e.Status)
}

func (e *OrderStateError) Unwrap() error {
	return ErrOrderStateConflict
}

// ConflictError indicates a uniqueness violation, such as creating a user with
// an email that is already registered.
type ConflictError struct {
	ParamName string
	Value     any
	Cause     error
}

// NewConflictError creates a ConflictError without a cause.
func NewConflictError(paramName string, value any) *ConflictError {
	return &ConflictError{ParamName: paramName, Value: value}
}

// NewConflictErrorWithCause creates a ConflictError wrapping a cause.
func NewConflictErrorWithCause(paramName string, value any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %s (cause: %s)", ErrConflict, e.ParamName, sanitize(e.Value), e.Cause)
	}
	return fmt.Sprintf("%s: %s is %s", ErrConflict, e.ParamName, sanitize(e.Value))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
