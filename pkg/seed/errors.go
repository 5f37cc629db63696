package seed

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidQuantity is returned when the record count is not a positive integer.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrNoFields is returned when the field list contains no usable names.
	ErrNoFields = errors.New("at least one field name is required")

	// ErrMalformedResponse is returned when the cleaned model output is not valid JSON.
	ErrMalformedResponse = errors.New("model response is not valid JSON")

	// ErrUnexpectedShape is returned when the model output is valid JSON but not an array.
	ErrUnexpectedShape = errors.New("model response is not a JSON array")
)

// QuantityError reports the quantity input that could not be used.
type QuantityError struct {
	Input string
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("%v: got %q", ErrInvalidQuantity, e.Input)
}

func (e *QuantityError) Unwrap() error {
	return ErrInvalidQuantity
}

// MalformedResponseError carries the cleaned payload so it can be shown to
// the operator.
type MalformedResponseError struct {
	Payload string
	Cause   error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%v: %v", ErrMalformedResponse, e.Cause)
}

func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}

// UnexpectedShapeError names the JSON kind the model returned instead of an array.
type UnexpectedShapeError struct {
	Kind string
}

func (e *UnexpectedShapeError) Error() string {
	return fmt.Sprintf("%v: got %s", ErrUnexpectedShape, e.Kind)
}

func (e *UnexpectedShapeError) Unwrap() error {
	return ErrUnexpectedShape
}
