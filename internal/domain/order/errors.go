package order

import (
	"errors"
	"fmt"
)

var (
	ErrAuthRequired     = errors.New("re-authentication required")
	ErrSubmissionFailed = errors.New("order submission failed")
)

const defaultSubmissionMessage = "could not place the order, please try again"

// SubmissionError keeps the order service's own message when it sent one.
type SubmissionError struct {
	Status  int
	Message string
	Err     error
}

func NewSubmissionError(status int, message string, err error) *SubmissionError {
	if message == "" {
		message = defaultSubmissionMessage
	}
	return &SubmissionError{Status: status, Message: message, Err: err}
}

func (e *SubmissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("order submission failed (status %d): %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("order submission failed (status %d): %s", e.Status, e.Message)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

func (e *SubmissionError) Is(target error) bool {
	return target == ErrSubmissionFailed
}

// Result is what the order service answers after accepting an order.
type Result struct {
	OrderID string
	Status  string
}
