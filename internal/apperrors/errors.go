package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the acting user may not perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrPartialBatch indicates that only part of a batched write reached the record store.
var ErrPartialBatch = errors.New("partial batch failure")

// AppError carries a status-like code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error { return e.Err }

// NewNotFoundError returns a 404 AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return NewAppError(404, message, ErrNotFound)
}

// NewConflictError returns a 409 AppError wrapping ErrDuplicate.
func NewConflictError(message string) *AppError {
	return NewAppError(409, message, ErrDuplicate)
}

// NewValidationFailedError returns a 400 AppError wrapping ErrValidation.
func NewValidationFailedError(message string) *AppError {
	return NewAppError(400, message, ErrValidation)
}

// FieldIssue describes a single failed rule on one item of a batch.
// Index is -1 when the issue is not tied to a batch item.
type FieldIssue struct {
	Index   int    `json:"index"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a request is rejected as a whole.
type ValidationError struct {
	Issues []FieldIssue
}

// NewValidationError builds a ValidationError from one or more issues.
func NewValidationError(issues ...FieldIssue) *ValidationError {
	return &ValidationError{Issues: issues}
}

// Add appends an issue.
func (e *ValidationError) Add(index int, field, message string) {
	e.Issues = append(e.Issues, FieldIssue{Index: index, Field: field, Message: message})
}

// HasIssues reports whether anything was recorded.
func (e *ValidationError) HasIssues() bool {
	return e != nil && len(e.Issues) > 0
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Index >= 0 {
			parts = append(parts, fmt.Sprintf("item %d: %s %s", issue.Index, issue.Field, issue.Message))
		} else {
			parts = append(parts, fmt.Sprintf("%s %s", issue.Field, issue.Message))
		}
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// PartialBatchFailure reports which records of a batch were written and which were not.
// The record store gives no transactional guarantee across this boundary, so callers
// must reconcile by re-reading.
type PartialBatchFailure struct {
	Created []string
	Failed  []string
	Cause   error
}

func (e *PartialBatchFailure) Error() string {
	return fmt.Sprintf("%s: %d created, %d failed: %v", ErrPartialBatch.Error(), len(e.Created), len(e.Failed), e.Cause)
}

func (e *PartialBatchFailure) Unwrap() []error { return []error{ErrPartialBatch, e.Cause} }
