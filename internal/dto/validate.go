package dto

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Share the tag gin binds with so CLI input is held to the same rules as HTTP input.
		validate.SetTagName("binding")
	})
	return validate
}

// Validate checks a request struct outside of gin binding and converts failures
// into an *apperrors.ValidationError.
func Validate(v any) error {
	err := structValidator().Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate request: %w", err)
	}
	verr := apperrors.NewValidationError()
	for _, fe := range fieldErrs {
		verr.Add(-1, lowerFirst(fe.Field()), describeTag(fe))
	}
	return verr
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of " + fe.Param()
	case "datetime":
		return "must be a date formatted " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	}
	return "failed " + fe.Tag() + " check"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// ParseDate parses a DateLayout date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, apperrors.NewValidationFailedError(fmt.Sprintf("invalid date %q, expected %s", s, DateLayout))
	}
	return t, nil
}

// ParsePeriod parses optional from/to bounds. The to bound is extended to the end of its day.
func ParsePeriod(from, to string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error
	if from != "" {
		if start, err = ParseDate(from); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if to != "" {
		if end, err = ParseDate(to); err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = end.Add(24*time.Hour - time.Nanosecond)
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return time.Time{}, time.Time{}, apperrors.NewValidationFailedError("to must not be before from")
	}
	return start, end, nil
}
