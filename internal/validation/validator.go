// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/streakstats/internal/streak"
)

// MaxUsernameLength is the longest login GitHub accepts.
const MaxUsernameLength = 39

// ParamTag is the struct tag naming the request parameter a field was read
// from. Messages use it in place of the Go field name when present.
const ParamTag = "param"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// FieldError is one failed constraint.
type FieldError struct {
	// Field is the parameter name, or the Go field name without a param tag.
	Field string
	// Tag is the failed validate tag, such as "gte" or "ghuser".
	Tag string
	// Param is the tag argument, "2005" for gte=2005.
	Param string
	// Value is the rejected value.
	Value any
}

// Error returns the user-facing message.
func (e FieldError) Error() string {
	switch e.Tag {
	case "required":
		return fmt.Sprintf("%s is required", e.Field)
	case "ghuser":
		return fmt.Sprintf("%s must be a GitHub username of up to %d letters, digits or hyphens", e.Field, MaxUsernameLength)
	case "weekdays":
		return fmt.Sprintf("%s must be a comma-separated list of days of the week", e.Field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.Field, strings.Join(strings.Fields(e.Param), ", "))
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", e.Field, e.Param)
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", e.Field, e.Param)
	default:
		return fmt.Sprintf("%s is invalid", e.Field)
	}
}

// RequestValidationError collects every failed constraint of one request.
type RequestValidationError struct {
	Fields []FieldError
}

// Error joins the field messages with "; ".
func (ve *RequestValidationError) Error() string {
	if len(ve.Fields) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(ve.Fields))
	for i, fe := range ve.Fields {
		messages[i] = fe.Error()
	}
	return strings.Join(messages, "; ")
}

// ToStreakError converts the failures into an InvalidInput error, which the
// HTTP boundary answers with 400.
func (ve *RequestValidationError) ToStreakError() error {
	return &streak.Error{
		Kind:    streak.KindInvalidInput,
		Message: ve.Error(),
	}
}

// GetValidator returns the shared validator with the ghuser and weekdays
// tags registered. It is safe for concurrent use.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(paramName)

		// Registration only fails on an empty tag or nil func.
		_ = validate.RegisterValidation("ghuser", validateGitHubUser)
		_ = validate.RegisterValidation("weekdays", validateWeekdays)
	})
	return validate
}

func paramName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get(ParamTag), ",")
	if name == "-" {
		return ""
	}
	return name
}

// validateGitHubUser accepts logins of 1 to 39 ASCII letters, digits and
// hyphens. Empty values pass so the tag composes with required/omitempty.
func validateGitHubUser(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	return len(s) <= MaxUsernameLength && usernamePattern.MatchString(s)
}

// validateWeekdays accepts a comma-separated list of weekday names.
func validateWeekdays(fl validator.FieldLevel) bool {
	_, err := streak.ParseWeekdayList(fl.Field().String())
	return err == nil
}

// ValidateStruct validates s and returns nil or the collected failures.
func ValidateStruct(s any) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &RequestValidationError{Fields: []FieldError{{Field: "request", Tag: "struct", Value: err.Error()}}}
	}

	out := &RequestValidationError{Fields: make([]FieldError, len(fieldErrs))}
	for i, fe := range fieldErrs {
		out.Fields[i] = FieldError{
			Field: fe.Field(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
			Value: fe.Value(),
		}
	}
	return out
}
