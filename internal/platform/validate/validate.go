// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects rule
// violations in evaluation order before returning a single [apperr.AppError].
//
// # Architecture
//
// Request DTOs use it for declarative field constraints; services use it for
// business rules that require stored state. Violation messages are bespoke
// per field, so every rule takes its message explicitly. There is no
// reflection and no message templating.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/bookshelf/internal/platform/apperr"
)

// ErrInvalidJSON is returned when a request body cannot be decoded.
var ErrInvalidJSON = apperr.ValidationError("invalid JSON payload")

// Validator collects rule violations via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	violations []string
}

// Required fails with message if the trimmed value is empty.
func (v *Validator) Required(value, message string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(message)
	}
	return v
}

// MaxLen fails with message if the Unicode character count exceeds max.
func (v *Validator) MaxLen(value string, max int, message string) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(message)
	}
	return v
}

// Min fails with message if the value is below min.
func (v *Validator) Min(value, min int, message string) *Validator {
	if value < min {
		v.add(message)
	}
	return v
}

// Matches fails with message if the value does not match pattern.
func (v *Validator) Matches(value string, pattern *regexp.Regexp, message string) *Validator {
	if !pattern.MatchString(value) {
		v.add(message)
	}
	return v
}

// Check adds a violation with the given message if the condition is true.
//
// # Example
//
//	v.Check(price < 0, "price must be 0 or greater")
func (v *Validator) Check(failed bool, message string) *Validator {
	if failed {
		v.add(message)
	}
	return v
}

// Err returns an [apperr.AppError] (VALIDATION_ERROR) carrying the ordered
// violations if any rules failed, or nil if all rules passed.
//
// Call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.violations) == 0 {
		return nil
	}
	return apperr.ValidationError("validation failed", v.violations...)
}

// HasViolations reports whether any validation rule has failed so far.
func (v *Validator) HasViolations() bool {
	return len(v.violations) > 0
}

// Violations returns the collected messages in evaluation order.
func (v *Validator) Violations() []string {
	return v.violations
}

// add appends a violation message to the internal slice.
func (v *Validator) add(message string) {
	v.violations = append(v.violations, message)
}

// Violation is a shortcut to create a single-message validation error.
func Violation(message string) error {
	return apperr.ValidationError("validation failed", message)
}
