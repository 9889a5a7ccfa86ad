// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookshelf/internal/platform/apperr"
	"github.com/taibuivan/bookshelf/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		hasViolation bool
	}{
		{"valid_string", "Bookshelf", false},
		{"empty_string", "", true},
		{"whitespace_only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.value, "value is required")

			if tt.hasViolation {
				assert.True(t, v.HasViolations())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, "value is required", ae.Violations[0])
			} else {
				assert.False(t, v.HasViolations())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_MaxLen checks length limits against Unicode character counts.
*/
func TestValidator_MaxLen(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		max          int
		hasViolation bool
	}{
		{"under_limit", strings.Repeat("a", 49), 50, false},
		{"at_limit", strings.Repeat("a", 50), 50, false},
		{"over_limit", strings.Repeat("a", 51), 50, true},
		{"multibyte_at_limit", strings.Repeat("あ", 50), 50, false},
		{"multibyte_over_limit", strings.Repeat("あ", 51), 50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.MaxLen(tt.value, tt.max, "too long")

			assert.Equal(t, tt.hasViolation, v.HasViolations())
		})
	}
}

/*
TestValidator_Min checks the lower-bound rule used for identifiers.
*/
func TestValidator_Min(t *testing.T) {
	tests := []struct {
		name         string
		value        int
		hasViolation bool
	}{
		{"above_min", 2, false},
		{"at_min", 1, false},
		{"zero", 0, true},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Min(tt.value, 1, "must be 1 or greater")

			assert.Equal(t, tt.hasViolation, v.HasViolations())
		})
	}
}

/*
TestValidator_Matches checks pattern matching for wire-format dates.
*/
func TestValidator_Matches(t *testing.T) {
	datePattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	tests := []struct {
		name         string
		value        string
		hasViolation bool
	}{
		{"valid_date", "2002-09-12", false},
		{"impossible_but_shaped", "2002-13-40", false},
		{"wrong_separator", "2002/09/12", true},
		{"missing_padding", "2002-9-12", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Matches(tt.value, datePattern, "bad format")

			assert.Equal(t, tt.hasViolation, v.HasViolations())
		})
	}
}

/*
TestValidator_Order verifies that violations accumulate in evaluation order
and surface as one VALIDATION_ERROR.
*/
func TestValidator_Order(t *testing.T) {
	v := &validate.Validator{}
	v.Required("", "first")
	v.Min(0, 1, "second")
	v.Check(true, "third")

	require.True(t, v.HasViolations())
	assert.Equal(t, []string{"first", "second", "third"}, v.Violations())

	ae := apperr.As(v.Err())
	require.NotNil(t, ae)
	assert.Equal(t, []string{"first", "second", "third"}, ae.Violations)
	assert.Equal(t, 400, ae.HTTPStatus)
}

/*
TestViolation checks the single-message shortcut used by business rules.
*/
func TestViolation(t *testing.T) {
	err := validate.Violation("author id does not exist")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Equal(t, []string{"author id does not exist"}, ae.Violations)
}
