package author_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookshelf/internal/core/author"
	"github.com/taibuivan/bookshelf/internal/platform/apperr"
)

func TestAddAuthorDto_Validate(t *testing.T) {
	tests := []struct {
		name       string
		dto        author.AddAuthorDto
		violations []string
	}{
		{
			name: "valid",
			dto:  author.AddAuthorDto{Name: "Haruki Murakami", Birthday: "1949-01-12"},
		},
		{
			name: "name_at_limit",
			dto:  author.AddAuthorDto{Name: strings.Repeat("a", 50), Birthday: "1949-01-12"},
		},
		{
			name:       "name_missing",
			dto:        author.AddAuthorDto{Name: "", Birthday: "1949-01-12"},
			violations: []string{author.MsgNameRequired},
		},
		{
			name:       "name_over_limit",
			dto:        author.AddAuthorDto{Name: strings.Repeat("a", 51), Birthday: "1949-01-12"},
			violations: []string{author.MsgNameTooLong},
		},
		{
			name:       "birthday_wrong_shape",
			dto:        author.AddAuthorDto{Name: "Haruki Murakami", Birthday: "1949/01/12"},
			violations: []string{author.MsgBirthdayFormat},
		},
		{
			name: "impossible_date_passes_declarative_tier",
			dto:  author.AddAuthorDto{Name: "Haruki Murakami", Birthday: "2002-13-40"},
		},
		{
			name:       "all_fields_invalid_in_order",
			dto:        author.AddAuthorDto{Name: "", Birthday: "yesterday"},
			violations: []string{author.MsgNameRequired, author.MsgBirthdayFormat},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dto.Validate()

			if tt.violations == nil {
				assert.NoError(t, err)
				return
			}

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, tt.violations, ae.Violations)
		})
	}
}

func TestUpdateAuthorDto_Validate(t *testing.T) {
	tests := []struct {
		name       string
		dto        author.UpdateAuthorDto
		violations []string
	}{
		{
			name: "valid",
			dto:  author.UpdateAuthorDto{ID: 1, Name: "Haruki Murakami", Birthday: "1949-01-12"},
		},
		{
			name:       "id_zero",
			dto:        author.UpdateAuthorDto{ID: 0, Name: "Haruki Murakami", Birthday: "1949-01-12"},
			violations: []string{author.MsgAuthorIDMin},
		},
		{
			name:       "id_negative",
			dto:        author.UpdateAuthorDto{ID: -3, Name: "Haruki Murakami", Birthday: "1949-01-12"},
			violations: []string{author.MsgAuthorIDMin},
		},
		{
			name:       "id_rule_evaluated_first",
			dto:        author.UpdateAuthorDto{ID: 0, Name: "", Birthday: "bad"},
			violations: []string{author.MsgAuthorIDMin, author.MsgNameRequired, author.MsgBirthdayFormat},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dto.Validate()

			if tt.violations == nil {
				assert.NoError(t, err)
				return
			}

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, tt.violations, ae.Violations)
		})
	}
}

func TestAddAuthorDto_String(t *testing.T) {
	dto := author.AddAuthorDto{Name: "Haruki Murakami", Birthday: "1949-01-12"}
	assert.Equal(t, "AddAuthorDto(name=Haruki Murakami, birthday=1949-01-12)", dto.String())
}

func TestUpdateAuthorDto_String(t *testing.T) {
	dto := author.UpdateAuthorDto{ID: 7, Name: "Banana Yoshimoto", Birthday: "1964-07-24"}
	assert.Equal(t, "UpdateAuthorDto(id=7, name=Banana Yoshimoto, birthday=1964-07-24)", dto.String())
}

func TestNewAuthorListDto_Empty(t *testing.T) {
	dto := author.NewAuthorListDto(nil)

	require.NotNil(t, dto.AuthorList)
	assert.Len(t, dto.AuthorList, 0)
}
