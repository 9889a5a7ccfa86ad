package book_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookshelf/internal/core/book"
	"github.com/taibuivan/bookshelf/internal/platform/apperr"
)

func TestAddBookDto_Validate(t *testing.T) {
	tests := []struct {
		name       string
		dto        book.AddBookDto
		violations []string
	}{
		{
			name: "valid",
			dto:  book.AddBookDto{Title: "Kafka on the Shore", Price: 1800, AuthorID: 1},
		},
		{
			name: "title_at_limit_and_zero_price",
			dto:  book.AddBookDto{Title: strings.Repeat("a", 100), Price: 0, AuthorID: 1},
		},
		{
			name:       "title_missing",
			dto:        book.AddBookDto{Title: "", Price: 1800, AuthorID: 1},
			violations: []string{book.MsgTitleRequired},
		},
		{
			name:       "title_over_limit",
			dto:        book.AddBookDto{Title: strings.Repeat("a", 101), Price: 1800, AuthorID: 1},
			violations: []string{book.MsgTitleTooLong},
		},
		{
			name:       "negative_price",
			dto:        book.AddBookDto{Title: "Kafka on the Shore", Price: -1, AuthorID: 1},
			violations: []string{book.MsgPriceMin},
		},
		{
			name:       "author_id_zero",
			dto:        book.AddBookDto{Title: "Kafka on the Shore", Price: 1800, AuthorID: 0},
			violations: []string{book.MsgAuthorIDMin},
		},
		{
			name:       "all_fields_invalid_in_order",
			dto:        book.AddBookDto{Title: "", Price: -5, AuthorID: -1},
			violations: []string{book.MsgTitleRequired, book.MsgPriceMin, book.MsgAuthorIDMin},
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

func TestUpdateBookDto_Validate(t *testing.T) {
	tests := []struct {
		name       string
		dto        book.UpdateBookDto
		violations []string
	}{
		{
			name: "valid",
			dto:  book.UpdateBookDto{ID: 1, Title: "Kafka on the Shore", Price: 1800, AuthorID: 1},
		},
		{
			name:       "book_id_zero",
			dto:        book.UpdateBookDto{ID: 0, Title: "Kafka on the Shore", Price: 1800, AuthorID: 1},
			violations: []string{book.MsgBookIDMin},
		},
		{
			name:       "book_id_rule_evaluated_first",
			dto:        book.UpdateBookDto{ID: 0, Title: "", Price: -1, AuthorID: 0},
			violations: []string{book.MsgBookIDMin, book.MsgTitleRequired, book.MsgPriceMin, book.MsgAuthorIDMin},
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

func TestAddBookDto_String(t *testing.T) {
	dto := book.AddBookDto{Title: "T", Price: 0, AuthorID: 1, PublicationStatus: false}
	assert.Equal(t, "AddBookDto(title=T, price=0, authorId=1, publicationStatus=false)", dto.String())
}

func TestUpdateBookDto_String(t *testing.T) {
	dto := book.UpdateBookDto{ID: 3, Title: "Norwegian Wood", Price: 1500, AuthorID: 2, PublicationStatus: true}
	assert.Equal(t, "UpdateBookDto(id=3, title=Norwegian Wood, price=1500, authorId=2, publicationStatus=true)", dto.String())
}

func TestNewBookListDto_Empty(t *testing.T) {
	dto := book.NewBookListDto(nil)

	require.NotNil(t, dto.BookList)
	assert.Len(t, dto.BookList, 0)
}
