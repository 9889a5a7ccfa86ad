package book

import (
	"fmt"

	"github.com/taibuivan/bookshelf/internal/platform/validate"
)

// Validation messages, surfaced verbatim in 400 response bodies.
const (
	MsgTitleRequired   = "title is required"
	MsgTitleTooLong    = "title must be 100 characters or less"
	MsgPriceMin        = "price must be 0 or greater"
	MsgAuthorIDMin     = "author id must be 1 or greater"
	MsgBookIDMin       = "book id must be 1 or greater"
	MsgAuthorNotFound  = "author id does not exist"
	MsgBookNotFound    = "book id does not exist"
	MsgPublishedRevert = "cannot revert published to unpublished"
)

// AddBookDto is the request payload for creating a book.
type AddBookDto struct {
	Title             string `json:"title"`
	Price             int64  `json:"price"`
	AuthorID          int    `json:"authorId"`
	PublicationStatus bool   `json:"publicationStatus"`
}

// Validate applies the declarative field constraints in evaluation order.
func (d AddBookDto) Validate() error {
	v := &validate.Validator{}
	v.Required(d.Title, MsgTitleRequired)
	v.MaxLen(d.Title, TitleMaxLen, MsgTitleTooLong)
	v.Check(d.Price < 0, MsgPriceMin)
	v.Min(d.AuthorID, 1, MsgAuthorIDMin)
	return v.Err()
}

// String renders the create-shaped echo returned on a successful add.
func (d AddBookDto) String() string {
	return fmt.Sprintf("AddBookDto(title=%s, price=%d, authorId=%d, publicationStatus=%t)",
		d.Title, d.Price, d.AuthorID, d.PublicationStatus)
}

// UpdateBookDto is the request payload for updating a book.
type UpdateBookDto struct {
	ID                int    `json:"bookId"`
	Title             string `json:"title"`
	Price             int64  `json:"price"`
	AuthorID          int    `json:"authorId"`
	PublicationStatus bool   `json:"publicationStatus"`
}

// Validate applies the declarative field constraints in evaluation order.
func (d UpdateBookDto) Validate() error {
	v := &validate.Validator{}
	v.Min(d.ID, 1, MsgBookIDMin)
	v.Required(d.Title, MsgTitleRequired)
	v.MaxLen(d.Title, TitleMaxLen, MsgTitleTooLong)
	v.Check(d.Price < 0, MsgPriceMin)
	v.Min(d.AuthorID, 1, MsgAuthorIDMin)
	return v.Err()
}

// String renders the update-shaped echo returned on a successful update.
func (d UpdateBookDto) String() string {
	return fmt.Sprintf("UpdateBookDto(id=%d, title=%s, price=%d, authorId=%d, publicationStatus=%t)",
		d.ID, d.Title, d.Price, d.AuthorID, d.PublicationStatus)
}

// BookDto is the response shape for a single book.
type BookDto struct {
	ID                int    `json:"id"`
	Title             string `json:"title"`
	Price             int64  `json:"price"`
	AuthorID          int    `json:"authorId"`
	PublicationStatus bool   `json:"publicationStatus"`
}

// BookListDto wraps book list responses, full or filtered by author.
type BookListDto struct {
	BookList []BookDto `json:"bookList"`
}

// NewBookListDto maps domain books to the list response shape.
// An empty input serializes as [] rather than null.
func NewBookListDto(books []*Book) BookListDto {
	list := make([]BookDto, 0, len(books))
	for _, b := range books {
		list = append(list, BookDto{
			ID:                b.ID,
			Title:             b.Title,
			Price:             b.Price,
			AuthorID:          b.AuthorID,
			PublicationStatus: b.PublicationStatus,
		})
	}
	return BookListDto{BookList: list}
}
