package book

import "context"

// Repository abstracts book persistence.
//
// SaveBook is an upsert-by-identity: a zero ID inserts and lets the store
// assign one; a non-zero ID updates that row in place, overwriting all
// mutable fields unconditionally (last writer wins).
type Repository interface {
	ListBooks(context context.Context) ([]*Book, error)
	ListBooksByAuthor(context context.Context, authorID int) ([]*Book, error)
	GetBook(context context.Context, id int) (*Book, error)
	SaveBook(context context.Context, b *Book) error
}

// AuthorDirectory resolves author existence for referential checks.
// The author service satisfies it.
type AuthorDirectory interface {
	AuthorExists(context context.Context, id int) (bool, error)
}
