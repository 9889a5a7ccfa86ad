package author

import "context"

// Repository abstracts author persistence.
//
// SaveAuthor is an upsert-by-identity: a zero ID inserts and lets the store
// assign one; a non-zero ID updates that row in place, overwriting all
// mutable fields unconditionally (last writer wins).
type Repository interface {
	ListAuthors(context context.Context) ([]*Author, error)
	GetAuthor(context context.Context, id int) (*Author, error)
	AuthorExists(context context.Context, id int) (bool, error)
	SaveAuthor(context context.Context, a *Author) error
}
