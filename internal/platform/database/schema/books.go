package schema

// BooksTable represents the 'books' table
type BooksTable struct {
	Table             string
	ID                string
	Title             string
	Price             string
	AuthorID          string
	PublicationStatus string
}

// Books is the schema definition for the books table
var Books = BooksTable{
	Table:             "books",
	ID:                "id",
	Title:             "title",
	Price:             "price",
	AuthorID:          "author_id",
	PublicationStatus: "publication_status",
}

func (t BooksTable) Columns() []string {
	return []string{t.ID, t.Title, t.Price, t.AuthorID, t.PublicationStatus}
}
