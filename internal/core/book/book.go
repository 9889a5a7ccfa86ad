package book

// Book represents a title in the library catalog. Each book references
// exactly one author.
type Book struct {
	ID                int    `json:"id"`
	Title             string `json:"title"`
	Price             int64  `json:"price"`
	AuthorID          int    `json:"author_id"`
	PublicationStatus bool   `json:"publication_status"`
}

// TitleMaxLen caps the book title length.
const TitleMaxLen = 100
