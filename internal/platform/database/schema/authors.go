package schema

// AuthorsTable represents the 'authors' table
type AuthorsTable struct {
	Table     string
	ID        string
	Name      string
	Birthday  string
	CreatedAt string
	UpdatedAt string
}

// Authors is the schema definition for the authors table
var Authors = AuthorsTable{
	Table:     "authors",
	ID:        "id",
	Name:      "name",
	Birthday:  "birthday",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

func (t AuthorsTable) Columns() []string {
	return []string{t.ID, t.Name, t.Birthday, t.CreatedAt, t.UpdatedAt}
}
