package author

import "time"

// Author represents a writer in the library catalog.
type Author struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Birthday  time.Time `json:"birthday"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BirthdayLayout is the wire format for author birth dates.
const BirthdayLayout = "2006-01-02"

// NameMaxLen caps the author name length.
const NameMaxLen = 50
