package author

import (
	"fmt"
	"regexp"

	"github.com/taibuivan/bookshelf/internal/platform/validate"
)

// Validation messages, surfaced verbatim in 400 response bodies.
const (
	MsgNameRequired   = "author name is required"
	MsgNameTooLong    = "author name must be 50 characters or less"
	MsgBirthdayFormat = "birthday must be in 'yyyy-mm-dd' format"
	MsgBirthdayInPast = "birthday must be in the past"
	MsgAuthorIDMin    = "author id must be 1 or greater"
	MsgAuthorNotFound = "author id does not exist"
)

// birthdayPattern admits the yyyy-mm-dd shape only. Calendar validity is
// enforced later, when the service parses the date.
var birthdayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// AddAuthorDto is the request payload for creating an author.
type AddAuthorDto struct {
	Name     string `json:"name"`
	Birthday string `json:"birthday"`
}

// Validate applies the declarative field constraints in evaluation order.
func (d AddAuthorDto) Validate() error {
	v := &validate.Validator{}
	v.Required(d.Name, MsgNameRequired)
	v.MaxLen(d.Name, NameMaxLen, MsgNameTooLong)
	v.Matches(d.Birthday, birthdayPattern, MsgBirthdayFormat)
	return v.Err()
}

// String renders the create-shaped echo returned on a successful add.
func (d AddAuthorDto) String() string {
	return fmt.Sprintf("AddAuthorDto(name=%s, birthday=%s)", d.Name, d.Birthday)
}

// UpdateAuthorDto is the request payload for updating an author.
type UpdateAuthorDto struct {
	ID       int    `json:"authorId"`
	Name     string `json:"name"`
	Birthday string `json:"birthday"`
}

// Validate applies the declarative field constraints in evaluation order.
func (d UpdateAuthorDto) Validate() error {
	v := &validate.Validator{}
	v.Min(d.ID, 1, MsgAuthorIDMin)
	v.Required(d.Name, MsgNameRequired)
	v.MaxLen(d.Name, NameMaxLen, MsgNameTooLong)
	v.Matches(d.Birthday, birthdayPattern, MsgBirthdayFormat)
	return v.Err()
}

// String renders the update-shaped echo returned on a successful update.
func (d UpdateAuthorDto) String() string {
	return fmt.Sprintf("UpdateAuthorDto(id=%d, name=%s, birthday=%s)", d.ID, d.Name, d.Birthday)
}

// AuthorDto is the response shape for a single author.
type AuthorDto struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Birthday string `json:"birthday"`
}

// AuthorListDto wraps the full author list response.
type AuthorListDto struct {
	AuthorList []AuthorDto `json:"authorList"`
}

// NewAuthorListDto maps domain authors to the list response shape.
// An empty input serializes as [] rather than null.
func NewAuthorListDto(authors []*Author) AuthorListDto {
	list := make([]AuthorDto, 0, len(authors))
	for _, a := range authors {
		list = append(list, AuthorDto{
			ID:       a.ID,
			Name:     a.Name,
			Birthday: a.Birthday.Format(BirthdayLayout),
		})
	}
	return AuthorListDto{AuthorList: list}
}
