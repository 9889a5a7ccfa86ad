package author

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/bookshelf/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListAuthors(context context.Context) ([]*Author, error) {
	return service.repo.ListAuthors(context)
}

func (service *Service) GetAuthor(context context.Context, id int) (*Author, error) {
	return service.repo.GetAuthor(context, id)
}

// AuthorExists reports whether the given author id resolves to a stored row.
// It also serves referential checks from the book domain.
func (service *Service) AuthorExists(context context.Context, id int) (bool, error) {
	return service.repo.AuthorExists(context, id)
}

// AddAuthor runs the business rules for author creation and persists the new
// row, letting the store assign the identifier. Declarative field constraints
// are the caller's responsibility (dto.Validate at the HTTP boundary).
func (service *Service) AddAuthor(context context.Context, dto AddAuthorDto) error {
	birthday, err := birthdayInPast(dto.Birthday)
	if err != nil {
		return err
	}

	a := &Author{Name: dto.Name, Birthday: birthday}
	if err := service.repo.SaveAuthor(context, a); err != nil {
		return err
	}

	service.logger.Info("author_created", slog.Int("author_id", a.ID), slog.String("name", a.Name))
	return nil
}

// UpdateAuthor runs the business rules for author updates in order, returning
// on the first violated rule, then overwrites the stored row.
func (service *Service) UpdateAuthor(context context.Context, dto UpdateAuthorDto) error {
	birthday, err := birthdayInPast(dto.Birthday)
	if err != nil {
		return err
	}

	exists, err := service.repo.AuthorExists(context, dto.ID)
	if err != nil {
		return err
	}
	if !exists {
		return validate.Violation(MsgAuthorNotFound)
	}

	a := &Author{ID: dto.ID, Name: dto.Name, Birthday: birthday}
	if err := service.repo.SaveAuthor(context, a); err != nil {
		return err
	}

	service.logger.Info("author_updated", slog.Int("author_id", a.ID))
	return nil
}

// birthdayInPast parses the wire-format birthday and enforces that it lies
// strictly before the current date.
func birthdayInPast(value string) (time.Time, error) {
	birthday, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		// The yyyy-mm-dd pattern admits impossible dates like 2002-13-40.
		return time.Time{}, validate.Violation(MsgBirthdayFormat)
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !birthday.Before(today) {
		return time.Time{}, validate.Violation(MsgBirthdayInPast)
	}

	return birthday, nil
}
