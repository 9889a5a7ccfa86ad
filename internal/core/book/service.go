package book

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/bookshelf/internal/platform/dberr"
	"github.com/taibuivan/bookshelf/internal/platform/validate"
)

type Service struct {
	repo    Repository
	authors AuthorDirectory
	logger  *slog.Logger
}

func NewService(repo Repository, authors AuthorDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		authors: authors,
		logger:  logger,
	}
}

func (service *Service) ListBooks(context context.Context) ([]*Book, error) {
	return service.repo.ListBooks(context)
}

func (service *Service) ListBooksByAuthor(context context.Context, authorID int) ([]*Book, error) {
	return service.repo.ListBooksByAuthor(context, authorID)
}

func (service *Service) GetBook(context context.Context, id int) (*Book, error) {
	return service.repo.GetBook(context, id)
}

// AddBook runs the business rules for book creation and persists the new row,
// letting the store assign the identifier. Declarative field constraints are
// the caller's responsibility (dto.Validate at the HTTP boundary).
func (service *Service) AddBook(context context.Context, dto AddBookDto) error {
	exists, err := service.authors.AuthorExists(context, dto.AuthorID)
	if err != nil {
		return err
	}
	if !exists {
		return validate.Violation(MsgAuthorNotFound)
	}

	b := &Book{
		Title:             dto.Title,
		Price:             dto.Price,
		AuthorID:          dto.AuthorID,
		PublicationStatus: dto.PublicationStatus,
	}
	if err := service.repo.SaveBook(context, b); err != nil {
		return err
	}

	service.logger.Info("book_created", slog.Int("book_id", b.ID), slog.String("title", b.Title))
	return nil
}

// UpdateBook runs the business rules for book updates in order, returning on
// the first violated rule, then overwrites the stored row.
//
// Publication status is a one-way transition: once a stored book is
// published, an update may never set it back to unpublished. Identical
// no-op transitions (true→true, false→false) are allowed.
func (service *Service) UpdateBook(context context.Context, dto UpdateBookDto) error {
	searched, err := service.repo.GetBook(context, dto.ID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			// Without a stored book there is nothing to compare the
			// publication status against, so that rule is skipped.
			return validate.Violation(MsgBookNotFound)
		}
		return err
	}

	exists, err := service.authors.AuthorExists(context, dto.AuthorID)
	if err != nil {
		return err
	}
	if !exists {
		return validate.Violation(MsgAuthorNotFound)
	}

	if searched.PublicationStatus && !dto.PublicationStatus {
		return validate.Violation(MsgPublishedRevert)
	}

	b := &Book{
		ID:                dto.ID,
		Title:             dto.Title,
		Price:             dto.Price,
		AuthorID:          dto.AuthorID,
		PublicationStatus: dto.PublicationStatus,
	}
	if err := service.repo.SaveBook(context, b); err != nil {
		return err
	}

	service.logger.Info("book_updated", slog.Int("book_id", b.ID))
	return nil
}
