package book

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/bookshelf/internal/platform/database/schema"
	"github.com/taibuivan/bookshelf/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListBooks(context context.Context) ([]*Book, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.Books.ID, schema.Books.Title, schema.Books.Price,
		schema.Books.AuthorID, schema.Books.PublicationStatus,
		schema.Books.Table, schema.Books.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_books")
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (repository *PostgresRepository) ListBooksByAuthor(context context.Context, authorID int) ([]*Book, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
	`,
		schema.Books.ID, schema.Books.Title, schema.Books.Price,
		schema.Books.AuthorID, schema.Books.PublicationStatus,
		schema.Books.Table, schema.Books.AuthorID, schema.Books.ID,
	)

	rows, err := repository.db.Query(context, query, authorID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_books_by_author")
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (repository *PostgresRepository) GetBook(context context.Context, id int) (*Book, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Books.ID, schema.Books.Title, schema.Books.Price,
		schema.Books.AuthorID, schema.Books.PublicationStatus,
		schema.Books.Table, schema.Books.ID,
	)

	b := &Book{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&b.ID, &b.Title, &b.Price, &b.AuthorID, &b.PublicationStatus,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_book")
	}

	return b, nil
}

// SaveBook upserts by identity: zero ID inserts and backfills the assigned
// identifier, non-zero ID overwrites the row in place.
func (repository *PostgresRepository) SaveBook(context context.Context, b *Book) error {

	// Establish Transactional Boundary
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_save_book")
	}
	defer transaction.Rollback(context)

	if b.ID == 0 {
		query := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s)
			VALUES ($1, $2, $3, $4)
			RETURNING %s
		`,
			schema.Books.Table, schema.Books.Title, schema.Books.Price,
			schema.Books.AuthorID, schema.Books.PublicationStatus,
			schema.Books.ID,
		)

		err = transaction.QueryRow(context, query, b.Title, b.Price, b.AuthorID, b.PublicationStatus).Scan(&b.ID)
		if err != nil {
			return dberr.Wrap(err, "insert_book")
		}
	} else {
		query := fmt.Sprintf(`
			UPDATE %s
			SET %s = $2, %s = $3, %s = $4, %s = $5
			WHERE %s = $1
			RETURNING %s
		`,
			schema.Books.Table, schema.Books.Title, schema.Books.Price,
			schema.Books.AuthorID, schema.Books.PublicationStatus,
			schema.Books.ID, schema.Books.ID,
		)

		var id int
		err = transaction.QueryRow(context, query, b.ID, b.Title, b.Price, b.AuthorID, b.PublicationStatus).Scan(&id)
		if err != nil {
			return dberr.Wrap(err, "update_book")
		}
	}

	return dberr.Wrap(transaction.Commit(context), "commit_save_book")
}

// scanBooks drains a result set into domain records.
func scanBooks(rows pgx.Rows) ([]*Book, error) {
	var books []*Book
	for rows.Next() {
		b := &Book{}
		if err := rows.Scan(&b.ID, &b.Title, &b.Price, &b.AuthorID, &b.PublicationStatus); err != nil {
			return nil, dberr.Wrap(err, "scan_book")
		}
		books = append(books, b)
	}
	return books, dberr.Wrap(rows.Err(), "scan_book")
}
