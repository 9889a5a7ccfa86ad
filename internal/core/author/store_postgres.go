package author

import (
	"context"
	"fmt"

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

func (repository *PostgresRepository) ListAuthors(context context.Context) ([]*Author, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.Authors.ID, schema.Authors.Name, schema.Authors.Birthday,
		schema.Authors.CreatedAt, schema.Authors.UpdatedAt,
		schema.Authors.Table, schema.Authors.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_authors")
	}
	defer rows.Close()

	var authors []*Author
	for rows.Next() {
		a := &Author{}
		if err := rows.Scan(&a.ID, &a.Name, &a.Birthday, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_author")
		}
		authors = append(authors, a)
	}

	return authors, dberr.Wrap(rows.Err(), "list_authors")
}

func (repository *PostgresRepository) GetAuthor(context context.Context, id int) (*Author, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Authors.ID, schema.Authors.Name, schema.Authors.Birthday,
		schema.Authors.CreatedAt, schema.Authors.UpdatedAt,
		schema.Authors.Table, schema.Authors.ID,
	)

	a := &Author{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&a.ID, &a.Name, &a.Birthday, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_author")
	}

	return a, nil
}

func (repository *PostgresRepository) AuthorExists(context context.Context, id int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Authors.Table, schema.Authors.ID,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "author_exists")
	}

	return exists, nil
}

// SaveAuthor upserts by identity: zero ID inserts and backfills the assigned
// identifier, non-zero ID overwrites the row in place.
func (repository *PostgresRepository) SaveAuthor(context context.Context, a *Author) error {

	// Establish Transactional Boundary
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_save_author")
	}
	defer transaction.Rollback(context)

	if a.ID == 0 {
		query := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s)
			VALUES ($1, $2, NOW(), NOW())
			RETURNING %s, %s, %s
		`,
			schema.Authors.Table, schema.Authors.Name, schema.Authors.Birthday,
			schema.Authors.CreatedAt, schema.Authors.UpdatedAt,
			schema.Authors.ID, schema.Authors.CreatedAt, schema.Authors.UpdatedAt,
		)

		err = transaction.QueryRow(context, query, a.Name, a.Birthday).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return dberr.Wrap(err, "insert_author")
		}
	} else {
		query := fmt.Sprintf(`
			UPDATE %s
			SET %s = $2, %s = $3, %s = NOW()
			WHERE %s = $1
			RETURNING %s
		`,
			schema.Authors.Table, schema.Authors.Name, schema.Authors.Birthday,
			schema.Authors.UpdatedAt, schema.Authors.ID, schema.Authors.UpdatedAt,
		)

		err = transaction.QueryRow(context, query, a.ID, a.Name, a.Birthday).Scan(&a.UpdatedAt)
		if err != nil {
			return dberr.Wrap(err, "update_author")
		}
	}

	return dberr.Wrap(transaction.Commit(context), "commit_save_author")
}
