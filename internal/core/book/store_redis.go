package book

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/bookshelf/internal/platform/constants"
)

// CachedRepository decorates a Repository with a Redis read-through cache of
// the full book list. Filtered and point lookups bypass the cache; every
// write invalidates the list key, with the TTL as a backstop.
type CachedRepository struct {
	inner  Repository
	client *redis.Client
}

func NewCachedRepository(inner Repository, client *redis.Client) *CachedRepository {
	return &CachedRepository{inner: inner, client: client}
}

func (repository *CachedRepository) ListBooks(context context.Context) ([]*Book, error) {
	cached, err := repository.client.Get(context, constants.RedisKeyBookList).Bytes()
	if err == nil {
		var books []*Book
		if jsonErr := json.Unmarshal(cached, &books); jsonErr == nil {
			return books, nil
		}
		// Corrupt entry: fall through to the database and rewrite it.
	}

	books, err := repository.inner.ListBooks(context)
	if err != nil {
		return nil, err
	}

	// Cache failures must not fail the read path.
	if payload, jsonErr := json.Marshal(books); jsonErr == nil {
		_ = repository.client.Set(context, constants.RedisKeyBookList, payload, constants.CatalogCacheTTL).Err()
	}

	return books, nil
}

func (repository *CachedRepository) ListBooksByAuthor(context context.Context, authorID int) ([]*Book, error) {
	return repository.inner.ListBooksByAuthor(context, authorID)
}

func (repository *CachedRepository) GetBook(context context.Context, id int) (*Book, error) {
	return repository.inner.GetBook(context, id)
}

// SaveBook writes through to the inner repository and invalidates the cached
// list so subsequent reads observe the write.
func (repository *CachedRepository) SaveBook(context context.Context, b *Book) error {
	if err := repository.inner.SaveBook(context, b); err != nil {
		return err
	}

	if err := repository.client.Del(context, constants.RedisKeyBookList).Err(); err != nil {
		return fmt.Errorf("book cache invalidation failed: %w", err)
	}

	return nil
}
