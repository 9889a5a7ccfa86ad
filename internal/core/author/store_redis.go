package author

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/bookshelf/internal/platform/constants"
)

// CachedRepository decorates a Repository with a Redis read-through cache of
// the full author list. Point lookups and existence checks bypass the cache;
// every write invalidates the list key, with the TTL as a backstop.
type CachedRepository struct {
	inner  Repository
	client *redis.Client
}

func NewCachedRepository(inner Repository, client *redis.Client) *CachedRepository {
	return &CachedRepository{inner: inner, client: client}
}

func (repository *CachedRepository) ListAuthors(context context.Context) ([]*Author, error) {
	cached, err := repository.client.Get(context, constants.RedisKeyAuthorList).Bytes()
	if err == nil {
		var authors []*Author
		if jsonErr := json.Unmarshal(cached, &authors); jsonErr == nil {
			return authors, nil
		}
		// Corrupt entry: fall through to the database and rewrite it.
	}

	authors, err := repository.inner.ListAuthors(context)
	if err != nil {
		return nil, err
	}

	// Cache failures must not fail the read path.
	if payload, jsonErr := json.Marshal(authors); jsonErr == nil {
		_ = repository.client.Set(context, constants.RedisKeyAuthorList, payload, constants.CatalogCacheTTL).Err()
	}

	return authors, nil
}

func (repository *CachedRepository) GetAuthor(context context.Context, id int) (*Author, error) {
	return repository.inner.GetAuthor(context, id)
}

func (repository *CachedRepository) AuthorExists(context context.Context, id int) (bool, error) {
	return repository.inner.AuthorExists(context, id)
}

// SaveAuthor writes through to the inner repository and invalidates the
// cached list so subsequent reads observe the write.
func (repository *CachedRepository) SaveAuthor(context context.Context, a *Author) error {
	if err := repository.inner.SaveAuthor(context, a); err != nil {
		return err
	}

	if err := repository.client.Del(context, constants.RedisKeyAuthorList).Err(); err != nil {
		return fmt.Errorf("author cache invalidation failed: %w", err)
	}

	return nil
}
