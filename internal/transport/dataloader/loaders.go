package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/moodlog-backend/internal/domain"
)

func newAuthorBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.Author] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Author] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Author](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Author, len(users))
		for i := range users {
			a := users[i].AsAuthor()
			byID[a.ID] = &a
		}

		return mapResults(keys, byID, nilValue[*domain.Author])
	}
}

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func nilValue[T any]() T {
	var zero T
	return zero
}
