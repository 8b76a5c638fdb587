// Package dataloader provides per-request DataLoaders that batch author
// lookups for JSON responses into single SQL calls. Loaders call
// repositories directly, bypassing the service layer; they only resolve
// public author projections of records the caller was already allowed to read.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/moodlog-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	User userRepo
}

// Loaders contains the per-request DataLoaders. Created per-request via NewLoaders.
type Loaders struct {
	AuthorByID *dataloader.Loader[uuid.UUID, *domain.Author]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		AuthorByID: newLoader(newAuthorBatchFn(repos.User)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// LoadAuthors resolves the authors of ids through the request's loader,
// issuing one batched query. Unknown ids are absent from the result.
func (l *Loaders) LoadAuthors(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Author, error) {
	uniq := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}

	authors, errs := l.AuthorByID.LoadMany(ctx, uniq)()
	out := make(map[uuid.UUID]domain.Author, len(uniq))
	for i, id := range uniq {
		if len(errs) > i && errs[i] != nil {
			return nil, errs[i]
		}
		if authors[i] != nil {
			out[id] = *authors[i]
		}
	}
	return out, nil
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Returns nil when the middleware is not installed.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}
