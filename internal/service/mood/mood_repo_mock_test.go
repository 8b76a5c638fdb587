package mood

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodlog-backend/internal/domain"
)

var _ moodRepo = &moodRepoMock{}

type moodRepoMock struct {
	CreateFunc  func(ctx context.Context, record *domain.MoodRecord) (*domain.MoodRecord, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.MoodRecord, error)
	UpdateFunc  func(ctx context.Context, record *domain.MoodRecord) (*domain.MoodRecord, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error
	QueryFunc   func(ctx context.Context, authorID uuid.UUID, filter domain.RecordFilter) ([]domain.MoodRecord, error)
	ListFunc    func(ctx context.Context, authorID uuid.UUID, filter domain.RecordFilter, limit, offset int) ([]domain.MoodRecord, int, error)

	calls struct {
		Create []struct {
			Record *domain.MoodRecord
		}
		GetByID []struct {
			ID uuid.UUID
		}
		Update []struct {
			Record *domain.MoodRecord
		}
		Delete []struct {
			ID uuid.UUID
		}
		Query []struct {
			AuthorID uuid.UUID
			Filter   domain.RecordFilter
		}
		List []struct {
			AuthorID uuid.UUID
			Filter   domain.RecordFilter
			Limit    int
			Offset   int
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockQuery   sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *moodRepoMock) Create(ctx context.Context, record *domain.MoodRecord) (*domain.MoodRecord, error) {
	if mock.CreateFunc == nil {
		panic("moodRepoMock.CreateFunc: method is nil but moodRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Record *domain.MoodRecord }{record})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, record)
}

func (mock *moodRepoMock) CreateCalls() []struct{ Record *domain.MoodRecord } {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *moodRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.MoodRecord, error) {
	if mock.GetByIDFunc == nil {
		panic("moodRepoMock.GetByIDFunc: method is nil but moodRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *moodRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lockGetByID.RLock()
	defer mock.lockGetByID.RUnlock()
	return mock.calls.GetByID
}

func (mock *moodRepoMock) Update(ctx context.Context, record *domain.MoodRecord) (*domain.MoodRecord, error) {
	if mock.UpdateFunc == nil {
		panic("moodRepoMock.UpdateFunc: method is nil but moodRepo.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ Record *domain.MoodRecord }{record})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, record)
}

func (mock *moodRepoMock) UpdateCalls() []struct{ Record *domain.MoodRecord } {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *moodRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("moodRepoMock.DeleteFunc: method is nil but moodRepo.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{id})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *moodRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}

func (mock *moodRepoMock) Query(ctx context.Context, authorID uuid.UUID, filter domain.RecordFilter) ([]domain.MoodRecord, error) {
	if mock.QueryFunc == nil {
		panic("moodRepoMock.QueryFunc: method is nil but moodRepo.Query was just called")
	}
	mock.lockQuery.Lock()
	mock.calls.Query = append(mock.calls.Query, struct {
		AuthorID uuid.UUID
		Filter   domain.RecordFilter
	}{authorID, filter})
	mock.lockQuery.Unlock()
	return mock.QueryFunc(ctx, authorID, filter)
}

func (mock *moodRepoMock) QueryCalls() []struct {
	AuthorID uuid.UUID
	Filter   domain.RecordFilter
} {
	mock.lockQuery.RLock()
	defer mock.lockQuery.RUnlock()
	return mock.calls.Query
}

func (mock *moodRepoMock) List(ctx context.Context, authorID uuid.UUID, filter domain.RecordFilter, limit, offset int) ([]domain.MoodRecord, int, error) {
	if mock.ListFunc == nil {
		panic("moodRepoMock.ListFunc: method is nil but moodRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		AuthorID uuid.UUID
		Filter   domain.RecordFilter
		Limit    int
		Offset   int
	}{authorID, filter, limit, offset})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, authorID, filter, limit, offset)
}

func (mock *moodRepoMock) ListCalls() []struct {
	AuthorID uuid.UUID
	Filter   domain.RecordFilter
	Limit    int
	Offset   int
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}
