package user

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/moodlog-backend/internal/domain"
)

var (
	_ userRepo  = &userRepoMock{}
	_ moodRepo  = &moodRepoMock{}
	_ txManager = &txManagerMock{}
)

type userRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	SetRoleFunc    func(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		SetRole []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Role domain.UserRole
		}
	}
	lockGetByID    sync.RWMutex
	lockGetByEmail sync.RWMutex
	lockSetRole    sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		Ctx context.Context
		ID  uuid.UUID
	}{ctx, id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	defer mock.lockGetByID.RUnlock()
	return mock.calls.GetByID
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, struct {
		Ctx   context.Context
		Email string
	}{ctx, email})
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	if mock.SetRoleFunc == nil {
		panic("userRepoMock.SetRoleFunc: method is nil but userRepo.SetRole was just called")
	}
	mock.lockSetRole.Lock()
	mock.calls.SetRole = append(mock.calls.SetRole, struct {
		Ctx  context.Context
		ID   uuid.UUID
		Role domain.UserRole
	}{ctx, id, role})
	mock.lockSetRole.Unlock()
	return mock.SetRoleFunc(ctx, id, role)
}

func (mock *userRepoMock) SetRoleCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Role domain.UserRole
} {
	mock.lockSetRole.RLock()
	defer mock.lockSetRole.RUnlock()
	return mock.calls.SetRole
}

type moodRepoMock struct {
	CountByAuthorFunc  func(ctx context.Context, authorID uuid.UUID) (int, error)
	DeleteByAuthorFunc func(ctx context.Context, authorID uuid.UUID) (int, error)

	calls struct {
		DeleteByAuthor []struct {
			Ctx      context.Context
			AuthorID uuid.UUID
		}
	}
	lockDeleteByAuthor sync.RWMutex
}

func (mock *moodRepoMock) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	if mock.CountByAuthorFunc == nil {
		panic("moodRepoMock.CountByAuthorFunc: method is nil but moodRepo.CountByAuthor was just called")
	}
	return mock.CountByAuthorFunc(ctx, authorID)
}

func (mock *moodRepoMock) DeleteByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	if mock.DeleteByAuthorFunc == nil {
		panic("moodRepoMock.DeleteByAuthorFunc: method is nil but moodRepo.DeleteByAuthor was just called")
	}
	mock.lockDeleteByAuthor.Lock()
	mock.calls.DeleteByAuthor = append(mock.calls.DeleteByAuthor, struct {
		Ctx      context.Context
		AuthorID uuid.UUID
	}{ctx, authorID})
	mock.lockDeleteByAuthor.Unlock()
	return mock.DeleteByAuthorFunc(ctx, authorID)
}

func (mock *moodRepoMock) DeleteByAuthorCalls() []struct {
	Ctx      context.Context
	AuthorID uuid.UUID
} {
	mock.lockDeleteByAuthor.RLock()
	defer mock.lockDeleteByAuthor.RUnlock()
	return mock.calls.DeleteByAuthor
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct {
		Ctx context.Context
	}{ctx})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
} {
	mock.lockRunInTx.RLock()
	defer mock.lockRunInTx.RUnlock()
	return mock.calls.RunInTx
}

// passthroughTx runs fn directly.
func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}
