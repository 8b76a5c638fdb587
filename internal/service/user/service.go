package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/moodlog-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
}

// moodRepo is the slice of the mood store the account operations need.
type moodRepo interface {
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)
	DeleteByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements profile lookups and the administrative account operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	moods moodRepo
	tx    txManager
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	moods moodRepo,
	tx txManager,
) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		moods: moods,
		tx:    tx,
	}
}

// Profile is a user together with the size of their journal.
type Profile struct {
	User      domain.User
	MoodCount int
}
