package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/heartmarshall/moodlog-backend/internal/domain"
	"github.com/heartmarshall/moodlog-backend/pkg/ctxutil"
)

// GetProfile returns the caller's own profile.
func (s *Service) GetProfile(ctx context.Context) (*Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.profile(ctx, userID)
}

func (s *Service) profile(ctx context.Context, id uuid.UUID) (*Profile, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	count, err := s.moods.CountByAuthor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count moods: %w", err)
	}

	return &Profile{User: *u, MoodCount: count}, nil
}
