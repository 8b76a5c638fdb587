package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/moodlog-backend/internal/domain"
	"github.com/heartmarshall/moodlog-backend/pkg/ctxutil"
)

// GetUser returns any user's profile (admin only).
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*Profile, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	return s.profile(ctx, id)
}

// SetUserRole changes the role of a user (admin only).
func (s *Service) SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (*domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "invalid role: must be 'user' or 'admin'")
	}

	// Prevent admin from demoting themselves.
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if callerID == targetUserID && role == domain.UserRoleUser {
		return nil, domain.NewValidationError("role", "cannot demote yourself")
	}

	user, err := s.users.SetRole(ctx, targetUserID, role)
	if err != nil {
		return nil, fmt.Errorf("user.SetUserRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("target_user_id", targetUserID.String()),
		slog.String("new_role", role.String()),
	)

	return user, nil
}

// PromoteByEmail grants the admin role to the user with the given email.
// It is the bootstrap path used by the operator CLI and performs no caller check.
func (s *Service) PromoteByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domain.NewValidationError("email", "required")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("user.PromoteByEmail: %w", err)
	}
	if u.Role.IsAdmin() {
		return u, nil
	}

	promoted, err := s.users.SetRole(ctx, u.ID, domain.UserRoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("user.PromoteByEmail: %w", err)
	}

	s.log.InfoContext(ctx, "user promoted to admin", slog.String("user_id", u.ID.String()))

	return promoted, nil
}

// PurgeMoods hard-deletes every mood of targetUserID in one transaction
// (admin only). Returns the number of deleted records.
func (s *Service) PurgeMoods(ctx context.Context, targetUserID uuid.UUID) (int, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return 0, domain.ErrForbidden
	}

	var deleted int
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.users.GetByID(ctx, targetUserID); err != nil {
			return err
		}
		n, err := s.moods.DeleteByAuthor(ctx, targetUserID)
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("user.PurgeMoods: %w", err)
	}

	s.log.InfoContext(ctx, "user moods purged",
		slog.String("target_user_id", targetUserID.String()),
		slog.Int("deleted", deleted),
	)

	return deleted, nil
}
