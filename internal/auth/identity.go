package auth

import (
	"github.com/google/uuid"
	"github.com/heartmarshall/moodlog-backend/internal/domain"
)

// Identity is the caller resolved from a valid access token.
type Identity struct {
	UserID uuid.UUID
	Role   domain.UserRole
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role.IsAdmin()
}
