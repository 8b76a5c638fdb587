package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the owner of mood records. Users are provisioned outside this
// service; only the fields needed for authorship and roles are kept.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Author is the public projection of a User embedded in API payloads.
type Author struct {
	ID       uuid.UUID
	Username string
}

// AsAuthor returns the public projection of u.
func (u *User) AsAuthor() Author {
	return Author{ID: u.ID, Username: u.Username}
}
