package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodlog-backend/internal/domain"
	usersvc "github.com/heartmarshall/moodlog-backend/internal/service/user"
)

type userService interface {
	GetProfile(ctx context.Context) (*usersvc.Profile, error)
	GetUser(ctx context.Context, id uuid.UUID) (*usersvc.Profile, error)
	SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (*domain.User, error)
	PurgeMoods(ctx context.Context, targetUserID uuid.UUID) (int, error)
}

// UserHandler serves the account endpoint and the admin user endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc: svc,
		log: logger.With("handler", "user"),
	}
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	MoodCount *int      `json:"mood_count,omitempty"`
}

type setRoleRequest struct {
	Role string `json:"role"`
}

type purgeResponse struct {
	UserID  string `json:"user_id"`
	Deleted int    `json:"deleted"`
}

// Me handles GET /api/v1/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(profile.User, &profile.MoodCount))
}

// GetUser handles GET /api/v1/admin/users/{id}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	profile, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(profile.User, &profile.MoodCount))
}

// SetRole handles PUT /api/v1/admin/users/{id}/role.
func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req setRoleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	u, err := h.svc.SetUserRole(r.Context(), id, domain.UserRole(req.Role))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(*u, nil))
}

// PurgeMoods handles DELETE /api/v1/admin/users/{id}/moods.
func (h *UserHandler) PurgeMoods(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n, err := h.svc.PurgeMoods(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, purgeResponse{UserID: id.String(), Deleted: n})
}

func toUserResponse(u domain.User, moodCount *int) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Username:  u.Username,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt.UTC(),
		MoodCount: moodCount,
	}
}
