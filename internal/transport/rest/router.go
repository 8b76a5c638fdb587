package rest

import (
	"net/http"

	"github.com/heartmarshall/moodlog-backend/internal/transport/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health *HealthHandler
	Mood   *MoodHandler
	User   *UserHandler
	// API wraps every /api/v1 route (auth, dataloaders, rate limit).
	API middleware.Middleware
}

// NewRouter registers all routes. Probes are public; everything under
// /api/v1 requires an authenticated caller and /api/v1/admin an admin.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	api := http.NewServeMux()

	api.HandleFunc("POST /api/v1/moods", h.Mood.Create)
	api.HandleFunc("GET /api/v1/moods", h.Mood.History)
	api.HandleFunc("GET /api/v1/moods/today", h.Mood.Today)
	api.HandleFunc("GET /api/v1/moods/overview", h.Mood.Overview)
	api.HandleFunc("GET /api/v1/moods/stats", h.Mood.Stats)
	api.HandleFunc("GET /api/v1/moods/types", h.Mood.Types)
	api.HandleFunc("GET /api/v1/moods/export", h.Mood.Export)
	api.HandleFunc("GET /api/v1/moods/date/{date}", h.Mood.ByDate)
	api.HandleFunc("GET /api/v1/moods/calendar/{year}/{month}", h.Mood.Calendar)
	api.HandleFunc("GET /api/v1/moods/{id}", h.Mood.Get)
	api.HandleFunc("PUT /api/v1/moods/{id}", h.Mood.Update)
	api.HandleFunc("DELETE /api/v1/moods/{id}", h.Mood.Delete)

	api.HandleFunc("GET /api/v1/me", h.User.Me)

	admin := http.NewServeMux()
	admin.HandleFunc("GET /api/v1/admin/users/{id}", h.User.GetUser)
	admin.HandleFunc("PUT /api/v1/admin/users/{id}/role", h.User.SetRole)
	admin.HandleFunc("DELETE /api/v1/admin/users/{id}/moods", h.User.PurgeMoods)
	api.Handle("/api/v1/admin/", middleware.AdminOnly(admin))

	var apiHandler http.Handler = middleware.RequireAuth(api)
	if h.API != nil {
		apiHandler = h.API(apiHandler)
	}
	mux.Handle("/api/", apiHandler)

	return mux
}
