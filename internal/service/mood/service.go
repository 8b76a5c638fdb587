package mood

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodlog-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type moodRepo interface {
	Create(ctx context.Context, record *domain.MoodRecord) (*domain.MoodRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MoodRecord, error)
	Update(ctx context.Context, record *domain.MoodRecord) (*domain.MoodRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Query(ctx context.Context, authorID uuid.UUID, filter domain.RecordFilter) ([]domain.MoodRecord, error)
	List(ctx context.Context, authorID uuid.UUID, filter domain.RecordFilter, limit, offset int) ([]domain.MoodRecord, int, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the mood service tunables.
type Config struct {
	// Location defines where a logical day starts and ends.
	Location *time.Location
	// StrictFilters rejects malformed filter input instead of ignoring it.
	StrictFilters    bool
	DefaultPageSize  int
	ExportMaxRecords int
}

// Service implements mood logging, the query layer and the aggregations.
type Service struct {
	moods moodRepo
	cfg   Config
	log   *slog.Logger
	now   func() time.Time

	aggregate func([]domain.MoodRecord, time.Time) (domain.MoodStats, int)
}

// NewService creates a new Mood service.
func NewService(log *slog.Logger, moods moodRepo, cfg Config) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = DefaultPageSize
	}
	if cfg.ExportMaxRecords <= 0 {
		cfg.ExportMaxRecords = DefaultExportMaxRecords
	}
	return &Service{
		moods: moods,
		cfg:   cfg,
		log:   log.With("service", "mood"),
		now:   time.Now,

		aggregate: ComputeStats,
	}
}

// today returns the current logical date in the configured location.
func (s *Service) today() time.Time {
	return domain.DateOf(s.now(), s.cfg.Location)
}

// ParseTimezone parses a timezone string, returning UTC as fallback.
func ParseTimezone(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}
