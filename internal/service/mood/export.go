package mood

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodlog-backend/internal/domain"
)

// ExportResult holds one author's records for archiving.
type ExportResult struct {
	AuthorID   uuid.UUID
	Records    []domain.MoodRecord
	Total      int
	Truncated  bool
	ExportedAt time.Time
}

// ExportRecords loads up to the configured maximum of authorID's records,
// newest first.
func (s *Service) ExportRecords(ctx context.Context, authorID uuid.UUID) (*ExportResult, error) {
	if err := authorizeView(ctx, authorID); err != nil {
		return nil, err
	}

	records, total, err := s.moods.List(ctx, authorID, domain.RecordFilter{}, s.cfg.ExportMaxRecords, 0)
	if err != nil {
		return nil, fmt.Errorf("list moods for export: %w", err)
	}
	if records == nil {
		records = []domain.MoodRecord{}
	}

	res := &ExportResult{
		AuthorID:   authorID,
		Records:    records,
		Total:      total,
		Truncated:  total > len(records),
		ExportedAt: s.now().UTC(),
	}

	s.log.InfoContext(ctx, "moods exported",
		slog.String("author_id", authorID.String()),
		slog.Int("records", len(records)),
		slog.Bool("truncated", res.Truncated),
	)

	return res, nil
}
