package mood

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodlog-backend/internal/domain"
	"github.com/heartmarshall/moodlog-backend/pkg/ctxutil"
)

// QueryRecords returns authorID's records matching filter, ordered by logical
// date descending, then creation time descending. Bounds are inclusive.
// No match yields an empty slice.
func (s *Service) QueryRecords(ctx context.Context, authorID uuid.UUID, filter domain.RecordFilter) ([]domain.MoodRecord, error) {
	if err := authorizeView(ctx, authorID); err != nil {
		return nil, err
	}
	return s.query(ctx, authorID, filter)
}

// query runs the store query without the access check.
func (s *Service) query(ctx context.Context, authorID uuid.UUID, filter domain.RecordFilter) ([]domain.MoodRecord, error) {
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateFrom.After(*filter.DateTo) {
		return []domain.MoodRecord{}, nil
	}

	records, err := s.moods.Query(ctx, authorID, filter)
	if err != nil {
		return nil, fmt.Errorf("query moods: %w", err)
	}
	if records == nil {
		records = []domain.MoodRecord{}
	}
	return records, nil
}

// ParseFilter parses raw filter input using the configured strictness.
func (s *Service) ParseFilter(raw RawFilter) (domain.RecordFilter, error) {
	return ParseRecordFilter(raw, s.cfg.StrictFilters)
}

// ListHistory returns a page of the caller's records and the total match count.
func (s *Service) ListHistory(ctx context.Context, input HistoryInput) ([]domain.MoodRecord, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DefaultPageSize
	}

	f := input.Filter
	if f.DateFrom != nil && f.DateTo != nil && f.DateFrom.After(*f.DateTo) {
		return []domain.MoodRecord{}, 0, nil
	}

	records, total, err := s.moods.List(ctx, userID, f, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list moods: %w", err)
	}
	if records == nil {
		records = []domain.MoodRecord{}
	}

	return records, total, nil
}
