package mood

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodlog-backend/internal/domain"
)

// GetMoodStats computes rolling statistics for authorID over the window
// [today - windowDays, today], today being the current logical date.
//
// Storage failures are returned. A failure while aggregating is logged and
// yields the empty statistics result.
func (s *Service) GetMoodStats(ctx context.Context, authorID uuid.UUID, windowDays int) (domain.MoodStats, error) {
	if err := authorizeView(ctx, authorID); err != nil {
		return domain.MoodStats{}, err
	}

	if windowDays < MinWindowDays || windowDays > MaxWindowDays {
		return domain.MoodStats{}, domain.NewValidationError("days", "must be between 1 and 366")
	}

	now := s.now()
	end := domain.DateOf(now, s.cfg.Location)
	start := end.AddDate(0, 0, -windowDays)

	records, err := s.query(ctx, authorID, domain.RecordFilter{DateFrom: &start, DateTo: &end})
	if err != nil {
		return domain.MoodStats{}, fmt.Errorf("load stats window: %w", err)
	}

	stats := s.computeStatsSafe(ctx, records, now)
	stats.WindowStart = start
	stats.WindowEnd = end

	s.log.DebugContext(ctx, "mood stats computed",
		slog.String("author_id", authorID.String()),
		slog.Int("window_days", windowDays),
		slog.Int("records", len(records)),
		slog.Int("distinct_days", stats.TotalDistinctDays),
	)

	return stats, nil
}

func (s *Service) computeStatsSafe(ctx context.Context, records []domain.MoodRecord, ref time.Time) (stats domain.MoodStats) {
	defer func() {
		if r := recover(); r != nil {
			s.log.ErrorContext(ctx, "mood stats aggregation failed",
				slog.Any("panic", r),
				slog.Int("records", len(records)),
			)
			stats = domain.EmptyMoodStats()
		}
	}()

	stats, skipped := s.aggregate(records, ref)
	if skipped > 0 {
		s.log.DebugContext(ctx, "skipped undated mood records", slog.Int("count", skipped))
	}
	return stats
}

// ComputeStats aggregates records into distribution, per-day primary mood and
// distinct-day count. The per-day entry is the record chosen by the primary
// mood resolver at ref. Records without a logical date are skipped and counted.
func ComputeStats(records []domain.MoodRecord, ref time.Time) (domain.MoodStats, int) {
	stats := domain.EmptyMoodStats()

	skipped := 0
	dated := make([]domain.MoodRecord, 0, len(records))
	for _, r := range records {
		if r.LogicalDate.IsZero() {
			skipped++
			continue
		}
		stats.MoodDistribution[r.Label()]++
		dated = append(dated, r)
	}

	for _, day := range AggregateDays(dated, ref) {
		stats.DailyMoods[domain.FormatDate(day.Date)] = domain.DailyMood{
			Mood:      day.Primary.Label(),
			Intensity: day.Primary.Intensity,
		}
	}
	stats.TotalDistinctDays = len(stats.DailyMoods)

	return stats, skipped
}
