package mood

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodlog-backend/internal/domain"
	"github.com/heartmarshall/moodlog-backend/internal/service/mood/scoring"
)

// BuildMonthCalendar buckets authorID's records of the given month by day and
// summarises each day. Days without records are absent from the result.
func (s *Service) BuildMonthCalendar(ctx context.Context, authorID uuid.UUID, year, month int) (domain.MonthCalendar, error) {
	if err := authorizeView(ctx, authorID); err != nil {
		return domain.MonthCalendar{}, err
	}

	var errs []domain.FieldError
	if year < 1 || year > 9999 {
		errs = append(errs, domain.FieldError{Field: "year", Message: "must be between 1 and 9999"})
	}
	if month < 1 || month > 12 {
		errs = append(errs, domain.FieldError{Field: "month", Message: "must be between 1 and 12"})
	}
	if err := domain.CheckFields(errs); err != nil {
		return domain.MonthCalendar{}, err
	}

	first, last := domain.MonthBounds(year, time.Month(month))
	records, err := s.query(ctx, authorID, domain.RecordFilter{DateFrom: &first, DateTo: &last})
	if err != nil {
		return domain.MonthCalendar{}, err
	}

	days := AggregateDays(records, s.now())

	cal := domain.MonthCalendar{
		Year:  year,
		Month: time.Month(month),
		Days:  make(map[int]domain.DaySummary, len(days)),
	}
	for _, d := range days {
		cal.Days[d.Date.Day()] = d
	}

	s.log.DebugContext(ctx, "calendar built",
		slog.String("author_id", authorID.String()),
		slog.Int("year", year),
		slog.Int("month", month),
		slog.Int("days", len(cal.Days)),
	)

	return cal, nil
}

// AggregateDays groups records by logical date and summarises each group,
// picking the primary mood at ref. Records inside a day keep their input
// order. The result is sorted by date descending. Zero-dated records are skipped.
func AggregateDays(records []domain.MoodRecord, ref time.Time) []domain.DaySummary {
	groups := make(map[time.Time][]domain.MoodRecord)
	for _, r := range records {
		if r.LogicalDate.IsZero() {
			continue
		}
		groups[r.LogicalDate] = append(groups[r.LogicalDate], r)
	}

	out := make([]domain.DaySummary, 0, len(groups))
	for date, recs := range groups {
		sum, err := SummarizeDay(date, recs, ref)
		if err != nil {
			continue
		}
		out = append(out, sum)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// SummarizeDay builds the summary of one day's records.
func SummarizeDay(date time.Time, records []domain.MoodRecord, ref time.Time) (domain.DaySummary, error) {
	primary, err := scoring.ResolvePrimary(records, ref)
	if err != nil {
		return domain.DaySummary{}, err
	}

	total := 0
	for _, r := range records {
		total += r.Intensity
	}

	return domain.DaySummary{
		Date:         date,
		Moods:        records,
		Primary:      primary,
		Count:        len(records),
		AvgIntensity: float64(total) / float64(len(records)),
	}, nil
}
