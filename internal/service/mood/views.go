package mood

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/moodlog-backend/internal/domain"
	"github.com/heartmarshall/moodlog-backend/internal/service/mood/scoring"
	"github.com/heartmarshall/moodlog-backend/pkg/ctxutil"
)

// OverviewWindowDays is the stats window of the overview.
const OverviewWindowDays = 7

// GetToday returns every record the caller logged today together with the
// primary one. Primary is nil when nothing was logged yet.
func (s *Service) GetToday(ctx context.Context) (domain.TodayView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.TodayView{}, domain.ErrUnauthorized
	}

	now := s.now()
	today := domain.DateOf(now, s.cfg.Location)

	records, err := s.query(ctx, userID, domain.RecordFilter{DateFrom: &today, DateTo: &today})
	if err != nil {
		return domain.TodayView{}, err
	}

	view := domain.TodayView{Date: today, Moods: records}
	if primary, err := scoring.ResolvePrimary(records, now); err == nil {
		view.Primary = &primary
	}

	return view, nil
}

// GetDay returns the caller's summary for one logical date with its
// neighbouring dates. A date without records is ErrNotFound.
func (s *Service) GetDay(ctx context.Context, date string) (domain.DayView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.DayView{}, domain.ErrUnauthorized
	}

	day, err := domain.ParseDate(strings.TrimSpace(date))
	if err != nil {
		return domain.DayView{}, domain.NewValidationError("date", "must be YYYY-MM-DD")
	}

	records, err := s.query(ctx, userID, domain.RecordFilter{DateFrom: &day, DateTo: &day})
	if err != nil {
		return domain.DayView{}, err
	}
	if len(records) == 0 {
		return domain.DayView{}, fmt.Errorf("moods on %s: %w", domain.FormatDate(day), domain.ErrNotFound)
	}

	summary, err := SummarizeDay(day, records, s.now())
	if err != nil {
		return domain.DayView{}, fmt.Errorf("summarize day: %w", err)
	}

	return domain.DayView{
		Summary:  summary,
		PrevDate: day.AddDate(0, 0, -1),
		NextDate: day.AddDate(0, 0, 1),
	}, nil
}

// GetOverview loads today's view and the trailing week statistics concurrently.
func (s *Service) GetOverview(ctx context.Context) (domain.Overview, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Overview{}, domain.ErrUnauthorized
	}

	var out domain.Overview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		today, err := s.GetToday(gctx)
		if err != nil {
			return fmt.Errorf("today: %w", err)
		}
		out.Today = today
		return nil
	})
	g.Go(func() error {
		stats, err := s.GetMoodStats(gctx, userID, OverviewWindowDays)
		if err != nil {
			return fmt.Errorf("week stats: %w", err)
		}
		out.WeekStats = stats
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.Overview{}, err
	}
	return out, nil
}
