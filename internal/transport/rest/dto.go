package rest

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodlog-backend/internal/domain"
	"github.com/heartmarshall/moodlog-backend/internal/transport/dataloader"
)

type authorResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type moodResponse struct {
	ID             string          `json:"id"`
	MoodType       string          `json:"mood_type"`
	CustomMood     *string         `json:"custom_mood"`
	Label          string          `json:"label"`
	Intensity      int             `json:"intensity"`
	IntensityLabel string          `json:"intensity_label"`
	Icon           string          `json:"icon"`
	Color          string          `json:"color"`
	Diary          *string         `json:"diary"`
	Date           string          `json:"date"`
	Timestamp      time.Time       `json:"timestamp"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Author         *authorResponse `json:"author,omitempty"`
}

type daySummaryResponse struct {
	Date         string         `json:"date"`
	Moods        []moodResponse `json:"moods"`
	PrimaryMood  moodResponse   `json:"primary_mood"`
	Count        int            `json:"count"`
	AvgIntensity float64        `json:"avg_intensity"`
}

type dayViewResponse struct {
	daySummaryResponse
	PrevDate string `json:"prev_date"`
	NextDate string `json:"next_date"`
}

type todayResponse struct {
	Date        string         `json:"date"`
	Moods       []moodResponse `json:"moods"`
	PrimaryMood *moodResponse  `json:"primary_mood"`
	Count       int            `json:"count"`
}

type calendarResponse struct {
	Year  int                        `json:"year"`
	Month int                        `json:"month"`
	Days  map[int]daySummaryResponse `json:"days"`
}

type dailyMoodResponse struct {
	Mood      string `json:"mood"`
	Intensity int    `json:"intensity"`
}

type statsResponse struct {
	WindowStart      string                       `json:"window_start"`
	WindowEnd        string                       `json:"window_end"`
	MoodDistribution map[string]int               `json:"mood_distribution"`
	DailyMoods       map[string]dailyMoodResponse `json:"daily_moods"`
	TotalDays        int                          `json:"total_days"`
}

type overviewResponse struct {
	Today     todayResponse `json:"today"`
	WeekStats statsResponse `json:"week_stats"`
}

type historyResponse struct {
	Moods  []moodResponse `json:"moods"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

type moodTypeResponse struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type intensityBandResponse struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

type catalogResponse struct {
	MoodTypes        []moodTypeResponse      `json:"mood_types"`
	IntensityBands   []intensityBandResponse `json:"intensity_bands"`
	DefaultIntensity int                     `json:"default_intensity"`
}

// presenter converts domain values to wire values, attaching authors through
// the request's dataloader when one is installed.
type presenter struct {
	authors map[uuid.UUID]domain.Author
}

func newPresenter(ctx context.Context, records ...[]domain.MoodRecord) (*presenter, error) {
	p := &presenter{}
	loaders := dataloader.FromContext(ctx)
	if loaders == nil {
		return p, nil
	}

	var ids []uuid.UUID
	for _, rs := range records {
		for i := range rs {
			ids = append(ids, rs[i].AuthorID)
		}
	}
	if len(ids) == 0 {
		return p, nil
	}

	authors, err := loaders.LoadAuthors(ctx, ids)
	if err != nil {
		return nil, err
	}
	p.authors = authors
	return p, nil
}

func (p *presenter) mood(r domain.MoodRecord) moodResponse {
	info := domain.InfoFor(r.MoodType)
	resp := moodResponse{
		ID:             r.ID.String(),
		MoodType:       r.MoodType.String(),
		CustomMood:     r.CustomLabel,
		Label:          r.Label(),
		Intensity:      r.Intensity,
		IntensityLabel: domain.IntensityLabel(r.Intensity),
		Icon:           info.Icon,
		Color:          info.Color,
		Diary:          r.Diary,
		Date:           r.DateKey(),
		Timestamp:      r.CreatedAt.UTC(),
		UpdatedAt:      r.UpdatedAt.UTC(),
	}
	if a, ok := p.authors[r.AuthorID]; ok {
		resp.Author = &authorResponse{ID: a.ID.String(), Username: a.Username}
	}
	return resp
}

func (p *presenter) moods(rs []domain.MoodRecord) []moodResponse {
	out := make([]moodResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, p.mood(r))
	}
	return out
}

func (p *presenter) daySummary(s domain.DaySummary) daySummaryResponse {
	return daySummaryResponse{
		Date:         domain.FormatDate(s.Date),
		Moods:        p.moods(s.Moods),
		PrimaryMood:  p.mood(s.Primary),
		Count:        s.Count,
		AvgIntensity: s.AvgIntensity,
	}
}

func (p *presenter) today(v domain.TodayView) todayResponse {
	resp := todayResponse{
		Date:  domain.FormatDate(v.Date),
		Moods: p.moods(v.Moods),
		Count: len(v.Moods),
	}
	if v.Primary != nil {
		m := p.mood(*v.Primary)
		resp.PrimaryMood = &m
	}
	return resp
}

func (p *presenter) calendar(c domain.MonthCalendar) calendarResponse {
	days := make(map[int]daySummaryResponse, len(c.Days))
	for d, s := range c.Days {
		days[d] = p.daySummary(s)
	}
	return calendarResponse{Year: c.Year, Month: int(c.Month), Days: days}
}

func toStatsResponse(s domain.MoodStats) statsResponse {
	resp := statsResponse{
		MoodDistribution: s.MoodDistribution,
		DailyMoods:       make(map[string]dailyMoodResponse, len(s.DailyMoods)),
		TotalDays:        s.TotalDistinctDays,
	}
	if resp.MoodDistribution == nil {
		resp.MoodDistribution = map[string]int{}
	}
	if !s.WindowStart.IsZero() {
		resp.WindowStart = domain.FormatDate(s.WindowStart)
	}
	if !s.WindowEnd.IsZero() {
		resp.WindowEnd = domain.FormatDate(s.WindowEnd)
	}
	for day, dm := range s.DailyMoods {
		resp.DailyMoods[day] = dailyMoodResponse{Mood: dm.Mood, Intensity: dm.Intensity}
	}
	return resp
}

func toCatalogResponse() catalogResponse {
	types := make([]moodTypeResponse, 0, len(domain.MoodTypes))
	for _, info := range domain.MoodCatalog() {
		types = append(types, moodTypeResponse{
			Type:  info.Type.String(),
			Label: info.Label,
			Icon:  info.Icon,
			Color: info.Color,
		})
	}

	var bands []intensityBandResponse
	for v := domain.MinIntensity; v <= domain.MaxIntensity; v++ {
		label := domain.IntensityLabel(v)
		if n := len(bands); n > 0 && bands[n-1].Label == label {
			bands[n-1].Max = v
			continue
		}
		bands = append(bands, intensityBandResponse{Label: label, Min: v, Max: v})
	}

	return catalogResponse{
		MoodTypes:        types,
		IntensityBands:   bands,
		DefaultIntensity: domain.DefaultIntensity,
	}
}
