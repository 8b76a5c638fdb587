package rest

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodlog-backend/internal/adapter/export"
	"github.com/heartmarshall/moodlog-backend/internal/domain"
	moodsvc "github.com/heartmarshall/moodlog-backend/internal/service/mood"
	"github.com/heartmarshall/moodlog-backend/pkg/ctxutil"
)

type moodService interface {
	CreateRecord(ctx context.Context, input moodsvc.CreateInput) (*domain.MoodRecord, error)
	GetRecord(ctx context.Context, id uuid.UUID) (*domain.MoodRecord, error)
	UpdateRecord(ctx context.Context, input moodsvc.UpdateInput) (*domain.MoodRecord, error)
	DeleteRecord(ctx context.Context, id uuid.UUID) error
	ParseFilter(raw moodsvc.RawFilter) (domain.RecordFilter, error)
	ListHistory(ctx context.Context, input moodsvc.HistoryInput) ([]domain.MoodRecord, int, error)
	GetToday(ctx context.Context) (domain.TodayView, error)
	GetDay(ctx context.Context, date string) (domain.DayView, error)
	BuildMonthCalendar(ctx context.Context, authorID uuid.UUID, year, month int) (domain.MonthCalendar, error)
	GetMoodStats(ctx context.Context, authorID uuid.UUID, windowDays int) (domain.MoodStats, error)
	GetOverview(ctx context.Context) (domain.Overview, error)
	ExportRecords(ctx context.Context, authorID uuid.UUID) (*moodsvc.ExportResult, error)
}

// MoodHandler serves the mood journal endpoints.
type MoodHandler struct {
	svc                moodService
	log                *slog.Logger
	defaultStatsWindow int
	defaultPageSize    int
}

// NewMoodHandler creates a MoodHandler. defaultStatsWindow applies to
// /moods/stats requests without days or period.
func NewMoodHandler(svc moodService, logger *slog.Logger, defaultStatsWindow, defaultPageSize int) *MoodHandler {
	if defaultStatsWindow <= 0 {
		defaultStatsWindow = 30
	}
	if defaultPageSize <= 0 {
		defaultPageSize = moodsvc.DefaultPageSize
	}
	return &MoodHandler{
		svc:                svc,
		log:                logger.With("handler", "mood"),
		defaultStatsWindow: defaultStatsWindow,
		defaultPageSize:    defaultPageSize,
	}
}

type createMoodRequest struct {
	MoodType   string  `json:"mood_type"`
	CustomMood *string `json:"custom_mood"`
	Intensity  *int    `json:"intensity"`
	Diary      *string `json:"diary"`
	Date       *string `json:"date"`
}

type updateMoodRequest struct {
	MoodType   *string `json:"mood_type"`
	CustomMood *string `json:"custom_mood"`
	Intensity  *int    `json:"intensity"`
	Diary      *string `json:"diary"`
}

// Create handles POST /api/v1/moods.
func (h *MoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMoodRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	record, err := h.svc.CreateRecord(r.Context(), moodsvc.CreateInput{
		MoodType:    domain.MoodType(req.MoodType),
		CustomLabel: req.CustomMood,
		Intensity:   req.Intensity,
		Diary:       req.Diary,
		Date:        req.Date,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeRecord(w, r, http.StatusCreated, *record)
}

// Get handles GET /api/v1/moods/{id}.
func (h *MoodHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	record, err := h.svc.GetRecord(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeRecord(w, r, http.StatusOK, *record)
}

// Update handles PUT /api/v1/moods/{id}.
func (h *MoodHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateMoodRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := moodsvc.UpdateInput{
		ID:          id,
		CustomLabel: req.CustomMood,
		Intensity:   req.Intensity,
		Diary:       req.Diary,
	}
	if req.MoodType != nil {
		mt := domain.MoodType(*req.MoodType)
		input.MoodType = &mt
	}

	record, err := h.svc.UpdateRecord(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writeRecord(w, r, http.StatusOK, *record)
}

// Delete handles DELETE /api/v1/moods/{id}.
func (h *MoodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteRecord(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// History handles GET /api/v1/moods?start_date=&end_date=&mood_type=&limit=&offset=.
func (h *MoodHandler) History(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter, err := h.svc.ParseFilter(moodsvc.RawFilter{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		MoodType:  q.Get("mood_type"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	limit, err := queryInt(r, "limit", h.defaultPageSize)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	records, total, err := h.svc.ListHistory(r.Context(), moodsvc.HistoryInput{
		Filter: filter,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := newPresenter(r.Context(), records)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, historyResponse{
		Moods:  p.moods(records),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// Today handles GET /api/v1/moods/today.
func (h *MoodHandler) Today(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetToday(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := newPresenter(r.Context(), view.Moods)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p.today(view))
}

// ByDate handles GET /api/v1/moods/date/{date}.
func (h *MoodHandler) ByDate(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetDay(r.Context(), r.PathValue("date"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := newPresenter(r.Context(), view.Summary.Moods)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dayViewResponse{
		daySummaryResponse: p.daySummary(view.Summary),
		PrevDate:           domain.FormatDate(view.PrevDate),
		NextDate:           domain.FormatDate(view.NextDate),
	})
}

// Calendar handles GET /api/v1/moods/calendar/{year}/{month}?author_id=.
func (h *MoodHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	authorID, err := h.authorParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	year, errY := strconv.Atoi(r.PathValue("year"))
	month, errM := strconv.Atoi(r.PathValue("month"))
	if errY != nil || errM != nil {
		handleError(h.log, w, r, domain.NewValidationError("date", "year and month must be integers"))
		return
	}

	cal, err := h.svc.BuildMonthCalendar(r.Context(), authorID, year, month)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	all := make([][]domain.MoodRecord, 0, len(cal.Days))
	for _, d := range cal.Days {
		all = append(all, d.Moods)
	}
	p, err := newPresenter(r.Context(), all...)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p.calendar(cal))
}

// Stats handles GET /api/v1/moods/stats?days=N|period=week|month|year&author_id=.
func (h *MoodHandler) Stats(w http.ResponseWriter, r *http.Request) {
	authorID, err := h.authorParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	days, err := h.windowParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	stats, err := h.svc.GetMoodStats(r.Context(), authorID, days)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatsResponse(stats))
}

// Overview handles GET /api/v1/moods/overview.
func (h *MoodHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.svc.GetOverview(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := newPresenter(r.Context(), ov.Today.Moods)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, overviewResponse{
		Today:     p.today(ov.Today),
		WeekStats: toStatsResponse(ov.WeekStats),
	})
}

// Types handles GET /api/v1/moods/types.
func (h *MoodHandler) Types(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toCatalogResponse())
}

// Export handles GET /api/v1/moods/export?format=json|csv|sqlite&author_id=.
func (h *MoodHandler) Export(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	authorID, err := h.authorParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.ExportRecords(r.Context(), authorID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	archive := export.Archive{
		AuthorID:   res.AuthorID,
		ExportedAt: res.ExportedAt,
		Records:    res.Records,
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, archive); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+archive.Filename(format)+`"`)
	w.Header().Set("X-Total-Count", strconv.Itoa(res.Total))
	if res.Truncated {
		w.Header().Set("X-Export-Truncated", "true")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck
}

func (h *MoodHandler) writeRecord(w http.ResponseWriter, r *http.Request, status int, record domain.MoodRecord) {
	p, err := newPresenter(r.Context(), []domain.MoodRecord{record})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, status, p.mood(record))
}

// authorParam returns ?author_id= or the caller. Access is checked by the service.
func (h *MoodHandler) authorParam(r *http.Request) (uuid.UUID, error) {
	if raw := r.URL.Query().Get("author_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, domain.NewValidationError("author_id", "invalid UUID")
		}
		return id, nil
	}
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

func (h *MoodHandler) windowParam(r *http.Request) (int, error) {
	q := r.URL.Query()
	if period := q.Get("period"); period != "" {
		days, ok := moodsvc.PeriodDays(period)
		if !ok {
			return 0, domain.NewValidationError("period", "must be one of week, month, year")
		}
		return days, nil
	}
	return queryInt(r, "days", h.defaultStatsWindow)
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "invalid UUID")
	}
	return id, nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return v, nil
}
