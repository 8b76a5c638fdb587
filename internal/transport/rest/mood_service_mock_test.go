package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodlog-backend/internal/domain"
	moodsvc "github.com/heartmarshall/moodlog-backend/internal/service/mood"
	usersvc "github.com/heartmarshall/moodlog-backend/internal/service/user"
)

var (
	_ moodService = &moodServiceMock{}
	_ userService = &userServiceMock{}
)

// moodServiceMock is a func-field mock; unset methods panic.
type moodServiceMock struct {
	CreateRecordFunc       func(ctx context.Context, input moodsvc.CreateInput) (*domain.MoodRecord, error)
	GetRecordFunc          func(ctx context.Context, id uuid.UUID) (*domain.MoodRecord, error)
	UpdateRecordFunc       func(ctx context.Context, input moodsvc.UpdateInput) (*domain.MoodRecord, error)
	DeleteRecordFunc       func(ctx context.Context, id uuid.UUID) error
	ParseFilterFunc        func(raw moodsvc.RawFilter) (domain.RecordFilter, error)
	ListHistoryFunc        func(ctx context.Context, input moodsvc.HistoryInput) ([]domain.MoodRecord, int, error)
	GetTodayFunc           func(ctx context.Context) (domain.TodayView, error)
	GetDayFunc             func(ctx context.Context, date string) (domain.DayView, error)
	BuildMonthCalendarFunc func(ctx context.Context, authorID uuid.UUID, year, month int) (domain.MonthCalendar, error)
	GetMoodStatsFunc       func(ctx context.Context, authorID uuid.UUID, windowDays int) (domain.MoodStats, error)
	GetOverviewFunc        func(ctx context.Context) (domain.Overview, error)
	ExportRecordsFunc      func(ctx context.Context, authorID uuid.UUID) (*moodsvc.ExportResult, error)
}

func (m *moodServiceMock) CreateRecord(ctx context.Context, input moodsvc.CreateInput) (*domain.MoodRecord, error) {
	if m.CreateRecordFunc == nil {
		panic("moodServiceMock.CreateRecordFunc: method is nil")
	}
	return m.CreateRecordFunc(ctx, input)
}

func (m *moodServiceMock) GetRecord(ctx context.Context, id uuid.UUID) (*domain.MoodRecord, error) {
	if m.GetRecordFunc == nil {
		panic("moodServiceMock.GetRecordFunc: method is nil")
	}
	return m.GetRecordFunc(ctx, id)
}

func (m *moodServiceMock) UpdateRecord(ctx context.Context, input moodsvc.UpdateInput) (*domain.MoodRecord, error) {
	if m.UpdateRecordFunc == nil {
		panic("moodServiceMock.UpdateRecordFunc: method is nil")
	}
	return m.UpdateRecordFunc(ctx, input)
}

func (m *moodServiceMock) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	if m.DeleteRecordFunc == nil {
		panic("moodServiceMock.DeleteRecordFunc: method is nil")
	}
	return m.DeleteRecordFunc(ctx, id)
}

func (m *moodServiceMock) ParseFilter(raw moodsvc.RawFilter) (domain.RecordFilter, error) {
	if m.ParseFilterFunc == nil {
		return moodsvc.ParseRecordFilter(raw, true)
	}
	return m.ParseFilterFunc(raw)
}

func (m *moodServiceMock) ListHistory(ctx context.Context, input moodsvc.HistoryInput) ([]domain.MoodRecord, int, error) {
	if m.ListHistoryFunc == nil {
		panic("moodServiceMock.ListHistoryFunc: method is nil")
	}
	return m.ListHistoryFunc(ctx, input)
}

func (m *moodServiceMock) GetToday(ctx context.Context) (domain.TodayView, error) {
	if m.GetTodayFunc == nil {
		panic("moodServiceMock.GetTodayFunc: method is nil")
	}
	return m.GetTodayFunc(ctx)
}

func (m *moodServiceMock) GetDay(ctx context.Context, date string) (domain.DayView, error) {
	if m.GetDayFunc == nil {
		panic("moodServiceMock.GetDayFunc: method is nil")
	}
	return m.GetDayFunc(ctx, date)
}

func (m *moodServiceMock) BuildMonthCalendar(ctx context.Context, authorID uuid.UUID, year, month int) (domain.MonthCalendar, error) {
	if m.BuildMonthCalendarFunc == nil {
		panic("moodServiceMock.BuildMonthCalendarFunc: method is nil")
	}
	return m.BuildMonthCalendarFunc(ctx, authorID, year, month)
}

func (m *moodServiceMock) GetMoodStats(ctx context.Context, authorID uuid.UUID, windowDays int) (domain.MoodStats, error) {
	if m.GetMoodStatsFunc == nil {
		panic("moodServiceMock.GetMoodStatsFunc: method is nil")
	}
	return m.GetMoodStatsFunc(ctx, authorID, windowDays)
}

func (m *moodServiceMock) GetOverview(ctx context.Context) (domain.Overview, error) {
	if m.GetOverviewFunc == nil {
		panic("moodServiceMock.GetOverviewFunc: method is nil")
	}
	return m.GetOverviewFunc(ctx)
}

func (m *moodServiceMock) ExportRecords(ctx context.Context, authorID uuid.UUID) (*moodsvc.ExportResult, error) {
	if m.ExportRecordsFunc == nil {
		panic("moodServiceMock.ExportRecordsFunc: method is nil")
	}
	return m.ExportRecordsFunc(ctx, authorID)
}

type userServiceMock struct {
	GetProfileFunc  func(ctx context.Context) (*usersvc.Profile, error)
	GetUserFunc     func(ctx context.Context, id uuid.UUID) (*usersvc.Profile, error)
	SetUserRoleFunc func(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (*domain.User, error)
	PurgeMoodsFunc  func(ctx context.Context, targetUserID uuid.UUID) (int, error)
}

func (m *userServiceMock) GetProfile(ctx context.Context) (*usersvc.Profile, error) {
	return m.GetProfileFunc(ctx)
}

func (m *userServiceMock) GetUser(ctx context.Context, id uuid.UUID) (*usersvc.Profile, error) {
	return m.GetUserFunc(ctx, id)
}

func (m *userServiceMock) SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (*domain.User, error) {
	return m.SetUserRoleFunc(ctx, targetUserID, role)
}

func (m *userServiceMock) PurgeMoods(ctx context.Context, targetUserID uuid.UUID) (int, error) {
	return m.PurgeMoodsFunc(ctx, targetUserID)
}
