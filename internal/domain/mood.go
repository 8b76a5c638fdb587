package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinIntensity     = 1
	MaxIntensity     = 10
	DefaultIntensity = 5
)

// MoodRecord is one mood check-in. Several records may share the same
// (AuthorID, LogicalDate); none of them replaces another.
type MoodRecord struct {
	ID          uuid.UUID
	AuthorID    uuid.UUID
	MoodType    MoodType
	CustomLabel *string
	Intensity   int
	Diary       *string
	// LogicalDate is the calendar day the record belongs to, stored as
	// midnight UTC of that day.
	LogicalDate time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Label returns the custom label for custom moods and the type name otherwise.
func (r *MoodRecord) Label() string {
	if r.MoodType == MoodTypeCustom && r.CustomLabel != nil && *r.CustomLabel != "" {
		return *r.CustomLabel
	}
	return string(r.MoodType)
}

// DateKey returns the logical date formatted as YYYY-MM-DD.
func (r *MoodRecord) DateKey() string {
	return FormatDate(r.LogicalDate)
}

// RecordFilter narrows a per-author record query. Nil fields mean "no bound".
type RecordFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	MoodType *MoodType
}

// DaySummary aggregates all records of one logical date.
type DaySummary struct {
	Date         time.Time
	Moods        []MoodRecord
	Primary      MoodRecord
	Count        int
	AvgIntensity float64
}

// MonthCalendar maps day-of-month to its summary. Days without records are absent.
type MonthCalendar struct {
	Year  int
	Month time.Month
	Days  map[int]DaySummary
}

// DailyMood is the representative mood of one day inside a stats window.
type DailyMood struct {
	Mood      string
	Intensity int
}

// MoodStats is the rolling-window statistics result.
type MoodStats struct {
	WindowStart       time.Time
	WindowEnd         time.Time
	MoodDistribution  map[string]int
	DailyMoods        map[string]DailyMood
	TotalDistinctDays int
}

// EmptyMoodStats returns the all-empty statistics result.
func EmptyMoodStats() MoodStats {
	return MoodStats{
		MoodDistribution: map[string]int{},
		DailyMoods:       map[string]DailyMood{},
	}
}

// DayView is a single day's records with its neighbouring dates.
type DayView struct {
	Summary  DaySummary
	PrevDate time.Time
	NextDate time.Time
}

// TodayView holds today's check-ins. Primary is nil when nothing was logged.
type TodayView struct {
	Date    time.Time
	Moods   []MoodRecord
	Primary *MoodRecord
}

// Overview bundles today's view with the trailing week statistics.
type Overview struct {
	Today     TodayView
	WeekStats MoodStats
}
