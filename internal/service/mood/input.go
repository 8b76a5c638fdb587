package mood

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodlog-backend/internal/domain"
)

const (
	DefaultPageSize         = 30
	MaxPageSize             = 200
	DefaultExportMaxRecords = 10000

	MaxCustomLabelLength = 50
	MaxDiaryLength       = 10000

	MinWindowDays = 1
	MaxWindowDays = 366
)

// Named statistics periods accepted by PeriodDays.
var periods = map[string]int{
	"week":  7,
	"month": 30,
	"year":  365,
}

// PeriodDays resolves a named period ("week", "month", "year") to a window length.
func PeriodDays(period string) (int, bool) {
	d, ok := periods[strings.ToLower(strings.TrimSpace(period))]
	return d, ok
}

// CreateInput holds the parameters for logging a new mood.
type CreateInput struct {
	MoodType    domain.MoodType
	CustomLabel *string
	// Intensity defaults to domain.DefaultIntensity when nil.
	Intensity *int
	Diary     *string
	// Date is an optional YYYY-MM-DD logical date; today when nil.
	Date *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.MoodType == "":
		errs = append(errs, domain.FieldError{Field: "mood_type", Message: "required"})
	case !i.MoodType.IsValid():
		errs = append(errs, domain.FieldError{Field: "mood_type", Message: "unknown mood type"})
	}

	if i.MoodType == domain.MoodTypeCustom {
		errs = append(errs, validateCustomLabel(i.CustomLabel)...)
	}
	if i.Intensity != nil {
		errs = append(errs, validateIntensity(*i.Intensity)...)
	}
	errs = append(errs, validateDiary(i.Diary)...)

	if i.Date != nil {
		if _, err := domain.ParseDate(strings.TrimSpace(*i.Date)); err != nil {
			errs = append(errs, domain.FieldError{Field: "date", Message: "must be YYYY-MM-DD"})
		}
	}

	return domain.CheckFields(errs)
}

// UpdateInput holds the editable content fields of a record. Nil fields keep
// their stored value.
type UpdateInput struct {
	ID          uuid.UUID
	MoodType    *domain.MoodType
	CustomLabel *string
	Intensity   *int
	Diary       *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.MoodType != nil && !i.MoodType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mood_type", Message: "unknown mood type"})
	}
	if i.CustomLabel != nil && utf8.RuneCountInString(strings.TrimSpace(*i.CustomLabel)) > MaxCustomLabelLength {
		errs = append(errs, domain.FieldError{Field: "custom_mood", Message: "max 50 characters"})
	}
	if i.Intensity != nil {
		errs = append(errs, validateIntensity(*i.Intensity)...)
	}
	errs = append(errs, validateDiary(i.Diary)...)

	return domain.CheckFields(errs)
}

// HistoryInput holds the parameters for a paginated history listing.
type HistoryInput struct {
	Filter domain.RecordFilter
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i HistoryInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxPageSize {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	return domain.CheckFields(errs)
}

// RawFilter is caller-supplied filter input before parsing.
type RawFilter struct {
	StartDate string
	EndDate   string
	MoodType  string
}

// ParseRecordFilter turns raw filter strings into a RecordFilter.
//
// In strict mode malformed dates, unknown mood types and inverted ranges are
// a ValidationError. Otherwise every malformed part is treated as absent.
func ParseRecordFilter(raw RawFilter, strict bool) (domain.RecordFilter, error) {
	var (
		f    domain.RecordFilter
		errs []domain.FieldError
	)

	parseBound := func(field, value string) *time.Time {
		value = strings.TrimSpace(value)
		if value == "" {
			return nil
		}
		d, err := domain.ParseDate(value)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: field, Message: "must be YYYY-MM-DD"})
			return nil
		}
		return &d
	}

	f.DateFrom = parseBound("start_date", raw.StartDate)
	f.DateTo = parseBound("end_date", raw.EndDate)

	if mt := strings.TrimSpace(raw.MoodType); mt != "" {
		m := domain.MoodType(strings.ToLower(mt))
		if m.IsValid() {
			f.MoodType = &m
		} else {
			errs = append(errs, domain.FieldError{Field: "mood_type", Message: "unknown mood type"})
		}
	}

	if f.DateFrom != nil && f.DateTo != nil && f.DateFrom.After(*f.DateTo) {
		errs = append(errs, domain.FieldError{Field: "start_date", Message: "must not be after end_date"})
	}

	if strict {
		if err := domain.CheckFields(errs); err != nil {
			return domain.RecordFilter{}, err
		}
	}
	return f, nil
}

func validateCustomLabel(label *string) []domain.FieldError {
	if label == nil || strings.TrimSpace(*label) == "" {
		return []domain.FieldError{{Field: "custom_mood", Message: "required for custom mood"}}
	}
	if utf8.RuneCountInString(strings.TrimSpace(*label)) > MaxCustomLabelLength {
		return []domain.FieldError{{Field: "custom_mood", Message: "max 50 characters"}}
	}
	return nil
}

func validateIntensity(v int) []domain.FieldError {
	if v < domain.MinIntensity || v > domain.MaxIntensity {
		return []domain.FieldError{{Field: "intensity", Message: "must be between 1 and 10"}}
	}
	return nil
}

func validateDiary(diary *string) []domain.FieldError {
	if diary != nil && utf8.RuneCountInString(*diary) > MaxDiaryLength {
		return []domain.FieldError{{Field: "diary", Message: "max 10000 characters"}}
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// labelOrNil normalizes a custom label. Returns nil if result is empty.
func labelOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	label := domain.NormalizeLabel(*s)
	if label == "" {
		return nil
	}
	return &label
}
