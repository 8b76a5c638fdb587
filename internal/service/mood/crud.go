package mood

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodlog-backend/internal/domain"
	"github.com/heartmarshall/moodlog-backend/pkg/ctxutil"
)

// CreateRecord logs a new mood check-in for the caller. Every call adds a
// record; nothing is merged into an existing record of the same day.
func (s *Service) CreateRecord(ctx context.Context, input CreateInput) (*domain.MoodRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	today := s.today()

	logicalDate := today
	if input.Date != nil {
		d, _ := domain.ParseDate(strings.TrimSpace(*input.Date))
		if d.After(today) {
			return nil, domain.NewValidationError("date", "must not be in the future")
		}
		logicalDate = d
	}

	intensity := domain.DefaultIntensity
	if input.Intensity != nil {
		intensity = *input.Intensity
	}

	var label *string
	if input.MoodType == domain.MoodTypeCustom {
		label = labelOrNil(input.CustomLabel)
	}

	record, err := s.moods.Create(ctx, &domain.MoodRecord{
		ID:          uuid.New(),
		AuthorID:    userID,
		MoodType:    input.MoodType,
		CustomLabel: label,
		Intensity:   intensity,
		Diary:       trimOrNil(input.Diary),
		LogicalDate: logicalDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create mood: %w", err)
	}

	s.log.InfoContext(ctx, "mood logged",
		slog.String("user_id", userID.String()),
		slog.String("mood_id", record.ID.String()),
		slog.String("mood_type", string(record.MoodType)),
		slog.String("date", record.DateKey()),
	)

	return record, nil
}

// GetRecord returns a single record visible to the caller.
func (s *Service) GetRecord(ctx context.Context, id uuid.UUID) (*domain.MoodRecord, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	record, err := s.moods.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get mood: %w", err)
	}

	if err := authorizeView(ctx, record.AuthorID); err != nil {
		return nil, err
	}

	return record, nil
}

// UpdateRecord edits the content fields of a record. Only the author may edit;
// administrators have no edit override. The logical date never changes.
func (s *Service) UpdateRecord(ctx context.Context, input UpdateInput) (*domain.MoodRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.moods.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get mood: %w", err)
	}
	if current.AuthorID != userID {
		return nil, domain.ErrForbidden
	}

	updated := *current
	if input.MoodType != nil {
		updated.MoodType = *input.MoodType
	}
	if input.Intensity != nil {
		updated.Intensity = *input.Intensity
	}
	if input.Diary != nil {
		updated.Diary = trimOrNil(input.Diary)
	}

	if updated.MoodType == domain.MoodTypeCustom {
		if input.CustomLabel != nil {
			updated.CustomLabel = labelOrNil(input.CustomLabel)
		}
		if updated.CustomLabel == nil {
			return nil, domain.NewValidationError("custom_mood", "required for custom mood")
		}
	} else {
		updated.CustomLabel = nil
	}

	updated.UpdatedAt = s.now().UTC()

	record, err := s.moods.Update(ctx, &updated)
	if err != nil {
		return nil, fmt.Errorf("update mood: %w", err)
	}

	s.log.InfoContext(ctx, "mood updated",
		slog.String("user_id", userID.String()),
		slog.String("mood_id", record.ID.String()),
	)

	return record, nil
}

// DeleteRecord hard-deletes a record. Allowed for the author and for administrators.
func (s *Service) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	current, err := s.moods.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get mood: %w", err)
	}

	isAdmin := ctxutil.IsAdminCtx(ctx)
	if current.AuthorID != userID && !isAdmin {
		return domain.ErrForbidden
	}

	if err := s.moods.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete mood: %w", err)
	}

	s.log.InfoContext(ctx, "mood deleted",
		slog.String("user_id", userID.String()),
		slog.String("mood_id", id.String()),
		slog.String("author_id", current.AuthorID.String()),
		slog.Bool("as_admin", current.AuthorID != userID && isAdmin),
	)

	return nil
}

