package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/moodlog-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the regular role.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedUserWithRole(t, pool, domain.UserRoleUser)
}

// SeedUserWithRole creates a user with the given role.
func SeedUserWithRole(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Username:  "user-" + suffix,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, username, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Username, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedMood inserts a mood record for authorID on date, created at date+hour.
func SeedMood(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID, date time.Time, hour int, moodType domain.MoodType, intensity int) domain.MoodRecord {
	t.Helper()

	created := date.Add(time.Duration(hour) * time.Hour).UTC()
	rec := domain.MoodRecord{
		ID:          uuid.New(),
		AuthorID:    authorID,
		MoodType:    moodType,
		Intensity:   intensity,
		LogicalDate: date,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
	if moodType == domain.MoodTypeCustom {
		label := "custom-" + uniqueSuffix()
		rec.CustomLabel = &label
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO moods (id, author_id, mood_type, custom_mood, intensity, diary, logical_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.ID, rec.AuthorID, string(rec.MoodType), rec.CustomLabel, rec.Intensity, rec.Diary, rec.LogicalDate, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMood insert mood: %v", err)
	}

	return rec
}
