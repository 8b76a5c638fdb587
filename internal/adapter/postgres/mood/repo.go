// Package mood implements the mood record repository using PostgreSQL.
// Queries are built with squirrel and scanned with scany.
package mood

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/moodlog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moodlog-backend/internal/domain"
)

const (
	table  = "moods"
	entity = "mood"
)

var columns = []string{
	"id", "author_id", "mood_type", "custom_mood", "intensity",
	"diary", "logical_date", "created_at", "updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides mood record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new mood repository. db is usually the *pgxpool.Pool; a
// transaction stored in the context by TxManager takes precedence.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a mood record by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.MoodRecord, error) {
	sql, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get mood: %w", err)
	}

	var row moodRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	rec := row.toDomain()
	return &rec, nil
}

// Query returns authorID's records matching filter, ordered by logical date
// descending, then creation time descending.
func (r *Repo) Query(ctx context.Context, authorID uuid.UUID, filter domain.RecordFilter) ([]domain.MoodRecord, error) {
	sql, args, err := applyFilter(psql.Select(columns...).From(table), authorID, filter).
		OrderBy("logical_date DESC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query moods: %w", err)
	}

	var rows []moodRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, authorID)
	}

	return toDomainRecords(rows), nil
}

// List returns a page of authorID's records and the total match count.
func (r *Repo) List(ctx context.Context, authorID uuid.UUID, filter domain.RecordFilter, limit, offset int) ([]domain.MoodRecord, int, error) {
	countSQL, countArgs, err := applyFilter(psql.Select("COUNT(*)").From(table), authorID, filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count moods: %w", err)
	}

	var total int
	if err := r.q(ctx).QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count moods: %w", err)
	}
	if total == 0 {
		return []domain.MoodRecord{}, 0, nil
	}

	sql, args, err := applyFilter(psql.Select(columns...).From(table), authorID, filter).
		OrderBy("logical_date DESC", "created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list moods: %w", err)
	}

	var rows []moodRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("list moods: %w", err)
	}

	return toDomainRecords(rows), total, nil
}

// Stream calls fn for each of authorID's records matching filter, oldest
// first, without loading the whole result into memory. A non-nil error from
// fn stops the iteration and is returned.
func (r *Repo) Stream(ctx context.Context, authorID uuid.UUID, filter domain.RecordFilter, fn func(domain.MoodRecord) error) error {
	sql, args, err := applyFilter(psql.Select(columns...).From(table), authorID, filter).
		OrderBy("logical_date ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("build stream moods: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("stream moods: %w", err)
	}
	defer rows.Close()

	rs := pgxscan.NewRowScanner(rows)
	for rows.Next() {
		var row moodRow
		if err := rs.Scan(&row); err != nil {
			return fmt.Errorf("scan mood: %w", err)
		}
		if err := fn(row.toDomain()); err != nil {
			return err
		}
	}
	return rows.Err()
}

// CountByAuthor returns the number of records authorID owns.
func (r *Repo) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	sql, args, err := psql.Select("COUNT(*)").From(table).Where(sq.Eq{"author_id": authorID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count moods: %w", err)
	}

	var n int
	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count moods: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new mood record and returns the persisted row.
func (r *Repo) Create(ctx context.Context, rec *domain.MoodRecord) (*domain.MoodRecord, error) {
	sql, args, err := psql.Insert(table).
		Columns(columns...).
		Values(
			rec.ID, rec.AuthorID, string(rec.MoodType), rec.CustomLabel, rec.Intensity,
			rec.Diary, rec.LogicalDate, rec.CreatedAt, rec.UpdatedAt,
		).
		Suffix("RETURNING " + returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert mood: %w", err)
	}

	var row moodRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, rec.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// Update overwrites the content fields of a record. The author and the
// logical date are never changed.
func (r *Repo) Update(ctx context.Context, rec *domain.MoodRecord) (*domain.MoodRecord, error) {
	sql, args, err := psql.Update(table).
		Set("mood_type", string(rec.MoodType)).
		Set("custom_mood", rec.CustomLabel).
		Set("intensity", rec.Intensity).
		Set("diary", rec.Diary).
		Set("updated_at", rec.UpdatedAt).
		Where(sq.Eq{"id": rec.ID}).
		Suffix("RETURNING " + returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update mood: %w", err)
	}

	var row moodRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, rec.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// Delete removes a record. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete mood: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByAuthor removes every record of authorID and returns how many were deleted.
func (r *Repo) DeleteByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	sql, args, err := psql.Delete(table).Where(sq.Eq{"author_id": authorID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build purge moods: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, entity, authorID)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func applyFilter(b sq.SelectBuilder, authorID uuid.UUID, f domain.RecordFilter) sq.SelectBuilder {
	b = b.Where(sq.Eq{"author_id": authorID})
	if f.DateFrom != nil {
		b = b.Where(sq.GtOrEq{"logical_date": *f.DateFrom})
	}
	if f.DateTo != nil {
		b = b.Where(sq.LtOrEq{"logical_date": *f.DateTo})
	}
	if f.MoodType != nil {
		b = b.Where(sq.Eq{"mood_type": string(*f.MoodType)})
	}
	return b
}

func returning() string {
	return strings.Join(columns, ", ")
}

type moodRow struct {
	ID          uuid.UUID `db:"id"`
	AuthorID    uuid.UUID `db:"author_id"`
	MoodType    string    `db:"mood_type"`
	CustomMood  *string   `db:"custom_mood"`
	Intensity   int16     `db:"intensity"`
	Diary       *string   `db:"diary"`
	LogicalDate time.Time `db:"logical_date"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r moodRow) toDomain() domain.MoodRecord {
	d := r.LogicalDate
	return domain.MoodRecord{
		ID:          r.ID,
		AuthorID:    r.AuthorID,
		MoodType:    domain.MoodType(r.MoodType),
		CustomLabel: r.CustomMood,
		Intensity:   int(r.Intensity),
		Diary:       r.Diary,
		LogicalDate: time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC),
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

func toDomainRecords(rows []moodRow) []domain.MoodRecord {
	out := make([]domain.MoodRecord, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}
