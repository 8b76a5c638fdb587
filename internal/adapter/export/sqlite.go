package export

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

const sqliteSchema = `
CREATE TABLE meta (
    author_id   TEXT NOT NULL,
    exported_at TEXT NOT NULL
);
CREATE TABLE moods (
    id           TEXT PRIMARY KEY,
    mood_type    TEXT NOT NULL,
    custom_mood  TEXT,
    intensity    INTEGER NOT NULL,
    diary        TEXT,
    logical_date TEXT NOT NULL,
    created_at   TEXT NOT NULL,
    updated_at   TEXT NOT NULL
);
CREATE INDEX idx_moods_date ON moods (logical_date);
`

// WriteSQLiteFile writes a into a new SQLite database at path.
// The file must not exist yet.
func WriteSQLiteFile(ctx context.Context, path string, a Archive) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("export sqlite: %s already exists", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("export sqlite: open: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("export sqlite: schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("export sqlite: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `INSERT INTO meta (author_id, exported_at) VALUES (?, ?)`,
		a.AuthorID.String(), a.ExportedAt.UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("export sqlite: meta: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO moods
		(id, mood_type, custom_mood, intensity, diary, logical_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("export sqlite: prepare: %w", err)
	}
	defer stmt.Close()

	for _, r := range a.Records {
		if _, err := stmt.ExecContext(ctx,
			r.ID.String(), string(r.MoodType), r.CustomLabel, r.Intensity, r.Diary,
			r.DateKey(), r.CreatedAt.UTC().Format(time.RFC3339Nano), r.UpdatedAt.UTC().Format(time.RFC3339Nano),
		); err != nil {
			return fmt.Errorf("export sqlite: insert %s: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("export sqlite: commit: %w", err)
	}
	return nil
}

// WriteSQLite builds the database in a temporary directory and streams the
// resulting file into w.
func WriteSQLite(w io.Writer, a Archive) error {
	dir, err := os.MkdirTemp("", "moodlog-export-*")
	if err != nil {
		return fmt.Errorf("export sqlite: temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "moods.db")
	if err := WriteSQLiteFile(context.Background(), path, a); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("export sqlite: reopen: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("export sqlite: copy: %w", err)
	}
	return nil
}
