// Package export writes a single author's mood records as a portable archive.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodlog-backend/internal/domain"
)

// Format is an archive encoding.
type Format string

const (
	FormatJSON   Format = "json"
	FormatCSV    Format = "csv"
	FormatSQLite Format = "sqlite"
)

// ParseFormat resolves a format name. An empty name means JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatSQLite:
		return FormatSQLite, nil
	default:
		return "", domain.NewValidationError("format", "must be one of json, csv, sqlite")
	}
}

// ContentType returns the MIME type of the encoding.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatSQLite:
		return "application/vnd.sqlite3"
	default:
		return "application/json"
	}
}

// Extension returns the file extension of the encoding, without the dot.
func (f Format) Extension() string {
	if f == FormatSQLite {
		return "db"
	}
	return string(f)
}

// Archive is the unit of export: one author's records at one point in time.
type Archive struct {
	AuthorID   uuid.UUID
	ExportedAt time.Time
	Records    []domain.MoodRecord
}

// Filename returns a suggested download name for the archive.
func (a Archive) Filename(f Format) string {
	return fmt.Sprintf("moods-%s.%s", a.ExportedAt.UTC().Format("20060102-150405"), f.Extension())
}

// Write encodes a into w using format f.
func Write(w io.Writer, f Format, a Archive) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, a)
	case FormatCSV:
		return WriteCSV(w, a)
	case FormatSQLite:
		return WriteSQLite(w, a)
	default:
		return fmt.Errorf("export: unsupported format %q", f)
	}
}

// optional returns the pointed-to string or "".
func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
