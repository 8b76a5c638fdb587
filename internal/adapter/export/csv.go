package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

var csvHeader = []string{"id", "date", "timestamp", "mood_type", "custom_mood", "intensity", "diary"}

// WriteCSV writes a as CSV with a header row, one record per line.
func WriteCSV(w io.Writer, a Archive) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("export csv header: %w", err)
	}

	for _, r := range a.Records {
		row := []string{
			r.ID.String(),
			r.DateKey(),
			r.CreatedAt.UTC().Format(time.RFC3339),
			string(r.MoodType),
			optional(r.CustomLabel),
			strconv.Itoa(r.Intensity),
			optional(r.Diary),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export csv row %s: %w", r.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export csv flush: %w", err)
	}
	return nil
}
