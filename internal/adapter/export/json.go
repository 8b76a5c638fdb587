package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/heartmarshall/moodlog-backend/internal/domain"
)

type jsonArchive struct {
	AuthorID   string       `json:"author_id"`
	ExportedAt time.Time    `json:"exported_at"`
	Count      int          `json:"count"`
	Moods      []jsonRecord `json:"moods"`
}

type jsonRecord struct {
	ID             string    `json:"id"`
	MoodType       string    `json:"mood_type"`
	CustomMood     *string   `json:"custom_mood"`
	Label          string    `json:"label"`
	Intensity      int       `json:"intensity"`
	IntensityLabel string    `json:"intensity_label"`
	Diary          *string   `json:"diary"`
	Date           string    `json:"date"`
	Timestamp      time.Time `json:"timestamp"`
}

// WriteJSON writes a as an indented JSON document.
func WriteJSON(w io.Writer, a Archive) error {
	doc := jsonArchive{
		AuthorID:   a.AuthorID.String(),
		ExportedAt: a.ExportedAt.UTC(),
		Count:      len(a.Records),
		Moods:      make([]jsonRecord, len(a.Records)),
	}
	for i, r := range a.Records {
		doc.Moods[i] = jsonRecord{
			ID:             r.ID.String(),
			MoodType:       string(r.MoodType),
			CustomMood:     r.CustomLabel,
			Label:          r.Label(),
			Intensity:      r.Intensity,
			IntensityLabel: domain.IntensityLabel(r.Intensity),
			Diary:          r.Diary,
			Date:           r.DateKey(),
			Timestamp:      r.CreatedAt.UTC(),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export json: %w", err)
	}
	return nil
}
