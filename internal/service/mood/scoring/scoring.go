// Package scoring picks the representative ("primary") mood of a day that
// has several check-ins.
package scoring

import (
	"errors"
	"math"
	"time"

	"github.com/heartmarshall/moodlog-backend/internal/domain"
)

// Factor weights of the composite score. They sum to 1.
const (
	RecencyWeight   = 0.40
	IntensityWeight = 0.35
	TypeWeight      = 0.25
)

// MinRecency is the floor of the recency factor.
const MinRecency = 0.1

// DefaultTypePrior is used for mood types missing from TypePriors.
const DefaultTypePrior = 0.5

// TypePriors is the hand-tuned per-type prior. It biases ties toward
// positive and calm states.
var TypePriors = map[domain.MoodType]float64{
	domain.MoodTypeHappy:   0.9,
	domain.MoodTypeCalm:    0.8,
	domain.MoodTypeCustom:  0.7,
	domain.MoodTypeAnxious: 0.6,
	domain.MoodTypeSad:     0.4,
	domain.MoodTypeAngry:   0.3,
}

// ErrNoRecords is returned by ResolvePrimary for empty input.
var ErrNoRecords = errors.New("scoring: no records to resolve")

// Breakdown holds the factors of one record's composite score.
type Breakdown struct {
	Recency   float64
	Intensity float64
	Type      float64
	Total     float64
}

// Recency rewards records logged close to ref.
//
//	recency = clamp(1 - hours(ref - createdAt)/24, 0.1, 1)
//
// The upper clamp only matters for records stamped after ref.
func Recency(createdAt, ref time.Time) float64 {
	hours := ref.Sub(createdAt).Hours()
	return math.Min(1.0, math.Max(MinRecency, 1.0-hours/24.0))
}

// IntensityFactor maps intensity linearly onto [0.1, 1].
//
//	intensity = i / 10
func IntensityFactor(intensity int) float64 {
	return float64(intensity) / float64(domain.MaxIntensity)
}

// TypePrior returns the prior of m, or DefaultTypePrior when m is unknown.
func TypePrior(m domain.MoodType) float64 {
	if p, ok := TypePriors[m]; ok {
		return p
	}
	return DefaultTypePrior
}

// Score computes the composite score of r evaluated at ref.
//
//	total = 0.40*recency + 0.35*intensity + 0.25*type
func Score(r domain.MoodRecord, ref time.Time) Breakdown {
	b := Breakdown{
		Recency:   Recency(r.CreatedAt, ref),
		Intensity: IntensityFactor(r.Intensity),
		Type:      TypePrior(r.MoodType),
	}
	b.Total = RecencyWeight*b.Recency + IntensityWeight*b.Intensity + TypeWeight*b.Type
	return b
}

// ResolvePrimary returns the highest-scoring record of a single day.
// A lone record is returned as-is. Ties keep the earliest record in input
// order. The input slice is not modified.
func ResolvePrimary(records []domain.MoodRecord, ref time.Time) (domain.MoodRecord, error) {
	switch len(records) {
	case 0:
		return domain.MoodRecord{}, ErrNoRecords
	case 1:
		return records[0], nil
	}

	best := 0
	bestScore := Score(records[0], ref).Total
	for i := 1; i < len(records); i++ {
		if s := Score(records[i], ref).Total; s > bestScore {
			best, bestScore = i, s
		}
	}
	return records[best], nil
}
