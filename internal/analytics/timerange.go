package analytics

import (
	"fmt"
	"math"

	"github.com/abhisek/studyhub/internal/history"
)

// TimeRange is a recommended daily study window in minutes, [Min, Max].
// Max is not guaranteed to be >= Min: a low fatigue wall can invert it.
type TimeRange [2]int

func (r TimeRange) Min() int { return r[0] }
func (r TimeRange) Max() int { return r[1] }

// DefaultTimeRange is recommended when there is no history at all.
var DefaultTimeRange = TimeRange{45, 90}

const (
	fallbackBaseMinutes = 60
	minRecommended      = 30
	timeHighHistory     = 5
)

// RecommendTimeRange derives a daily time window from the learner's
// average session length, capped below the "fatigue wall" where sessions
// have historically been abandoned.
func RecommendTimeRange(h history.StudyHistory) Outcome[TimeRange] {
	if len(h) == 0 {
		return Outcome[TimeRange]{
			Value:      DefaultTimeRange,
			Rationale:  "Initial baseline for a balanced start.",
			Confidence: ConfidenceLow,
		}
	}

	var positive, failPoints []float64
	for _, r := range h {
		if r.Minutes > 0 {
			positive = append(positive, float64(r.Minutes))
		}
		if !r.Completed {
			failPoints = append(failPoints, float64(r.Minutes))
		}
	}

	base := float64(fallbackBaseMinutes)
	if len(positive) > 0 {
		base = mean(positive)
	}

	fatigueWall := base * 1.5
	if len(failPoints) > 0 {
		fatigueWall = mean(failPoints) * 0.9
	}

	recMin := max(minRecommended, int(math.Floor(base*0.8)))
	recMax := min(int(math.Floor(fatigueWall)), int(math.Floor(base*1.3)))

	rationale := fmt.Sprintf("Aligned with your %dm average focus time.", int(base))
	if len(failPoints) > 0 {
		rationale += " Capped to avoid your historic 'fatigue wall'."
	}

	conf := ConfidenceMedium
	if len(h) >= timeHighHistory {
		conf = ConfidenceHigh
	}

	return Outcome[TimeRange]{Value: TimeRange{recMin, recMax}, Rationale: rationale, Confidence: conf}
}
