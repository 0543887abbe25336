package analytics

import (
	"fmt"
	"strings"

	"github.com/abhisek/studyhub/internal/history"
)

// Weakness scoring parameters.
const (
	// TrustSessions is the per-subject sample size at which the raw score
	// is fully trusted over the neutral prior.
	TrustSessions = 5

	neutralPrior     = 0.5
	skipWeight       = 0.4
	difficultyWeight = 0.3
	confusionBoost   = 0.2
	masteryReduction = 0.15
	minTrendSessions = 3
	frequentSkipRate = 0.4
	minWeakness      = 0.01
	maxWeakness      = 0.99
)

// WeaknessScore is the weakness insight for one subject.
type WeaknessScore struct {
	Score      float64    `json:"score"`
	Rationale  string     `json:"rationale"`
	Confidence Confidence `json:"confidence"`
}

// subjectStats accumulates recency-weighted signals for one subject.
type subjectStats struct {
	weightedSkips float64
	weightedDiff  float64
	totalWeight   float64
	sessions      int
	minutes       []float64
	completions   []float64
}

// Trend classifies the direction of a subject's effort/completion curves.
type Trend int

const (
	TrendNone Trend = iota
	TrendConfusion
	TrendMastery
)

// WeaknessScores scores every subject in h. Later sessions weigh more,
// and subjects with few sessions are pulled toward a neutral 0.5.
func WeaknessScores(h history.StudyHistory) map[string]WeaknessScore {
	if len(h) == 0 {
		return map[string]WeaknessScore{}
	}

	sorted := h.SortedByDate()
	n := float64(len(sorted))
	stats := make(map[string]*subjectStats)

	for i, rec := range sorted {
		if rec.Subject == "" {
			continue
		}
		w := 0.5 + 0.5*(float64(i)/n)

		st, ok := stats[rec.Subject]
		if !ok {
			st = &subjectStats{}
			stats[rec.Subject] = st
		}
		st.totalWeight += w
		st.sessions++
		if !rec.Completed {
			st.weightedSkips += w
		}
		st.weightedDiff += rec.Difficulty.Weight() * w
		st.minutes = append(st.minutes, float64(rec.Minutes))
		if rec.Completed {
			st.completions = append(st.completions, 1)
		} else {
			st.completions = append(st.completions, 0)
		}
	}

	out := make(map[string]WeaknessScore, len(stats))
	for subject, st := range stats {
		out[subject] = st.score()
	}
	return out
}

func (st *subjectStats) trend() Trend {
	if st.sessions < minTrendSessions {
		return TrendNone
	}
	timeSlope := slope(st.minutes)
	completionSlope := slope(st.completions)
	switch {
	case timeSlope > 2 && completionSlope < -0.1:
		return TrendConfusion
	case timeSlope < -2 && completionSlope > 0.1:
		return TrendMastery
	default:
		return TrendNone
	}
}

func (st *subjectStats) score() WeaknessScore {
	skipRate := st.weightedSkips / st.totalWeight
	avgDiff := (st.weightedDiff/st.totalWeight - 1) / 2

	raw := skipRate*skipWeight + avgDiff*difficultyWeight
	tr := st.trend()
	switch tr {
	case TrendConfusion:
		raw += confusionBoost
	case TrendMastery:
		raw -= masteryReduction
	}

	trust := float64(st.sessions) / TrustSessions
	if trust > 1 {
		trust = 1
	}
	final := raw*trust + neutralPrior*(1-trust)
	final = clamp(round2(final), minWeakness, maxWeakness)

	var b strings.Builder
	fmt.Fprintf(&b, "Based on %d sessions.", st.sessions)
	switch {
	case tr == TrendConfusion:
		b.WriteString(" Detected rising study time but falling completion, suggesting potential confusion.")
	case tr == TrendMastery:
		b.WriteString(" Low time and high completion detected, you're mastering this!")
	case skipRate > frequentSkipRate:
		b.WriteString(" Frequently skipped in recent sessions.")
	}

	return WeaknessScore{
		Score:      final,
		Rationale:  b.String(),
		Confidence: sessionConfidence(st.sessions),
	}
}

func sessionConfidence(sessions int) Confidence {
	switch {
	case sessions >= TrustSessions:
		return ConfidenceHigh
	case sessions >= 2:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
