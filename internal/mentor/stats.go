package mentor

import (
	"fmt"
	"sort"

	"github.com/abhisek/studyhub/internal/analytics"
	"github.com/abhisek/studyhub/internal/history"
)

// Dashboard parameters.
const (
	StatsWindow         = 7
	DailyTargetMinutes  = 90
	LowConsistencyScore = 40
	noPriority          = "All clear"
)

// AlertType is the severity of a mentor alert.
type AlertType string

const (
	AlertDanger  AlertType = "danger"
	AlertWarning AlertType = "warning"
	AlertInfo    AlertType = "info"
)

// Alert is a proactive note for a parent or mentor.
type Alert struct {
	Type    AlertType `json:"type"`
	Message string    `json:"message"`
}

// EffortPoint compares one session against the daily target.
type EffortPoint struct {
	Date   string `json:"date"`
	Actual int    `json:"actual"`
	Target int    `json:"target"`
}

// WeeklySummary totals the stats window.
type WeeklySummary struct {
	TotalMinutes  int    `json:"total_minutes"`
	AvgCompletion string `json:"avg_completion"`
}

// Dashboard is the mentor-facing overview of a learner.
type Dashboard struct {
	ConsistencyScore int                                    `json:"consistency_score"`
	EffortTrend      []EffortPoint                          `json:"effort_trend"`
	Weaknesses       map[string]analytics.WeaknessScore     `json:"weakness_scores"`
	DropoutRisk      analytics.Outcome[analytics.RiskLevel] `json:"dropout_risk"`
	StudyProfile     analytics.Outcome[analytics.Persona]   `json:"study_profile"`
	TopPriority      string                                 `json:"top_priority"`
	Alerts           []Alert                                `json:"alerts"`
	Weekly           WeeklySummary                          `json:"weekly_summary"`
	Streak           int                                    `json:"streak"`
	NextMilestone    int                                    `json:"next_streak_milestone"`
}

// Stats builds the mentor dashboard from the learner's history.
func Stats(h history.StudyHistory, streak int) Dashboard {
	window := h.Last(StatsWindow)

	completionRate := 0.0
	if len(window) > 0 {
		completionRate = float64(len(window.Completed())) / float64(len(window))
	}
	consistency := int(float64(window.ActiveDays()) / StatsWindow * 100 * (0.5 + 0.5*completionRate))
	consistency = min(consistency, 100)

	trend := make([]EffortPoint, 0, len(window))
	total := 0
	for _, r := range window {
		trend = append(trend, EffortPoint{Date: r.Date, Actual: r.Minutes, Target: DailyTargetMinutes})
		total += r.Minutes
	}

	weak := analytics.WeaknessScores(h)
	risk := analytics.DropoutRisk(h, streak)

	return Dashboard{
		ConsistencyScore: consistency,
		EffortTrend:      trend,
		Weaknesses:       weak,
		DropoutRisk:      risk,
		StudyProfile:     analytics.StudyProfile(h),
		TopPriority:      TopPriority(weak),
		Alerts:           alerts(risk.Value, consistency),
		Weekly: WeeklySummary{
			TotalMinutes:  total,
			AvgCompletion: fmt.Sprintf("%d%%", int(completionRate*100)),
		},
		Streak:        streak,
		NextMilestone: NextStreakMilestone(streak),
	}
}

var streakMilestones = []int{LongStreak, 14, 21, 30}

// NextStreakMilestone returns the next streak length worth celebrating
// above current. Past the last fixed milestone it is every 10 days.
func NextStreakMilestone(current int) int {
	for _, m := range streakMilestones {
		if m > current {
			return m
		}
	}
	return (current/10 + 1) * 10
}

// TopPriority returns the subject with the highest weakness score, ties
// broken by name. It returns "All clear" when there are no subjects.
func TopPriority(scores map[string]analytics.WeaknessScore) string {
	if len(scores) == 0 {
		return noPriority
	}
	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		si, sj := scores[names[i]].Score, scores[names[j]].Score
		if si != sj {
			return si > sj
		}
		return names[i] < names[j]
	})
	return names[0]
}

func alerts(risk analytics.RiskLevel, consistency int) []Alert {
	out := []Alert{}
	switch risk {
	case analytics.RiskHigh:
		out = append(out, Alert{Type: AlertDanger, Message: "⚠️ High Burnout Risk detected. Decreasing engagement observed."})
	case analytics.RiskMedium:
		out = append(out, Alert{Type: AlertWarning, Message: "⚡ Consistency is slipping. Consider a supportive check-in."})
	}
	if consistency < LowConsistencyScore {
		out = append(out, Alert{Type: AlertInfo, Message: "📅 Low activity this week. Encouragement might help."})
	}
	return out
}
