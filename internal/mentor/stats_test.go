package mentor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyhub/internal/analytics"
	"github.com/abhisek/studyhub/internal/history"
)

func week(days int, completed bool, minutes int) history.StudyHistory {
	var h history.StudyHistory
	for i := 0; i < 7; i++ {
		h = append(h, history.SessionRecord{
			Subject:   "Math",
			Date:      fmt.Sprintf("2024-02-%02d", i%days+1),
			Minutes:   minutes,
			Completed: completed,
		})
	}
	return h
}

func TestStats_PerfectWeek(t *testing.T) {
	d := Stats(week(7, true, 45), 7)

	assert.Equal(t, 100, d.ConsistencyScore)
	assert.Equal(t, analytics.RiskLow, d.DropoutRisk.Value)
	assert.Empty(t, d.Alerts)
	assert.Equal(t, WeeklySummary{TotalMinutes: 315, AvgCompletion: "100%"}, d.Weekly)
	require.Len(t, d.EffortTrend, 7)
	assert.Equal(t, EffortPoint{Date: "2024-02-01", Actual: 45, Target: DailyTargetMinutes}, d.EffortTrend[0])
	assert.Equal(t, "Math", d.TopPriority)
}

func TestStats_StrugglingWeek(t *testing.T) {
	d := Stats(week(3, false, 20), 0)

	// 3/7 days * 100 * 0.5
	assert.Equal(t, 21, d.ConsistencyScore)
	assert.Equal(t, analytics.RiskHigh, d.DropoutRisk.Value)
	require.Len(t, d.Alerts, 2)
	assert.Equal(t, AlertDanger, d.Alerts[0].Type)
	assert.Equal(t, AlertInfo, d.Alerts[1].Type)
	assert.Equal(t, "0%", d.Weekly.AvgCompletion)
}

func TestStats_MediumRiskWarns(t *testing.T) {
	d := Stats(week(7, false, 30), 3)

	assert.Equal(t, analytics.RiskMedium, d.DropoutRisk.Value)
	require.Len(t, d.Alerts, 1)
	assert.Equal(t, AlertWarning, d.Alerts[0].Type)
}

func TestStats_Empty(t *testing.T) {
	d := Stats(nil, 0)

	assert.Equal(t, 0, d.ConsistencyScore)
	assert.Equal(t, "All clear", d.TopPriority)
	assert.Empty(t, d.EffortTrend)
	require.Len(t, d.Alerts, 1)
	assert.Equal(t, AlertInfo, d.Alerts[0].Type)
}

func TestTopPriority(t *testing.T) {
	scores := map[string]analytics.WeaknessScore{
		"Physics": {Score: 0.7},
		"Art":     {Score: 0.7},
		"Math":    {Score: 0.3},
	}
	assert.Equal(t, "Art", TopPriority(scores))
}

func TestNextStreakMilestone(t *testing.T) {
	tests := []struct {
		current, want int
	}{
		{0, 7},
		{6, 7},
		{7, 14},
		{20, 21},
		{29, 30},
		{30, 40},
		{45, 50},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NextStreakMilestone(tt.current), "streak %d", tt.current)
	}
}

func TestStats_CarriesMilestone(t *testing.T) {
	d := Stats(week(7, true, 45), 7)
	assert.Equal(t, 7, d.Streak)
	assert.Equal(t, 14, d.NextMilestone)
}
