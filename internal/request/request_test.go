package request

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyhub/internal/history"
	"github.com/abhisek/studyhub/internal/planner"
)

func TestParse_Full(t *testing.T) {
	raw := `{
		"subjects": {"Math": "weak", "Art": "strong"},
		"daily_time_minutes": 90,
		"last_day_progress": {"Math": false},
		"streak": 4,
		"history": [
			{"subject": "Math", "date": "2024-01-01", "minutes": 30, "completed": true, "difficulty": "weak"},
			{"subject": "Art", "date": "2024-01-02"}
		]
	}`
	req, err := Parse([]byte(raw))
	require.NoError(t, err)

	assert.True(t, req.Subjects.IsWeighted())
	assert.Equal(t, []planner.Subject{
		{Name: "Math", Difficulty: history.DifficultyWeak},
		{Name: "Art", Difficulty: history.DifficultyStrong},
	}, req.Subjects.Entries())
	assert.Equal(t, 90, req.DailyTimeMinutes)
	assert.Equal(t, map[string]bool{"Math": false}, req.LastDayProgress)
	assert.Equal(t, 4, req.Streak)
	require.Len(t, req.History, 2)
	assert.Equal(t, history.DifficultyAverage, req.History[1].Difficulty)
	assert.False(t, req.History[1].Completed)
}

func TestParse_Defaults(t *testing.T) {
	req, err := Parse([]byte(`{"subjects": ["Math"], "daily_time_minutes": 30}`))
	require.NoError(t, err)

	assert.False(t, req.Subjects.IsWeighted())
	assert.Equal(t, 0, req.Streak)
	assert.Empty(t, req.History)
	assert.Empty(t, req.LastDayProgress)
}

func TestParse_MissingFields(t *testing.T) {
	for _, raw := range []string{
		`{}`,
		`{"subjects": ["Math"]}`,
		`{"daily_time_minutes": 30}`,
		`[]`,
	} {
		_, err := Parse([]byte(raw))
		assert.ErrorIs(t, err, ErrMissingFields, raw)
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{"subjects":`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingFields)
}

func TestParse_WrongTypes(t *testing.T) {
	_, err := Parse([]byte(`{"subjects": "Math", "daily_time_minutes": 30}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode request")
}

func TestRead(t *testing.T) {
	req, err := Read(strings.NewReader(`{"subjects": [], "daily_time_minutes": 0}`))
	require.NoError(t, err)
	assert.Equal(t, 0, req.Subjects.Len())
}
