package stats

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyhub/internal/history"
	"github.com/abhisek/studyhub/internal/mentor"
	"github.com/abhisek/studyhub/internal/router"
)

func TestStatsScreen_View(t *testing.T) {
	h := history.StudyHistory{
		{Subject: "Math", Date: "2024-01-01", Minutes: 30, Completed: true},
		{Subject: "Math", Date: "2024-01-02", Minutes: 30},
	}
	s := New(mentor.Stats(h, 2))
	assert.Equal(t, "Mentor Stats", s.Title())

	view := s.View(80, 40)
	assert.Contains(t, view, "Consistency")
	assert.Contains(t, view, "Math")
}

func TestStatsScreen_EscPops(t *testing.T) {
	s := New(mentor.Stats(nil, 0))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestStatsScreen_ScrollKeysStay(t *testing.T) {
	s := New(mentor.Stats(nil, 0))
	next, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Same(t, s, next)
}
