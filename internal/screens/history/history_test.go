package history

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	studyhistory "github.com/abhisek/studyhub/internal/history"
	"github.com/abhisek/studyhub/internal/router"
)

func testHistory() studyhistory.StudyHistory {
	return studyhistory.StudyHistory{
		{Subject: "Math", Date: "2024-01-01", Minutes: 30, Completed: true, Difficulty: studyhistory.DifficultyWeak},
		{Subject: "Art", Date: "2024-01-02", Minutes: 20, Difficulty: studyhistory.DifficultyStrong},
		{Subject: "Math", Date: "2024-01-03", Minutes: 45, Completed: true, Difficulty: studyhistory.DifficultyWeak},
	}
}

// run executes cmd and feeds the resulting message back to the screen.
func run(t *testing.T, s router.Screen, cmd tea.Cmd) router.Screen {
	t.Helper()
	require.NotNil(t, cmd)
	s, _ = s.Update(cmd())
	return s
}

func loadedScreen(t *testing.T) *HistoryScreen {
	t.Helper()
	s := New(FromMemory(testHistory()))
	run(t, s, s.Init())
	return s
}

func TestHistoryScreen_NewestFirst(t *testing.T) {
	s := loadedScreen(t)
	require.Len(t, s.records, 3)
	assert.Equal(t, "2024-01-03", s.records[0].Date)

	view := s.View(80, 24)
	assert.Contains(t, view, "Art")
	assert.Contains(t, view, "45 min")
}

func TestHistoryScreen_Loading(t *testing.T) {
	s := New(FromMemory(nil))
	assert.Contains(t, s.View(80, 24), "Loading")
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := New(FromMemory(nil))
	run(t, s, s.Init())
	assert.Contains(t, s.View(80, 24), "No sessions yet")
}

func TestHistoryScreen_Error(t *testing.T) {
	s := New(func(context.Context, string, int) (studyhistory.StudyHistory, error) {
		return nil, errors.New("disk gone")
	})
	run(t, s, s.Init())
	assert.Contains(t, s.View(80, 24), "disk gone")
}

func TestHistoryScreen_Expand(t *testing.T) {
	s := loadedScreen(t)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, 1, s.selected)
	assert.True(t, s.expanded[1])
	assert.Contains(t, s.View(80, 24), "difficulty strong")
}

func TestHistoryScreen_Filter(t *testing.T) {
	s := loadedScreen(t)

	s.Update(tea.KeyPressMsg{Code: '/', Text: "/"})
	require.True(t, s.CapturingInput())

	for _, r := range "Math" {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.False(t, s.CapturingInput())
	run(t, s, cmd)

	assert.Equal(t, "Math", s.subject)
	assert.Len(t, s.records, 2)
	assert.Contains(t, s.View(80, 24), "Showing Math only")

	// Esc clears the filter before leaving.
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	run(t, s, cmd)
	assert.Equal(t, "", s.subject)
	assert.Len(t, s.records, 3)
}

func TestHistoryScreen_EscPops(t *testing.T) {
	s := loadedScreen(t)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestHistoryScreen_KeyHints(t *testing.T) {
	s := loadedScreen(t)
	assert.Len(t, s.KeyHints(), 4)
}
