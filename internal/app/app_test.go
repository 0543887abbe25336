package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyhub/internal/engine"
	"github.com/abhisek/studyhub/internal/history"
	"github.com/abhisek/studyhub/internal/planner"
	"github.com/abhisek/studyhub/internal/router"
	historyscreen "github.com/abhisek/studyhub/internal/screens/history"
	"github.com/abhisek/studyhub/internal/screens/home"
)

func testModel() AppModel {
	resp := engine.Response{
		StudyPlan:     []planner.PlanBlock{{Subject: "Math", Minutes: 60, SessionID: 1}},
		MentorMessage: "Stay focused! 🚀",
	}
	m := NewAppModel(Options{
		Home: home.Options{
			Response: &resp,
			History:  historyscreen.FromMemory(history.StudyHistory{{Subject: "Math", Date: "2024-01-01"}}),
		},
		Streak: 3,
		Risk:   "Low",
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(AppModel)
}

// press sends a key and drains one level of navigation commands.
func press(m AppModel, msg tea.KeyPressMsg) (AppModel, tea.Cmd) {
	updated, cmd := m.Update(msg)
	m = updated.(AppModel)
	if cmd == nil {
		return m, nil
	}
	next := cmd()
	switch next.(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		updated, cmd = m.Update(next)
		return updated.(AppModel), cmd
	}
	return m, cmd
}

func TestAppModel_HomeView(t *testing.T) {
	m := testModel()
	content := m.render()
	assert.Contains(t, content, "StudyHub")
	assert.Contains(t, content, "★ 3 day")
	assert.Contains(t, content, "TODAY'S PLAN")
}

func TestAppModel_TooSmall(t *testing.T) {
	m := testModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, updated.(AppModel).render(), "Terminal too small")
}

func TestAppModel_NavigateAndBack(t *testing.T) {
	m := testModel()

	m, _ = press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, 2, m.router.Depth())
	assert.Equal(t, "Today's Plan", m.router.Active().Title())

	m, _ = press(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 1, m.router.Depth())

	// Esc at the bottom of the stack stays put.
	m, cmd := press(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.router.Depth())
}

func TestAppModel_QuitKeys(t *testing.T) {
	m := testModel()
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppModel_FilterCapturesQ(t *testing.T) {
	m := testModel()
	// History is the fourth item; insights is enabled, stats is not.
	m, _ = press(m, tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = press(m, tea.KeyPressMsg{Code: tea.KeyDown})
	m, loadCmd := press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, "History", m.router.Active().Title())
	require.NotNil(t, loadCmd)
	updated, _ := m.Update(loadCmd())
	m = updated.(AppModel)

	updated, _ = m.Update(tea.KeyPressMsg{Code: '/', Text: "/"})
	m = updated.(AppModel)
	updated, _ = m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	m = updated.(AppModel)
	assert.Equal(t, "History", m.router.Active().Title(), "q typed into the filter must not quit")
	assert.True(t, m.capturing())
}
