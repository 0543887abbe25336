package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyhub/internal/engine"
	"github.com/abhisek/studyhub/internal/history"
	"github.com/abhisek/studyhub/internal/mentor"
	"github.com/abhisek/studyhub/internal/planner"
	"github.com/abhisek/studyhub/internal/router"
	historyscreen "github.com/abhisek/studyhub/internal/screens/history"
	"github.com/abhisek/studyhub/internal/screens/plan"
	"github.com/abhisek/studyhub/internal/screens/stats"
)

func fullOptions() Options {
	resp := engine.Response{
		StudyPlan:     []planner.PlanBlock{{Subject: "Math", Minutes: 60, SessionID: 1}},
		MentorMessage: "Stay focused! 🚀",
	}
	dash := mentor.Stats(nil, 0)
	return Options{
		Response:  &resp,
		Dashboard: &dash,
		History:   historyscreen.FromMemory(history.StudyHistory{}),
	}
}

func enter(t *testing.T, h *HomeScreen) tea.Msg {
	t.Helper()
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	return cmd()
}

func TestHomeScreen_OpensPlan(t *testing.T) {
	msg := enter(t, New(fullOptions()))
	push, ok := msg.(router.PushScreenMsg)
	require.True(t, ok, "expected PushScreenMsg, got %T", msg)
	assert.IsType(t, &plan.PlanScreen{}, push.Screen)
}

func TestHomeScreen_DisabledWithoutResponse(t *testing.T) {
	opts := fullOptions()
	opts.Response = nil
	h := New(opts)

	// Plan and insights are skipped; stats is first.
	msg := enter(t, h)
	push, ok := msg.(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &stats.StatsScreen{}, push.Screen)
}

func TestHomeScreen_Summary(t *testing.T) {
	view := New(fullOptions()).View(80, 24)
	assert.Contains(t, view, "1 block(s), 60 min today")
	assert.Contains(t, view, "consistency 0%")
	assert.Contains(t, view, "TODAY'S PLAN")
}

func TestHomeScreen_Title(t *testing.T) {
	assert.Equal(t, "Home", New(Options{}).Title())
}
