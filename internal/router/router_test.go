package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubScreen records what the router did to it.
type stubScreen struct {
	title   string
	initRan bool
	msgs    int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (Screen, tea.Cmd) { s.msgs++; return s, nil }
func (s *stubScreen) View(int, int) string             { return s.title }
func (s *stubScreen) Title() string                    { return s.title }

func TestPushPop(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	plan := &stubScreen{title: "plan"}
	r.Push(plan)
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "plan", r.Active().Title())
	assert.True(t, plan.initRan)

	r.Pop()
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "home", r.Active().Title())
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Pop()
	assert.Equal(t, 1, r.Depth())
}

func TestReplacePreservesStackDepth(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "plan"})

	stats := &stubScreen{title: "stats"}
	r.Update(ReplaceScreenMsg{Screen: stats})

	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "stats", r.Active().Title())
	assert.True(t, stats.initRan)
}

func TestNavigationMessagesViaHelpers(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	r.Update(Push(&stubScreen{title: "history"})())
	assert.Equal(t, "history", r.Active().Title())

	r.Update(Pop()())
	assert.Equal(t, "home", r.Active().Title())
}

func TestUpdateForwardsToActive(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)
	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	require.Equal(t, 1, home.msgs)
	assert.Equal(t, "home", r.View(80, 24))
}
