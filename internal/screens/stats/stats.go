package stats

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyhub/internal/mentor"
	"github.com/abhisek/studyhub/internal/router"
	"github.com/abhisek/studyhub/internal/ui/components"
	"github.com/abhisek/studyhub/internal/ui/layout"
	"github.com/abhisek/studyhub/internal/ui/report"
)

// StatsScreen is the mentor dashboard.
type StatsScreen struct {
	scroll components.ScrollView
}

var _ router.Screen = (*StatsScreen)(nil)
var _ router.KeyHintProvider = (*StatsScreen)(nil)

// New creates a stats screen for d.
func New(d mentor.Dashboard) *StatsScreen {
	return &StatsScreen{
		scroll: components.NewScrollView("\n" + report.Dashboard(d)),
	}
}

func (s *StatsScreen) Init() tea.Cmd { return nil }

func (s *StatsScreen) Title() string { return "Mentor Stats" }

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, router.Pop()
	}
	var cmd tea.Cmd
	s.scroll, cmd = s.scroll.Update(msg)
	return s, cmd
}

func (s *StatsScreen) View(width, height int) string {
	return s.scroll.View(width, height)
}
