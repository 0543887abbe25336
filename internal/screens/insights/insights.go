package insights

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyhub/internal/engine"
	"github.com/abhisek/studyhub/internal/router"
	"github.com/abhisek/studyhub/internal/ui/components"
	"github.com/abhisek/studyhub/internal/ui/layout"
	"github.com/abhisek/studyhub/internal/ui/report"
	"github.com/abhisek/studyhub/internal/ui/theme"
)

// InsightsScreen shows the analytics behind the day's plan.
type InsightsScreen struct {
	scroll components.ScrollView
}

var _ router.Screen = (*InsightsScreen)(nil)
var _ router.KeyHintProvider = (*InsightsScreen)(nil)

// New creates an insights screen for resp.
func New(resp engine.Response) *InsightsScreen {
	content := "\n" + theme.Heading.Render("Insights") + "\n\n" +
		report.Insights(resp) + "\n\n" +
		theme.Heading.Render("Weakness scores") + "\n\n" +
		report.Weakness(resp.WeaknessScores) + "\n"
	return &InsightsScreen{scroll: components.NewScrollView(content)}
}

func (s *InsightsScreen) Init() tea.Cmd { return nil }

func (s *InsightsScreen) Title() string { return "Insights" }

func (s *InsightsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *InsightsScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, router.Pop()
	}
	var cmd tea.Cmd
	s.scroll, cmd = s.scroll.Update(msg)
	return s, cmd
}

func (s *InsightsScreen) View(width, height int) string {
	return s.scroll.View(width, height)
}
