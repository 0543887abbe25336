package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhub/internal/engine"
	"github.com/abhisek/studyhub/internal/mentor"
	"github.com/abhisek/studyhub/internal/planner"
	"github.com/abhisek/studyhub/internal/router"
	"github.com/abhisek/studyhub/internal/screens/history"
	"github.com/abhisek/studyhub/internal/screens/insights"
	"github.com/abhisek/studyhub/internal/screens/plan"
	"github.com/abhisek/studyhub/internal/screens/stats"
	"github.com/abhisek/studyhub/internal/ui/components"
	"github.com/abhisek/studyhub/internal/ui/layout"
	"github.com/abhisek/studyhub/internal/ui/theme"
)

// Options selects what the home menu can open. Nil entries disable the
// matching item.
type Options struct {
	Response  *engine.Response
	Dashboard *mentor.Dashboard
	History   history.Loader
}

// HomeScreen is the main menu.
type HomeScreen struct {
	menu    components.Menu
	summary string
}

var _ router.Screen = (*HomeScreen)(nil)
var _ router.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	resp, dash := opts.Response, opts.Dashboard

	items := []components.MenuItem{
		{
			Label:       "TODAY'S PLAN",
			Description: "Work through today's study blocks",
			Disabled:    resp == nil,
			Action: func() tea.Cmd {
				return router.Push(plan.New(resp.StudyPlan, resp.MentorMessage))
			},
		},
		{
			Label:       "INSIGHTS",
			Description: "Weakness scores, dropout risk, study profile",
			Disabled:    resp == nil,
			Action: func() tea.Cmd {
				return router.Push(insights.New(*resp))
			},
		},
		{
			Label:       "MENTOR STATS",
			Description: "Consistency, effort and alerts for the last week",
			Disabled:    dash == nil,
			Action: func() tea.Cmd {
				return router.Push(stats.New(*dash))
			},
		},
		{
			Label:       "HISTORY",
			Description: "Recorded study sessions",
			Disabled:    opts.History == nil,
			Action: func() tea.Cmd {
				return router.Push(history.New(opts.History))
			},
		},
		{
			Label:  "QUIT",
			Action: func() tea.Cmd { return tea.Quit },
		},
	}

	return &HomeScreen{
		menu:    components.NewMenu(items),
		summary: summarize(resp, dash),
	}
}

func summarize(resp *engine.Response, dash *mentor.Dashboard) string {
	var parts []string
	if resp != nil {
		parts = append(parts,
			fmt.Sprintf("%d block(s), %d min today", len(resp.StudyPlan), planner.TotalMinutes(resp.StudyPlan)),
			fmt.Sprintf("profile %s", resp.StudyProfile))
	}
	if dash != nil {
		parts = append(parts, fmt.Sprintf("consistency %d%%", dash.ConsistencyScore))
	}
	return strings.Join(parts, "\n  ")
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "q", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Render("  Your study hub"))
	b.WriteString("\n")
	if h.summary != "" {
		b.WriteString(theme.Hint.Render("  " + h.summary))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(h.menu.View())

	box := theme.Card.Width(min(width-4, 64)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
