package plan

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyhub/internal/planner"
	"github.com/abhisek/studyhub/internal/router"
	"github.com/abhisek/studyhub/internal/ui/components"
	"github.com/abhisek/studyhub/internal/ui/layout"
	"github.com/abhisek/studyhub/internal/ui/report"
	"github.com/abhisek/studyhub/internal/ui/theme"
)

// PlanScreen is a checklist over today's plan blocks.
type PlanScreen struct {
	blocks   []planner.PlanBlock
	message  string
	done     map[int]bool
	selected int
}

var _ router.Screen = (*PlanScreen)(nil)
var _ router.KeyHintProvider = (*PlanScreen)(nil)

// New creates a plan screen for blocks with the mentor message on top.
func New(blocks []planner.PlanBlock, message string) *PlanScreen {
	return &PlanScreen{
		blocks:  blocks,
		message: message,
		done:    make(map[int]bool),
	}
}

func (s *PlanScreen) Init() tea.Cmd { return nil }

func (s *PlanScreen) Title() string { return "Today's Plan" }

func (s *PlanScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space", Description: "Toggle done"},
		{Key: "Esc", Description: "Back"},
	}
}

// DoneMinutes sums the minutes of finished blocks.
func (s *PlanScreen) DoneMinutes() int {
	total := 0
	for i, b := range s.blocks {
		if s.done[i] {
			total += b.Minutes
		}
	}
	return total
}

func (s *PlanScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "esc":
		return s, router.Pop()
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.blocks)-1 {
			s.selected++
		}
	case "space", " ", "x":
		if len(s.blocks) > 0 {
			s.done[s.selected] = !s.done[s.selected]
		}
	}
	return s, nil
}

func (s *PlanScreen) View(width, height int) string {
	total := planner.TotalMinutes(s.blocks)
	doneMin := s.DoneMinutes()

	bar := components.NewProgressBar("Progress", components.Ratio(doneMin, total), true, min(width-4, 60))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(report.Message(s.message, min(width-2, 78)))
	b.WriteString("\n\n")
	b.WriteString(report.PlanBlocks(s.blocks, s.done, s.selected))
	b.WriteString("\n\n  ")
	b.WriteString(bar.View())
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("  %d of %d min done", doneMin, total)))
	if total > 0 && doneMin == total {
		b.WriteString("\n\n" + theme.Heading.Render("  All blocks done. Great work today!"))
	}
	return b.String()
}
