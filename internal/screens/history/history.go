package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	studyhistory "github.com/abhisek/studyhub/internal/history"
	"github.com/abhisek/studyhub/internal/router"
	"github.com/abhisek/studyhub/internal/ui/components"
	"github.com/abhisek/studyhub/internal/ui/layout"
	"github.com/abhisek/studyhub/internal/ui/theme"
)

// Limit is how many records the screen loads.
const Limit = 50

// Loader fetches up to limit records, oldest first. An empty subject
// matches every record.
type Loader func(ctx context.Context, subject string, limit int) (studyhistory.StudyHistory, error)

type historyLoadedMsg struct {
	Records studyhistory.StudyHistory
	Subject string
	Err     error
}

// HistoryScreen lists recent sessions, newest first.
type HistoryScreen struct {
	load     Loader
	records  studyhistory.StudyHistory // newest first
	subject  string
	filter   components.TextInput
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ router.Screen = (*HistoryScreen)(nil)
var _ router.KeyHintProvider = (*HistoryScreen)(nil)
var _ router.InputCapturer = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(load Loader) *HistoryScreen {
	return &HistoryScreen{
		load:     load,
		filter:   components.NewTextInput("Subject:", "type to filter", 40),
		expanded: make(map[int]bool),
	}
}

// FromMemory adapts an in-memory history to a Loader.
func FromMemory(h studyhistory.StudyHistory) Loader {
	return func(_ context.Context, subject string, limit int) (studyhistory.StudyHistory, error) {
		var out studyhistory.StudyHistory
		for _, r := range h.SortedByDate() {
			if subject == "" || r.Subject == subject {
				out = append(out, r)
			}
		}
		return out.Last(limit), nil
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.fetch(s.subject)
}

func (s *HistoryScreen) fetch(subject string) tea.Cmd {
	load := s.load
	return func() tea.Msg {
		recs, err := load(context.Background(), subject, Limit)
		return historyLoadedMsg{Records: recs, Subject: subject, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) CapturingInput() bool {
	return s.filter.Focused()
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	if s.filter.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Details"},
		{Key: "/", Description: "Filter"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.loaded = true
		s.errMsg = ""
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.subject = msg.Subject
		s.records = reversed(msg.Records)
		s.selected = 0
		s.expanded = make(map[int]bool)
		return s, nil

	case tea.KeyMsg:
		if s.filter.Focused() {
			return s.updateFilter(msg)
		}
		switch msg.String() {
		case "esc":
			if s.subject != "" {
				return s, s.fetch("")
			}
			return s, router.Pop()
		case "/":
			return s, s.filter.Focus()
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) updateFilter(msg tea.KeyMsg) (router.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		subject := s.filter.Value()
		s.filter.Blur()
		s.filter.Reset()
		return s, s.fetch(subject)
	case "esc":
		s.filter.Blur()
		s.filter.Reset()
		return s, nil
	}
	var cmd tea.Cmd
	s.filter, cmd = s.filter.Update(msg)
	return s, cmd
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Loading history...")
	}

	var b strings.Builder
	b.WriteString("\n  " + s.filter.View() + "\n")
	if s.subject != "" {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  Showing %s only (Esc to clear)", s.subject)) + "\n")
	}
	b.WriteString("\n")

	if len(s.records) == 0 {
		b.WriteString(center.Foreground(theme.TextDim).Italic(true).Render("No sessions yet. Start studying!"))
		return b.String()
	}

	subjectWidth := 20
	if layout.IsCompactWidth(width) {
		subjectWidth = 12
	}
	for i, rec := range s.records {
		prefix := "  "
		style := theme.Unselected
		if i == s.selected {
			prefix = "▸ "
			style = theme.Selected
		}

		status := "skipped"
		if rec.Completed {
			status = "done"
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%-10s  %-*s %4d min  %s",
			prefix, rec.Date, subjectWidth, truncate(rec.Subject, subjectWidth), rec.Minutes, status)))
		b.WriteString("\n")

		if s.expanded[i] {
			ts := rec.Timestamp
			if ts == "" {
				ts = "no timestamp"
			}
			b.WriteString(theme.Hint.Render(fmt.Sprintf("      difficulty %s, %s", rec.Difficulty, ts)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func reversed(h studyhistory.StudyHistory) studyhistory.StudyHistory {
	out := make(studyhistory.StudyHistory, len(h))
	for i, r := range h {
		out[len(h)-1-i] = r
	}
	return out
}
