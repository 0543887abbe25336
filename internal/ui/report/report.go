// Package report renders plan responses and mentor dashboards with
// lipgloss. The same sections back the static CLI output and the
// interactive screens.
package report

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhub/internal/analytics"
	"github.com/abhisek/studyhub/internal/engine"
	"github.com/abhisek/studyhub/internal/mentor"
	"github.com/abhisek/studyhub/internal/planner"
	"github.com/abhisek/studyhub/internal/ui/components"
	"github.com/abhisek/studyhub/internal/ui/theme"
)

const barWidth = 36

// NamedScore is a weakness score paired with its subject.
type NamedScore struct {
	Subject string
	analytics.WeaknessScore
}

// SortScores orders scores weakest first, ties by subject name.
func SortScores(scores map[string]analytics.WeaknessScore) []NamedScore {
	out := make([]NamedScore, 0, len(scores))
	for name, s := range scores {
		out = append(out, NamedScore{Subject: name, WeaknessScore: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Subject < out[j].Subject
	})
	return out
}

// Plan renders the full response: mentor message, plan and insights.
func Plan(resp engine.Response, width int) string {
	sections := []string{
		Message(resp.MentorMessage, width),
		theme.Heading.Render("Today's plan"),
		PlanBlocks(resp.StudyPlan, nil, -1),
		theme.Heading.Render("Insights"),
		Insights(resp),
		theme.Heading.Render("Weakness scores"),
		Weakness(resp.WeaknessScores),
	}
	return strings.Join(sections, "\n\n") + "\n"
}

// Message renders the mentor message in a card.
func Message(msg string, width int) string {
	return theme.Card.
		Width(max(width-2, 20)).
		Render(theme.Body.Render(msg))
}

// PlanBlocks renders the plan as a list. done marks finished blocks by
// index; selected highlights one row (-1 for none).
func PlanBlocks(plan []planner.PlanBlock, done map[int]bool, selected int) string {
	if len(plan) == 0 {
		return theme.Hint.Render("  Nothing scheduled today.")
	}

	nameWidth := 0
	for _, b := range plan {
		nameWidth = max(nameWidth, lipgloss.Width(b.Subject))
	}

	var b strings.Builder
	for i, blk := range plan {
		check := "[ ]"
		if done[i] {
			check = "[x]"
		}
		line := fmt.Sprintf("%s %-*s  #%d  %3d min  %s",
			check, nameWidth, blk.Subject, blk.SessionID, blk.Minutes, blk.Difficulty)

		cursor := "  "
		style := theme.Unselected
		switch {
		case i == selected:
			cursor = "▸ "
			style = theme.Selected
		case done[i]:
			style = theme.Done
		}
		b.WriteString(cursor + style.Render(line) + "\n")
	}
	b.WriteString(theme.Hint.Render(fmt.Sprintf("  Total: %d min", planner.TotalMinutes(plan))))
	return b.String()
}

// Insights renders the risk, profile and time-window outcomes.
func Insights(resp engine.Response) string {
	risk := lipgloss.NewStyle().
		Foreground(theme.RiskColor(string(resp.DropoutRisk))).
		Bold(true).
		Render(string(resp.DropoutRisk))

	rows := []string{
		insight("Dropout risk", risk, resp.DropoutRationale, resp.DropoutConfidence),
		insight("Study profile", theme.Body.Bold(true).Render(string(resp.StudyProfile)),
			resp.StudyProfileRationale, resp.StudyProfileConfidence),
		insight("Session length", theme.Body.Bold(true).Render(fmt.Sprintf("%d-%d min",
			resp.RecommendedTimeRange.Min(), resp.RecommendedTimeRange.Max())),
			resp.RecommendedTimeRationale, resp.RecommendedTimeConfidence),
	}
	return strings.Join(rows, "\n")
}

func insight(label, value, rationale string, c analytics.Confidence) string {
	head := fmt.Sprintf("  %-15s %s %s", label, value,
		theme.Hint.Render("("+strings.ToLower(string(c))+" confidence)"))
	return head + "\n" + theme.Hint.Render("  "+strings.Repeat(" ", 16)+rationale)
}

// Weakness renders one bar per subject, weakest first.
func Weakness(scores map[string]analytics.WeaknessScore) string {
	sorted := SortScores(scores)
	if len(sorted) == 0 {
		return theme.Hint.Render("  No history yet.")
	}

	nameWidth := 0
	for _, s := range sorted {
		nameWidth = max(nameWidth, lipgloss.Width(s.Subject))
	}

	var b strings.Builder
	for _, s := range sorted {
		bar := components.ProgressBar{
			Label:   fmt.Sprintf("  %-*s", nameWidth, s.Subject),
			Percent: s.Score,
			Width:   nameWidth + 2 + barWidth,
			Fill:    theme.ScoreColor(s.Score),
		}
		b.WriteString(bar.View())
		b.WriteString(fmt.Sprintf("  %.2f", s.Score) + "\n")
		b.WriteString(theme.Hint.Render("  "+s.Rationale) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Dashboard renders the mentor dashboard.
func Dashboard(d mentor.Dashboard) string {
	consistency := components.ProgressBar{
		Label:       "  Consistency",
		Percent:     float64(d.ConsistencyScore) / 100,
		ShowPercent: true,
		Width:       barWidth + 20,
	}

	risk := d.DropoutRisk
	summary := []string{
		consistency.View(),
		fmt.Sprintf("  Streak         %d day(s), next milestone %d", d.Streak, d.NextMilestone),
		fmt.Sprintf("  Week total     %d min, average completion %s", d.Weekly.TotalMinutes, d.Weekly.AvgCompletion),
		fmt.Sprintf("  Top priority   %s", theme.Selected.Render(d.TopPriority)),
		fmt.Sprintf("  Dropout risk   %s %s",
			lipgloss.NewStyle().Foreground(theme.RiskColor(string(risk.Value))).Bold(true).Render(string(risk.Value)),
			theme.Hint.Render(risk.Rationale)),
		fmt.Sprintf("  Study profile  %s %s",
			theme.Body.Bold(true).Render(string(d.StudyProfile.Value)),
			theme.Hint.Render(d.StudyProfile.Rationale)),
	}

	sections := []string{
		strings.Join(summary, "\n"),
		theme.Heading.Render("Alerts"),
		Alerts(d.Alerts),
		theme.Heading.Render("Effort vs target"),
		Effort(d.EffortTrend),
		theme.Heading.Render("Weakness scores"),
		Weakness(d.Weaknesses),
	}
	return strings.Join(sections, "\n\n") + "\n"
}

// Alerts renders mentor alerts colored by severity.
func Alerts(alerts []mentor.Alert) string {
	if len(alerts) == 0 {
		return theme.Hint.Render("  No alerts. Keep it up!")
	}
	lines := make([]string, 0, len(alerts))
	for _, a := range alerts {
		lines = append(lines, "  "+lipgloss.NewStyle().
			Foreground(theme.AlertColor(string(a.Type))).
			Render(a.Message))
	}
	return strings.Join(lines, "\n")
}

// Effort renders one bar per session against the daily target.
func Effort(points []mentor.EffortPoint) string {
	if len(points) == 0 {
		return theme.Hint.Render("  No sessions in the last week.")
	}
	lines := make([]string, 0, len(points))
	for _, p := range points {
		pct := components.Ratio(p.Actual, p.Target)
		fill := theme.Secondary
		if p.Actual >= p.Target {
			fill = theme.Success
		}
		bar := components.ProgressBar{
			Label:   "  " + p.Date,
			Percent: pct,
			Width:   barWidth + 14,
			Fill:    fill,
		}
		lines = append(lines, bar.View()+fmt.Sprintf("  %d/%d min", p.Actual, p.Target))
	}
	return strings.Join(lines, "\n")
}
