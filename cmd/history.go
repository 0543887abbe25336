package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/abhisek/studyhub/internal/history"
	"github.com/abhisek/studyhub/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Record and browse study sessions",
}

var historyAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record one study session",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		minutes, _ := cmd.Flags().GetInt("minutes")
		date, _ := cmd.Flags().GetString("date")
		at, _ := cmd.Flags().GetString("time")
		completed, _ := cmd.Flags().GetBool("completed")
		diff, _ := cmd.Flags().GetString("difficulty")

		subject = strings.TrimSpace(subject)
		if subject == "" {
			return fmt.Errorf("--subject is required")
		}
		if minutes < 0 {
			return fmt.Errorf("--minutes must not be negative")
		}
		if date == "" {
			date = time.Now().Format(time.DateOnly)
		}
		if _, err := time.Parse(time.DateOnly, date); err != nil {
			return fmt.Errorf("invalid --date %q: want YYYY-MM-DD", date)
		}

		rec := history.SessionRecord{
			Subject:   subject,
			Date:      date,
			Minutes:   minutes,
			Completed: completed,
		}
		rec.Difficulty, _ = history.ParseDifficulty(diff)
		if at != "" {
			if _, err := time.Parse("15:04", at); err != nil {
				return fmt.Errorf("invalid --time %q: want HH:MM", at)
			}
			rec.Timestamp = date + "T" + at + ":00"
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.HistoryRepo().Append(cmd.Context(), rec); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Recorded %d min of %s on %s.\n", rec.Minutes, rec.Subject, rec.Date)
		return nil
	},
}

var historyImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import sessions from a JSON array or a plan request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		recs, err := decodeSessions(data)
		if err != nil {
			return err
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.HistoryRepo().Append(cmd.Context(), recs...); err != nil {
			return fmt.Errorf("import sessions: %w", err)
		}
		log.Info("history imported", "file", args[0], "records", len(recs))
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d session(s).\n", len(recs))
		return nil
	},
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		subject, _ := cmd.Flags().GetString("subject")
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		recs, err := s.HistoryRepo().Query(cmd.Context(), store.QueryOpts{Limit: limit, Subject: subject})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		out := cmd.OutOrStdout()
		if asJSON {
			if recs == nil {
				recs = history.StudyHistory{}
			}
			return writeJSON(out, recs)
		}
		if len(recs) == 0 {
			fmt.Fprintln(out, "No sessions recorded.")
			return nil
		}

		fmt.Fprintf(out, "%-10s  %-20s  %7s  %-9s  %-7s  %s\n",
			"Date", "Subject", "Minutes", "Completed", "Level", "Time")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for _, r := range recs {
			done := "✗"
			if r.Completed {
				done = "✓"
			}
			name := clip(r.Subject, 20)
			fmt.Fprintf(out, "%-10s  %-20s  %7d  %-9s  %-7s  %s\n",
				r.Date, name, r.Minutes, done, r.Difficulty, r.Timestamp)
		}
		fmt.Fprintf(out, "\n%d session(s), streak %d day(s)\n", len(recs), history.Streak(recs))
		return nil
	},
}

func init() {
	historyAddCmd.Flags().String("subject", "", "Subject studied")
	historyAddCmd.Flags().Int("minutes", 0, "Minutes spent")
	historyAddCmd.Flags().String("date", "", "Session date, YYYY-MM-DD (default today)")
	historyAddCmd.Flags().String("time", "", "Start time, HH:MM")
	historyAddCmd.Flags().Bool("completed", false, "Mark the session as completed")
	historyAddCmd.Flags().String("difficulty", "average", "Self-rating: weak, average or strong")

	historyListCmd.Flags().Int("limit", 20, "Most recent N sessions (0 = all)")
	historyListCmd.Flags().String("subject", "", "Only this subject")
	historyListCmd.Flags().Bool("json", false, "Print as JSON")

	historyCmd.AddCommand(historyAddCmd)
	historyCmd.AddCommand(historyImportCmd)
	historyCmd.AddCommand(historyListCmd)
}

// clip shortens s to at most width cells, ending in "..." when cut.
func clip(s string, width int) string {
	return ansi.Truncate(s, width, "...")
}

// decodeSessions accepts either a JSON array of sessions or an object with
// a "history" array, such as a saved plan request.
func decodeSessions(data []byte) (history.StudyHistory, error) {
	data = bytes.TrimSpace(data)
	var recs history.StudyHistory
	if len(data) > 0 && data[0] == '{' {
		var wrapper struct {
			History history.StudyHistory `json:"history"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, fmt.Errorf("decode sessions: %w", err)
		}
		recs = wrapper.History
	} else if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("decode sessions: %w", err)
	}
	return recs, nil
}
