package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyhub/internal/app"
	"github.com/abhisek/studyhub/internal/history"
	"github.com/abhisek/studyhub/internal/mentor"
	historyscreen "github.com/abhisek/studyhub/internal/screens/history"
	"github.com/abhisek/studyhub/internal/screens/home"
	"github.com/abhisek/studyhub/internal/store"
	"github.com/abhisek/studyhub/internal/ui/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the mentor dashboard for the stored history",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		tui, _ := cmd.Flags().GetBool("tui")
		if asJSON && tui {
			return fmt.Errorf("use --json or --tui, not both")
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		repo := s.HistoryRepo()
		h, err := repo.Query(cmd.Context(), store.QueryOpts{})
		if err != nil {
			log.Warn("stored history unreadable, showing an empty dashboard", "error", err)
			h = nil
		}
		streak := history.Streak(h)
		dash := mentor.Stats(h, streak)

		switch {
		case asJSON:
			return writeJSON(cmd.OutOrStdout(), dash)
		case tui:
			return app.Run(app.Options{
				Home: home.Options{
					Dashboard: &dash,
					History:   storeLoader(repo),
				},
				Streak: streak,
				Risk:   string(dash.DropoutRisk.Value),
			})
		default:
			if len(h) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sessions recorded yet. Add one with `studyhub history add`.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Dashboard(dash))
			return nil
		}
	},
}

func init() {
	statsCmd.Flags().Bool("json", false, "Print the dashboard as JSON")
	statsCmd.Flags().Bool("tui", false, "Open the interactive view")
}

// storeLoader adapts the history repo to the history screen.
func storeLoader(repo store.HistoryRepo) historyscreen.Loader {
	return func(ctx context.Context, subject string, limit int) (history.StudyHistory, error) {
		return repo.Query(ctx, store.QueryOpts{Subject: subject, Limit: limit})
	}
}
