package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyhub/internal/app"
	"github.com/abhisek/studyhub/internal/engine"
	"github.com/abhisek/studyhub/internal/history"
	"github.com/abhisek/studyhub/internal/mentor"
	"github.com/abhisek/studyhub/internal/request"
	historyscreen "github.com/abhisek/studyhub/internal/screens/history"
	"github.com/abhisek/studyhub/internal/screens/home"
	"github.com/abhisek/studyhub/internal/store"
	"github.com/abhisek/studyhub/internal/ui/report"
)

var _ engine.ShadowLogger = store.ShadowRepo(nil)

var planCmd = &cobra.Command{
	Use:   "plan [request.json]",
	Short: "Build today's study plan from a JSON request (file or stdin)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		tui, _ := cmd.Flags().GetBool("tui")
		useStore, _ := cmd.Flags().GetBool("use-store")
		noShadow, _ := cmd.Flags().GetBool("no-shadow")
		if asJSON && tui {
			return fmt.Errorf("use --json or --tui, not both")
		}

		req, err := readRequest(cmd, args)
		if err != nil {
			return err
		}

		ctx := cmd.Context()

		var st *store.Store
		if useStore || !noShadow {
			st, err = openStore()
			if err != nil {
				if useStore {
					return err
				}
				// Shadow logging is best effort.
				log.Warn("shadow log unavailable", "error", err)
			}
		}
		if st != nil {
			defer st.Close()
		}

		if useStore && st != nil {
			mergeStoredHistory(ctx, st.HistoryRepo(), &req)
		}

		opts := []engine.Option{engine.WithLogger(log)}
		if st != nil && !noShadow {
			opts = append(opts, engine.WithShadowLogger(st.ShadowRepo(cfg.ShadowLogLimit)))
		}
		resp := engine.New(opts...).Recommend(ctx, req)

		switch {
		case asJSON:
			return writeJSON(cmd.OutOrStdout(), resp)
		case tui:
			dash := mentor.Stats(req.History, req.Streak)
			return app.Run(app.Options{
				Home: home.Options{
					Response:  &resp,
					Dashboard: &dash,
					History:   historyscreen.FromMemory(req.History),
				},
				Streak: req.Streak,
				Risk:   string(resp.DropoutRisk),
			})
		default:
			fmt.Fprint(cmd.OutOrStdout(), report.Plan(resp, 80))
			return nil
		}
	},
}

func init() {
	planCmd.Flags().Bool("json", false, "Print the response as JSON")
	planCmd.Flags().Bool("tui", false, "Open the interactive view")
	planCmd.Flags().Bool("use-store", false, "Use stored history when the request has none")
	planCmd.Flags().Bool("no-shadow", false, "Do not record predictions in the shadow log")
}

// readRequest decodes the request from the file named in args, or from
// stdin when there is none or it is "-".
func readRequest(cmd *cobra.Command, args []string) (engine.Request, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return engine.Request{}, fmt.Errorf("open request: %w", err)
		}
		defer f.Close()
		r = f
	}
	return request.Read(r)
}

// mergeStoredHistory fills in history and streak from the store when the
// request carries none. An unreadable store leaves the history empty.
func mergeStoredHistory(ctx context.Context, repo store.HistoryRepo, req *engine.Request) {
	if len(req.History) == 0 {
		h, err := repo.Query(ctx, store.QueryOpts{})
		if err != nil {
			log.Warn("stored history unavailable, planning without it", "error", err)
		}
		req.History = h
	}
	if req.Streak == 0 {
		req.Streak = history.Streak(req.History)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
