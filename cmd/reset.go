package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded sessions and predictions",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		out := cmd.OutOrStdout()

		if !yes {
			fmt.Fprintf(out, "Delete all study history in %s? [y/N] ", cfg.DBPath)
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		sessions, err := s.HistoryRepo().Clear(ctx)
		if err != nil {
			return err
		}
		predictions, err := s.ShadowRepo(cfg.ShadowLogLimit).Clear(ctx)
		if err != nil {
			return err
		}
		log.Info("learner data reset", "sessions", sessions, "predictions", predictions)
		fmt.Fprintf(out, "Removed %d session(s) and %d prediction(s).\n", sessions, predictions)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
