package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var shadowCmd = &cobra.Command{
	Use:   "shadow",
	Short: "Inspect recorded analytics predictions",
}

var shadowListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent predictions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		model, _ := cmd.Flags().GetString("model")

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		entries, err := s.ShadowRepo(cfg.ShadowLogLimit).Recent(cmd.Context(), 0)
		if err != nil {
			return fmt.Errorf("query predictions: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "No predictions recorded.")
			return nil
		}

		fmt.Fprintf(out, "%-6s  %-19s  %-14s  %s\n", "Seq", "Timestamp", "Model", "Payload")
		fmt.Fprintln(out, strings.Repeat("─", 90))

		shown := 0
		for _, e := range entries {
			if model != "" && e.Model != model {
				continue
			}
			if limit > 0 && shown == limit {
				break
			}
			payload := clip(string(e.Payload), 44)
			fmt.Fprintf(out, "%-6d  %-19s  %-14s  %s\n",
				e.Sequence, e.CreatedAt.Local().Format("2006-01-02 15:04:05"), e.Model, payload)
			shown++
		}
		return nil
	},
}

var shadowViewCmd = &cobra.Command{
	Use:   "view <sequence>",
	Short: "Print one prediction in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid sequence %q: %w", args[0], err)
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.ShadowRepo(cfg.ShadowLogLimit).Get(cmd.Context(), seq)
		if err != nil {
			return fmt.Errorf("get prediction: %w", err)
		}
		if e == nil {
			return fmt.Errorf("prediction %d not found", seq)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Sequence:  %d\n", e.Sequence)
		fmt.Fprintf(out, "ID:        %s\n", e.ID)
		fmt.Fprintf(out, "Time:      %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(out, "Model:     %s\n", e.Model)
		fmt.Fprintln(out, strings.Repeat("─", 60))

		var pretty bytes.Buffer
		if err := json.Indent(&pretty, e.Payload, "", "  "); err != nil {
			fmt.Fprintln(out, string(e.Payload))
			return nil
		}
		fmt.Fprintln(out, pretty.String())
		return nil
	},
}

var shadowStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count retained predictions per model",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		counts, err := s.ShadowRepo(cfg.ShadowLogLimit).ModelCounts(cmd.Context())
		if err != nil {
			return fmt.Errorf("count predictions: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(counts) == 0 {
			fmt.Fprintln(out, "No predictions recorded.")
			return nil
		}

		models := make([]string, 0, len(counts))
		for m := range counts {
			models = append(models, m)
		}
		sort.Strings(models)

		fmt.Fprintf(out, "%-16s  %6s\n", "Model", "Count")
		fmt.Fprintln(out, strings.Repeat("─", 24))
		total := 0
		for _, m := range models {
			fmt.Fprintf(out, "%-16s  %6d\n", m, counts[m])
			total += counts[m]
		}
		fmt.Fprintln(out, strings.Repeat("─", 24))
		fmt.Fprintf(out, "%-16s  %6d  (limit %d)\n", "TOTAL", total, cfg.ShadowLogLimit)
		return nil
	},
}

func init() {
	shadowListCmd.Flags().Int("limit", 20, "Show at most N predictions (0 = all)")
	shadowListCmd.Flags().String("model", "", "Only this model (weakness, dropout_risk, study_profile, time_range)")

	shadowCmd.AddCommand(shadowListCmd)
	shadowCmd.AddCommand(shadowViewCmd)
	shadowCmd.AddCommand(shadowStatsCmd)
}
