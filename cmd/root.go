package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/studyhub/internal/config"
	"github.com/abhisek/studyhub/internal/logger"
	"github.com/abhisek/studyhub/internal/store"
)

var (
	cfg config.Config
	log = logger.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "studyhub",
	Short: "Personalized study plans from your study history",
	Long: "StudyHub analyzes a learner's study sessions and produces a daily plan, " +
		"a mentor message, weakness scores, dropout risk and a study profile.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.FromEnv()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if p, _ := cmd.Flags().GetString("db"); p != "" {
			c.DBPath = p
		}
		cfg = c

		l, err := logger.New(cfg.LogMode)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		log = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYHUB_DB env var)")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(shadowCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// openStore opens the configured database, creating its directory.
func openStore() (*store.Store, error) {
	if err := store.EnsureDir(cfg.DBPath); err != nil {
		return nil, fmt.Errorf("create database dir: %w", err)
	}
	s, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
