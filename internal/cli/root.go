package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var cfgErr error
	cfg, cfgErr = LoadConfig()

	rootCmd := &cobra.Command{
		Use:   "linea",
		Short: "Play a gravity-drop connection game in the terminal",
		Long: `linea runs a two-player game where Red and Blue take turns dropping
pieces into the columns of a board. The board size and the winning rule
(variant A, B or C) are configurable.

Defaults can be set with LINEA_COLUMNS, LINEA_ROWS, LINEA_VARIANT,
LINEA_LANG, LINEA_OUTPUT and LINEA_VERBOSE.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: LINEA_OUTPUT)")
	rootCmd.PersistentFlags().StringVar(&cfg.Lang, "lang", cfg.Lang, "Language for messages: en, es (env: LINEA_LANG)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output (env: LINEA_VERBOSE)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newVariantsCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
