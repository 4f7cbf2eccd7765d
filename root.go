package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/flashcards/zhdeck/app"
	"github.com/flashcards/zhdeck/config"
	"github.com/flashcards/zhdeck/dbinterface"
)

var (
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "zhdeck",
	Short: "Build Chinese flashcard notes from CC-CEDICT and a word list",
	Long: `zhdeck indexes CC-CEDICT style dictionaries, picks the preferred entry
for every word of an HSK, Integrated Chinese or Hanping word list and renders
the result as flashcard notes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Log.Level = "debug"
		}
		logger = app.NewLogger(cfg.Log)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("CONFIG_PATH"), "YAML config file (default: environment only)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

func connect(ctx context.Context) (*dbinterface.DatabaseConn, error) {
	dbc, err := dbinterface.Connect(ctx, cfg.MySQL.DriverConfig(), cfg.MySQL.Table)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.MySQL.Addr, err)
	}
	return dbc, nil
}
