// Package cli provides the command-line interface for legalbot.
package cli

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"legalbot/internal/assistant"
	"legalbot/internal/config"
	"legalbot/internal/database"
	"legalbot/internal/history"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose bool

	// Global state wired in PersistentPreRunE
	cfg        *config.Config
	logger     *slog.Logger
	logCleanup func() error
	db         *sql.DB
	histRepo   history.Repository
	client     assistant.Client
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "legalbot",
	Short: "Terminal client for the LegalBot legal-assistant API",
	Long: `Legalbot is a terminal client for the LegalBot legal-assistant service.

Chat with the assistant, upload PDF documents for indexing so you can ask
questions about them, and review your conversation history. All answers are
produced by the remote LegalBot API; this client only orchestrates the
conversation.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return err
		}

		level := config.ParseLogLevel(cfg.LogLevel)
		if verbose {
			level = slog.LevelDebug
		}
		logger, logCleanup = config.SetupLogger(cfg.LogFile, level)
		slog.SetDefault(logger)

		db, err = database.InitDB(cfg.HistoryPath)
		if err != nil {
			return err
		}
		histRepo = history.NewSQLiteRepository(db)

		client = assistant.NewClient(assistant.Options{
			BaseURL: cfg.APIBaseURL,
			Token:   cfg.AuthToken,
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
			Logger:  logger,
		})

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			if err := db.Close(); err != nil {
				slog.Warn("failed to close history database", "error", err)
			}
		}
		if logCleanup != nil {
			if err := logCleanup(); err != nil {
				slog.Warn("failed to close log file", "error", err)
			}
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(clearDocsCmd)
}
