package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/tbourn/go-news-api/internal/config"
	"github.com/tbourn/go-news-api/internal/repo"
	"github.com/tbourn/go-news-api/internal/sysutil"
)

// Version is stamped at build time with -ldflags "-X .../commands.Version=...".
var Version = "dev"

var (
	// Global flags
	envFile  string
	dbDriver string
	dbPath   string

	// cfg is loaded once per invocation by the root PersistentPreRunE.
	cfg config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "newsapi",
	Short: "News API - articles, topics, users and comments over REST",
	Long: `newsapi serves a JSON REST API for a news site and manages its database.

Configuration comes from the environment (optionally a .env file); flags
override the storage settings.

Commands:
  serve    - Run the HTTP server
  migrate  - Create or update the schema
  seed     - Drop, recreate and load the development dataset`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(envFile); err != nil {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		loaded.DBDriver = strings.ToLower(sysutil.FirstNonEmpty(dbDriver, loaded.DBDriver))
		loaded.DBPath = sysutil.FirstNonEmpty(dbPath, loaded.DBPath)
		cfg = loaded

		sysutil.SetupLogger(cfg.LogLevel, cfg.LogPretty, cmd.ErrOrStderr())
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Dotenv file to load before reading the environment")
	rootCmd.PersistentFlags().StringVar(&dbDriver, "db-driver", "", "Database driver: sqlite or postgres (overrides DB_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db-path", "", "SQLite database file (overrides DB_PATH)")

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// openStore opens the configured database.
func openStore() (*gorm.DB, error) {
	dsn := cfg.DBPath
	if cfg.DBDriver == config.DriverPostgres {
		dsn = cfg.DatabaseURL
	}
	return repo.Open(repo.Options{
		Driver:  cfg.DBDriver,
		DSN:     dsn,
		Tracing: cfg.OTEL.Enabled,
	})
}
