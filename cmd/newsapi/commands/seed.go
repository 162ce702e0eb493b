package commands

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tbourn/go-news-api/internal/config"
	"github.com/tbourn/go-news-api/internal/repo"
	"github.com/tbourn/go-news-api/internal/seed"
)

var (
	// Seed flags
	seedForce bool
)

// seedCmd resets the database to the development dataset
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Drop, recreate and load the development dataset",
	Long: `Drop every table, recreate the schema and insert the development dataset
(3 topics, 4 users, 13 articles, 18 comments).

Seeding a PostgreSQL database requires --force.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context())
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "Allow seeding a PostgreSQL database")
}

func runSeed(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.DBDriver == config.DriverPostgres && !seedForce {
		return errors.New("refusing to drop a postgres database without --force")
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = repo.Close(db) }()

	log.Warn().Str("driver", cfg.DBDriver).Msg("dropping all tables")
	return seed.Run(ctx, db, seed.TestData())
}
