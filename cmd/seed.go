package cmd

import (
	"github.com/spf13/cobra"

	"quotesearch/config/database"
	"quotesearch/internal/quote/repository"
	"quotesearch/internal/seeder"
	"quotesearch/pkg/logger"
)

var (
	seedCount int
	seedValue uint64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the quote store with fake data",
	Long: `Inserts synthetic quote records (a person name plus a short paragraph)
for manual testing and demos. Best effort: a failed insert aborts the batch
and rows already written stay written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFromContext(cmd.Context())
		if err != nil {
			return err
		}

		count := seedCount
		if count < 1 {
			count = cfg.Seed.Count
		}

		db, err := database.Connect(cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer db.Close()

		logger.Sugar.Infof("Seeding %d quotes...", count)
		s := seeder.New(repository.NewQuoteRepository(db), seedValue)
		return s.Run(count)
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", 0, "number of quotes to insert (defaults to seed.count)")
	seedCmd.Flags().Uint64Var(&seedValue, "seed", 0, "faker seed for reproducible batches (0 = random)")
	rootCmd.AddCommand(seedCmd)
}
