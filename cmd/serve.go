package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"quotesearch/config/database"
	"quotesearch/internal/quote/repository"
	"quotesearch/pkg/logger"
	"quotesearch/router"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the quote search HTTP server",
	Long: `Starts the HTTP server exposing the paginated quote listing, the
search endpoint and the authenticated write path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFromContext(cmd.Context())
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}
		if !repository.ValidMode(cfg.Search.Mode) {
			return fmt.Errorf("invalid search.mode %q: must be %q or %q",
				cfg.Search.Mode, repository.ModeSubstring, repository.ModeRanked)
		}
		if !repository.ValidWeight(cfg.Search.NameWeight) || !repository.ValidWeight(cfg.Search.QuoteWeight) {
			return fmt.Errorf("invalid search weight labels %q/%q: must be A, B, C or D",
				cfg.Search.NameWeight, cfg.Search.QuoteWeight)
		}

		db, err := database.Connect(cfg.Database.DSN)
		if err != nil {
			return err
		}
		defer db.Close()

		handler := router.Setup(db, cfg)
		logger.Sugar.Infof("quotesearch listening on %s (search mode: %s)", cfg.Server.Addr, cfg.Search.Mode)
		return http.ListenAndServe(cfg.Server.Addr, handler)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}
