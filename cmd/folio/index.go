package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"github.com/arbazsiddiqui/folio"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the content index and thumbnails without serving",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := folio.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		store, err := folio.NewStore(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer store.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		stats, err := folio.NewIndexer(cfg, store, log.New("folio")).Run(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "indexed %d posts, %d pages (%d drafts skipped, %d thumbnails)\n",
			stats.Posts, stats.Pages, stats.Drafts, stats.Thumbnails)
		return nil
	},
}
