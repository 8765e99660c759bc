package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arbazsiddiqui/folio"
	"github.com/arbazsiddiqui/folio/views"
)

var watch bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Index the content directory and serve the site",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := folio.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("watch") {
			cfg.Watch = watch
		}

		opts := []folio.Option{}
		if cfg.ProjectsFile != "" {
			projects, err := folio.LoadProjects(cfg.ProjectsFile)
			if err != nil {
				return err
			}
			opts = append(opts, folio.WithProjects(projects))
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app := folio.New(cfg, views.Funcs(), opts...)
		defer app.Close()

		app.Logger.Infof("serving %s on %s", cfg.URL+cfg.PathPrefix, cfg.Addr)
		return app.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&watch, "watch", false, "re-index when content changes")
}
