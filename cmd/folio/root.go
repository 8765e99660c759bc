package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:           "folio",
	Short:         "folio - a personal blog and portfolio server",
	Long:          `folio indexes a directory of markdown posts into SQLite and serves them, together with a project portfolio, over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the folio version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "folio %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "site.yaml", "site configuration file")
	rootCmd.AddCommand(serveCmd, indexCmd, newCmd, versionCmd)
}
