package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/taigram/docs-theme/internal/config"
	"github.com/taigram/docs-theme/internal/logging"
)

var (
	appConfig *config.Config
	sitePath  string
)

var rootCmd = &cobra.Command{
	Use:   "pagetitle",
	Short: "Render and preview the taigram docs page title",
	Long: `pagetitle renders the site title block used by the taigram documentation theme.

Available commands:
  render     Render the title fragment for a page slug
  serve      Run the live preview server
  locales    List supported locales and their default titles

Use "pagetitle [command] --help" for more information about a command.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// stdout carries command output; logs go to stderr.
		logging.New(cmd.ErrOrStderr())
		appConfig = config.New()
		if sitePath == "" {
			sitePath = appConfig.GetSitePath()
		}
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&sitePath, "config", "c", "", "site configuration file (.yaml, .yml or .toml); defaults to $SITE_CONFIG or quartz.yaml")
}
