package cmd

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
	"github.com/taigram/docs-theme/internal/app"
	"github.com/taigram/docs-theme/internal/preview"
)

var serveOpts struct {
	addr      string
	watch     bool
	staticDir string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the live preview server",
	Long: `Serves an interactive preview of the page title. The slug, display class and
locale can be changed in the browser; the site configuration is reloaded when the file changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		addr := serveOpts.addr
		if addr == "" {
			addr = appConfig.GetPreviewAddr()
		}
		watch := appConfig.GetPreviewWatch()
		if cmd.Flags().Changed("watch") {
			watch = serveOpts.watch
		}

		injector := app.NewInjector(app.Options{SitePath: sitePath, StaticDir: serveOpts.staticDir})

		srv, err := do.Invoke[*preview.Server](injector)
		if err != nil {
			return err
		}

		if watch {
			if err := preview.Watch(ctx, do.MustInvoke[*preview.SiteSource](injector)); err != nil {
				return err
			}
		} else {
			slog.Info("Hot-reload disabled, skipping configuration watcher")
		}

		return srv.Start(ctx, addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveOpts.addr, "addr", "", "listen address; defaults to $PREVIEW_ADDR or :8080")
	serveCmd.Flags().BoolVar(&serveOpts.watch, "watch", true, "reload the site configuration when it changes; defaults to $PREVIEW_WATCH")
	serveCmd.Flags().StringVar(&serveOpts.staticDir, "static", "static", "directory served under /static (the logo lives here)")
}
