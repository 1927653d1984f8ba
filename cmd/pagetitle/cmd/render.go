package cmd

import (
	"context"
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
	"github.com/taigram/docs-theme/internal/app"
	"github.com/taigram/docs-theme/internal/component"
	"github.com/taigram/docs-theme/internal/config"
	"github.com/taigram/docs-theme/internal/i18n"
	"github.com/taigram/docs-theme/internal/paths"
	"github.com/taigram/docs-theme/internal/rendering"
	"github.com/taigram/docs-theme/internal/storage"
	"github.com/taigram/docs-theme/internal/stylesheet"
)

var renderOpts struct {
	slug      string
	class     string
	locale    string
	out       string
	withStyle bool
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the page title fragment for a slug",
	Long: `Renders the page title block for one page. By default the markup is printed to
stdout; with --out the fragment and the aggregated stylesheet are written to that directory.`,
	Example: `  pagetitle render --slug blog/post1
  pagetitle render -c quartz.toml --slug index --class mobile-only --out public/`,
	RunE: func(cmd *cobra.Command, args []string) error {
		injector := app.NewInjector(app.Options{SitePath: sitePath})
		return runRender(cmd, injector)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOpts.slug, "slug", "s", "", "slug of the page being rendered (e.g. 'blog/post1')")
	renderCmd.Flags().StringVar(&renderOpts.class, "class", "", "display class prepended to the component class (e.g. 'mobile-only')")
	renderCmd.Flags().StringVar(&renderOpts.locale, "locale", "", "override the site locale; loose tags like 'ru' are matched to a supported locale")
	renderCmd.Flags().StringVarP(&renderOpts.out, "out", "o", "", "directory to write page-title.html and index.css into")
	renderCmd.Flags().BoolVar(&renderOpts.withStyle, "with-style", false, "print the component <style> block after the markup")
	_ = renderCmd.MarkFlagRequired("slug")
}

func runRender(cmd *cobra.Command, injector do.Injector) error {
	ctx := cmd.Context()

	site, err := do.Invoke[*config.SiteConfig](injector)
	if err != nil {
		return err
	}
	c, err := do.Invoke[component.Renderable](injector)
	if err != nil {
		return err
	}
	renderer := do.MustInvoke[rendering.Renderer](injector)
	sheet := do.MustInvoke[*stylesheet.Sheet](injector)

	cfg := *site
	if renderOpts.locale != "" {
		cfg.Locale = i18n.Match(renderOpts.locale)
	}

	frag, err := rendering.RenderFragment(ctx, renderer, c, component.Props{
		Cfg:          &cfg,
		File:         &component.FileData{Slug: paths.FullSlug(renderOpts.slug)},
		DisplayClass: component.DisplayClass(renderOpts.class),
	})
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", c.Name(), err)
	}

	if renderOpts.out != "" {
		written, err := storage.SaveFragment(ctx, storage.NewDirStore(renderOpts.out), frag, sheet.Bundle())
		if err != nil {
			return err
		}
		for _, p := range written {
			fmt.Fprintln(cmd.OutOrStdout(), paths.JoinSegments(renderOpts.out, p))
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), frag.HTML)
	if renderOpts.withStyle {
		return printStyle(ctx, cmd, renderer, sheet.Bundle())
	}
	return nil
}

func printStyle(ctx context.Context, cmd *cobra.Command, renderer rendering.Renderer, bundle string) error {
	style, err := renderer.RenderComponent(ctx, rendering.StyleBlock(bundle))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(style))
	return nil
}
