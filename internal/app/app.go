// Package app wires the application services together with a samber/do
// injector. Commands resolve what they need from it.
package app

import (
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"github.com/taigram/docs-theme/internal/component"
	"github.com/taigram/docs-theme/internal/components/pagetitle"
	"github.com/taigram/docs-theme/internal/config"
	"github.com/taigram/docs-theme/internal/preview"
	"github.com/taigram/docs-theme/internal/rendering"
	"github.com/taigram/docs-theme/internal/stylesheet"
)

// Options are the inputs the commands collect from flags and environment.
type Options struct {
	Fs        afero.Fs
	SitePath  string
	StaticDir string
}

// NewInjector registers every service. Services are built lazily on first
// invoke, so a command only pays for what it uses.
func NewInjector(opts Options) do.Injector {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}

	i := do.New()

	do.ProvideValue(i, opts)
	do.Provide(i, func(i do.Injector) (*stylesheet.Sheet, error) {
		return stylesheet.New(), nil
	})
	do.Provide(i, func(i do.Injector) (rendering.Renderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})
	do.Provide(i, func(i do.Injector) (component.Renderable, error) {
		sheet, err := do.Invoke[*stylesheet.Sheet](i)
		if err != nil {
			return nil, err
		}
		return pagetitle.New(sheet), nil
	})
	do.Provide(i, func(i do.Injector) (*preview.SiteSource, error) {
		o := do.MustInvoke[Options](i)
		return preview.NewSiteSource(o.Fs, o.SitePath)
	})
	do.Provide(i, func(i do.Injector) (*config.SiteConfig, error) {
		source, err := do.Invoke[*preview.SiteSource](i)
		if err != nil {
			return nil, err
		}
		return source.Site(), nil
	})
	do.Provide(i, newPreviewServer)

	return i
}

func newPreviewServer(i do.Injector) (*preview.Server, error) {
	source, err := do.Invoke[*preview.SiteSource](i)
	if err != nil {
		return nil, err
	}
	c, err := do.Invoke[component.Renderable](i)
	if err != nil {
		return nil, err
	}

	return preview.New(preview.Dependencies{
		Site:      source,
		Renderer:  do.MustInvoke[rendering.Renderer](i),
		Sheet:     do.MustInvoke[*stylesheet.Sheet](i),
		Component: c,
		StaticDir: do.MustInvoke[Options](i).StaticDir,
	}), nil
}
