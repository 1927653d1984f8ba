package preview

import (
	"context"

	"github.com/taigram/docs-theme/internal/component"
	"github.com/taigram/docs-theme/internal/config"
	"github.com/taigram/docs-theme/internal/rendering"
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

type pageData struct {
	Site     *config.SiteConfig
	Request  previewRequest
	Bundle   string
	Fragment gomponents.Node
	Locales  []string
}

// indexPage is the preview shell: a form whose inputs re-fetch the
// fragment through htmx, and the rendered fragment below it.
func indexPage(ctx context.Context, data pageData) gomponents.Node {
	return components.HTML5(components.HTML5Props{
		Title:    "Page title preview",
		Language: data.Site.Locale,
		Head: []gomponents.Node{
			rendering.Templ(ctx, rendering.StyleBlock(data.Bundle)),
			Script(Src(htmxSrc)),
		},
		Body: []gomponents.Node{
			Main(
				Form(
					hx.Get("/fragment"),
					hx.Target("#preview"),
					hx.Trigger("input changed delay:300ms, change"),
					Label(gomponents.Text("Slug "),
						Input(Type("text"), Name("slug"), Value(data.Request.Slug)),
					),
					Label(gomponents.Text("Display class "),
						Select(Name("class"),
							option("", "(none)", data.Request.Class),
							option(string(component.MobileOnly), string(component.MobileOnly), data.Request.Class),
							option(string(component.DesktopOnly), string(component.DesktopOnly), data.Request.Class),
						),
					),
					Label(gomponents.Text("Locale "),
						Select(Name("locale"),
							option("", "site ("+data.Site.Locale+")", data.Request.Locale),
							option("auto", "browser", data.Request.Locale),
							gomponents.Map(data.Locales, func(l string) gomponents.Node {
								return option(l, l, data.Request.Locale)
							}),
						),
					),
				),
				Div(ID("preview"), data.Fragment),
			),
		},
	})
}

func option(value, label, current string) gomponents.Node {
	return Option(Value(value), gomponents.If(value == current, Selected()), gomponents.Text(label))
}
