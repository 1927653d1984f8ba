// Package pagetitle renders the site title block: the logo followed by a
// link back to the site root.
package pagetitle

import (
	"github.com/taigram/docs-theme/internal/component"
	"github.com/taigram/docs-theme/internal/i18n"
	"github.com/taigram/docs-theme/internal/lang"
	"github.com/taigram/docs-theme/internal/paths"
	"maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	// Name is the component name and its base CSS class.
	Name = "page-title"

	// LogoSrc is the site-relative path of the logo image.
	LogoSrc = "static/logo_taigram.svg"
	// LogoWidth is the rendered logo width in pixels.
	LogoWidth = "128"
)

// CSS is the static style owned by the component.
const CSS = `
.page-title {
  font-size: 1.75rem;
  margin: 0;
}
`

// PageTitle implements component.Renderable.
type PageTitle struct{}

var _ component.Renderable = PageTitle{}

// New registers the component stylesheet and returns the component.
func New(styles component.StyleRegistrar) PageTitle {
	styles.Register(Name, CSS)
	return PageTitle{}
}

func (PageTitle) Name() string { return Name }
func (PageTitle) CSS() string  { return CSS }

// Render builds the title block for one page. The configured page title
// wins; without one the locale default title is used.
func (PageTitle) Render(props component.Props) (gomponents.Node, error) {
	if err := props.Check(); err != nil {
		return nil, err
	}

	title, err := resolveTitle(props)
	if err != nil {
		return nil, err
	}
	baseDir := paths.PathToRoot(props.File.Slug)

	return h.H2(
		h.Class(lang.ClassNames(string(props.DisplayClass), Name)),
		h.Img(h.Src(LogoSrc), h.Width(LogoWidth), h.Alt("")),
		h.Div(
			h.A(h.Href(string(baseDir)), gomponents.Text(title)),
		),
	), nil
}

func resolveTitle(props component.Props) (string, error) {
	if title, ok := props.Cfg.Title(); ok {
		return title, nil
	}
	tr, err := i18n.For(props.Cfg.Locale)
	if err != nil {
		return "", err
	}
	return tr.PropertyDefaults.Title, nil
}
