// Package component defines the contract shared by page components: the
// props they receive, the Renderable capability they expose, and the
// preconditions every render call checks.
package component

import (
	"errors"

	"github.com/taigram/docs-theme/internal/config"
	"github.com/taigram/docs-theme/internal/paths"
	"maragu.dev/gomponents"
)

// Sentinel errors for render preconditions. A caller that trips one of
// these has a bug; they are never recovered from inside a component.
var (
	ErrMissingSlug   = errors.New("page slug is not set")
	ErrMissingConfig = errors.New("site configuration is not set")
)

// DisplayClass is a presentational CSS hook a layout adds to a component.
type DisplayClass string

// Well-known display classes understood by the base stylesheet.
const (
	MobileOnly  DisplayClass = "mobile-only"
	DesktopOnly DisplayClass = "desktop-only"
)

// FileData is the per-page metadata produced by the content pipeline.
type FileData struct {
	Slug        paths.FullSlug
	Frontmatter map[string]any
}

// Props is everything a component gets for one render call.
type Props struct {
	Cfg          *config.SiteConfig
	File         *FileData
	DisplayClass DisplayClass
}

// Check verifies the preconditions shared by all components.
func (p Props) Check() error {
	if p.Cfg == nil {
		return ErrMissingConfig
	}
	if p.File == nil || p.File.Slug == "" {
		return ErrMissingSlug
	}
	return nil
}

// Renderable is implemented by every page component.
type Renderable interface {
	// Name identifies the component, e.g. in the aggregated stylesheet.
	Name() string

	// CSS returns the static style rules owned by the component.
	CSS() string

	// Render builds the component markup for one page.
	Render(props Props) (gomponents.Node, error)
}

// StyleRegistrar collects component CSS. Constructors register their
// rules once, not per render.
type StyleRegistrar interface {
	Register(name, css string)
}
