package preview

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/taigram/docs-theme/internal/component"
	"github.com/taigram/docs-theme/internal/i18n"
	"github.com/taigram/docs-theme/internal/paths"
)

const headerAcceptLanguage = "Accept-Language"

// previewRequest is the query string accepted by the preview endpoints.
type previewRequest struct {
	Slug   string `query:"slug"`
	Class  string `query:"class"`
	Locale string `query:"locale"`
}

// index renders the full preview page with the component rendered for the
// requested (or default "index") slug.
func (s *Server) index(c echo.Context) error {
	var req previewRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if req.Slug == "" {
		req.Slug = "index"
	}

	props, err := s.props(c, req)
	if err != nil {
		return err
	}
	node, err := s.deps.Component.Render(props)
	if err != nil {
		return err
	}

	page := indexPage(c.Request().Context(), pageData{
		Site:     props.Cfg,
		Request:  req,
		Bundle:   s.deps.Sheet.Bundle(),
		Fragment: node,
		Locales:  i18n.Supported(),
	})
	return s.deps.Renderer.RenderPage(c, http.StatusOK, page)
}

// fragment renders only the component markup, for htmx swaps.
func (s *Server) fragment(c echo.Context) error {
	var req previewRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	props, err := s.props(c, req)
	if err != nil {
		return err
	}
	node, err := s.deps.Component.Render(props)
	if err != nil {
		return err
	}
	return s.deps.Renderer.RenderPage(c, http.StatusOK, node)
}

func (s *Server) stylesheet(c echo.Context) error {
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", []byte(s.deps.Sheet.Bundle()))
}

// props builds the component props for a request. The locale may be
// overridden per request; "auto" picks the best match for the browser's
// Accept-Language header.
func (s *Server) props(c echo.Context, req previewRequest) (component.Props, error) {
	site := *s.deps.Site.Site()

	switch locale := strings.TrimSpace(req.Locale); locale {
	case "":
	case "auto":
		site.Locale = i18n.Match(c.Request().Header.Get(headerAcceptLanguage))
	default:
		if _, err := i18n.For(locale); err != nil {
			return component.Props{}, err
		}
		site.Locale = locale
	}

	return component.Props{
		Cfg:          &site,
		File:         &component.FileData{Slug: paths.FullSlug(strings.TrimSpace(req.Slug))},
		DisplayClass: component.DisplayClass(strings.TrimSpace(req.Class)),
	}, nil
}
