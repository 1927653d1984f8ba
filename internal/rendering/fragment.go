package rendering

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/taigram/docs-theme/internal/component"
)

// Fragment is the output of one component render: the markup and the
// static CSS the component owns. It is consumed once by page assembly.
type Fragment struct {
	Component string
	HTML      string
	CSS       string
}

// RenderFragment renders c for props into a Fragment.
func RenderFragment(ctx context.Context, r Renderer, c component.Renderable, props component.Props) (Fragment, error) {
	node, err := c.Render(props)
	if err != nil {
		return Fragment{}, err
	}
	html, err := r.RenderComponent(ctx, node)
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{
		Component: c.Name(),
		HTML:      string(html),
		CSS:       c.CSS(),
	}, nil
}

// StyleBlock wraps CSS in a <style> element. The CSS is written verbatim,
// so it must come from component code, never from user input.
func StyleBlock(css string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if css == "" {
			return nil
		}
		if _, err := io.WriteString(w, "<style>"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, css); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</style>")
		return err
	})
}
