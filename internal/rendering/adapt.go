package rendering

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// templNode lets a templ.Component sit inside a gomponents tree.
type templNode struct {
	ctx       context.Context
	component templ.Component
}

// Render implements gomponents.Node.
func (n templNode) Render(w io.Writer) error {
	return n.component.Render(n.ctx, w)
}

// Templ wraps a templ.Component as a gomponents.Node. gomponents does not
// pass a context down the tree, so the one given here is used for the
// templ render.
func Templ(ctx context.Context, c templ.Component) gomponents.Node {
	if ctx == nil {
		ctx = context.Background()
	}
	return templNode{ctx: ctx, component: c}
}
