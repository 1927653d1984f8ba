package rendering

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maragu.dev/gomponents/html"
)

func TestTempl_InsideGomponents(t *testing.T) {
	node := html.Head(Templ(context.Background(), StyleBlock(".x{}")))

	var buf strings.Builder
	require.NoError(t, node.Render(&buf))
	assert.Equal(t, "<head><style>.x{}</style></head>", buf.String())
}
