package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathToRoot(t *testing.T) {
	tests := []struct {
		slug FullSlug
		want RelativeURL
	}{
		{slug: "index", want: "."},
		{slug: "", want: "."},
		{slug: "blog/post1", want: ".."},
		{slug: "blog/2024/post1", want: "../.."},
		{slug: "blog//post1", want: ".."},
		{slug: "/blog/post1/", want: ".."},
		{slug: "a/b/c/index", want: "../../.."},
	}

	for _, tt := range tests {
		t.Run(string(tt.slug), func(t *testing.T) {
			assert.Equal(t, tt.want, PathToRoot(tt.slug))
		})
	}
}

func TestJoinSegments(t *testing.T) {
	assert.Equal(t, "a/b/c", JoinSegments("a", "b", "c"))
	assert.Equal(t, "../static/logo.svg", JoinSegments("../", "/static/", "logo.svg"))
	assert.Equal(t, "a/c", JoinSegments("a", "", "c"))
	assert.Equal(t, "", JoinSegments())
}
