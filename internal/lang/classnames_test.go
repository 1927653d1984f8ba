package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassNames(t *testing.T) {
	tests := []struct {
		name    string
		classes []string
		want    string
	}{
		{name: "no fragments", classes: nil, want: ""},
		{name: "single", classes: []string{"page-title"}, want: "page-title"},
		{name: "empty display class", classes: []string{"", "page-title"}, want: "page-title"},
		{name: "display class first", classes: []string{"mobile-only", "page-title"}, want: "mobile-only page-title"},
		{name: "empties in the middle", classes: []string{"a", "", "b", ""}, want: "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassNames(tt.classes...))
		})
	}
}
