package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taigram/docs-theme/internal/config"
)

func TestProps_Check(t *testing.T) {
	cfg := &config.SiteConfig{Locale: "en-US"}

	tests := []struct {
		name    string
		props   Props
		wantErr error
	}{
		{name: "valid", props: Props{Cfg: cfg, File: &FileData{Slug: "index"}}},
		{name: "nil config", props: Props{File: &FileData{Slug: "index"}}, wantErr: ErrMissingConfig},
		{name: "nil file", props: Props{Cfg: cfg}, wantErr: ErrMissingSlug},
		{name: "empty slug", props: Props{Cfg: cfg, File: &FileData{}}, wantErr: ErrMissingSlug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.props.Check()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
