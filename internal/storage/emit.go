package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taigram/docs-theme/internal/rendering"
)

// StylesheetPath is where the aggregated component CSS is written.
const StylesheetPath = "index.css"

// SaveFragment writes the fragment markup to "<component>.html" and the
// stylesheet bundle to StylesheetPath. It returns the written paths.
func SaveFragment(ctx context.Context, s Store, frag rendering.Fragment, bundle string) ([]string, error) {
	htmlPath := frag.Component + ".html"
	if _, err := s.Save(ctx, htmlPath, strings.NewReader(frag.HTML)); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", htmlPath, err)
	}
	if _, err := s.Save(ctx, StylesheetPath, strings.NewReader(bundle)); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", StylesheetPath, err)
	}

	slog.Debug("Wrote fragment", "component", frag.Component, "html", htmlPath, "css", StylesheetPath)
	return []string{htmlPath, StylesheetPath}, nil
}
