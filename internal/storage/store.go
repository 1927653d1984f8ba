package storage

import (
	"context"
	"io"
)

// Store is where rendered output is written.
type Store interface {
	Save(ctx context.Context, path string, reader io.Reader) (int64, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}
