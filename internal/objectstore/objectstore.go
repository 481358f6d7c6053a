// Package objectstore is the durable blob-storage capability behind the
// ingestion pipeline: put a blob and get back a public URL.
package objectstore

import (
	"context"
	"io"
)

// Store is the object-storage contract consumed by the ingestion pipeline.
type Store interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]string, error)
}
