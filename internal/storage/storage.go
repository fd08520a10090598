package storage

import (
	"context"
	"io"
)

// ObjectStore is the delegated image host. Keys are opaque to the rest
// of the application; whatever the store returns is what gets persisted
// on the owning document.
type ObjectStore interface {
	Upload(ctx context.Context, key string, data io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
}
