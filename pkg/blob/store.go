// Package blob provides keyed byte-blob storage for large editor documents.
package blob

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no blob exists for the key.
var ErrNotFound = errors.New("blob: not found")

// Store is a keyed byte-blob store. Keys are namespaced by owner and entity
// id by the caller (e.g. "plots/<user>/<plot>.json").
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
}
