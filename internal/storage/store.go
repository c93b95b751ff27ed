package storage

import (
	"context"
	"errors"
	"fmt"

	"parkpulse/internal/providers"
	"parkpulse/internal/structures"
)

// ErrNotFound reports that no object exists for a key. Callers treat it as
// the expected first-run condition, distinct from any other storage failure.
var ErrNotFound = errors.New("object not found")

type ObjectStoreInterface interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// NewObjectStore builds the backend selected by storage.backend.
func NewObjectStore(conf *structures.Config, compressor CompressorInterface, logger providers.Logger) (ObjectStoreInterface, error) {
	switch conf.Storage.Backend {
	case "file":
		return NewFileStore(conf.Storage.Dir, conf.Storage.Compress, compressor, logger)
	case "gcs":
		return NewCloudStore(context.Background(), conf)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", conf.Storage.Backend)
	}
}
