package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"parkpulse/internal/structures"
)

// CloudStore keeps objects in a Google Cloud Storage bucket. Credentials are
// read from the configured file when set, otherwise application default
// credentials are used.
type CloudStore struct {
	bucket *storage.BucketHandle
}

func NewCloudStore(ctx context.Context, conf *structures.Config) (*CloudStore, error) {
	var opts []option.ClientOption
	if conf.Storage.Credentials != "" {
		creds, err := os.ReadFile(conf.Storage.Credentials)
		if err != nil {
			return nil, fmt.Errorf("cannot read credentials %s: %w", conf.Storage.Credentials, err)
		}
		opts = append(opts, option.WithCredentialsJSON(creds))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage.NewClient failed: %w", err)
	}

	return &CloudStore{bucket: client.Bucket(conf.Storage.Bucket)}, nil
}

func (cs *CloudStore) Load(ctx context.Context, key string) ([]byte, error) {
	r, err := cs.bucket.Object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func (cs *CloudStore) Save(ctx context.Context, key string, data []byte) error {
	w := cs.bucket.Object(key).NewWriter(ctx)
	w.ContentType = "application/json"
	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
