package storage

import (
	"context"
	"os"
	"path/filepath"

	"parkpulse/internal/providers"
)

// FileStore keeps one file per object key under a base directory. Writes go
// through a tmp file and rename so readers never observe a partial document.
// With compress enabled documents are stored zstd-compressed.
type FileStore struct {
	dir        string
	compress   bool
	compressor CompressorInterface
	logger     providers.Logger
}

func NewFileStore(dir string, compress bool, compressor CompressorInterface, logger providers.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{
		dir:        dir,
		compress:   compress,
		compressor: compressor,
		logger:     logger,
	}, nil
}

func (fs *FileStore) path(key string) string {
	if fs.compress {
		key += ".zst"
	}
	return filepath.Join(fs.dir, filepath.FromSlash(key))
}

func (fs *FileStore) Load(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(fs.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if fs.compress {
		return fs.compressor.Decompress(data)
	}
	return data, nil
}

func (fs *FileStore) Save(_ context.Context, key string, data []byte) error {
	if fs.compress {
		compressed, err := fs.compressor.Compress(data)
		if err != nil {
			return err
		}
		data = compressed
	}

	path := fs.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmpFile := path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, path)
}
