package store

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvBackend keeps one file per key under a base directory.
type DiskvBackend struct {
	d        *diskv.Diskv
	basePath string
}

// NewDiskv opens (lazily creating) a diskv store rooted at basePath.
func NewDiskv(basePath string) *DiskvBackend {
	return &DiskvBackend{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			TempDir:           filepath.Join(basePath, ".tmp"),
			// No read cache: another eod process may rewrite the file and
			// every read has to see it.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
	}
}

func (b *DiskvBackend) BasePath() string {
	return b.basePath
}

func (b *DiskvBackend) Read(_ context.Context, key string) ([]byte, error) {
	val, err := b.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return val, nil
}

func (b *DiskvBackend) Write(_ context.Context, key string, value []byte) error {
	return b.d.Write(key, value)
}

func (b *DiskvBackend) Erase(_ context.Context, key string) error {
	if !b.d.Has(key) {
		return nil
	}
	return b.d.Erase(key)
}

func (b *DiskvBackend) Close() error {
	return nil
}

// keys are flat file names directly under the base path.
func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
