package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// LocalStorage 로컬 디스크 저장소. 공개 경로는 <publicPrefix>/<key>
type LocalStorage struct {
	dir          string
	publicPrefix string
}

// NewLocalStorage creates the upload directory if missing
func NewLocalStorage(dir, publicPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, eris.Wrapf(err, "creating upload dir %s", dir)
	}
	return &LocalStorage{dir: dir, publicPrefix: strings.TrimRight(publicPrefix, "/")}, nil
}

// Dir upload root
func (s *LocalStorage) Dir() string {
	return s.dir
}

// Save writes body under dir/key
func (s *LocalStorage) Save(ctx context.Context, key string, body io.Reader, contentType string, size int64) (*Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return nil, eris.Wrapf(err, "creating directories for %s", key)
	}

	f, err := os.Create(target)
	if err != nil {
		return nil, eris.Wrapf(err, "creating file %s", key)
	}
	written, err := io.Copy(f, body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(target)
		return nil, eris.Wrapf(err, "writing file %s", key)
	}

	return &Object{
		Key:         key,
		URL:         s.publicPrefix + "/" + key,
		ContentType: contentType,
		Size:        written,
	}, nil
}

// Delete removes dir/key
func (s *LocalStorage) Delete(_ context.Context, key string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return eris.Wrapf(err, "deleting file %s", key)
	}
	return nil
}
