package repo

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	perr "sayitanyway/internal/platform/errors"
)

// File stores one <key>.json per document under Dir. Writes go to a temp
// file that is renamed over the target so readers never see a partial write
type File struct {
	Dir string
}

// NewFile returns a File rooted at dir; the directory is created on first write
func NewFile(dir string) *File { return &File{Dir: dir} }

func (f *File) path(key string) string { return filepath.Join(f.Dir, key+".json") }

// Get implements domain.Port
func (f *File) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	b, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, perr.Wrapf(err, perr.ErrorCodeStorage, "read %s", key)
	}
	return b, true, nil
}

// Set implements domain.Port
func (f *File) Set(ctx context.Context, key string, value json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(f.Dir, 0o700); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeStorage, "create %s", f.Dir)
	}
	tmp, err := os.CreateTemp(f.Dir, key+".*.tmp")
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeStorage, "write %s", key)
	}
	name := tmp.Name()
	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return perr.Wrapf(err, perr.ErrorCodeStorage, "write %s", key)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return perr.Wrapf(err, perr.ErrorCodeStorage, "sync %s", key)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return perr.Wrapf(err, perr.ErrorCodeStorage, "close %s", key)
	}
	if err := os.Rename(name, f.path(key)); err != nil {
		_ = os.Remove(name)
		return perr.Wrapf(err, perr.ErrorCodeStorage, "replace %s", key)
	}
	return nil
}
