package helpers

import (
	"os"
	"path/filepath"
	"strings"

	"go-lakedb/pkg/customerrors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func CreateDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

// ValidName reports whether name can be used as a single path component.
func ValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, "/\\\x00")
}

// WriteFileAtomic writes data to a uniquely named temporary file next to
// path, syncs it and renames it over path. Readers of path observe either
// the previous content or the new one, never a prefix of it.
//
// beforeRename, when set, runs after the temporary file is durable and
// before it is renamed. An error from it aborts the write and leaves path
// untouched. Any error matching customerrors.ErrNotDurable means path was
// already replaced.
func WriteFileAtomic(path string, data []byte, beforeRename func(tmpPath string) error) (err error) {
	dir := filepath.Dir(path)
	if err := CreateDir(dir); err != nil {
		return errors.Wrapf(err, "failed to create directory '%s'", dir)
	}

	tmpPath := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return errors.Wrapf(err, "failed to create temp file '%s'", tmpPath)
	}
	defer func() {
		if err != nil {
			os.Remove(tmpPath)
		}
	}()

	if _, err = f.Write(data); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to write temp file '%s'", tmpPath)
	}
	if err = f.Sync(); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to sync temp file '%s'", tmpPath)
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "failed to close temp file '%s'", tmpPath)
	}

	if beforeRename != nil {
		if err = beforeRename(tmpPath); err != nil {
			return err
		}
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return errors.Wrapf(err, "failed to rename '%s' to '%s'", tmpPath, path)
	}

	if syncErr := SyncDir(dir); syncErr != nil {
		return customerrors.WithKind(customerrors.ErrNotDurable, syncErr, "'%s' replaced", path)
	}
	return nil
}

// SyncDir flushes directory entries so a completed rename survives a crash.
func SyncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return errors.Wrapf(err, "failed to open directory '%s'", dir)
	}
	defer d.Close()

	if err := d.Sync(); err != nil {
		return errors.Wrapf(err, "failed to sync directory '%s'", dir)
	}
	return nil
}
