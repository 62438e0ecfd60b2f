package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/npmstage/pkg/types"
)

const dirPerm fs.FileMode = 0755

// CopyTree recursively copies src to dst on fsys. Directories are recreated,
// regular files are copied with their permission bits and symlinks are
// recreated pointing at the same target.
func CopyTree(fsys types.FS, src, dst string) error {
	info, err := fsys.Lstat(src)
	if err != nil {
		return err
	}

	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		return copySymlink(fsys, src, dst)
	case info.IsDir():
		return copyDir(fsys, src, dst, info.Mode().Perm())
	default:
		return copyFile(fsys, src, dst, info.Mode().Perm())
	}
}

func copyDir(fsys types.FS, src, dst string, perm fs.FileMode) error {
	if err := fsys.MkdirAll(dst, perm|0700); err != nil {
		return err
	}
	entries, err := fsys.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := CopyTree(fsys, filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(fsys types.FS, src, dst string, perm fs.FileMode) error {
	if err := fsys.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return err
	}
	data, err := fsys.ReadFile(src)
	if err != nil {
		return err
	}
	return fsys.WriteFile(dst, data, perm)
}

func copySymlink(fsys types.FS, src, dst string) error {
	target, err := fsys.Readlink(src)
	if err != nil {
		return err
	}
	if err := fsys.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return err
	}
	return fsys.Symlink(target, dst)
}

// RemoveTree removes path and everything below it. A missing path is not an
// error.
func RemoveTree(fsys types.FS, path string) error {
	if path == "" {
		return nil
	}
	if err := fsys.RemoveAll(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
