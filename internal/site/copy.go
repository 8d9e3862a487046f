package site

import (
	"io"
	"os"
	"path/filepath"

	siteerrors "github.com/incrediblerust/sitegen/internal/errors"
)

// copyDirRecursive copies src into dst, creating directories as needed.
func copyDirRecursive(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil || !info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dst, 0o755); err != nil {
		return siteerrors.Wrap(err, siteerrors.CategoryIO, "failed to create directory").WithPath(dst)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return siteerrors.Wrap(err, siteerrors.CategoryIO, "failed to read directory").WithPath(src)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		if entry.IsDir() {
			if err := copyDirRecursive(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}
	return nil
}

// copyFileIfExists copies src to dst when src is present.
func copyFileIfExists(src, dst string) error {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return nil
	}
	return copyFile(src, dst)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return siteerrors.Wrap(err, siteerrors.CategoryIO, "failed to open file").WithPath(src)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return siteerrors.Wrap(err, siteerrors.CategoryIO, "failed to create file").WithPath(dst)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return siteerrors.Wrap(err, siteerrors.CategoryIO, "failed to copy file").WithPath(dst)
	}
	return nil
}
