package move

import (
	"io"
	"os"
	"path/filepath"
)

// Mover performs the actual transfer of one path to its destination. The
// executor depends only on this capability, so a native rename and an
// external bulk-copy tool satisfy the same contract.
type Mover interface {
	Move(src, dst string) error
}

// NativeMover moves entries with os.Rename, falling back to copy-then-remove
// when the rename fails (typically a cross-device move).
type NativeMover struct{}

func (NativeMover) Move(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		if err := copyDir(src, dst, info); err != nil {
			return err
		}
	} else {
		if err := copyFile(src, dst, info); err != nil {
			return err
		}
	}
	return os.RemoveAll(src)
}

func copyFile(src, dst string, info os.FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return err
	}
	return nil
}

func copyDir(src, dst string, info os.FileInfo) error {
	if err := os.MkdirAll(dst, info.Mode()); err != nil {
		return err
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		childInfo, err := entry.Info()
		if err != nil {
			return err
		}
		srcChild := filepath.Join(src, entry.Name())
		dstChild := filepath.Join(dst, entry.Name())
		if entry.IsDir() {
			if err := copyDir(srcChild, dstChild, childInfo); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcChild, dstChild, childInfo); err != nil {
				return err
			}
		}
	}
	return nil
}
