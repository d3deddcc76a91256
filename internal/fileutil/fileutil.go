package fileutil

import (
	"fmt"
	"io"
	"os"
)

// renameFunc is swapped in tests to simulate EXDEV and friends.
var renameFunc = os.Rename

// CopyFile streams src to dst, replacing dst when it exists. The permission
// bits of src are carried over to a newly created dst.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	return CopyFileMode(src, dst, info.Mode().Perm())
}

// CopyFileMode streams src to dst, setting the given file mode on a newly created dst.
func CopyFileMode(src, dst string, mode os.FileMode) error {
	if same, err := sameFile(src, dst); err != nil {
		return err
	} else if same {
		// Truncating dst would truncate src as well.
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	if err := out.Sync(); err != nil {
		return fmt.Errorf("sync destination: %w", err)
	}
	return out.Close()
}

// MoveFile renames src to dst, replacing dst when it exists. When the rename
// crosses a filesystem boundary the file is copied and the source removed.
func MoveFile(src, dst string) error {
	if same, err := sameFile(src, dst); err != nil {
		return err
	} else if same {
		// rename(2) is a no-op for two links to one inode; drop the source link.
		if err := os.Remove(src); err != nil {
			return fmt.Errorf("remove source link: %w", err)
		}
		return nil
	}

	if err := renameFunc(src, dst); err != nil {
		if !isCrossDevice(err) {
			return fmt.Errorf("move file: %w", err)
		}
		if err := CopyFile(src, dst); err != nil {
			return fmt.Errorf("copy file across devices: %w", err)
		}
		if err := os.Remove(src); err != nil {
			return fmt.Errorf("remove source after copy: %w", err)
		}
	}
	return nil
}

// SameFile reports whether both paths exist and refer to the same file.
func SameFile(a, b string) bool {
	same, err := sameFile(a, b)
	return err == nil && same
}

func sameFile(a, b string) (bool, error) {
	ai, err := os.Stat(a)
	if err != nil {
		return false, fmt.Errorf("stat source: %w", err)
	}
	bi, err := os.Stat(b)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat destination: %w", err)
	}
	return os.SameFile(ai, bi), nil
}
