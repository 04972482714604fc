package filesystem

import (
	"io"
	"os"
	"time"

	p "github.com/go-forge/gofs/pkg/path"
)

// CopyOption selects the overwrite policy for CopyFile and CopyTree.
type CopyOption uint8

const (
	// CopyOptionNone fails if the destination already exists.
	CopyOptionNone CopyOption = iota
	// CopyOptionOverwriteExisting overwrites an existing destination
	// unconditionally. This is the default most callers want.
	CopyOptionOverwriteExisting
	// CopyOptionUpdateExisting overwrites the destination only if the
	// source's modification time is strictly newer; otherwise it succeeds
	// silently without copying.
	CopyOptionUpdateExisting
	// CopyOptionSkipExisting succeeds silently without copying if the
	// destination already exists.
	CopyOptionSkipExisting
)

// Touch opens path (creating it with the given permissions if absent) and
// updates its access and modification times to the current time, mirroring
// an open-or-create followed by futimens(NULL).
func Touch(path string, perm Permissions) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, toFileMode(perm))
	if err != nil {
		return newError("touch", path, classify(err), err)
	}
	f.Close()

	now := time.Now()
	if err := os.Chtimes(path, now, now); err != nil {
		return newError("touch", path, classify(err), err)
	}
	return nil
}

// CopyFile copies the single file at from to to according to option.
func CopyFile(from, to string, option CopyOption) error {
	switch option {
	case CopyOptionSkipExisting:
		if n, _ := Exists(to, true); n == 1 {
			return nil
		}
	case CopyOptionUpdateExisting:
		if dstInfo, err := GetInfo(to, true, QueryFileTimes); err == nil {
			srcInfo, err := GetInfo(from, true, QueryFileTimes)
			if err != nil {
				return err
			}
			if !srcInfo.ModificationTime.After(dstInfo.ModificationTime) {
				return nil
			}
		} else if !IsNotFound(err) {
			return err
		}
	case CopyOptionNone:
		if n, _ := Exists(to, true); n == 1 {
			return newError("copyFile", to, KindAlreadyExists, nil)
		}
	}

	srcInfo, err := GetInfo(from, true, QuerySize|QueryPermissions)
	if err != nil {
		return err
	}

	return copyFileContents(from, to, srcInfo)
}

// copyFileFallback performs a plain userspace copy loop, used on platforms
// without (or not using) a zero-copy send primitive.
func copyFileFallback(from, to string, srcInfo *Info) error {
	src, err := os.Open(from)
	if err != nil {
		return newError("copyFile", from, classify(err), err)
	}
	defer src.Close()

	dst, err := os.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, toFileMode(srcInfo.Permissions))
	if err != nil {
		return newError("copyFile", to, classify(err), err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return newError("copyFile", to, KindIoError, err)
	}
	return nil
}

// CopyTree recursively copies the directory from to the directory to. If
// maxDepth is non-negative, descent stops once that many levels have been
// traversed. The iterator package performs the traversal; this function
// only wires the output paths and stop-on-error behavior together,
// avoiding an import cycle by taking a directory-listing callback.
func CopyTree(from, to string, maxDepth int, option CopyOption, walk TreeWalker) error {
	fromInfo, err := GetInfo(from, true, QueryType|QueryPermissions)
	if err != nil {
		return err
	}
	if fromInfo.Type != TypeDirectory {
		return newError("copyTree", from, KindNotADirectory, nil)
	}

	if err := CreateDirectories(to, fromInfo.Permissions); err != nil && !IsAlreadyExists(err) {
		return err
	}

	return walk(from, maxDepth, func(relative string, entryType Type, depth int) error {
		srcChild := string(p.Append(p.Path(from), p.Path(relative)))
		dstChild := string(p.Append(p.Path(to), p.Path(relative)))

		switch entryType {
		case TypeDirectory:
			childInfo, err := GetInfo(srcChild, true, QueryPermissions)
			if err != nil {
				return err
			}
			if err := CreateDirectories(dstChild, childInfo.Permissions); err != nil && !IsAlreadyExists(err) {
				return err
			}
		default:
			return CopyFile(srcChild, dstChild, option)
		}
		return nil
	})
}

// TreeWalker abstracts the recursive directory traversal that CopyTree
// needs, implemented by pkg/iterator to avoid filesystem importing iterator
// (which itself imports filesystem for queries).
type TreeWalker func(root string, maxDepth int, visit func(relative string, entryType Type, depth int) error) error

// Copy dispatches to CopyFile or CopyTree based on the type of from.
func Copy(from, to string, maxDepth int, option CopyOption, walk TreeWalker) error {
	info, err := GetInfo(from, true, QueryType)
	if err != nil {
		return err
	}
	if info.Type == TypeDirectory {
		return CopyTree(from, to, maxDepth, option, walk)
	}
	return CopyFile(from, to, option)
}

// CreateDirectory creates exactly one directory. If the path already exists
// and is a directory, true is returned alongside a KindAlreadyExists error —
// the boolean indicates overall success of ensuring the directory exists,
// while the error still reports the EEXIST-class condition.
func CreateDirectory(path string, perm Permissions) (bool, error) {
	err := os.Mkdir(path, toFileMode(perm))
	if err == nil {
		return true, nil
	}
	if IsAlreadyExists(wrapMkdirError(path, err)) {
		if info, infoErr := GetInfo(path, true, QueryType); infoErr == nil && info.Type == TypeDirectory {
			return true, newError("createDirectory", path, KindAlreadyExists, err)
		}
		return false, newError("createDirectory", path, KindNotADirectory, err)
	}
	return false, newError("createDirectory", path, classify(err), err)
}

func wrapMkdirError(path string, err error) error {
	return newError("createDirectory", path, classify(err), err)
}

// CreateDirectories finds the longest existing prefix of path, then creates
// each missing segment in turn, aborting on the first failure.
func CreateDirectories(path string, perm Permissions) error {
	existing, remainder := longestExistingPath(string(p.Normalize(p.Path(path))))
	current := p.Path(existing)
	for _, seg := range remainder {
		current = p.Append(current, seg)
		if ok, err := CreateDirectory(string(current), perm); !ok && err != nil {
			return err
		}
	}
	return nil
}

// CreateHardLink creates a hard link at link pointing to target.
func CreateHardLink(target, link string) error {
	if err := os.Link(target, link); err != nil {
		return newError("createHardLink", link, classify(err), err)
	}
	return nil
}

// CreateSymlink creates a symbolic link at link pointing to target.
func CreateSymlink(target, link string) error {
	if err := os.Symlink(target, link); err != nil {
		return newError("createSymlink", link, classify(err), err)
	}
	return nil
}

// Move renames from to to.
func Move(from, to string) error {
	if err := os.Rename(from, to); err != nil {
		return newError("move", to, classify(err), err)
	}
	return nil
}

// RemoveFile removes a single file, symlink, or other non-directory entry.
func RemoveFile(path string) error {
	if err := os.Remove(path); err != nil {
		return newError("removeFile", path, classify(err), err)
	}
	return nil
}

// RemoveEmptyDirectory removes a directory that must already be empty.
func RemoveEmptyDirectory(path string) error {
	if err := os.Remove(path); err != nil {
		return newError("removeEmptyDirectory", path, classify(err), err)
	}
	return nil
}

// RemoveTree recursively removes path and everything beneath it, children
// first. Like CopyTree, the recursive walk is supplied by the caller to
// avoid an import cycle with pkg/iterator.
func RemoveTree(path string, walk TreeWalker) error {
	err := walk(path, -1, func(relative string, entryType Type, depth int) error {
		child := string(p.Append(p.Path(path), p.Path(relative)))
		switch entryType {
		case TypeDirectory:
			return RemoveEmptyDirectory(child)
		default:
			return RemoveFile(child)
		}
	})
	if err != nil {
		return err
	}
	return RemoveEmptyDirectory(path)
}

// Remove removes path, dispatching by type: a directory is removed
// recursively via RemoveTree, anything else via RemoveFile. A missing path
// is success — ENOENT is not an error for this operation.
func Remove(path string, walk TreeWalker) error {
	info, err := GetInfo(path, false, QueryType)
	if err != nil {
		if IsNotFound(err) {
			return nil
		}
		return err
	}
	if info.Type == TypeDirectory {
		return RemoveTree(path, walk)
	}
	return RemoveFile(path)
}

// toFileMode converts Permissions to an os.FileMode suitable for os.Mkdir/
// os.OpenFile. On Windows these bits are accepted but have no effect beyond
// the read-only attribute.
func toFileMode(perm Permissions) os.FileMode {
	return os.FileMode(perm & 0777)
}
