// Package iterator implements lazy, non-recursive and recursive directory
// traversal over pkg/filesystem, in both pre-order and post-order, with
// symlink-following and full-path composition available as options.
package iterator

import (
	"errors"
	"io/fs"

	"github.com/go-forge/gofs/pkg/filesystem"
	p "github.com/go-forge/gofs/pkg/path"
)

// Options is a bitmask controlling how an Iterator behaves.
type Options uint8

const (
	// FollowSymlinks causes symlink entries whose targets are directories to
	// be treated as directories for recursion purposes.
	FollowSymlinks Options = 1 << iota
	// StopOnError aborts iteration immediately on any non-ENOENT error;
	// without it, per-entry errors are swallowed and iteration continues.
	StopOnError
	// FullPaths causes each Entry's Path field to hold the full path rooted
	// at the iterator's target, rather than just the entry name.
	FullPaths
	// ChildrenFirst switches recursive iteration to post-order: a directory
	// is yielded only after all of its descendants.
	ChildrenFirst
	// QueryType forces a type lookup for entries whose directory-stream
	// record doesn't carry type information for free (POSIX filesystems
	// that report DT_UNKNOWN; the Windows stream always carries a type).
	QueryType
)

// Entry is a single directory entry produced by an Iterator.
type Entry struct {
	// Name is the entry's base name, excluding "." and "..".
	Name string
	// Path is the full path to the entry when FullPaths is set. Otherwise
	// an Iterator leaves it empty and a Recursive walker sets it to the
	// entry's path relative to the walk's root.
	Path string
	// Type is the entry's filesystem type, when known. It is taken from the
	// directory stream; where the stream does not report it (d_type
	// DT_UNKNOWN on some POSIX filesystems) it is TypeUnknown unless
	// QueryType is set.
	Type filesystem.Type
	// Depth is the entry's depth relative to the iteration root. It is
	// always 0 for a non-recursive Iterator.
	Depth int
}

// stream is the platform-specific directory-entry source each Iterator
// frame wraps: getdents64 on Linux, FindFirstFile/FindNextFile on Windows.
type stream interface {
	// next returns the next raw entry, or ok=false at end of directory.
	// "." and ".." are filtered out before this method returns them.
	next() (name string, typ filesystem.Type, typeKnown bool, ok bool, err error)
	close() error
}

// Iterator performs non-recursive traversal of a single directory.
type Iterator struct {
	root    string
	stream  stream
	current Entry
	err     error
}

// New opens a non-recursive iterator over the directory at root.
func New(root string) (*Iterator, error) {
	s, err := openStream(root)
	if err != nil {
		return nil, err
	}
	return &Iterator{root: root, stream: s}, nil
}

// Next advances the iterator and returns the current entry, or nil when the
// directory is exhausted. On a terminal error, Next returns (nil, err); once
// an error has been returned, subsequent calls continue to return it.
func (it *Iterator) Next(opts Options) (*Entry, error) {
	if it.err != nil {
		return nil, it.err
	}

	for {
		name, typ, typeKnown, ok, err := it.stream.next()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				// The directory was removed while being listed; nothing is
				// left to yield.
				return nil, nil
			}
			if opts&StopOnError != 0 {
				it.err = err
				return nil, err
			}
			continue
		}
		if !ok {
			return nil, nil
		}

		if !typeKnown && opts&QueryType != 0 {
			full := string(p.Append(p.Path(it.root), p.Path(name)))
			if info, infoErr := filesystem.GetInfo(full, false, filesystem.QueryType); infoErr == nil {
				typ = info.Type
			}
		}

		it.current = Entry{Name: name, Type: typ, Depth: 0}
		if opts&FullPaths != 0 {
			it.current.Path = string(p.Append(p.Path(it.root), p.Path(name)))
		}
		return &it.current, nil
	}
}

// Close releases the iterator's underlying directory handle.
func (it *Iterator) Close() error {
	return it.stream.close()
}
