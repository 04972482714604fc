//go:build windows

package iterator

import (
	"golang.org/x/sys/windows"

	"github.com/go-forge/gofs/pkg/filesystem"
)

// windowsStream wraps a FindFirstFile/FindNextFile handle. Unlike the Linux
// getdents64 path, each call already yields one fully-parsed entry plus its
// WIN32_FIND_DATA, so no scratch-buffer growth loop is needed here.
type windowsStream struct {
	handle windows.Handle
	data   windows.Win32finddata
	done   bool
	first  bool
}

func openStream(root string) (stream, error) {
	pattern := root + `\*`
	ptr, err := windows.UTF16PtrFromString(pattern)
	if err != nil {
		return nil, filesystem.NewError("readDirectory", root, err)
	}

	var data windows.Win32finddata
	handle, err := windows.FindFirstFile(ptr, &data)
	if err != nil {
		if err == windows.ERROR_FILE_NOT_FOUND {
			return &windowsStream{handle: windows.InvalidHandle, done: true}, nil
		}
		return nil, filesystem.NewError("readDirectory", root, err)
	}
	return &windowsStream{handle: handle, data: data, first: true}, nil
}

func (s *windowsStream) next() (string, filesystem.Type, bool, bool, error) {
	for {
		if s.done {
			return "", filesystem.TypeUnknown, false, false, nil
		}

		var data windows.Win32finddata
		if s.first {
			data = s.data
			s.first = false
		} else {
			if err := windows.FindNextFile(s.handle, &data); err != nil {
				s.done = true
				if err == windows.ERROR_NO_MORE_FILES {
					return "", filesystem.TypeUnknown, false, false, nil
				}
				return "", filesystem.TypeUnknown, false, false, err
			}
		}

		name := windows.UTF16ToString(data.FileName[:])
		if name == "." || name == ".." {
			continue
		}

		typ := filesystem.TypeFile
		if data.FileAttributes&windows.FILE_ATTRIBUTE_DIRECTORY != 0 {
			typ = filesystem.TypeDirectory
		} else if data.FileAttributes&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0 {
			typ = filesystem.TypeSymlink
		}
		return name, typ, true, true, nil
	}
}

func (s *windowsStream) close() error {
	if s.handle == windows.InvalidHandle || s.handle == 0 {
		return nil
	}
	return windows.FindClose(s.handle)
}
