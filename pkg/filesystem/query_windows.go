//go:build windows

package filesystem

import (
	"time"

	"golang.org/x/sys/windows"
)

// stat fills an Info by opening a handle and calling
// GetFileInformationByHandle, mirroring the approach the standard os package
// uses on Windows. Permissions are always zero; ACL modeling is out of
// scope for this package.
func stat(path string, followSymlinks bool, mask QueryFlags) (*Info, error) {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, newError("stat", path, KindInvalidArgument, err)
	}

	flags := uint32(windows.FILE_FLAG_BACKUP_SEMANTICS)
	if !followSymlinks {
		flags |= windows.FILE_FLAG_OPEN_REPARSE_POINT
	}

	handle, err := windows.CreateFile(
		pathPtr,
		0,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		windows.OPEN_EXISTING,
		flags,
		0,
	)
	if err != nil {
		return nil, newError("stat", path, classify(err), err)
	}
	defer windows.CloseHandle(handle)

	var raw windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(handle, &raw); err != nil {
		return nil, newError("stat", path, classify(err), err)
	}

	info := &Info{}
	if mask&QueryType != 0 {
		info.Type = typeFromAttributes(raw.FileAttributes)
	}
	if mask&QuerySize != 0 {
		info.Size = uint64(raw.FileSizeHigh)<<32 | uint64(raw.FileSizeLow)
	}
	if mask&QueryID != 0 {
		info.Identity = Identity{
			Device: uint64(raw.VolumeSerialNumber),
			Inode:  uint64(raw.FileIndexHigh)<<32 | uint64(raw.FileIndexLow),
		}
	}
	if mask&QueryFileTimes != 0 {
		info.CreationTime = time.Unix(0, raw.CreationTime.Nanoseconds())
		info.LastAccessTime = time.Unix(0, raw.LastAccessTime.Nanoseconds())
		info.ModificationTime = time.Unix(0, raw.LastWriteTime.Nanoseconds())
		info.StatusChangeTime = info.ModificationTime
	}

	return info, nil
}

func typeFromAttributes(attr uint32) Type {
	// Reparse points are treated as symlinks; this package does not attempt
	// to distinguish other reparse tag types (junctions, mount points).
	if attr&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0 {
		return TypeSymlink
	}
	if attr&windows.FILE_ATTRIBUTE_DIRECTORY != 0 {
		return TypeDirectory
	}
	return TypeFile
}
