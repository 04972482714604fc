package filesystem

import (
	"time"

	"golang.org/x/sys/unix"
)

// statxMask translates a QueryFlags value into the statx mask bits needed to
// populate the corresponding Info fields. Type and permission bits both live
// in STATX_MODE, and identity needs STATX_INO plus the device numbers, which
// statx always returns regardless of mask.
func statxMask(mask QueryFlags) uint32 {
	var m uint32
	if mask&(QueryType|QueryPermissions) != 0 {
		m |= unix.STATX_MODE
	}
	if mask&QueryID != 0 {
		m |= unix.STATX_INO
	}
	if mask&QuerySize != 0 {
		m |= unix.STATX_SIZE
	}
	if mask&QueryFileTimes != 0 {
		m |= unix.STATX_ATIME | unix.STATX_BTIME | unix.STATX_CTIME | unix.STATX_MTIME
	}
	return m
}

// stat performs a single statx syscall and fills an Info according to mask.
func stat(path string, followSymlinks bool, mask QueryFlags) (*Info, error) {
	flags := unix.AT_SYMLINK_NOFOLLOW
	if followSymlinks {
		flags = 0
	}

	var raw unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, flags, int(statxMask(mask)), &raw)
	if err != nil {
		return nil, newError("stat", path, classify(err), err)
	}

	info := &Info{}
	if mask&(QueryType|QueryPermissions) != 0 {
		modeBits := uint32(raw.Mode)
		if mask&QueryType != 0 {
			info.Type = typeFromMode(modeBits)
		}
		if mask&QueryPermissions != 0 {
			info.Permissions = Permissions(modeBits & 0777)
		}
	}
	if mask&QueryID != 0 {
		info.Identity = Identity{
			Device: uint64(raw.Dev_major)<<32 | uint64(raw.Dev_minor),
			Inode:  raw.Ino,
		}
	}
	if mask&QuerySize != 0 {
		info.Size = raw.Size
	}
	if mask&QueryFileTimes != 0 {
		info.CreationTime = statxTimeToTime(raw.Btime)
		info.LastAccessTime = statxTimeToTime(raw.Atime)
		info.ModificationTime = statxTimeToTime(raw.Mtime)
		info.StatusChangeTime = statxTimeToTime(raw.Ctime)
	}

	return info, nil
}

func statxTimeToTime(t unix.StatxTimestamp) time.Time {
	return time.Unix(t.Sec, int64(t.Nsec))
}

func typeFromMode(mode uint32) Type {
	switch mode & unix.S_IFMT {
	case unix.S_IFREG:
		return TypeFile
	case unix.S_IFDIR:
		return TypeDirectory
	case unix.S_IFLNK:
		return TypeSymlink
	case unix.S_IFIFO:
		return TypePipe
	case unix.S_IFBLK:
		return TypeBlockDevice
	case unix.S_IFCHR:
		return TypeCharacterDevice
	case unix.S_IFSOCK:
		return TypeSocket
	default:
		return TypeUnknown
	}
}
