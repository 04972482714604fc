//go:build !windows && !linux

package filesystem

import (
	"time"

	"golang.org/x/sys/unix"
)

// stat fills an Info via Stat/Lstat on POSIX systems that lack statx (e.g.
// Darwin, the BSDs). It populates every field except CreationTime, which is
// left at its zero value; QueryFlags is ignored here, since a plain
// stat/lstat call is no cheaper for a subset of fields.
func stat(path string, followSymlinks bool, _ QueryFlags) (*Info, error) {
	var raw unix.Stat_t
	var err error
	if followSymlinks {
		err = unix.Stat(path, &raw)
	} else {
		err = unix.Lstat(path, &raw)
	}
	if err != nil {
		return nil, newError("stat", path, classify(err), err)
	}

	return &Info{
		Type:        typeFromMode(uint32(raw.Mode)),
		Size:        uint64(raw.Size),
		Permissions: Permissions(raw.Mode & 0777),
		Identity: Identity{
			Device: uint64(raw.Dev),
			Inode:  raw.Ino,
		},
		ModificationTime: time.Unix(raw.Mtimespec.Sec, raw.Mtimespec.Nsec),
		LastAccessTime:   time.Unix(raw.Atimespec.Sec, raw.Atimespec.Nsec),
		StatusChangeTime: time.Unix(raw.Ctimespec.Sec, raw.Ctimespec.Nsec),
	}, nil
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
