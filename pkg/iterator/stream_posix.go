//go:build !windows

package iterator

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/go-forge/gofs/pkg/filesystem"
)

// posixStream reads raw directory entries off a file descriptor in batches
// via a getdents-style syscall, growing its scratch buffer geometrically
// (initial 256 bytes, factor 4) up to a hard ceiling, rather than allocating
// one descriptor per readdir(3) call the way the C library does.
type posixStream struct {
	fd  int
	buf []byte
	off int
	n   int
}

const (
	posixBufferInitial = 256
	posixBufferGrowth  = 4
	posixBufferCeiling = 1 << 20
)

func openStream(root string) (stream, error) {
	fd, err := unix.Open(root, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, wrapOpenErr("readDirectory", root, err)
	}
	return &posixStream{fd: fd, buf: make([]byte, posixBufferInitial)}, nil
}

func (s *posixStream) fill() error {
	for {
		n, err := unix.Getdents(s.fd, s.buf)
		if err != nil {
			if err == unix.EINVAL && len(s.buf) < posixBufferCeiling {
				s.buf = make([]byte, len(s.buf)*posixBufferGrowth)
				continue
			}
			return err
		}
		s.n = n
		s.off = 0
		return nil
	}
}

// next parses dirent64 records out of the scratch buffer, refilling from the
// kernel as needed, and skips "." and "..".
func (s *posixStream) next() (string, filesystem.Type, bool, bool, error) {
	for {
		if s.off >= s.n {
			if err := s.fill(); err != nil {
				return "", filesystem.TypeUnknown, false, false, err
			}
			if s.n == 0 {
				return "", filesystem.TypeUnknown, false, false, nil
			}
		}

		rec := s.buf[s.off:s.n]
		if len(rec) < 19 {
			s.off = s.n
			continue
		}
		reclen := int(hostUint16(rec[16:18]))
		if reclen == 0 || reclen > len(rec) {
			s.off = s.n
			continue
		}
		dtype := rec[18]
		nameBytes := rec[19:reclen]
		if idx := indexByte(nameBytes, 0); idx >= 0 {
			nameBytes = nameBytes[:idx]
		}
		name := string(nameBytes)
		s.off += reclen

		if name == "." || name == ".." {
			continue
		}

		typ, known := direntType(dtype)
		return name, typ, known, true, nil
	}
}

func (s *posixStream) close() error {
	return unix.Close(s.fd)
}

// hostUint16 decodes a little-endian uint16, matching the in-kernel dirent64
// layout on every supported Linux architecture.
func hostUint16(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

// direntType maps a raw d_type byte to a filesystem.Type. DT_UNKNOWN means
// the underlying filesystem doesn't populate d_type (common on some
// network/overlay filesystems); callers must fall back to a stat call.
func direntType(dtype byte) (filesystem.Type, bool) {
	switch dtype {
	case unix.DT_REG:
		return filesystem.TypeFile, true
	case unix.DT_DIR:
		return filesystem.TypeDirectory, true
	case unix.DT_LNK:
		return filesystem.TypeSymlink, true
	case unix.DT_UNKNOWN:
		return filesystem.TypeUnknown, false
	default:
		return filesystem.TypeUnknown, true
	}
}

func wrapOpenErr(op, path string, err error) error {
	if pe, ok := err.(*os.PathError); ok {
		err = pe.Err
	}
	return filesystem.NewError(op, path, err)
}
