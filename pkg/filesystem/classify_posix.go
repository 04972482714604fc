//go:build !windows

package filesystem

import (
	"errors"

	"golang.org/x/sys/unix"
)

// classify maps a raw POSIX errno (or a wrapped one) to a Kind. errors.Is is
// used rather than a direct type assertion because os and
// golang.org/x/sys/unix each have their own Errno type, and
// errors.Is/Errno.Is bridges the two.
func classify(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, unix.ENOENT):
		return KindNotFound
	case errors.Is(err, unix.EEXIST):
		return KindAlreadyExists
	case errors.Is(err, unix.ENOTDIR):
		return KindNotADirectory
	case errors.Is(err, unix.EISDIR):
		return KindIsADirectory
	case errors.Is(err, unix.EACCES), errors.Is(err, unix.EPERM):
		return KindAccessDenied
	case errors.Is(err, unix.ENOTEMPTY):
		return KindNotEmpty
	case errors.Is(err, unix.EINVAL):
		return KindInvalidArgument
	default:
		return KindIoError
	}
}
