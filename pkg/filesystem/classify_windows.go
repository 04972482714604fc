//go:build windows

package filesystem

import (
	"errors"
	"os"

	"golang.org/x/sys/windows"
)

// classify maps a raw Windows error to a Kind.
func classify(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, os.ErrNotExist), errors.Is(err, windows.ERROR_FILE_NOT_FOUND), errors.Is(err, windows.ERROR_PATH_NOT_FOUND):
		return KindNotFound
	case errors.Is(err, os.ErrExist), errors.Is(err, windows.ERROR_ALREADY_EXISTS), errors.Is(err, windows.ERROR_FILE_EXISTS):
		return KindAlreadyExists
	case errors.Is(err, windows.ERROR_DIRECTORY):
		return KindNotADirectory
	case errors.Is(err, windows.ERROR_ACCESS_DENIED):
		return KindAccessDenied
	case errors.Is(err, windows.ERROR_DIR_NOT_EMPTY):
		return KindNotEmpty
	case errors.Is(err, windows.ERROR_INVALID_PARAMETER):
		return KindInvalidArgument
	default:
		return KindIoError
	}
}
