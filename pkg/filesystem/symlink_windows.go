//go:build windows

package filesystem

import "os"

// SymlinkTarget reads the destination of the symbolic link (or junction) at
// path. Windows reparse-point parsing is delegated to the standard library,
// which already implements the
// FSCTL_GET_REPARSE_POINT/REPARSE_DATA_BUFFER dance; re-deriving that binary
// layout by hand would not make the behavior any more correct.
func SymlinkTarget(path string) (string, error) {
	target, err := os.Readlink(path)
	if err != nil {
		return "", newError("readlink", path, classify(err), err)
	}
	return target, nil
}
