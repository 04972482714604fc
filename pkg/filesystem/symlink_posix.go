//go:build !windows

package filesystem

import "golang.org/x/sys/unix"

// symlinkBufferInitialSize and symlinkBufferCeiling bound the geometric
// growth used to read an oversized symlink target: the scratch buffer
// grows on truncation up to a hard ceiling.
const (
	symlinkBufferInitialSize = 256
	symlinkBufferGrowthFactor = 4
	symlinkBufferCeiling      = 1 << 20
)

// SymlinkTarget reads the destination of the symbolic link at path.
func SymlinkTarget(path string) (string, error) {
	size := symlinkBufferInitialSize
	for {
		buf := make([]byte, size)
		n, err := unix.Readlink(path, buf)
		if err != nil {
			return "", newError("readlink", path, classify(err), err)
		}
		if n < size {
			return string(buf[:n]), nil
		}
		if size >= symlinkBufferCeiling {
			return "", newError("readlink", path, KindInvalidArgument, nil)
		}
		size *= symlinkBufferGrowthFactor
		if size > symlinkBufferCeiling {
			size = symlinkBufferCeiling
		}
	}
}
