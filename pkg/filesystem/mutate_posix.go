//go:build !windows

package filesystem

import (
	"os"

	"golang.org/x/sys/unix"
)

// copyFileContents copies from's bytes to to using sendfile when possible —
// a zero-copy, in-kernel file-to-file transfer sized by the already-queried
// source size — falling back to a userspace copy loop if sendfile fails
// before any bytes have been transferred (e.g. across filesystem types that
// don't support it). A sendfile failure after a partial transfer is returned
// as an error.
func copyFileContents(from, to string, srcInfo *Info) error {
	src, err := os.Open(from)
	if err != nil {
		return newError("copyFile", from, classify(err), err)
	}
	defer src.Close()

	dst, err := os.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, toFileMode(srcInfo.Permissions))
	if err != nil {
		return newError("copyFile", to, classify(err), err)
	}
	defer dst.Close()

	remaining := int64(srcInfo.Size)
	srcFd := int(src.Fd())
	dstFd := int(dst.Fd())

	for remaining > 0 {
		n, err := unix.Sendfile(dstFd, srcFd, nil, int(remaining))
		if err != nil {
			if remaining == int64(srcInfo.Size) {
				// Nothing was transferred yet; fall back to a portable copy
				// loop rather than leaving a partially-written destination.
				return copyFileFallback(from, to, srcInfo)
			}
			return newError("copyFile", to, classify(err), err)
		}
		if n == 0 {
			break
		}
		remaining -= int64(n)
	}

	return nil
}
