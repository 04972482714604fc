//go:build linux

package watch

import "unsafe"

// ptr reinterprets the head of buf as an *unix.InotifyEvent without a copy,
// the same technique golang.org/x/sys/unix consumers use to parse
// getdents/inotify buffers in place.
func ptr(buf []byte) unsafe.Pointer {
	return unsafe.Pointer(&buf[0])
}

// cString trims a NUL-padded inotify event name to its real length.
func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
