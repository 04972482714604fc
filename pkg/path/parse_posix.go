//go:build !windows

package path

// Separator is the platform's native path separator.
const Separator = '/'

// isSeparator reports whether b is a path separator on this platform. POSIX
// recognizes only '/'.
func isSeparator(b byte) bool {
	return b == '/'
}

// Root returns the leading prefix of p that identifies its anchor: "/" if p
// is absolute, or "" if p is relative. POSIX has exactly one root form.
func Root(p Path) Path {
	if len(p) > 0 && p[0] == '/' {
		return "/"
	}
	return ""
}

// ParentSegment returns the slice of p before its last separator. If the
// only separator is the leading '/' of an absolute path, the root itself is
// returned.
func ParentSegment(p Path) Path {
	s := string(p)
	idx := lastSeparatorIndex(s)
	if idx < 0 {
		return ""
	}
	if idx == 0 {
		return "/"
	}
	return Path(s[:idx])
}
