//go:build windows

package path

// Separator is the platform's native path separator. Windows accepts '/' as
// an alternate separator during parsing, but Separator is what gets produced
// on output (see Append, Normalize).
const Separator = '\\'

// isSeparator reports whether b is a path separator on this platform.
// Windows accepts both '\' and '/' as separators during parsing.
func isSeparator(b byte) bool {
	return b == '\\' || b == '/'
}

func isDriveLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func indexSeparatorFrom(s string, start int) int {
	for i := start; i < len(s); i++ {
		if isSeparator(s[i]) {
			return i
		}
	}
	return -1
}

func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		a, b := s[i], prefix[i]
		if a >= 'a' && a <= 'z' {
			a -= 'a' - 'A'
		}
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		if a != b {
			return false
		}
	}
	return true
}

// shareRootEnd scans s starting at start for a "server\share" pair and
// returns the index one past the share name (or past the server name if no
// share follows), plus whether an additional separator follows the share
// (indicating a child component, in which case the caller should include
// that separator in the returned root).
func shareRootEnd(s string, start int) (end int, trailing bool) {
	serverEnd := indexSeparatorFrom(s, start)
	if serverEnd < 0 {
		return len(s), false
	}
	shareStart := serverEnd + 1
	shareEnd := indexSeparatorFrom(s, shareStart)
	if shareEnd < 0 {
		return len(s), false
	}
	return shareEnd, true
}

func withTrailing(s string, end int, trailing bool) Path {
	if trailing {
		return Path(s[:end+1])
	}
	return Path(s[:end])
}

// rootDeviceNamespace handles paths beginning with "\\.\" or "\\?\", which
// may introduce a drive letter, a "UNC\server\share" redirection, or a
// "Volume{GUID}" volume identifier.
func rootDeviceNamespace(s string) Path {
	rest := s[4:]

	if hasPrefixFold(rest, "UNC") && (len(rest) == 3 || isSeparator(rest[3])) {
		if len(rest) == 3 {
			return Path(s)
		}
		end, trailing := shareRootEnd(rest, 4)
		return withTrailing(s, 4+end, trailing)
	}

	if len(rest) >= 2 && isDriveLetter(rest[0]) && rest[1] == ':' {
		end := 4 + 2
		trailing := end < len(s) && isSeparator(s[end])
		return withTrailing(s, end, trailing)
	}

	if hasPrefixFold(rest, "Volume{") {
		for i := 7; i < len(rest); i++ {
			if rest[i] == '}' {
				end := 4 + i + 1
				trailing := end < len(s) && isSeparator(s[end])
				return withTrailing(s, end, trailing)
			}
		}
	}

	// Unrecognized device form: fall back to treating whatever follows the
	// "\\.\" prefix as a server/share pair.
	end, trailing := shareRootEnd(s, 4)
	return withTrailing(s, end, trailing)
}

// Root returns the leading prefix of p that identifies its anchor: a drive
// letter ("C:" or "C:\"), a UNC share ("\\server\share\"), a device or
// verbatim namespace prefix ("\\.\" or "\\?\", possibly extended with a
// UNC or volume-GUID form beneath it), or "" if p is relative.
func Root(p Path) Path {
	s := string(p)
	n := len(s)
	if n == 0 {
		return ""
	}

	c0 := s[0]
	if !isSeparator(c0) {
		if n >= 2 && isDriveLetter(c0) && s[1] == ':' {
			if n >= 3 && isSeparator(s[2]) {
				return Path(s[:3])
			}
			return Path(s[:2])
		}
		return ""
	}

	if n == 1 {
		return Path(s[:1])
	}
	if !isSeparator(s[1]) {
		return Path(s[:1])
	}

	if n >= 4 && (s[2] == '.' || s[2] == '?') && isSeparator(s[3]) {
		return rootDeviceNamespace(s)
	}

	end, trailing := shareRootEnd(s, 2)
	return withTrailing(s, end, trailing)
}

// ParentSegment returns the slice of p before its last separator. When the
// computed parent would equal the root (modulo the root's own trailing
// separator), the root is returned verbatim instead.
func ParentSegment(p Path) Path {
	s := string(p)
	idx := lastSeparatorIndex(s)
	if idx < 0 {
		return ""
	}

	root := string(Root(p))
	candidate := s[:idx]
	if len(root) > 0 {
		rootNoSep := root
		if isSeparator(root[len(root)-1]) {
			rootNoSep = root[:len(root)-1]
		}
		if candidate == rootNoSep {
			return Path(root)
		}
	}
	return Path(candidate)
}
