package path

// lastSeparatorIndex returns the index of the final separator in s, or -1 if
// none is present.
func lastSeparatorIndex(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if isSeparator(s[i]) {
			return i
		}
	}
	return -1
}

// Filename returns the slice of p after its last separator, or the whole
// path if there is no separator. A trailing separator or a root-only path
// yields an empty filename.
func Filename(p Path) Path {
	s := string(p)
	idx := lastSeparatorIndex(s)
	if idx < 0 {
		return p
	}
	return Path(s[idx+1:])
}

// IsDot reports whether p's filename is exactly ".".
func IsDot(p Path) bool {
	return Filename(p) == "."
}

// IsDotDot reports whether p's filename is exactly "..".
func IsDotDot(p Path) bool {
	return Filename(p) == ".."
}

// Extension returns the filename's extension: the slice from the last '.' to
// the end, inclusive of the dot. A filename with no dot, or equal to "." or
// "..", or empty, has no extension. A filename that begins with '.' and
// contains no other dot is its own extension in full — a deliberate
// contract that differs from libraries that treat dotfiles as
// extensionless.
func Extension(p Path) Path {
	name := string(Filename(p))
	if name == "" || name == "." || name == ".." {
		return ""
	}
	dot := -1
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			dot = i
			break
		}
	}
	if dot < 0 {
		return ""
	}
	return Path(name[dot:])
}

// IsAbsolute reports whether p has a non-empty root.
func IsAbsolute(p Path) bool {
	return Root(p) != ""
}

// Segments splits p into its root (if any, as the first element) followed
// by each non-empty substring between separators. A trailing separator does
// not produce an empty trailing segment.
func Segments(p Path) []Path {
	s := string(p)
	out := make([]Path, 0, 4)

	root := Root(p)
	rest := s
	if root != "" {
		out = append(out, root)
		rest = s[len(root):]
	}

	start := 0
	for i := 0; i < len(rest); i++ {
		if isSeparator(rest[i]) {
			if i > start {
				out = append(out, Path(rest[start:i]))
			}
			start = i + 1
		}
	}
	if start < len(rest) {
		out = append(out, Path(rest[start:]))
	}

	return out
}
