package path

import "strings"

// Normalize applies the portable path normalization rules: collapse
// separator runs, drop "." segments, collapse "dir/.." pairs, collapse a
// leading "/.." into "/", strip a trailing "/.", strip a trailing
// separator, and map an empty result to ".".
func Normalize(p Path) Path {
	if p == "" {
		return ""
	}

	root := string(Root(p))
	body := string(p)[len(root):]

	segs := splitNonEmpty(body)

	// Drop "." segments first, so that a pattern like "a/./.." exposes the
	// "a", ".." pair to the collapse pass below instead of leaving the "."
	// sitting between them and blocking the collapse.
	filtered := segs[:0]
	for _, s := range segs {
		if s != "." {
			filtered = append(filtered, s)
		}
	}
	segs = filtered

	// Repeatedly remove "<dir>/.." pairs where <dir> is not itself "..".
	// Restart after each removal so that "../.." style collapses are caught.
	for {
		removed := false
		for i := 1; i < len(segs); i++ {
			if segs[i] == ".." && segs[i-1] != ".." {
				segs = append(segs[:i-1], segs[i+1:]...)
				removed = true
				break
			}
		}
		if !removed {
			break
		}
	}

	// If the path is rooted and leading ".." segments remain, they collapse
	// into the root itself: "/.." immediately following the root goes nowhere.
	if root != "" {
		for len(segs) > 0 && segs[0] == ".." {
			segs = segs[1:]
		}
	}

	var b strings.Builder
	b.WriteString(root)
	for i, s := range segs {
		needSep := i > 0 || (root != "" && !isSeparator(root[len(root)-1]))
		if needSep {
			b.WriteByte(Separator)
		}
		b.WriteString(s)
	}

	result := b.String()
	if result == "" {
		result = "."
	}

	return Path(result)
}

// splitNonEmpty splits body on any run of separators, discarding empty
// segments — this is what collapses separator runs, simply by never
// emitting an empty segment.
func splitNonEmpty(body string) []string {
	out := make([]string, 0, 8)
	start := -1
	for i := 0; i < len(body); i++ {
		if isSeparator(body[i]) {
			if start >= 0 {
				out = append(out, body[start:i])
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, body[start:])
	}
	return out
}
