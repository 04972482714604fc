package path

// Append joins out and s with separator discipline: if s is empty, out is
// returned unchanged; if out is empty or s is absolute, the result is s; if
// both sides of the join point are separators, one is dropped instead of
// doubled; if neither is, a separator is inserted; otherwise the two are
// joined as they are.
func Append(out Path, s Path) Path {
	if s == "" {
		return out
	}
	if out == "" || IsAbsolute(s) {
		return s
	}

	outStr, sStr := string(out), string(s)
	outEndsSep := isSeparator(outStr[len(outStr)-1])
	sStartsSep := isSeparator(sStr[0])

	switch {
	case outEndsSep && sStartsSep:
		return Path(outStr + sStr[1:])
	case !outEndsSep && !sStartsSep:
		return Path(outStr + string(Separator) + sStr)
	default:
		return Path(outStr + sStr)
	}
}

// Concat appends s to out with no separator logic, at the byte level.
func Concat(out Path, s Path) Path {
	return out + s
}

// ReplaceFilename returns out with its filename replaced by name. If out's
// parent equals its root, the result is root+name; otherwise, if out has a
// parent, the result is parent+separator+name; if out has neither root nor
// parent, the result is name alone.
func ReplaceFilename(out Path, name Path) Path {
	root := Root(out)
	parent := ParentSegment(out)

	if parent == root {
		return Concat(root, name)
	}
	if parent != "" {
		return Append(parent, name)
	}
	return name
}

// Relative computes the path that, when appended to from and normalized,
// yields to normalized — or "" if from and to do not share a root.
func Relative(from, to Path) Path {
	if Root(from) != Root(to) {
		return ""
	}

	fromSegs := nonRootSegments(from)
	toSegs := nonRootSegments(to)

	common := 0
	for common < len(fromSegs) && common < len(toSegs) && fromSegs[common] == toSegs[common] {
		common++
	}

	n := 0
	for _, seg := range fromSegs[common:] {
		switch seg {
		case "..":
			n--
		case ".":
		default:
			n++
		}
	}
	if n < 0 {
		return ""
	}

	remaining := toSegs[common:]
	if n == 0 && len(remaining) == 0 {
		return "."
	}

	result := Path("")
	for i := 0; i < n; i++ {
		result = Append(result, "..")
	}
	for _, seg := range remaining {
		result = Append(result, seg)
	}
	return result
}

// Proximate behaves like Relative but, when from and to do not share a root,
// returns to unchanged rather than an empty path, making it safe to use as a
// best-effort display helper where Relative's strict failure mode is too
// harsh.
func Proximate(from, to Path) Path {
	if Root(from) != Root(to) {
		return to
	}
	return Relative(from, to)
}

// nonRootSegments returns the non-empty substrings of p between separators,
// excluding the leading root that Segments would otherwise include.
func nonRootSegments(p Path) []Path {
	segs := Segments(p)
	if Root(p) != "" && len(segs) > 0 {
		return segs[1:]
	}
	return segs
}
