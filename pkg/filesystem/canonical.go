package filesystem

import (
	p "github.com/go-forge/gofs/pkg/path"
)

// maxSymlinkDepth bounds symlink resolution to guard against cycles.
const maxSymlinkDepth = 64

// Canonical resolves path to an absolute, symlink-free form with no "." or
// ".." components; every component must exist. It fails if any component
// is missing.
func Canonical(path string) (string, error) {
	abs, err := Absolute(path)
	if err != nil {
		return "", err
	}

	segs := p.Segments(p.Path(abs))
	if len(segs) == 0 {
		return "", newError("canonical", path, KindNotFound, nil)
	}

	result := segs[0]
	for _, seg := range segs[1:] {
		result = p.Append(result, seg)
		resolved, err := resolveSymlinks(string(result), 0)
		if err != nil {
			return "", err
		}
		result = p.Path(resolved)
	}

	return string(p.Normalize(result)), nil
}

// resolveSymlinks follows a single path's symlink chain to completion,
// failing if any component along the way is missing or the chain exceeds
// maxSymlinkDepth.
func resolveSymlinks(path string, depth int) (string, error) {
	if depth > maxSymlinkDepth {
		return "", newError("canonical", path, KindInvalidArgument, nil)
	}

	info, err := GetInfo(path, false, QueryType)
	if err != nil {
		return "", err
	}
	if info.Type != TypeSymlink {
		return path, nil
	}

	target, err := SymlinkTarget(path)
	if err != nil {
		return "", err
	}

	resolvedTarget := target
	if !p.IsAbsolute(p.Path(target)) {
		parent := p.ParentSegment(p.Path(path))
		resolvedTarget = string(p.Normalize(p.Append(parent, p.Path(target))))
	}

	return resolveSymlinks(resolvedTarget, depth+1)
}

// WeaklyCanonical absolutizes and normalizes path, then canonicalizes the
// longest existing prefix and appends the (possibly non-existent) remainder
// unchanged. Unlike Canonical, it never fails merely because the tail of
// path doesn't exist.
func WeaklyCanonical(path string) (string, error) {
	abs, err := Absolute(path)
	if err != nil {
		return "", err
	}
	normalized := p.Normalize(p.Path(abs))

	existing, remainder := longestExistingPath(string(normalized))
	if existing == "" {
		return string(normalized), nil
	}

	canonicalExisting, err := Canonical(existing)
	if err != nil {
		return "", err
	}

	result := p.Path(canonicalExisting)
	for _, seg := range remainder {
		result = p.Append(result, seg)
	}
	return string(result), nil
}

// longestExistingPath finds the longest prefix of path (by segment) that
// exists on disk, returning that prefix and the remaining segments.
func longestExistingPath(path string) (existing string, remainder []p.Path) {
	segs := p.Segments(p.Path(path))
	if len(segs) == 0 {
		return "", nil
	}

	current := segs[0]
	lastExisting := ""
	if n, _ := Exists(string(current), true); n == 1 {
		lastExisting = string(current)
	} else {
		return "", segs
	}

	i := 1
	for ; i < len(segs); i++ {
		candidate := p.Append(current, segs[i])
		if n, _ := Exists(string(candidate), true); n != 1 {
			break
		}
		current = candidate
		lastExisting = string(current)
	}

	return lastExisting, segs[i:]
}

// Absolute returns path made absolute against the current working
// directory, without resolving symlinks or "." / ".." components.
func Absolute(path string) (string, error) {
	if p.IsAbsolute(p.Path(path)) {
		return path, nil
	}
	cwd, err := CurrentDirectory()
	if err != nil {
		return "", err
	}
	return string(p.Append(p.Path(cwd), p.Path(path))), nil
}

// AbsoluteCanonical combines Absolute and Canonical.
func AbsoluteCanonical(path string) (string, error) {
	abs, err := Absolute(path)
	if err != nil {
		return "", err
	}
	return Canonical(abs)
}
