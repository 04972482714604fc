package filesystem

// Exists reports whether p can be confirmed present (1), confirmed absent
// (0), or undetermined due to error (-1). When followSymlinks is false, a
// symlink whose target is missing is still reported present. On a -1
// result the returned error is populated; on a 0 result for ENOENT, no
// error is returned — ENOENT is "absent", not a failure, for this
// operation only.
func Exists(p string, followSymlinks bool) (int, error) {
	_, err := stat(p, followSymlinks, QueryType)
	if err == nil {
		return 1, nil
	}
	if IsNotFound(err) {
		return 0, nil
	}
	return -1, err
}

// GetInfo populates an Info for p according to mask. Fields not selected by
// mask are not guaranteed to be populated: on Linux and Windows they are
// left at their zero value, while other POSIX systems fill them anyway.
func GetInfo(p string, followSymlinks bool, mask QueryFlags) (*Info, error) {
	return stat(p, followSymlinks, mask)
}

// GetType is a convenience wrapper around GetInfo that returns only the
// entry's Type.
func GetType(p string, followSymlinks bool) (Type, error) {
	info, err := stat(p, followSymlinks, QueryType)
	if err != nil {
		return TypeUnknown, err
	}
	return info.Type, nil
}

// GetPermissions is a convenience wrapper around GetInfo that returns only
// the entry's Permissions.
func GetPermissions(p string, followSymlinks bool) (Permissions, error) {
	info, err := stat(p, followSymlinks, QueryPermissions)
	if err != nil {
		return 0, err
	}
	return info.Permissions, nil
}

// GetSize is a convenience wrapper around GetInfo that returns only the
// entry's Size.
func GetSize(p string, followSymlinks bool) (uint64, error) {
	info, err := stat(p, followSymlinks, QuerySize)
	if err != nil {
		return 0, err
	}
	return info.Size, nil
}

// AreEquivalent reports whether two paths refer to the same filesystem
// entry, derived by comparing Identity. Identical paths short-circuit to
// true without a syscall.
func AreEquivalent(a, b string) (bool, error) {
	if a == b {
		return true, nil
	}
	infoA, err := stat(a, true, QueryID)
	if err != nil {
		return false, err
	}
	infoB, err := stat(b, true, QueryID)
	if err != nil {
		return false, err
	}
	return infoA.Identity == infoB.Identity, nil
}
