//go:build windows

package filesystem

// copyFileContents copies from's bytes to to. Windows has no standard
// zero-copy file-to-file primitive analogous to sendfile (CopyFileEx exists
// but reimplements overwrite-policy decisions this package already makes),
// so a plain userspace copy loop is used.
func copyFileContents(from, to string, srcInfo *Info) error {
	return copyFileFallback(from, to, srcInfo)
}
