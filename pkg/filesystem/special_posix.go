//go:build !windows

package filesystem

import (
	"os"

	"golang.org/x/sys/unix"
)

// CurrentDirectory returns the process's current working directory. This is
// genuinely process-global state, shared across every caller in the
// process.
func CurrentDirectory() (string, error) {
	dir, err := unix.Getwd()
	if err != nil {
		return "", newError("getcwd", "", classify(err), err)
	}
	return dir, nil
}

// SetCurrentDirectory changes the process's current working directory.
func SetCurrentDirectory(path string) error {
	if err := unix.Chdir(path); err != nil {
		return newError("chdir", path, classify(err), err)
	}
	return nil
}

// ExecutablePath returns the path to the currently running executable, read
// from /proc/self/exe on Linux.
func ExecutablePath() (string, error) {
	target, err := SymlinkTarget(procSelfExe)
	if err != nil {
		return "", err
	}
	return target, nil
}

const procSelfExe = "/proc/self/exe"

// ExecutableDirectory returns the parent directory of ExecutablePath.
func ExecutableDirectory() (string, error) {
	exe, err := ExecutablePath()
	if err != nil {
		return "", err
	}
	return parentDir(exe), nil
}

// PreferencePath returns the directory in which an application named app by
// organization org should store user preferences: $XDG_DATA_HOME/org/app,
// falling back to $HOME/.local/share/org/app. The directory is created if
// absent; see DESIGN.md for the rationale.
func PreferencePath(org, app string) (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home := os.Getenv("HOME")
		if home == "" {
			return "", newError("preferencePath", "", KindNotFound, nil)
		}
		base = home + "/.local/share"
	}
	dir := base + "/" + org + "/" + app
	if err := CreateDirectories(dir, 0700); err != nil && !IsAlreadyExists(err) {
		return "", err
	}
	return dir, nil
}

// TemporaryPath returns the system's temporary-file directory, preferring
// $TMPDIR, then $TMP, $TEMP, $TEMPDIR, and falling back to /tmp.
func TemporaryPath() string {
	for _, name := range []string{"TMPDIR", "TMP", "TEMP", "TEMPDIR"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return "/tmp"
}

func parentDir(path string) string {
	idx := -1
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return "/"
	}
	return path[:idx]
}
