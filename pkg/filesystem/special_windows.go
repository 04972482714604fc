//go:build windows

package filesystem

import (
	"os"

	"golang.org/x/sys/windows"
)

// CurrentDirectory returns the process's current working directory. This is
// genuinely process-global state, shared across every caller in the
// process.
func CurrentDirectory() (string, error) {
	dir, err := windows.GetCurrentDirectory()
	if err != nil {
		return "", newError("getCurrentDirectory", "", classify(err), err)
	}
	return dir, nil
}

// SetCurrentDirectory changes the process's current working directory.
func SetCurrentDirectory(path string) error {
	if err := windows.SetCurrentDirectory(windows.StringToUTF16Ptr(path)); err != nil {
		return newError("setCurrentDirectory", path, classify(err), err)
	}
	return nil
}

// ExecutablePath returns the path to the currently running executable via
// GetModuleFileName.
func ExecutablePath() (string, error) {
	buf := make([]uint16, windows.MAX_PATH)
	for {
		n, err := windows.GetModuleFileName(0, &buf[0], uint32(len(buf)))
		if err != nil {
			return "", newError("getModuleFileName", "", classify(err), err)
		}
		if int(n) < len(buf) {
			return windows.UTF16ToString(buf[:n]), nil
		}
		buf = make([]uint16, len(buf)*2)
	}
}

// ExecutableDirectory returns the parent directory of ExecutablePath.
func ExecutableDirectory() (string, error) {
	exe, err := ExecutablePath()
	if err != nil {
		return "", err
	}
	idx := -1
	for i := len(exe) - 1; i >= 0; i-- {
		if exe[i] == '\\' || exe[i] == '/' {
			idx = i
			break
		}
	}
	if idx < 0 {
		return exe, nil
	}
	return exe[:idx], nil
}

// PreferencePath returns the directory in which an application named app by
// organization org should store user preferences: %APPDATA%\org\app. The
// directory is created if absent, matching the POSIX side's behavior; see
// DESIGN.md for the rationale.
func PreferencePath(org, app string) (string, error) {
	base := os.Getenv("APPDATA")
	if base == "" {
		return "", newError("preferencePath", "", KindNotFound, nil)
	}
	dir := base + "\\" + org + "\\" + app
	if err := CreateDirectories(dir, 0700); err != nil && !IsAlreadyExists(err) {
		return "", err
	}
	return dir, nil
}

// TemporaryPath returns the system's temporary-file directory via %TMP%,
// %TEMP%, falling back to GetTempPath.
func TemporaryPath() string {
	for _, name := range []string{"TMP", "TEMP", "TEMPDIR"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	buf := make([]uint16, windows.MAX_PATH)
	n, err := windows.GetTempPath(uint32(len(buf)), &buf[0])
	if err != nil || n == 0 {
		return "C:\\Windows\\Temp"
	}
	return windows.UTF16ToString(buf[:n])
}
