//go:build !windows && !linux

package watch

import "github.com/go-forge/gofs/pkg/filesystem"

// Watcher is an unimplemented stub on POSIX platforms other than Linux.
// Recursive-ish kernel notification mechanisms on these platforms (kqueue,
// FSEvents) are out of scope for this rewrite, which targets the inotify
// and ReadDirectoryChangesW backends.
type Watcher struct{}

func New(callback Callback) (*Watcher, error) {
	return nil, filesystem.NewError("newWatcher", "", errUnsupported{})
}

func (w *Watcher) WatchFile(path string) error   { return errUnsupported{} }
func (w *Watcher) UnwatchFile(path string) error { return errUnsupported{} }
func (w *Watcher) UnwatchAll() error             { return errUnsupported{} }
func (w *Watcher) HasEvents() (bool, error)      { return false, errUnsupported{} }
func (w *Watcher) ProcessEvents() error          { return errUnsupported{} }
func (w *Watcher) Close() error                  { return nil }

type errUnsupported struct{}

func (errUnsupported) Error() string { return "filesystem watching is not supported on this platform" }
