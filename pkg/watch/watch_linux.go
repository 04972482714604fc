//go:build linux

package watch

import (
	"golang.org/x/sys/unix"

	"github.com/go-forge/gofs/pkg/filesystem"
	p "github.com/go-forge/gofs/pkg/path"
)

// directoryRecord is the Linux watched-directory-record: a parent directory
// being watched on behalf of one or more registered files.
type directoryRecord struct {
	wd    int
	files map[string]*fileRecord
}

// fileRecord is the Linux watched-file-record: the canonical path of a
// registered file plus its own per-file inotify watch descriptor, which
// lets renames/removals of the file itself be observed even though the
// parent directory's watch would also report them by name.
type fileRecord struct {
	path   string
	fileWd int
}

// Watcher is the Linux backend: a single non-blocking inotify instance
// multiplexing events for every watched directory.
type Watcher struct {
	fd       int
	callback Callback
	dirs     map[string]*directoryRecord
	byDirWd  map[int]*directoryRecord
	byFileWd map[int]*fileRecord
	buf      []byte
}

// New creates a watcher that invokes callback for every observed event.
func New(callback Callback) (*Watcher, error) {
	fd, err := unix.InotifyInit1(unix.IN_NONBLOCK | unix.IN_CLOEXEC)
	if err != nil {
		return nil, filesystem.NewError("newWatcher", "", err)
	}
	return &Watcher{
		fd:       fd,
		callback: callback,
		dirs:     make(map[string]*directoryRecord),
		byDirWd:  make(map[int]*directoryRecord),
		byFileWd: make(map[int]*fileRecord),
		buf:      make([]byte, bufferInitial),
	}, nil
}

// WatchFile registers path for watching. Canonicalizing up front means
// every downstream comparison and the path reported to the callback use one
// stable form, regardless of how the caller originally spelled it.
// Duplicate registration of the same path is a no-op that still reports
// success.
func (w *Watcher) WatchFile(path string) error {
	canonical, err := filesystem.Canonical(path)
	if err != nil {
		return err
	}

	parent := string(p.ParentSegment(p.Path(canonical)))
	name := string(p.Filename(p.Path(canonical)))

	dir, ok := w.dirs[parent]
	if !ok {
		wd, err := unix.InotifyAddWatch(w.fd, parent, allEventsMask)
		if err != nil {
			return filesystem.NewError("watchFile", parent, err)
		}
		dir = &directoryRecord{wd: wd, files: make(map[string]*fileRecord)}
		w.dirs[parent] = dir
		w.byDirWd[wd] = dir
	}

	if _, exists := dir.files[name]; exists {
		return nil
	}

	fileWd, err := unix.InotifyAddWatch(w.fd, canonical, allEventsMask)
	if err != nil {
		return filesystem.NewError("watchFile", canonical, err)
	}
	rec := &fileRecord{path: canonical, fileWd: fileWd}
	dir.files[name] = rec
	w.byFileWd[fileWd] = rec

	return nil
}

// UnwatchFile deregisters path. If it was the last registered file under its
// parent directory, the parent's directory watch is torn down too.
func (w *Watcher) UnwatchFile(path string) error {
	canonical, err := filesystem.Canonical(path)
	if err != nil {
		return err
	}

	parent := string(p.ParentSegment(p.Path(canonical)))
	name := string(p.Filename(p.Path(canonical)))

	dir, ok := w.dirs[parent]
	if !ok {
		return nil
	}
	rec, ok := dir.files[name]
	if !ok {
		return nil
	}

	unix.InotifyRmWatch(w.fd, uint32(rec.fileWd))
	delete(w.byFileWd, rec.fileWd)
	delete(dir.files, name)

	if len(dir.files) == 0 {
		unix.InotifyRmWatch(w.fd, uint32(dir.wd))
		delete(w.byDirWd, dir.wd)
		delete(w.dirs, parent)
	}

	return nil
}

// UnwatchAll deregisters every currently-watched file.
func (w *Watcher) UnwatchAll() error {
	for parent, dir := range w.dirs {
		for name, rec := range dir.files {
			unix.InotifyRmWatch(w.fd, uint32(rec.fileWd))
			delete(w.byFileWd, rec.fileWd)
			delete(dir.files, name)
		}
		unix.InotifyRmWatch(w.fd, uint32(dir.wd))
		delete(w.byDirWd, dir.wd)
		delete(w.dirs, parent)
	}
	return nil
}

// HasEvents reports whether at least one event is pending without consuming
// it, via a zero-timeout poll on the inotify descriptor.
func (w *Watcher) HasEvents() (bool, error) {
	fds := []unix.PollFd{{Fd: int32(w.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if err != nil {
		return false, filesystem.NewError("hasEvents", "", err)
	}
	return n > 0, nil
}

// ProcessEvents drains and dispatches every currently-pending event. It
// never blocks: the inotify descriptor was opened non-blocking, so a read
// with nothing pending returns EAGAIN, which is treated as "no events" and
// not an error.
func (w *Watcher) ProcessEvents() error {
	for {
		n, err := unix.Read(w.fd, w.buf)
		if err != nil {
			if err == unix.EAGAIN {
				return nil
			}
			if err == unix.EINVAL && len(w.buf) < bufferCeiling {
				w.buf = make([]byte, grow(len(w.buf)))
				continue
			}
			return filesystem.NewError("processEvents", "", err)
		}
		if n == 0 {
			return nil
		}
		w.dispatch(w.buf[:n])
		if n < len(w.buf) {
			return nil
		}
	}
}

// dispatch walks a buffer of concatenated inotify_event records, translating
// each into a callback invocation.
func (w *Watcher) dispatch(buf []byte) {
	off := 0
	for off+unix.SizeofInotifyEvent <= len(buf) {
		raw := (*unix.InotifyEvent)(ptr(buf[off:]))
		nameLen := int(raw.Len)
		nameStart := off + unix.SizeofInotifyEvent
		nameEnd := nameStart + nameLen
		if nameEnd > len(buf) {
			break
		}

		mask := raw.Mask
		wd := int(raw.Wd)
		var name string
		if nameLen > 0 {
			name = cString(buf[nameStart:nameEnd])
		}
		off = nameEnd

		if mask&(unix.IN_IGNORED|unix.IN_Q_OVERFLOW|unix.IN_UNMOUNT) != 0 {
			continue
		}

		if dir, ok := w.byDirWd[wd]; ok {
			if name == "" {
				continue
			}
			rec, tracked := dir.files[name]
			if !tracked {
				continue
			}
			w.callback(rec.path, classifyMask(mask))
			continue
		}

		if rec, ok := w.byFileWd[wd]; ok {
			w.callback(rec.path, classifyMask(mask))
		}
	}
}

// classifyMask translates a raw inotify event mask into the portable
// EventKind bitmask.
func classifyMask(mask uint32) EventKind {
	var kind EventKind
	if mask&unix.IN_CREATE != 0 {
		kind |= Created
	}
	if mask&(unix.IN_MODIFY|unix.IN_ATTRIB|unix.IN_CLOSE_WRITE) != 0 {
		kind |= Modified
	}
	if mask&(unix.IN_DELETE|unix.IN_DELETE_SELF) != 0 {
		kind |= Removed
	}
	if mask&unix.IN_MOVED_FROM != 0 {
		kind |= MovedFrom
	}
	if mask&unix.IN_MOVED_TO != 0 {
		kind |= MovedTo
	}
	return kind
}

// allEventsMask watches the creation, modification, attribute,
// close-after-write, deletion and move event classes; filtering
// down to what the caller actually registered happens at dispatch time
// against the watched-files map, not at the kernel.
const allEventsMask = unix.IN_CREATE | unix.IN_MODIFY | unix.IN_ATTRIB |
	unix.IN_CLOSE_WRITE | unix.IN_DELETE | unix.IN_DELETE_SELF |
	unix.IN_MOVED_FROM | unix.IN_MOVED_TO | unix.IN_MOVE_SELF

// Close unwatches everything and releases the inotify descriptor.
func (w *Watcher) Close() error {
	w.UnwatchAll()
	return unix.Close(w.fd)
}

func grow(n int) int {
	next := n * bufferGrowth
	if next > bufferCeiling {
		return bufferCeiling
	}
	return next
}
