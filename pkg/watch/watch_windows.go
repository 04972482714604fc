//go:build windows

package watch

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/go-forge/gofs/pkg/filesystem"
	p "github.com/go-forge/gofs/pkg/path"
)

// directoryRecord is the Windows watched-directory-record: an open
// directory handle with an outstanding overlapped ReadDirectoryChanges
// call, plus the set of file names in it the caller has registered.
type directoryRecord struct {
	handle     windows.Handle
	overlapped windows.Overlapped
	buf        []byte
	files      map[string]string // name (as reported by the kernel) -> canonical path
}

// Watcher is the Windows backend. Unlike Linux, there is no single global
// notification handle: each watched directory owns its own handle and
// overlapped I/O buffer, polled independently.
type Watcher struct {
	callback Callback
	dirs     map[string]*directoryRecord
}

// New creates a watcher that invokes callback for every observed event.
func New(callback Callback) (*Watcher, error) {
	return &Watcher{
		callback: callback,
		dirs:     make(map[string]*directoryRecord),
	}, nil
}

const notifyMask = windows.FILE_NOTIFY_CHANGE_FILE_NAME |
	windows.FILE_NOTIFY_CHANGE_DIR_NAME |
	windows.FILE_NOTIFY_CHANGE_ATTRIBUTES |
	windows.FILE_NOTIFY_CHANGE_SIZE |
	windows.FILE_NOTIFY_CHANGE_LAST_WRITE |
	windows.FILE_NOTIFY_CHANGE_LAST_ACCESS |
	windows.FILE_NOTIFY_CHANGE_CREATION

// WatchFile registers path for watching.
func (w *Watcher) WatchFile(path string) error {
	canonical, err := filesystem.Canonical(path)
	if err != nil {
		return err
	}

	parent := string(p.ParentSegment(p.Path(canonical)))
	name := string(p.Filename(p.Path(canonical)))

	dir, ok := w.dirs[parent]
	if !ok {
		ptr, err := windows.UTF16PtrFromString(parent)
		if err != nil {
			return filesystem.NewError("watchFile", parent, err)
		}
		handle, err := windows.CreateFile(ptr,
			windows.FILE_LIST_DIRECTORY,
			windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
			nil, windows.OPEN_EXISTING,
			windows.FILE_FLAG_BACKUP_SEMANTICS|windows.FILE_FLAG_OVERLAPPED, 0)
		if err != nil {
			return filesystem.NewError("watchFile", parent, err)
		}

		event, err := windows.CreateEvent(nil, 1, 0, nil)
		if err != nil {
			windows.CloseHandle(handle)
			return filesystem.NewError("watchFile", parent, err)
		}

		dir = &directoryRecord{
			handle: handle,
			buf:    make([]byte, bufferInitial),
			files:  make(map[string]string),
		}
		dir.overlapped.HEvent = event

		if err := dir.issueRead(); err != nil {
			windows.CloseHandle(event)
			windows.CloseHandle(handle)
			return err
		}

		w.dirs[parent] = dir
	}

	dir.files[name] = canonical
	return nil
}

// issueRead starts (or restarts) an asynchronous ReadDirectoryChanges call
// on the directory's handle.
func (d *directoryRecord) issueRead() error {
	windows.ResetEvent(d.overlapped.HEvent)
	var retlen uint32
	err := windows.ReadDirectoryChanges(d.handle, &d.buf[0], uint32(len(d.buf)),
		false, notifyMask, &retlen, &d.overlapped, 0)
	if err != nil {
		return filesystem.NewError("watchFile", "", err)
	}
	return nil
}

// UnwatchFile deregisters path, closing its parent directory's handle and
// event once no registered file remains under it.
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
	if _, tracked := dir.files[name]; !tracked {
		return nil
	}
	delete(dir.files, name)

	if len(dir.files) == 0 {
		windows.CloseHandle(dir.overlapped.HEvent)
		windows.CloseHandle(dir.handle)
		delete(w.dirs, parent)
	}
	return nil
}

// UnwatchAll deregisters every currently-watched file.
func (w *Watcher) UnwatchAll() error {
	for parent, dir := range w.dirs {
		windows.CloseHandle(dir.overlapped.HEvent)
		windows.CloseHandle(dir.handle)
		delete(w.dirs, parent)
	}
	return nil
}

// HasEvents reports whether any watched directory's overlapped read has
// completed.
func (w *Watcher) HasEvents() (bool, error) {
	for _, dir := range w.dirs {
		state, err := windows.WaitForSingleObject(dir.overlapped.HEvent, 0)
		if err != nil {
			return false, filesystem.NewError("hasEvents", "", err)
		}
		if state == windows.WAIT_OBJECT_0 {
			return true, nil
		}
	}
	return false, nil
}

// ProcessEvents drains every watched directory whose overlapped read has
// completed, re-issuing the read immediately after retrieving results to
// minimize the window during which changes could be missed.
func (w *Watcher) ProcessEvents() error {
	for _, dir := range w.dirs {
		state, err := windows.WaitForSingleObject(dir.overlapped.HEvent, 0)
		if err != nil {
			return filesystem.NewError("processEvents", "", err)
		}
		if state != windows.WAIT_OBJECT_0 {
			continue
		}

		var count uint32
		err = windows.GetOverlappedResult(dir.handle, &dir.overlapped, &count, false)

		if count == 0 && len(dir.buf) < bufferCeiling {
			dir.buf = make([]byte, grow(len(dir.buf)))
			if reissueErr := dir.issueRead(); reissueErr != nil {
				return reissueErr
			}
			continue
		}
		if err != nil {
			return filesystem.NewError("processEvents", "", err)
		}

		w.dispatch(dir, dir.buf[:count])

		if reissueErr := dir.issueRead(); reissueErr != nil {
			return reissueErr
		}
	}
	return nil
}

// dispatch walks a buffer of FILE_NOTIFY_INFORMATION records, translating
// each into a callback invocation for names present in the directory's
// watched-files set.
func (w *Watcher) dispatch(dir *directoryRecord, buf []byte) {
	off := 0
	for {
		if off+12 > len(buf) {
			return
		}
		info := (*windows.FileNotifyInformation)(unsafe.Pointer(&buf[off]))
		nameStart := off + 12
		nameEnd := nameStart + int(info.FileNameLength)
		if nameEnd > len(buf) {
			return
		}

		name := windows.UTF16ToString(bytesToUint16(buf[nameStart:nameEnd]))
		if canonical, tracked := dir.files[name]; tracked {
			w.callback(canonical, classifyAction(info.Action))
		}

		if info.NextEntryOffset == 0 {
			return
		}
		off += int(info.NextEntryOffset)
	}
}

func bytesToUint16(b []byte) []uint16 {
	u := make([]uint16, len(b)/2)
	for i := range u {
		u[i] = uint16(b[2*i]) | uint16(b[2*i+1])<<8
	}
	return u
}

func classifyAction(action uint32) EventKind {
	switch action {
	case windows.FILE_ACTION_ADDED:
		return Created
	case windows.FILE_ACTION_REMOVED:
		return Removed
	case windows.FILE_ACTION_MODIFIED:
		return Modified
	case windows.FILE_ACTION_RENAMED_OLD_NAME:
		return MovedFrom
	case windows.FILE_ACTION_RENAMED_NEW_NAME:
		return MovedTo
	default:
		return 0
	}
}

// Close unwatches everything, closing every remaining directory handle and
// event.
func (w *Watcher) Close() error {
	return w.UnwatchAll()
}

func grow(n int) int {
	next := n * bufferGrowth
	if next > bufferCeiling {
		return bufferCeiling
	}
	return next
}
