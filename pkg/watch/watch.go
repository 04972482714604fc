// Package watch implements a single-threaded, callback-driven filesystem
// watcher: register individual files to watch, then poll for and dispatch
// pending mutation events on demand. No goroutines are spawned and no
// channel is involved — every operation runs synchronously on the calling
// goroutine, mirroring the cooperative, caller-driven model the rest of
// this module follows.
package watch

// EventKind is a bitmask describing what happened to a watched path.
// Multiple bits may be set for a single callback invocation when one kernel
// record carries several of them. Separate kernel records (for example, the
// two halves of a rename) are delivered as separate callback invocations,
// matching the kernel's own event granularity.
type EventKind uint8

const (
	// Created indicates a new entry was created at the path, or (on
	// Windows, for a watched file) that the file came back into existence
	// after having been removed.
	Created EventKind = 1 << iota
	// Modified indicates the watched file's contents or metadata changed.
	Modified
	// Removed indicates the path was deleted.
	Removed
	// MovedFrom indicates the path was the source of a rename.
	MovedFrom
	// MovedTo indicates the path was the destination of a rename.
	MovedTo
)

// Callback is invoked once per observed event with the canonical path that
// was registered via WatchFile and the kind of change observed.
type Callback func(path string, kind EventKind)

const (
	// bufferInitial is the starting size of a watcher's per-source scratch
	// buffer into which raw kernel event records are read.
	bufferInitial = 256
	// bufferGrowth is the multiplicative factor applied each time a read
	// reports the buffer was too small.
	bufferGrowth = 4
	// bufferCeiling is the hard upper bound on scratch buffer size. Once it
	// is reached, the Linux backend reports a too-small read as an error;
	// the Windows backend re-issues the read without dispatching anything
	// and without reporting an error.
	bufferCeiling = 65535
)
