package logging

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"log"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// stdoutIsTerminal caches whether standard output is attached to a
// terminal. This package does not consult it itself (color.NoColor already
// handles this for raw ANSI codes); it is exposed via StdoutIsTerminal for
// status lines built on top of a Logger's Writer.
var stdoutIsTerminal = isatty.IsTerminal(uintptr(1))

// writer is an io.Writer that splits its input stream into lines and
// forwards each line to a logging callback.
type writer struct {
	callback func(string)
	buffer   []byte
}

func trimCarriageReturn(buffer []byte) []byte {
	if len(buffer) > 0 && buffer[len(buffer)-1] == '\r' {
		return buffer[:len(buffer)-1]
	}
	return buffer
}

// Write implements io.Writer.
func (w *writer) Write(buffer []byte) (int, error) {
	w.buffer = append(w.buffer, buffer...)

	var processed int
	remaining := w.buffer
	for {
		index := bytes.IndexByte(remaining, '\n')
		if index == -1 {
			break
		}
		w.callback(string(trimCarriageReturn(remaining[:index])))
		processed += index + 1
		remaining = remaining[index+1:]
	}

	if processed > 0 {
		leftover := len(w.buffer) - processed
		if leftover > 0 {
			copy(w.buffer[:leftover], w.buffer[processed:])
		}
		w.buffer = w.buffer[:leftover]
	}

	return len(buffer), nil
}

// Logger is the main logger type. A nil *Logger is valid and silently
// discards everything, so components can hold an optional logger field
// without needing a separate "logging enabled" check at every call site.
type Logger struct {
	prefix string
	level  Level
}

// Sublogger creates a new logger with the given name appended to the
// prefix chain, inheriting the parent's level.
func (l *Logger) Sublogger(name string) *Logger {
	if l == nil {
		return nil
	}
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "." + name
	}
	return &Logger{prefix: prefix, level: l.level}
}

func (l *Logger) output(calldepth int, line string) {
	if l.prefix != "" {
		line = fmt.Sprintf("[%s] %s", l.prefix, line)
	}
	log.Output(calldepth, line)
}

func (l *Logger) enabled(level Level) bool {
	return l != nil && l.level >= level
}

// Error logs err with an error prefix, colored red on a terminal.
func (l *Logger) Error(err error) {
	if !l.enabled(LevelError) {
		return
	}
	l.output(3, color.RedString("Error: %v", err))
}

// Warn logs err with a warning prefix, colored yellow on a terminal.
func (l *Logger) Warn(err error) {
	if !l.enabled(LevelWarn) {
		return
	}
	l.output(3, color.YellowString("Warning: %v", err))
}

// Info logs information with semantics equivalent to fmt.Println.
func (l *Logger) Info(v ...interface{}) {
	if !l.enabled(LevelInfo) {
		return
	}
	l.output(3, fmt.Sprintln(v...))
}

// Infof logs information with semantics equivalent to fmt.Printf.
func (l *Logger) Infof(format string, v ...interface{}) {
	if !l.enabled(LevelInfo) {
		return
	}
	l.output(3, fmt.Sprintf(format, v...))
}

// Debug logs information with semantics equivalent to fmt.Println, gated on
// LevelDebug.
func (l *Logger) Debug(v ...interface{}) {
	if !l.enabled(LevelDebug) {
		return
	}
	l.output(3, fmt.Sprintln(v...))
}

// Debugf logs information with semantics equivalent to fmt.Printf, gated on
// LevelDebug.
func (l *Logger) Debugf(format string, v ...interface{}) {
	if !l.enabled(LevelDebug) {
		return
	}
	l.output(3, fmt.Sprintf(format, v...))
}

// Trace logs information with semantics equivalent to fmt.Println, gated on
// LevelTrace — the finest granularity, intended for per-event watcher and
// iterator tracing.
func (l *Logger) Trace(v ...interface{}) {
	if !l.enabled(LevelTrace) {
		return
	}
	l.output(3, fmt.Sprintln(v...))
}

// Writer returns an io.Writer that writes each line it receives via Info.
func (l *Logger) Writer() io.Writer {
	if !l.enabled(LevelInfo) {
		return ioutil.Discard
	}
	return &writer{callback: func(s string) { l.Info(s) }}
}

// StdoutIsTerminal reports whether standard output is attached to an
// interactive terminal, for callers deciding between status-line-style and
// append-only output.
func StdoutIsTerminal() bool {
	return stdoutIsTerminal
}
