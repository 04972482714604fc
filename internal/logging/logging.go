// Package logging provides the leveled, prefix-scoped logger used
// throughout this module's commands. It favors standard log-style output
// decorated with color when writing to a terminal, rather than a
// structured/JSON logger, matching the scale of a single-process CLI tool
// rather than a long-running service.
package logging

import (
	"log"
	"os"
)

func init() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ldate | log.Ltime)
}

// RootLogger is the root logger from which all other loggers derive,
// configured at LevelInfo by default.
var RootLogger = &Logger{level: LevelInfo}

// SetLevel adjusts the level at which RootLogger (and every logger derived
// from it afterwards) emits output. Subloggers copy the level when they are
// created, so loggers derived earlier keep their old level.
func SetLevel(level Level) {
	RootLogger.level = level
}
