// Command gofs-watch watches one or more files for changes and prints each
// observed event, exercising the watcher's registration, polling, and event
// dispatch. Since the watcher is single-threaded and caller-driven, this
// program supplies its own poll loop with a configurable interval and
// cooperative signal handling, standing in for the "run forever" driver
// that a real embedding application would provide.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/go-forge/gofs/internal/cmdutil"
	"github.com/go-forge/gofs/internal/logging"
	"github.com/go-forge/gofs/pkg/watch"
)

var rootConfiguration struct {
	pollInterval time.Duration
	logLevel     string
}

// terminationSignals mirrors the signal set a long-running watcher process
// should treat as a shutdown request.
var terminationSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

func describe(kind watch.EventKind) string {
	var parts []string
	if kind&watch.Created != 0 {
		parts = append(parts, "created")
	}
	if kind&watch.Modified != 0 {
		parts = append(parts, "modified")
	}
	if kind&watch.Removed != 0 {
		parts = append(parts, "removed")
	}
	if kind&watch.MovedFrom != 0 {
		parts = append(parts, "moved-from")
	}
	if kind&watch.MovedTo != 0 {
		parts = append(parts, "moved-to")
	}
	if len(parts) == 0 {
		return "unknown"
	}
	result := parts[0]
	for _, p := range parts[1:] {
		result += "," + p
	}
	return result
}

func run(command *cobra.Command, arguments []string) error {
	if len(arguments) == 0 {
		return command.Help()
	}

	level, ok := logging.NameToLevel(rootConfiguration.logLevel)
	if !ok {
		return fmt.Errorf("invalid log level: %s", rootConfiguration.logLevel)
	}
	logging.SetLevel(level)
	logger := logging.RootLogger.Sublogger("gofs-watch")

	// sessionID correlates this run's log lines, in case output from
	// multiple invocations is ever interleaved into one stream.
	sessionID := uuid.New().String()

	w, err := watch.New(func(path string, kind watch.EventKind) {
		fmt.Printf("[%s] %s %s\n", time.Now().Format(time.RFC3339), describe(kind), path)
	})
	if err != nil {
		return errors.Wrap(err, "unable to create watcher")
	}
	defer w.Close()

	for _, path := range arguments {
		if err := w.WatchFile(path); err != nil {
			return errors.Wrapf(err, "unable to watch %s", path)
		}
		logger.Infof("watching %s (session %s)", path, sessionID)
	}

	terminate := make(chan os.Signal, 1)
	signal.Notify(terminate, terminationSignals...)
	defer signal.Stop(terminate)

	ticker := time.NewTicker(rootConfiguration.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-terminate:
			logger.Infof("received termination signal, exiting")
			return nil
		case <-ticker.C:
			if err := w.ProcessEvents(); err != nil {
				logger.Error(err)
			}
		}
	}
}

var rootCommand = &cobra.Command{
	Use:   "gofs-watch <path>...",
	Short: "Watch one or more files for changes and print each event",
	RunE:  run,
}

func init() {
	flags := rootCommand.Flags()
	flags.DurationVarP(&rootConfiguration.pollInterval, "interval", "i", 250*time.Millisecond, "Interval between polls for pending events")
	flags.StringVar(&rootConfiguration.logLevel, "log-level", "info", "Log level (disabled, error, warn, info, debug, trace)")
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		cmdutil.Fatal(err)
	}
}
