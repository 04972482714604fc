// Command gofs-ls lists the immediate children of a directory, in the
// manner of ls -1, exercising the non-recursive directory iterator.
package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/go-forge/gofs/internal/cmdutil"
	"github.com/go-forge/gofs/pkg/filesystem"
	"github.com/go-forge/gofs/pkg/iterator"
)

var rootConfiguration struct {
	long           bool
	followSymlinks bool
}

func run(command *cobra.Command, arguments []string) error {
	target := "."
	if len(arguments) > 0 {
		target = arguments[0]
	}

	it, err := iterator.New(target)
	if err != nil {
		return errors.Wrap(err, "unable to open directory")
	}
	defer it.Close()

	opts := iterator.QueryType
	if rootConfiguration.followSymlinks {
		opts |= iterator.FollowSymlinks
	}

	for {
		entry, err := it.Next(opts)
		if err != nil {
			return errors.Wrap(err, "unable to read directory entry")
		}
		if entry == nil {
			break
		}

		if !rootConfiguration.long {
			fmt.Println(entry.Name)
			continue
		}

		info, err := filesystem.GetInfo(target+string(os.PathSeparator)+entry.Name, true, filesystem.QueryAll)
		if err != nil {
			cmdutil.Warning(fmt.Sprintf("%s: %v", entry.Name, err))
			fmt.Printf("%-9s %10s  %s\n", entry.Type, "?", entry.Name)
			continue
		}
		fmt.Printf("%-9s %10s  %s\n", info.Type, humanize.Bytes(info.Size), entry.Name)
	}

	return nil
}

var rootCommand = &cobra.Command{
	Use:   "gofs-ls [<directory>]",
	Short: "List the immediate children of a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  run,
}

func init() {
	flags := rootCommand.Flags()
	flags.BoolVarP(&rootConfiguration.long, "long", "l", false, "Show type and size for each entry")
	flags.BoolVarP(&rootConfiguration.followSymlinks, "follow-symlinks", "L", false, "Treat symlinked directories as directories")
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		cmdutil.Fatal(err)
	}
}
