// Command gofs-tree prints a directory tree, exercising the recursive
// pre-order iterator and its depth-limiting and symlink-following options.
package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/go-forge/gofs/internal/cmdutil"
	"github.com/go-forge/gofs/pkg/filesystem"
	"github.com/go-forge/gofs/pkg/iterator"
)

var rootConfiguration struct {
	maxDepth       int
	followSymlinks bool
	childrenFirst  bool
}

func run(command *cobra.Command, arguments []string) error {
	target := "."
	if len(arguments) > 0 {
		target = arguments[0]
	}

	opts := iterator.QueryType
	if rootConfiguration.followSymlinks {
		opts |= iterator.FollowSymlinks
	}
	if rootConfiguration.childrenFirst {
		opts |= iterator.ChildrenFirst
	}

	r, err := iterator.NewRecursive(target, rootConfiguration.maxDepth, opts)
	if err != nil {
		return errors.Wrap(err, "unable to begin traversal")
	}
	defer r.Close()

	fmt.Println(target)

	count := 0
	for {
		entry, err := r.Next()
		if err != nil {
			return errors.Wrap(err, "unable to read tree entry")
		}
		if entry == nil {
			break
		}
		count++

		indent := strings.Repeat("  ", entry.Depth+1)
		marker := "- "
		if entry.Type == filesystem.TypeDirectory {
			marker = "+ "
		}
		fmt.Printf("%s%s%s\n", indent, marker, entry.Name)
	}

	fmt.Printf("\n%d entries\n", count)
	return nil
}

var rootCommand = &cobra.Command{
	Use:   "gofs-tree [<directory>]",
	Short: "Print a directory tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  run,
}

func init() {
	flags := rootCommand.Flags()
	flags.IntVarP(&rootConfiguration.maxDepth, "max-depth", "d", -1, "Maximum depth to descend (-1 for unlimited)")
	flags.BoolVarP(&rootConfiguration.followSymlinks, "follow-symlinks", "L", false, "Treat symlinked directories as directories")
	flags.BoolVar(&rootConfiguration.childrenFirst, "children-first", false, "Print a directory's children before the directory itself")
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		cmdutil.Fatal(err)
	}
}
