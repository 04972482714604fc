package iterator

import "github.com/go-forge/gofs/pkg/filesystem"

// Walk adapts a Recursive traversal to the filesystem.TreeWalker signature,
// letting pkg/filesystem's CopyTree and RemoveTree drive recursion without
// importing this package directly (which would be circular, since this
// package imports pkg/filesystem for its own queries). Pass ChildrenFirst in
// opts for removal-style callers that need children visited before their
// parent directory; omit it for creation-style callers that need the
// opposite order.
func Walk(opts Options) filesystem.TreeWalker {
	return func(root string, maxDepth int, visit func(relative string, entryType filesystem.Type, depth int) error) error {
		r, err := NewRecursive(root, maxDepth, opts|StopOnError)
		if err != nil {
			return err
		}
		defer r.Close()

		for {
			entry, err := r.Next()
			if err != nil {
				return err
			}
			if entry == nil {
				return nil
			}
			if err := visit(entry.Path, entry.Type, entry.Depth); err != nil {
				return err
			}
		}
	}
}
