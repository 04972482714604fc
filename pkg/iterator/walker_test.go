package iterator

import (
	"sort"
	"testing"

	"github.com/go-forge/gofs/pkg/filesystem"
)

func TestWalkYieldsRootRelativePaths(t *testing.T) {
	root := buildTree(t)
	walk := Walk(0)

	var paths []string
	err := walk(root, -1, func(relative string, entryType filesystem.Type, depth int) error {
		paths = append(paths, relative)
		return nil
	})
	if err != nil {
		t.Fatal("walk returned an error:", err)
	}

	sort.Strings(paths)
	want := []string{"sub", "sub/deeper", "sub/deeper/leaf.txt", "sub/nested.txt", "top.txt"}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q (Walk must not force FullPaths, which would break callers that compose relative with their own root)", i, paths[i], want[i])
		}
	}
}

func TestWalkPropagatesVisitError(t *testing.T) {
	root := buildTree(t)
	walk := Walk(0)

	sentinel := errAbort{}
	err := walk(root, -1, func(relative string, entryType filesystem.Type, depth int) error {
		return sentinel
	})
	if err != sentinel {
		t.Errorf("walk returned %v, want the visit callback's own error", err)
	}
}

type errAbort struct{}

func (errAbort) Error() string { return "abort" }
