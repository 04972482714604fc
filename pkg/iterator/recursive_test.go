package iterator

import (
	"os"
	"sort"
	"testing"

	p "github.com/go-forge/gofs/pkg/path"
)

// buildTree creates:
//
//	root/
//	  top.txt
//	  sub/
//	    nested.txt
//	    deeper/
//	      leaf.txt
func buildTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(string(p.Append(p.Path(root), "top.txt")), nil, 0644); err != nil {
		t.Fatal("unable to create top.txt:", err)
	}
	if err := os.Mkdir(string(p.Append(p.Path(root), "sub")), 0755); err != nil {
		t.Fatal("unable to create sub:", err)
	}
	if err := os.WriteFile(string(p.Append(p.Path(root), p.Path("sub/nested.txt"))), nil, 0644); err != nil {
		t.Fatal("unable to create sub/nested.txt:", err)
	}
	if err := os.Mkdir(string(p.Append(p.Path(root), p.Path("sub/deeper"))), 0755); err != nil {
		t.Fatal("unable to create sub/deeper:", err)
	}
	if err := os.WriteFile(string(p.Append(p.Path(root), p.Path("sub/deeper/leaf.txt"))), nil, 0644); err != nil {
		t.Fatal("unable to create sub/deeper/leaf.txt:", err)
	}
	return root
}

func collectRecursive(t *testing.T, root string, maxDepth int, opts Options) []string {
	t.Helper()
	r, err := NewRecursive(root, maxDepth, opts)
	if err != nil {
		t.Fatal("NewRecursive returned an error:", err)
	}
	defer r.Close()

	var paths []string
	for {
		entry, err := r.Next()
		if err != nil {
			t.Fatal("Next returned an error:", err)
		}
		if entry == nil {
			break
		}
		paths = append(paths, entry.Path)
	}
	sort.Strings(paths)
	return paths
}

func TestRecursivePreOrderVisitsEveryEntry(t *testing.T) {
	root := buildTree(t)
	paths := collectRecursive(t, root, -1, 0)
	want := []string{"sub", "sub/deeper", "sub/deeper/leaf.txt", "sub/nested.txt", "top.txt"}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestRecursiveMaxDepthLimitsDescent(t *testing.T) {
	root := buildTree(t)
	paths := collectRecursive(t, root, 0, 0)
	want := []string{"sub", "top.txt"}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestRecursiveChildrenFirstOrdersDeepestLast(t *testing.T) {
	root := buildTree(t)
	r, err := NewRecursive(root, -1, ChildrenFirst)
	if err != nil {
		t.Fatal("NewRecursive returned an error:", err)
	}
	defer r.Close()

	var order []string
	for {
		entry, err := r.Next()
		if err != nil {
			t.Fatal("Next returned an error:", err)
		}
		if entry == nil {
			break
		}
		order = append(order, entry.Path)
	}

	index := func(path string) int {
		for i, o := range order {
			if o == path {
				return i
			}
		}
		t.Fatalf("path %q not found in traversal order %v", path, order)
		return -1
	}

	if index("sub/deeper/leaf.txt") >= index("sub/deeper") {
		t.Error("expected leaf.txt to be visited before its parent directory sub/deeper")
	}
	if index("sub/deeper") >= index("sub") {
		t.Error("expected sub/deeper to be visited before its parent directory sub")
	}
}

func TestRecursiveRecurseIntoPrunesSubtree(t *testing.T) {
	root := buildTree(t)
	r, err := NewRecursive(root, -1, 0)
	if err != nil {
		t.Fatal("NewRecursive returned an error:", err)
	}
	r.RecurseInto = func(relPath string, depth int) bool {
		return relPath != "sub"
	}
	defer r.Close()

	var paths []string
	for {
		entry, err := r.Next()
		if err != nil {
			t.Fatal("Next returned an error:", err)
		}
		if entry == nil {
			break
		}
		paths = append(paths, entry.Path)
	}
	sort.Strings(paths)

	want := []string{"sub", "top.txt"}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v (sub's contents should have been pruned)", paths, want)
	}
}

func TestRecursiveDepthField(t *testing.T) {
	root := buildTree(t)
	r, err := NewRecursive(root, -1, 0)
	if err != nil {
		t.Fatal("NewRecursive returned an error:", err)
	}
	defer r.Close()

	depths := map[string]int{}
	for {
		entry, err := r.Next()
		if err != nil {
			t.Fatal("Next returned an error:", err)
		}
		if entry == nil {
			break
		}
		depths[entry.Path] = entry.Depth
	}

	if depths["top.txt"] != 0 {
		t.Errorf("Depth(top.txt) = %d, want 0", depths["top.txt"])
	}
	if depths["sub"] != 0 {
		t.Errorf("Depth(sub) = %d, want 0", depths["sub"])
	}
	if depths["sub/nested.txt"] != 1 {
		t.Errorf("Depth(sub/nested.txt) = %d, want 1", depths["sub/nested.txt"])
	}
	if depths["sub/deeper/leaf.txt"] != 2 {
		t.Errorf("Depth(sub/deeper/leaf.txt) = %d, want 2", depths["sub/deeper/leaf.txt"])
	}
}

func TestRecursiveFollowsSymlinkedDirectories(t *testing.T) {
	root := t.TempDir()
	real := string(p.Append(p.Path(root), "real"))
	if err := os.Mkdir(real, 0755); err != nil {
		t.Fatal("unable to create real directory:", err)
	}
	if err := os.WriteFile(string(p.Append(p.Path(real), "inside.txt")), nil, 0644); err != nil {
		t.Fatal("unable to create file inside real directory:", err)
	}

	link := string(p.Append(p.Path(root), "link"))
	if err := os.Symlink(real, link); err != nil {
		t.Skip("symlinks unsupported in this environment:", err)
	}

	withoutFollow := collectRecursive(t, root, -1, 0)
	foundNested := false
	for _, path := range withoutFollow {
		if path == "link/inside.txt" {
			foundNested = true
		}
	}
	if foundNested {
		t.Error("did not expect to descend into a symlinked directory without FollowSymlinks")
	}

	withFollow := collectRecursive(t, root, -1, FollowSymlinks)
	foundNested = false
	for _, path := range withFollow {
		if path == "link/inside.txt" {
			foundNested = true
		}
	}
	if !foundNested {
		t.Errorf("expected to descend into a symlinked directory with FollowSymlinks, got %v", withFollow)
	}
}
