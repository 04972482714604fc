package iterator

import (
	"os"
	"sort"
	"testing"

	"github.com/go-forge/gofs/pkg/filesystem"
	p "github.com/go-forge/gofs/pkg/path"
)

func collectNames(t *testing.T, root string, opts Options) []string {
	t.Helper()
	it, err := New(root)
	if err != nil {
		t.Fatal("New returned an error:", err)
	}
	defer it.Close()

	var names []string
	for {
		entry, err := it.Next(opts)
		if err != nil {
			t.Fatal("Next returned an error:", err)
		}
		if entry == nil {
			break
		}
		names = append(names, entry.Name)
	}
	sort.Strings(names)
	return names
}

func TestIteratorListsImmediateChildren(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt"} {
		if err := os.WriteFile(string(p.Append(p.Path(dir), p.Path(name))), nil, 0644); err != nil {
			t.Fatal("unable to create test file:", err)
		}
	}
	if err := os.Mkdir(string(p.Append(p.Path(dir), "sub")), 0755); err != nil {
		t.Fatal("unable to create subdirectory:", err)
	}

	names := collectNames(t, dir, 0)
	want := []string{"a.txt", "b.txt", "sub"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestIteratorExcludesDotAndDotDot(t *testing.T) {
	dir := t.TempDir()
	names := collectNames(t, dir, 0)
	if len(names) != 0 {
		t.Errorf("expected an empty directory to yield no entries, got %v", names)
	}
}

func TestIteratorQueryTypeReportsDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(string(p.Append(p.Path(dir), "sub")), 0755); err != nil {
		t.Fatal("unable to create subdirectory:", err)
	}

	it, err := New(dir)
	if err != nil {
		t.Fatal("New returned an error:", err)
	}
	defer it.Close()

	entry, err := it.Next(QueryType)
	if err != nil {
		t.Fatal("Next returned an error:", err)
	}
	if entry == nil {
		t.Fatal("expected an entry, got none")
	}
	if entry.Type != filesystem.TypeDirectory {
		t.Errorf("Type = %v, want TypeDirectory", entry.Type)
	}
}

func TestIteratorFullPaths(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(string(p.Append(p.Path(dir), "a.txt")), nil, 0644); err != nil {
		t.Fatal("unable to create test file:", err)
	}

	it, err := New(dir)
	if err != nil {
		t.Fatal("New returned an error:", err)
	}
	defer it.Close()

	entry, err := it.Next(FullPaths)
	if err != nil {
		t.Fatal("Next returned an error:", err)
	}
	if entry == nil {
		t.Fatal("expected an entry, got none")
	}
	want := string(p.Append(p.Path(dir), "a.txt"))
	if entry.Path != want {
		t.Errorf("Path = %q, want %q", entry.Path, want)
	}
}

func TestIteratorNewFailsOnMissingDirectory(t *testing.T) {
	dir := t.TempDir()
	missing := string(p.Append(p.Path(dir), "does-not-exist"))
	if _, err := New(missing); err == nil {
		t.Error("expected New to fail for a missing directory")
	}
}
