package filesystem

import (
	"os"
	"testing"
	"time"

	p "github.com/go-forge/gofs/pkg/path"
)

func TestExistsAndGetInfoFile(t *testing.T) {
	dir := t.TempDir()
	file := string(p.Append(p.Path(dir), "file.txt"))
	if err := os.WriteFile(file, []byte("hello"), 0644); err != nil {
		t.Fatal("unable to create test file:", err)
	}

	n, err := Exists(file, true)
	if err != nil {
		t.Fatal("Exists returned an error:", err)
	}
	if n != 1 {
		t.Errorf("Exists(file) = %d, want 1", n)
	}

	info, err := GetInfo(file, true, QueryAll)
	if err != nil {
		t.Fatal("GetInfo returned an error:", err)
	}
	if info.Type != TypeFile {
		t.Errorf("Type = %v, want TypeFile", info.Type)
	}
	if info.Size != 5 {
		t.Errorf("Size = %d, want 5", info.Size)
	}
}

func TestExistsMissing(t *testing.T) {
	dir := t.TempDir()
	missing := string(p.Append(p.Path(dir), "does-not-exist"))

	n, err := Exists(missing, true)
	if err != nil {
		t.Fatal("Exists returned an unexpected error:", err)
	}
	if n != 0 {
		t.Errorf("Exists(missing) = %d, want 0", n)
	}
}

func TestGetInfoDirectory(t *testing.T) {
	dir := t.TempDir()
	typ, err := GetType(dir, true)
	if err != nil {
		t.Fatal("GetType returned an error:", err)
	}
	if typ != TypeDirectory {
		t.Errorf("GetType(dir) = %v, want TypeDirectory", typ)
	}
}

func TestGetSize(t *testing.T) {
	dir := t.TempDir()
	file := string(p.Append(p.Path(dir), "sized.bin"))
	if err := os.WriteFile(file, make([]byte, 42), 0644); err != nil {
		t.Fatal("unable to create test file:", err)
	}

	size, err := GetSize(file, true)
	if err != nil {
		t.Fatal("GetSize returned an error:", err)
	}
	if size != 42 {
		t.Errorf("GetSize = %d, want 42", size)
	}
}

func TestAreEquivalent(t *testing.T) {
	dir := t.TempDir()
	file := string(p.Append(p.Path(dir), "a.txt"))
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal("unable to create test file:", err)
	}

	link := string(p.Append(p.Path(dir), "link.txt"))
	if err := os.Symlink(file, link); err != nil {
		t.Skip("symlinks unsupported in this environment:", err)
	}

	equivalent, err := AreEquivalent(file, link)
	if err != nil {
		t.Fatal("AreEquivalent returned an error:", err)
	}
	if !equivalent {
		t.Error("expected a file and a symlink to it to be equivalent")
	}

	other := string(p.Append(p.Path(dir), "b.txt"))
	if err := os.WriteFile(other, nil, 0644); err != nil {
		t.Fatal("unable to create second test file:", err)
	}
	equivalent, err = AreEquivalent(file, other)
	if err != nil {
		t.Fatal("AreEquivalent returned an error:", err)
	}
	if equivalent {
		t.Error("did not expect two distinct files to be equivalent")
	}
}

func TestModificationTimeMoves(t *testing.T) {
	dir := t.TempDir()
	file := string(p.Append(p.Path(dir), "touched.txt"))
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal("unable to create test file:", err)
	}

	before, err := GetInfo(file, true, QueryFileTimes)
	if err != nil {
		t.Fatal("GetInfo returned an error:", err)
	}

	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(file, future, future); err != nil {
		t.Fatal("unable to update times:", err)
	}

	after, err := GetInfo(file, true, QueryFileTimes)
	if err != nil {
		t.Fatal("GetInfo returned an error:", err)
	}
	if !after.ModificationTime.After(before.ModificationTime) {
		t.Error("expected modification time to advance after Chtimes")
	}
}
