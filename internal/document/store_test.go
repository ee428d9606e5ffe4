package document

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// renameFailFs refuses to rename, as when the target directory turns read-only
type renameFailFs struct {
	afero.Fs
}

func (f renameFailFs) Rename(oldname, newname string) error {
	return &os.LinkError{Op: "rename", Old: oldname, New: newname, Err: fs.ErrPermission}
}

// shortWriteFs hands out files whose writes fail, as on a full disk
type shortWriteFs struct {
	afero.Fs
}

func (f shortWriteFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	file, err := f.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return shortWriteFile{file}, nil
}

type shortWriteFile struct {
	afero.File
}

func (f shortWriteFile) Write(p []byte) (int, error) {
	return 0, errors.New("no space left on device")
}

func (f shortWriteFile) WriteString(s string) (int, error) {
	return 0, errors.New("no space left on device")
}

func listDir(t *testing.T, fsys afero.Fs, dir string) []string {
	t.Helper()
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	return names
}

func TestDecode_Valid(t *testing.T) {
	text, err := Decode("a.txt", []byte("héllo ✨"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "héllo ✨" {
		t.Errorf("unexpected text %q", text)
	}
}

func TestDecode_ReplacementCharacterIsValid(t *testing.T) {
	if _, err := Decode("a.txt", []byte("a\ufffdb")); err != nil {
		t.Errorf("U+FFFD is valid UTF-8, got %v", err)
	}
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode("a.txt", []byte("ok \xe2\x9c then"))
	if err == nil {
		t.Fatal("expected decode error")
	}

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %T", err)
	}
	if decodeErr.Offset != 3 {
		t.Errorf("expected offset 3, got %d", decodeErr.Offset)
	}
	if decodeErr.Path != "a.txt" {
		t.Errorf("expected path a.txt, got %q", decodeErr.Path)
	}
	if !strings.Contains(err.Error(), "byte offset 3") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestRead_Missing(t *testing.T) {
	store := NewStore(afero.NewMemMapFs())

	_, err := store.Read("/nope.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestSave_ReplacesFileOnDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "App.jsx")
	if err := os.WriteFile(path, []byte("old"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewOSStore()
	if err := store.Save(path, "new ✨"); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new ✨" {
		t.Errorf("unexpected content %q", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the target in %s, found %d entries", dir, len(entries))
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0600 {
			t.Errorf("expected mode 0600 preserved, got %v", info.Mode().Perm())
		}
	}
}

func TestSave_WithoutSync(t *testing.T) {
	memFs := afero.NewMemMapFs()
	if err := afero.WriteFile(memFs, "/docs/a.txt", []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(memFs, WithSync(false))
	if err := store.Save("/docs/a.txt", "new"); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, _ := afero.ReadFile(memFs, "/docs/a.txt")
	if string(data) != "new" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestSave_ReadOnlyLeavesOriginal(t *testing.T) {
	base := afero.NewMemMapFs()
	if err := afero.WriteFile(base, "/docs/a.txt", []byte("original"), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(afero.NewReadOnlyFs(base))
	if err := store.Save("/docs/a.txt", "replacement"); err == nil {
		t.Fatal("expected save to fail on read-only filesystem")
	}

	data, _ := afero.ReadFile(base, "/docs/a.txt")
	if string(data) != "original" {
		t.Errorf("original content changed to %q", data)
	}
}

func TestSave_RenameFailureCleansUp(t *testing.T) {
	base := afero.NewMemMapFs()
	if err := afero.WriteFile(base, "/docs/a.txt", []byte("original"), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(renameFailFs{base})
	err := store.Save("/docs/a.txt", "replacement")
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("expected permission error, got %v", err)
	}

	data, _ := afero.ReadFile(base, "/docs/a.txt")
	if string(data) != "original" {
		t.Errorf("original content changed to %q", data)
	}
	if names := listDir(t, base, "/docs"); len(names) != 1 || names[0] != "a.txt" {
		t.Errorf("expected temp file removed, directory holds %v", names)
	}
}

func TestSave_WriteFailureCleansUp(t *testing.T) {
	base := afero.NewMemMapFs()
	if err := afero.WriteFile(base, "/docs/a.txt", []byte("original"), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(shortWriteFs{base})
	err := store.Save("/docs/a.txt", "replacement")
	if err == nil || !strings.Contains(err.Error(), "write temp file") {
		t.Fatalf("expected write failure, got %v", err)
	}

	data, _ := afero.ReadFile(base, "/docs/a.txt")
	if string(data) != "original" {
		t.Errorf("original content changed to %q", data)
	}
	if names := listDir(t, base, "/docs"); len(names) != 1 {
		t.Errorf("expected temp file removed, directory holds %v", names)
	}
}

func TestSave_KeepsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.jsx")
	link := filepath.Join(dir, "link.jsx")
	if err := os.WriteFile(target, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink("real.jsx", link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	if err := NewOSStore().Save(link, "new"); err != nil {
		t.Fatalf("save: %v", err)
	}

	info, err := os.Lstat(link)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Error("expected link to remain a symlink")
	}
	data, _ := os.ReadFile(target)
	if string(data) != "new" {
		t.Errorf("expected target updated, got %q", data)
	}
}
