// Package document reads target files as strict UTF-8 and replaces them
// atomically.
package document

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// Store loads and saves documents on a filesystem
type Store struct {
	fs   afero.Fs
	sync bool
}

// Option configures a Store
type Option func(*Store)

// WithSync controls whether Save fsyncs the temp file and parent directory
func WithSync(sync bool) Option {
	return func(s *Store) {
		s.sync = sync
	}
}

// NewStore creates a store on fs. Sync is on by default.
func NewStore(fs afero.Fs, opts ...Option) *Store {
	s := &Store{fs: fs, sync: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewOSStore creates a store on the host filesystem
func NewOSStore(opts ...Option) *Store {
	return NewStore(afero.NewOsFs(), opts...)
}

// DecodeError reports bytes that are not valid UTF-8
type DecodeError struct {
	Path   string
	Offset int // Byte offset of the first invalid sequence
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid UTF-8 at byte offset %d", e.Offset)
}

// Read returns the full contents of path
func (s *Store) Read(path string) ([]byte, error) {
	return afero.ReadFile(s.fs, path)
}

// Decode interprets data as UTF-8 text. Invalid input is rejected whole;
// nothing is replaced or dropped.
func Decode(path string, data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	offset := 0
	for offset < len(data) {
		r, size := utf8.DecodeRune(data[offset:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		offset += size
	}
	return "", &DecodeError{Path: path, Offset: offset}
}

// Save replaces path with text. The bytes go to a temp file in the same
// directory which is renamed over path only once fully written, so a failed
// save leaves path untouched and removes the temp file.
func (s *Store) Save(path, text string) (err error) {
	path = s.resolve(path)
	dir := filepath.Dir(path)

	perm := os.FileMode(0o644)
	if info, statErr := s.fs.Stat(path); statErr == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(path)+".mojifix-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	closed := false

	defer func() {
		if err == nil {
			return
		}
		if !closed {
			_ = tmp.Close()
		}
		_ = s.fs.Remove(tmpPath)
	}()

	if _, err = io.WriteString(tmp, text); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if s.sync {
		if err = tmp.Sync(); err != nil {
			return fmt.Errorf("sync temp file: %w", err)
		}
	}
	closed = true
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = s.fs.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = s.fs.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace target: %w", err)
	}

	if s.sync {
		s.syncDir(dir)
	}
	return nil
}

// resolve follows one level of symlink so the link survives the rename
func (s *Store) resolve(path string) string {
	lst, ok := s.fs.(afero.Lstater)
	if !ok {
		return path
	}
	info, called, err := lst.LstatIfPossible(path)
	if err != nil || !called || info.Mode()&os.ModeSymlink == 0 {
		return path
	}
	lr, ok := s.fs.(afero.LinkReader)
	if !ok {
		return path
	}
	target, err := lr.ReadlinkIfPossible(path)
	if err != nil {
		return path
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return target
}

// syncDir is best effort; not every platform can fsync a directory
func (s *Store) syncDir(dir string) {
	d, err := s.fs.Open(dir)
	if err != nil {
		return
	}
	defer func() { _ = d.Close() }()
	_ = d.Sync()
}
