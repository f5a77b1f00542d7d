package udpftp

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// A DirStore serves the regular files of a directory.
// Subdirectories are not served.
type DirStore struct {
	Dir string
}

var _ FileStore = &DirStore{}

// NewDirStore creates a DirStore.
func NewDirStore(dir string) *DirStore {
	return &DirStore{Dir: dir}
}

// List returns the names of all regular files, sorted by name.
func (s *DirStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

func (s *DirStore) Open(name string) (File, error) {
	if !isValidName(name) {
		return nil, &FileNotFoundError{Name: name}
	}
	f, err := os.Open(filepath.Join(s.Dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &FileNotFoundError{Name: name}
		}
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		f.Close()
		return nil, &FileNotFoundError{Name: name}
	}
	return &osFile{File: f, size: fi.Size()}, nil
}

// isValidName says if name refers to a file directly inside the served directory.
func isValidName(name string) bool {
	if name == "" || !filepath.IsLocal(name) {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

type osFile struct {
	*os.File
	size int64
}

func (f *osFile) Size() int64 { return f.size }
