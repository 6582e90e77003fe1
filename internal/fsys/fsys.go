// Package fsys wraps the filesystem calls the listing pipeline needs behind
// a small interface so traversal can be tested against fakes.
package fsys

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Accessor is the metadata capability consumed by the traversal engine and
// the decorator. All calls are synchronous.
type Accessor interface {
	// ReadDir lists the immediate children of dir in directory order.
	ReadDir(dir string) ([]fs.DirEntry, error)
	// Stat reads metadata for path. With follow set, symlinks are resolved.
	Stat(path string, follow bool) (fs.FileInfo, error)
	// Readlink returns the target of a symlink.
	Readlink(path string) (string, error)
	// Canonical returns the absolute path with every symlink evaluated.
	Canonical(path string) (string, error)
	// Getwd returns the current working directory.
	Getwd() (string, error)
	// SameFile reports whether two infos describe the same node.
	SameFile(a, b fs.FileInfo) bool
}

// OS is the Accessor backed by the os package.
type OS struct{}

// New returns the OS accessor.
func New() OS {
	return OS{}
}

// ReadDir implements Accessor.
func (OS) ReadDir(dir string) ([]fs.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	// Unsorted; the walker orders children itself.
	return f.ReadDir(-1)
}

// Stat implements Accessor.
func (OS) Stat(path string, follow bool) (fs.FileInfo, error) {
	if follow {
		return os.Stat(path)
	}
	return os.Lstat(path)
}

// Readlink implements Accessor.
func (OS) Readlink(path string) (string, error) {
	return os.Readlink(path)
}

// Canonical implements Accessor.
func (OS) Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// Getwd implements Accessor.
func (OS) Getwd() (string, error) {
	return os.Getwd()
}

// SameFile implements Accessor.
func (OS) SameFile(a, b fs.FileInfo) bool {
	return os.SameFile(a, b)
}
