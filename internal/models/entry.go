// Package models holds the data types shared across the listing pipeline:
// the resolved Entry, the Stats accumulator and the error types.
package models

import (
	"io/fs"
	"path/filepath"
	"time"
)

// NodeType classifies a filesystem node.
type NodeType int

const (
	// NodeFile is a regular file.
	NodeFile NodeType = iota
	// NodeDirectory is a directory.
	NodeDirectory
	// NodeSymlink is a symbolic link that was not dereferenced.
	NodeSymlink
	// NodeSocket is a Unix domain socket.
	NodeSocket
	// NodeNamedPipe is a FIFO.
	NodeNamedPipe
	// NodeOther covers devices and anything else.
	NodeOther
)

// NodeTypeFromMode maps file mode bits onto a NodeType.
func NodeTypeFromMode(mode fs.FileMode) NodeType {
	switch {
	case mode.IsDir():
		return NodeDirectory
	case mode&fs.ModeSymlink != 0:
		return NodeSymlink
	case mode&fs.ModeSocket != 0:
		return NodeSocket
	case mode&fs.ModeNamedPipe != 0:
		return NodeNamedPipe
	case mode.IsRegular():
		return NodeFile
	default:
		return NodeOther
	}
}

// Label returns the type column text used by the long listing.
func (t NodeType) Label() string {
	switch t {
	case NodeDirectory:
		return "Directory"
	case NodeSymlink:
		return "Symlink"
	case NodeFile:
		return "File"
	default:
		return "Other"
	}
}

// String implements fmt.Stringer.
func (t NodeType) String() string {
	switch t {
	case NodeFile:
		return "file"
	case NodeDirectory:
		return "directory"
	case NodeSymlink:
		return "symlink"
	case NodeSocket:
		return "socket"
	case NodeNamedPipe:
		return "pipe"
	default:
		return "other"
	}
}

// Entry is one resolved filesystem node. It is built once during traversal
// and never modified afterwards.
type Entry struct {
	// SourcePath is the path as reached by traversal (parent joined with name).
	SourcePath string
	// DisplayPath is SourcePath after the absolute-path policy was applied.
	DisplayPath string
	// Size is the byte length; always 0 for directories.
	Size int64
	// ModTime is the last modification time reported by the filesystem.
	ModTime time.Time
	// Type is the node type of the metadata that was read.
	Type NodeType
}

// FileName returns the base name of the display path.
func (e Entry) FileName() string {
	return filepath.Base(e.DisplayPath)
}

// FileSize returns the entry size.
func (e Entry) FileSize() int64 {
	return e.Size
}

// ModifiedAt returns the modification time.
func (e Entry) ModifiedAt() time.Time {
	return e.ModTime
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Type == NodeDirectory
}
