package render

import (
	"io"
	"strings"

	"github.com/harrison/treels/internal/decorate"
	"github.com/harrison/treels/internal/fileutil"
	"github.com/harrison/treels/internal/models"
)

const (
	branchPipe  = "│   "
	branchBlank = "    "
	branchTee   = "├── "
	branchElbow = "└── "
)

// Tree prints entries with box-drawing prefixes as the walker visits them.
type Tree struct {
	dec *decorate.Decorator
	p   printer
}

var _ fileutil.Visitor = (*Tree)(nil)

// NewTree creates a tree renderer writing to out.
func NewTree(dec *decorate.Decorator, out io.Writer) *Tree {
	return &Tree{dec: dec, p: printer{out: out}}
}

// VisitRoot prints the root's display path, undecorated.
func (r *Tree) VisitRoot(root models.Entry) error {
	return r.p.print(root.DisplayPath + "\n")
}

// Visit prints one entry below its ancestors.
func (r *Tree) Visit(e models.Entry, pos fileutil.Position) error {
	f, err := r.dec.Decorate(e)
	if err != nil {
		return err
	}
	return r.p.print(Prefix(pos) + f.String() + "\n")
}

// Prefix builds the branch drawing for an entry at pos.
func Prefix(pos fileutil.Position) string {
	var b strings.Builder
	for _, last := range pos.Ancestors {
		if last {
			b.WriteString(branchBlank)
		} else {
			b.WriteString(branchPipe)
		}
	}
	if pos.Last {
		b.WriteString(branchElbow)
	} else {
		b.WriteString(branchTee)
	}
	return b.String()
}
