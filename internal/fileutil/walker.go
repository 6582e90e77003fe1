package fileutil

import (
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/harrison/treels/internal/config"
	"github.com/harrison/treels/internal/fsys"
	"github.com/harrison/treels/internal/models"
	"github.com/harrison/treels/internal/ordering"
)

// Logger receives traversal diagnostics.
type Logger interface {
	Warnf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Tracef(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Warnf(string, ...interface{}) {}
func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Tracef(string, ...interface{}) {}

// WalkOptions configures the traversal
type WalkOptions struct {
	// ShowHidden includes names starting with "."
	ShowHidden bool
	// Pattern keeps only non-directories whose name matches (nil keeps all)
	Pattern *regexp.Regexp
	// Sort orders siblings before they are visited
	Sort config.SortKey
	// Dereference reads symlink targets' metadata
	Dereference bool
	// Absolute controls display path resolution
	Absolute config.AbsolutePolicy
	// Recurse descends into subdirectories in Collect
	Recurse bool
	// MaxDepth limits Walk; config.NoDepthLimit disables the limit
	MaxDepth int
}

// OptionsFromConfig extracts the traversal options from cfg.
func OptionsFromConfig(cfg *config.Config) WalkOptions {
	return WalkOptions{
		ShowHidden:  cfg.ShowHidden,
		Pattern:     cfg.Pattern,
		Sort:        cfg.Sort,
		Dereference: cfg.Dereference,
		Absolute:    cfg.Absolute,
		Recurse:     cfg.Recurse,
		MaxDepth:    cfg.MaxDepth,
	}
}

// Position locates an entry inside the tree.
type Position struct {
	// Level is 1 for the root's children.
	Level int
	// Last is set when no sibling follows this entry.
	Last bool
	// Ancestors[i] reports whether the ancestor at level i+1 was a last
	// sibling. The slice is only valid for the duration of Visit.
	Ancestors []bool
}

// Visitor consumes entries as Walk produces them.
type Visitor interface {
	VisitRoot(root models.Entry) error
	Visit(entry models.Entry, pos Position) error
}

// Walker traverses a directory tree. It is single-use per call and keeps no
// state between Collect/Walk invocations.
type Walker struct {
	fs   fsys.Accessor
	opts WalkOptions
	log  Logger
}

// NewWalker creates a Walker. A nil logger discards diagnostics.
func NewWalker(acc fsys.Accessor, opts WalkOptions, log Logger) *Walker {
	if log == nil {
		log = nopLogger{}
	}
	return &Walker{fs: acc, opts: opts, log: log}
}

// dirHandle is a raw directory child plus the metadata read for it.
// It is what gets sorted before an Entry is built.
type dirHandle struct {
	path  string
	entry fs.DirEntry
	info  fs.FileInfo
}

func (h dirHandle) FileName() string { return h.entry.Name() }

func (h dirHandle) FileSize() int64 {
	if h.info.IsDir() {
		return 0
	}
	return h.info.Size()
}

func (h dirHandle) ModifiedAt() time.Time { return h.info.ModTime() }

func (h dirHandle) isSymlink() bool { return h.entry.Type()&fs.ModeSymlink != 0 }

// Collect lists root's children (and all descendants when Recurse is set)
// as a flat slice sorted by the configured key. A root that is not a
// directory yields itself.
func (w *Walker) Collect(root string, stats *models.Stats) ([]models.Entry, error) {
	rootEntry, info, err := w.rootEntry(root)
	if err != nil {
		return nil, err
	}
	stats.Add(rootEntry)
	if !rootEntry.IsDir() {
		return []models.Entry{rootEntry}, nil
	}

	var entries []models.Entry
	if err := w.collectDir(root, []fs.FileInfo{info}, stats, &entries); err != nil {
		return nil, err
	}

	// A non-recursive listing is already ordered by children().
	if !ordering.IsSorted(entries, w.opts.Sort) {
		ordering.Sort(entries, w.opts.Sort)
	}
	return entries, nil
}

func (w *Walker) collectDir(dir string, ancestors []fs.FileInfo, stats *models.Stats, out *[]models.Entry) error {
	handles, err := w.children(dir)
	if err != nil {
		return err
	}

	for _, h := range handles {
		entry, err := w.entryFor(h)
		if err != nil {
			return err
		}
		stats.Add(entry)
		*out = append(*out, entry)

		if w.opts.Recurse && w.shouldDescend(entry, h.info, ancestors) {
			if err := w.collectDir(entry.SourcePath, append(ancestors, h.info), stats, out); err != nil {
				return err
			}
		}
	}
	return nil
}

// Walk drives v over the tree rooted at root, depth-first and pre-order.
func (w *Walker) Walk(root string, stats *models.Stats, v Visitor) error {
	rootEntry, info, err := w.rootEntry(root)
	if err != nil {
		return err
	}
	stats.Add(rootEntry)
	if err := v.VisitRoot(rootEntry); err != nil {
		return err
	}
	if !rootEntry.IsDir() {
		return nil
	}
	return w.walkDir(root, 1, nil, []fs.FileInfo{info}, stats, v)
}

func (w *Walker) walkDir(dir string, level int, lasts []bool, ancestors []fs.FileInfo, stats *models.Stats, v Visitor) error {
	if !w.depthAllows(level) {
		w.log.Tracef("depth limit reached at %s", dir)
		return nil
	}

	handles, err := w.children(dir)
	if err != nil {
		return err
	}

	for i, h := range handles {
		entry, err := w.entryFor(h)
		if err != nil {
			return err
		}
		stats.Add(entry)

		last := i == len(handles)-1
		if err := v.Visit(entry, Position{Level: level, Last: last, Ancestors: lasts}); err != nil {
			return err
		}

		if w.shouldDescend(entry, h.info, ancestors) {
			if err := w.walkDir(entry.SourcePath, level+1, append(lasts, last), append(ancestors, h.info), stats, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *Walker) depthAllows(level int) bool {
	return w.opts.MaxDepth == config.NoDepthLimit || level < w.opts.MaxDepth
}

// children reads dir, drops filtered names, reads metadata for the rest and
// sorts them.
func (w *Walker) children(dir string) ([]dirHandle, error) {
	w.log.Debugf("reading directory %s", dir)

	des, err := w.fs.ReadDir(dir)
	if err != nil {
		return nil, models.NewFilesystemError("readdir", dir, err)
	}

	handles := make([]dirHandle, 0, len(des))
	for _, de := range des {
		name := de.Name()
		if !w.opts.ShowHidden && isHidden(name) {
			w.log.Tracef("skip hidden %s", name)
			continue
		}

		path := filepath.Join(dir, name)
		info, err := w.stat(path)
		if err != nil {
			return nil, err
		}

		if w.opts.Pattern != nil && !info.IsDir() && !w.opts.Pattern.MatchString(name) {
			w.log.Tracef("skip %s: does not match pattern", name)
			continue
		}

		handles = append(handles, dirHandle{path: path, entry: de, info: info})
	}

	ordering.Sort(handles, w.opts.Sort)
	return handles, nil
}

func (w *Walker) stat(path string) (fs.FileInfo, error) {
	info, err := w.fs.Stat(path, w.opts.Dereference)
	if err != nil {
		op := "lstat"
		if w.opts.Dereference {
			op = "stat"
		}
		return nil, models.NewFilesystemError(op, path, err)
	}
	return info, nil
}

func (w *Walker) rootEntry(root string) (models.Entry, fs.FileInfo, error) {
	// The root is always followed so a symlinked root lists its target.
	info, err := w.fs.Stat(root, true)
	if err != nil {
		return models.Entry{}, nil, models.NewFilesystemError("stat", root, err)
	}

	isLink := false
	if w.opts.Absolute == config.AbsoluteFollow {
		linfo, err := w.fs.Stat(root, false)
		if err != nil {
			return models.Entry{}, nil, models.NewFilesystemError("lstat", root, err)
		}
		isLink = linfo.Mode()&fs.ModeSymlink != 0
	}

	display, err := w.displayPath(root, isLink)
	if err != nil {
		return models.Entry{}, nil, err
	}
	return newEntry(root, display, info), info, nil
}

func (w *Walker) entryFor(h dirHandle) (models.Entry, error) {
	display, err := w.displayPath(h.path, h.isSymlink())
	if err != nil {
		return models.Entry{}, err
	}
	return newEntry(h.path, display, h.info), nil
}

// displayPath applies the absolute-path policy to path.
func (w *Walker) displayPath(path string, isSymlink bool) (string, error) {
	switch w.opts.Absolute {
	case config.AbsoluteOn:
		abs, err := w.fs.Canonical(path)
		if err != nil {
			return "", models.NewFilesystemError("canonicalize", path, err)
		}
		return abs, nil
	case config.AbsoluteFollow:
		if !isSymlink {
			return path, nil
		}
		target, err := w.fs.Readlink(path)
		if err != nil {
			return "", models.NewFilesystemError("readlink", path, err)
		}
		return target, nil
	default:
		return path, nil
	}
}

// shouldDescend reports whether entry is a directory that is not one of its
// own ancestors. Only a dereferenced symlink can create such a loop.
func (w *Walker) shouldDescend(entry models.Entry, info fs.FileInfo, ancestors []fs.FileInfo) bool {
	if !entry.IsDir() {
		return false
	}
	for _, a := range ancestors {
		if w.fs.SameFile(a, info) {
			w.log.Warnf("not descending into %s: directory cycle", entry.SourcePath)
			return false
		}
	}
	return true
}

func newEntry(source, display string, info fs.FileInfo) models.Entry {
	e := models.Entry{
		SourcePath:  source,
		DisplayPath: display,
		Size:        info.Size(),
		ModTime:     info.ModTime(),
		Type:        models.NodeTypeFromMode(info.Mode()),
	}
	if e.IsDir() {
		e.Size = 0
	}
	return e
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
