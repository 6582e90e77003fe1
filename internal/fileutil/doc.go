// Package fileutil implements the directory traversal behind every listing mode.
//
// # Purpose
//
// The fileutil package turns a root path into resolved models.Entry values:
//   - Hidden-name filtering (names starting with ".") unless ShowHidden is set
//   - Regex filtering on non-directory names; directories always pass so
//     matching descendants stay reachable
//   - Metadata read once per entry, through fsys.Accessor, optionally
//     dereferencing symlinks
//   - Display path resolution once per entry (raw, canonical, or link target)
//   - Counting every surviving entry into models.Stats exactly once
//
// # Main Components
//
// Walker.Collect - flat mode (oneline, long, grid):
//   - Returns the root's children, plus every descendant when Recurse is set,
//     depth-first pre-order, then sorted once more by the configured key
//
// Walker.Walk - tree mode:
//   - Calls Visitor.VisitRoot, then Visitor.Visit for each entry before
//     reading its children, so rendering is interleaved with traversal
//   - Stops descending once a level reaches MaxDepth (the root is exempt)
//
// # Error Handling
//
// Any accessor failure aborts the walk and is returned as a
// *models.FilesystemError. Nothing is skipped silently: a broken symlink
// under Dereference is an error, not a missing entry.
//
// # Usage Example
//
//	walker := fileutil.NewWalker(fsys.New(), fileutil.OptionsFromConfig(cfg), log)
//	var stats models.Stats
//	entries, err := walker.Collect(cfg.Root, &stats)
//	if err != nil {
//	    return err
//	}
package fileutil
