package models

// Stats accumulates directory and file counts for a single run.
// It has exactly one writer: the walker that owns the traversal.
type Stats struct {
	Directories int
	Files       int
	TotalSize   int64
}

// AddDirectory records one directory.
func (s *Stats) AddDirectory() {
	s.Directories++
}

// AddFile records one non-directory entry and its size.
func (s *Stats) AddFile(size int64) {
	s.Files++
	s.TotalSize += size
}

// Add records an entry according to its type.
func (s *Stats) Add(e Entry) {
	if e.IsDir() {
		s.AddDirectory()
		return
	}
	s.AddFile(e.Size)
}
