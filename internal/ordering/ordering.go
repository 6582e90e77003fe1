// Package ordering implements the single sort policy shared by the flat
// listing and the per-directory tree walk.
package ordering

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/harrison/treels/internal/config"
)

// Attributes is what a sortable item has to expose. It is implemented by
// models.Entry and by the walker's raw directory handles.
type Attributes interface {
	FileName() string
	FileSize() int64
	ModifiedAt() time.Time
}

// Compare returns a three-way comparator for key:
// name ascending (byte order), size descending, time descending.
func Compare[T Attributes](key config.SortKey) func(a, b T) int {
	switch key {
	case config.SortSize:
		return func(a, b T) int {
			return cmp.Compare(b.FileSize(), a.FileSize())
		}
	case config.SortTime:
		return func(a, b T) int {
			return b.ModifiedAt().Compare(a.ModifiedAt())
		}
	default:
		return func(a, b T) int {
			return strings.Compare(a.FileName(), b.FileName())
		}
	}
}

// Sort orders items in place by key. Equal keys keep their relative order.
func Sort[T Attributes](items []T, key config.SortKey) {
	slices.SortStableFunc(items, Compare[T](key))
}

// IsSorted reports whether items are already ordered by key.
func IsSorted[T Attributes](items []T, key config.SortKey) bool {
	return slices.IsSortedFunc(items, Compare[T](key))
}
