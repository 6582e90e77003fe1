package ordering

import (
	"testing"
	"time"

	"github.com/harrison/treels/internal/config"
	"github.com/harrison/treels/internal/models"
	"github.com/stretchr/testify/assert"
)

type handle struct {
	name string
	size int64
	mod  time.Time
}

func (h handle) FileName() string      { return h.name }
func (h handle) FileSize() int64       { return h.size }
func (h handle) ModifiedAt() time.Time { return h.mod }

var base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func entries() []models.Entry {
	return []models.Entry{
		{DisplayPath: "dir/b.txt", Size: 10, ModTime: base.Add(1 * time.Hour)},
		{DisplayPath: "dir/B.txt", Size: 300, ModTime: base},
		{DisplayPath: "dir/a.txt", Size: 10, ModTime: base.Add(3 * time.Hour)},
		{DisplayPath: "dir/c.txt", Size: 20, ModTime: base.Add(1 * time.Hour)},
	}
}

func names(es []models.Entry) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.FileName()
	}
	return out
}

func TestSortEntries(t *testing.T) {
	tests := []struct {
		key  config.SortKey
		want []string
	}{
		// byte order: upper case sorts before lower case
		{key: config.SortName, want: []string{"B.txt", "a.txt", "b.txt", "c.txt"}},
		// ties (b, a both 10) keep input order
		{key: config.SortSize, want: []string{"B.txt", "c.txt", "b.txt", "a.txt"}},
		// ties (b, c same time) keep input order
		{key: config.SortTime, want: []string{"a.txt", "b.txt", "c.txt", "B.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			es := entries()
			Sort(es, tt.key)
			assert.Equal(t, tt.want, names(es))
			assert.True(t, IsSorted(es, tt.key))

			// idempotent
			Sort(es, tt.key)
			assert.Equal(t, tt.want, names(es))
		})
	}
}

func TestSortHandlesMatchesEntries(t *testing.T) {
	for _, key := range []config.SortKey{config.SortName, config.SortSize, config.SortTime} {
		es := entries()
		hs := make([]handle, len(es))
		for i, e := range es {
			hs[i] = handle{name: e.FileName(), size: e.Size, mod: e.ModTime}
		}

		Sort(es, key)
		Sort(hs, key)

		for i := range es {
			assert.Equal(t, es[i].FileName(), hs[i].name, "key %s index %d", key, i)
		}
	}
}

func TestCompareDirection(t *testing.T) {
	small := handle{name: "a", size: 1, mod: base}
	big := handle{name: "b", size: 2, mod: base.Add(time.Minute)}

	assert.Negative(t, Compare[handle](config.SortName)(small, big))
	assert.Positive(t, Compare[handle](config.SortSize)(small, big))
	assert.Positive(t, Compare[handle](config.SortTime)(small, big))
	assert.Zero(t, Compare[handle](config.SortSize)(small, small))
}
