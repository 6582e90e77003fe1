package render

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/harrison/treels/internal/config"
	"github.com/harrison/treels/internal/decorate"
	"github.com/harrison/treels/internal/fileutil"
	"github.com/harrison/treels/internal/fsys"
	"github.com/harrison/treels/internal/models"
	"github.com/harrison/treels/internal/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainConfig disables every escape so output can be compared literally.
func plainConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Color = config.PolicyNever
	cfg.Icons = config.PolicyNever
	return cfg
}

func plainDecorator(cfg *config.Config) *decorate.Decorator {
	return decorate.New(cfg, terminal.Fixed{})
}

func file(name string, size int64) models.Entry {
	return models.Entry{SourcePath: name, DisplayPath: name, Size: size, Type: models.NodeFile}
}

func dir(name string) models.Entry {
	return models.Entry{SourcePath: name, DisplayPath: name, Type: models.NodeDirectory}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestOneLine(t *testing.T) {
	var buf bytes.Buffer
	r := NewOneLine(plainDecorator(plainConfig()), &buf)

	require.NoError(t, r.Render([]models.Entry{file("a.txt", 3), dir("sub"), file("my file", 1)}))
	assert.Equal(t, "a.txt\nsub/\n\"my file\"\n", buf.String())
}

func TestOneLineWithSizeAndColor(t *testing.T) {
	cfg := plainConfig()
	cfg.ShowSize = true
	cfg.Color = config.PolicyAlways
	cfg.ColorScale = config.ScaleSize

	var buf bytes.Buffer
	r := NewOneLine(plainDecorator(cfg), &buf)
	require.NoError(t, r.Render([]models.Entry{file("big.bin", 2048)}))
	assert.Equal(t, "\x1b[38;5;226mbig.bin [2.00 KB]\x1b[0m\n", buf.String())
}

func TestLong(t *testing.T) {
	mod := time.Date(2024, 3, 5, 14, 7, 9, 0, time.Local)
	a := file("a.txt", 10)
	a.ModTime = mod
	sub := dir("subdir")
	sub.ModTime = mod

	var buf bytes.Buffer
	r := NewLong(plainDecorator(plainConfig()), &buf)
	require.NoError(t, r.Render([]models.Entry{a, sub}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	// size column: widest of "10.00 B" and "0.00 B"
	assert.Equal(t, "Type          Size Modified             Name", lines[0])
	assert.Equal(t, strings.Repeat("-", 10+1+7+1+20+1+6), lines[1])
	assert.Equal(t, "File       10.00 B 2024-03-05 14:07:09  a.txt", lines[2])
	assert.Equal(t, "Directory   0.00 B 2024-03-05 14:07:09  subdir/", lines[3])
}

func TestLongEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewLong(plainDecorator(plainConfig()), &buf).Render(nil))
	assert.Equal(t, "Type       Size Modified             Name\n"+strings.Repeat("-", 33)+"\n", buf.String())
}

func TestGridLayoutIsBijection(t *testing.T) {
	for n := 0; n <= 40; n++ {
		for _, width := range []int{1, 7, 10, 25, 80, 200} {
			for _, fill := range []config.FillDirection{config.FillDown, config.FillAcross} {
				columns, rows := Layout(n, 10, width)
				seen := make(map[int]int)
				for row := 0; row < rows; row++ {
					for col := 0; col < columns; col++ {
						if idx := Index(row, col, columns, rows, fill); idx < n {
							seen[idx]++
						}
					}
				}
				require.Len(t, seen, n, "n=%d width=%d fill=%s", n, width, fill)
				for idx, count := range seen {
					require.Equal(t, 1, count, "index %d printed %d times", idx, count)
				}
			}
		}
	}
}

func TestGridFill(t *testing.T) {
	entries := []models.Entry{file("a", 0), file("b", 0), file("c", 0), file("d", 0), file("e", 0)}

	tests := []struct {
		name  string
		width int
		fill  config.FillDirection
		want  string
	}{
		{name: "single row", width: 20, fill: config.FillDown, want: "a  b  c  d  e  \n"},
		{name: "down", width: 6, fill: config.FillDown, want: "a  d  \nb  e  \nc  \n"},
		{name: "across", width: 6, fill: config.FillAcross, want: "a  b  \nc  d  \ne  \n"},
		{name: "narrower than a cell", width: 1, fill: config.FillDown, want: "a  \nb  \nc  \nd  \ne  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewGrid(plainDecorator(plainConfig()), terminal.Fixed{}, &buf, tt.width, tt.fill)
			require.NoError(t, r.Render(entries))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestGridPadsByVisibleWidth(t *testing.T) {
	cfg := plainConfig()
	cfg.Icons = config.PolicyAlways
	cfg.Color = config.PolicyAlways
	cfg.ColorScale = config.ScaleSize

	var buf bytes.Buffer
	r := NewGrid(plainDecorator(cfg), terminal.Fixed{}, &buf, 100, config.FillAcross)
	require.NoError(t, r.Render([]models.Entry{file("ab.txt", 1), file("c.go", 1)}))

	// widest cell: icon (2 cols) + space + "ab.txt" = 9, plus the gap
	want := "\x1b[38;5;46m📄 ab.txt\x1b[0m  " + "\x1b[38;5;46m🐹 c.go\x1b[0m    \n"
	assert.Equal(t, want, buf.String())
}

func TestGridWidth(t *testing.T) {
	dec := plainDecorator(plainConfig())
	assert.Equal(t, 33, NewGrid(dec, terminal.Fixed{Columns: 120}, nil, 33, config.FillDown).Width())
	assert.Equal(t, 120, NewGrid(dec, terminal.Fixed{Columns: 120}, nil, 0, config.FillDown).Width())
	assert.Equal(t, DefaultWidth, NewGrid(dec, terminal.Fixed{}, nil, 0, config.FillDown).Width())
}

func TestGridEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewGrid(plainDecorator(plainConfig()), terminal.Fixed{}, &buf, 0, config.FillDown)
	require.NoError(t, r.Render(nil))
	assert.Empty(t, buf.String())
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		pos  fileutil.Position
		want string
	}{
		{fileutil.Position{Level: 1}, "├── "},
		{fileutil.Position{Level: 1, Last: true}, "└── "},
		{fileutil.Position{Level: 2, Ancestors: []bool{false}}, "│   ├── "},
		{fileutil.Position{Level: 2, Last: true, Ancestors: []bool{true}}, "    └── "},
		{fileutil.Position{Level: 3, Last: true, Ancestors: []bool{false, true}}, "│       └── "},
	}
	for _, tt := range tests {
		got := Prefix(tt.pos)
		assert.Equal(t, tt.want, got)
		// every level contributes exactly four columns
		assert.Equal(t, 4*tt.pos.Level, len([]rune(got)))
	}
}

func TestTreeFromWalker(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.txt", "sub/b.txt", "sub/deeper/c.txt", "z.txt"} {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}

	cfg := plainConfig()
	var buf bytes.Buffer
	var stats models.Stats
	w := fileutil.NewWalker(fsys.New(), fileutil.OptionsFromConfig(cfg), nil)
	require.NoError(t, w.Walk(root, &stats, NewTree(plainDecorator(cfg), &buf)))

	want := root + "\n" +
		"├── a.txt\n" +
		"├── sub/\n" +
		"│   ├── b.txt\n" +
		"│   └── deeper/\n" +
		"│       └── c.txt\n" +
		"└── z.txt\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, models.Stats{Directories: 3, Files: 4, TotalSize: 4}, stats)
}

func TestSummary(t *testing.T) {
	stats := models.Stats{Directories: 2, Files: 3, TotalSize: 1536}

	var plain bytes.Buffer
	require.NoError(t, NewSummary(&plain, false).Write(stats))
	assert.Equal(t, "\n2 directories, 3 files\nTotal size: 1.50 KB\n", plain.String())

	var colored bytes.Buffer
	require.NoError(t, NewSummary(&colored, true).Write(stats))
	assert.True(t, strings.HasPrefix(colored.String(), "\n\x1b[1;34m2 directories, 3 files\x1b["), colored.String())
	assert.Contains(t, colored.String(), "\x1b[1;32mTotal size: 1.50 KB\x1b[")
	assert.True(t, strings.HasSuffix(colored.String(), "m\n"))
}

func TestWriteFailures(t *testing.T) {
	dec := plainDecorator(plainConfig())
	entries := []models.Entry{file("a", 1)}

	renderers := map[string]func() error{
		"oneline": func() error { return NewOneLine(dec, failingWriter{}).Render(entries) },
		"long":    func() error { return NewLong(dec, failingWriter{}).Render(entries) },
		"grid":    func() error { return NewGrid(dec, terminal.Fixed{}, failingWriter{}, 0, config.FillDown).Render(entries) },
		"tree":    func() error { return NewTree(dec, failingWriter{}).VisitRoot(dir(".")) },
		"summary": func() error { return NewSummary(failingWriter{}, false).Write(models.Stats{}) },
	}
	for name, render := range renderers {
		t.Run(name, func(t *testing.T) {
			var renderErr *models.RenderError
			assert.True(t, errors.As(render(), &renderErr))
		})
	}
}

func TestNew(t *testing.T) {
	dec := plainDecorator(plainConfig())
	for mode, want := range map[config.DisplayMode]string{
		config.ModeOneLine: "*render.OneLine",
		config.ModeLong:    "*render.Long",
		config.ModeGrid:    "*render.Grid",
	} {
		cfg := plainConfig()
		cfg.Mode = mode
		r, err := New(cfg, dec, terminal.Fixed{}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, want, fmt.Sprintf("%T", r))
	}

	cfg := plainConfig()
	cfg.Mode = config.ModeTree
	_, err := New(cfg, dec, terminal.Fixed{}, &bytes.Buffer{})
	assert.Error(t, err)
}
