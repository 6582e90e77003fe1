package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/harrison/treels/internal/decorate"
	"github.com/harrison/treels/internal/fsys"
	"github.com/harrison/treels/internal/models"
	"github.com/harrison/treels/internal/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture creates:
//
//	root/
//	  .hidden (5 bytes)
//	  a.txt   (10 bytes)
//	  b.go    (2048 bytes)
//	  sub/
//	    c.txt (1 byte)
func fixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]int{
		".hidden":   5,
		"a.txt":     10,
		"b.go":      2048,
		"sub/c.txt": 1,
	}
	for name, size := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("x"), size), 0644))
	}
	return root
}

// run executes the root command with no defaults file.
func run(t *testing.T, term terminal.Terminal, args ...string) (string, string, error) {
	t.Helper()
	return runWith(t, Deps{Terminal: term}, args...)
}

func runWith(t *testing.T, deps Deps, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("TREELS_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	cmd := NewRootCommandWith(deps)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommandHelp(t *testing.T) {
	out, _, err := run(t, terminal.Fixed{}, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "treels [flags] [path]")
	for _, flag := range []string{"--max-depth", "--oneline", "-1", "--classify", "--color-scale-mode", "--across", "--config", "--log-level"} {
		assert.Contains(t, out, flag)
	}
}

func TestTreeDefault(t *testing.T) {
	root := fixture(t)

	out, stderr, err := run(t, terminal.Fixed{}, root)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	want := root + "\n" +
		"├── a.txt\n" +
		"├── b.go\n" +
		"└── sub/\n" +
		"    └── c.txt\n" +
		"\n" +
		"2 directories, 3 files\n" +
		"Total size: 2.01 KB\n"
	assert.Equal(t, want, out)
}

func TestTreeMaxDepth(t *testing.T) {
	root := fixture(t)

	out, _, err := run(t, terminal.Fixed{}, "--max-depth", "1", root)
	require.NoError(t, err)
	assert.Equal(t, root+"\n\n1 directories, 0 files\nTotal size: 0.00 B\n", out)

	out, _, err = run(t, terminal.Fixed{}, "--max-depth", "2", root)
	require.NoError(t, err)
	assert.NotContains(t, out, "c.txt")
	assert.Contains(t, out, "└── sub/\n")
}

func TestOneLineSortedBySize(t *testing.T) {
	root := fixture(t)

	out, _, err := run(t, terminal.Fixed{}, "-1", "--sort", "size", "--show-hidden", root)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Equal(t, []string{"b.go", "a.txt", ".hidden", "sub/"}, lines[:4])
	assert.Contains(t, out, "2 directories, 3 files")
}

func TestModeFlagsLastWins(t *testing.T) {
	root := fixture(t)

	out, _, err := run(t, terminal.Fixed{}, "--long", "-G", "-1", root)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "a.txt\nb.go\nsub/\n"), out)

	out, _, err = run(t, terminal.Fixed{}, "-1", "--long", root)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Type "), out)
}

func TestGridWidthAndAcross(t *testing.T) {
	root := fixture(t)

	out, _, err := run(t, terminal.Fixed{Columns: 200}, "-G", "-x", "-w", "14", root)
	require.NoError(t, err)
	// cell width: "a.txt" = 5 + 2; two columns in 14
	assert.True(t, strings.HasPrefix(out, "a.txt  b.go   \nsub/   \n"), out)
}

func TestRecursePattern(t *testing.T) {
	root := fixture(t)

	out, _, err := run(t, terminal.Fixed{}, "-1", "-R", "--pattern", `\.txt$`, root)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "a.txt\nc.txt\nsub/\n"), out)
}

func TestColourAliasAndColor(t *testing.T) {
	root := fixture(t)

	out, _, err := run(t, terminal.Fixed{}, "-1", "--colour", "always", "--colour-scale", "size", root)
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[38;5;226mb.go\x1b[0m\n")
	// piped output keeps a plain summary
	assert.True(t, strings.HasSuffix(out, "\n\n2 directories, 3 files\nTotal size: 2.01 KB\n"), out)

	out, _, err = run(t, terminal.Fixed{Interactive: true}, "-1", "--colour", "always", root)
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[1;34m2 directories, 3 files")
	assert.Contains(t, out, "\x1b[1;32mTotal size: 2.01 KB")
}

func TestSummaryPlainWhenColorNever(t *testing.T) {
	root := fixture(t)

	out, _, err := run(t, terminal.Fixed{Interactive: true}, "-1", "--color", "never", root)
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")
}

// workDir reports a fixed working directory.
type workDir struct {
	fsys.OS
	dir string
}

func (w workDir) Getwd() (string, error) { return w.dir, nil }

func TestHyperlinksUseAccessorWorkDir(t *testing.T) {
	root := fixture(t)
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	t.Setenv("PWD", root)
	t.Cleanup(func() { _ = os.Chdir(prev) })

	out, _, err := runWith(t, Deps{FS: workDir{dir: "/work"}, Terminal: terminal.Fixed{}}, "-1", "--hyperlink", ".")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b]8;;file:///work/a.txt\x1b\\a.txt\x1b]8;;\x1b\\\n")
}

func TestLogLevels(t *testing.T) {
	root := fixture(t)

	_, stderr, err := run(t, terminal.Fixed{}, "-1", "--max-depth", "1", "--log-level", "error", root)
	require.NoError(t, err)
	assert.Empty(t, stderr, "error level hides advisories")

	_, stderr, err = run(t, terminal.Fixed{}, "--log-level", "info", root)
	require.NoError(t, err)
	assert.Contains(t, stderr, "[INFO] listed 2 directories, 3 files, 2059 bytes")
	assert.NotContains(t, stderr, "[DEBUG]")
}

func TestAgeScaleUsesClock(t *testing.T) {
	root := fixture(t)
	later := time.Now().Add(10 * 24 * time.Hour)

	out, _, err := runWith(t, Deps{
		Terminal:         terminal.Fixed{Interactive: true},
		DecoratorOptions: []decorate.Option{decorate.WithClock(func() time.Time { return later })},
	}, "-1", "--icons", "never", "--color-scale", "age", root)
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[38;5;208ma.txt\x1b[0m\n")
}

func TestAdvisoryWarnings(t *testing.T) {
	root := fixture(t)

	_, stderr, err := run(t, terminal.Fixed{}, "-1", "--max-depth", "1", root)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning: Depth limit ignored")
}

func TestDefaultsFile(t *testing.T) {
	root := fixture(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: oneline\nclassify: never\n"), 0644))

	out, _, err := run(t, terminal.Fixed{}, "--config", path, root)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "a.txt\nb.go\nsub\n"), out)

	// flags override the file
	out, _, err = run(t, terminal.Fixed{}, "--config", path, "-F", "auto", root)
	require.NoError(t, err)
	assert.Contains(t, out, "sub/\n")
}

func TestConfigurationErrors(t *testing.T) {
	root := fixture(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "bad sort", args: []string{"--sort", "random", root}},
		{name: "bad classify", args: []string{"-F", "sometimes", root}},
		{name: "missing value", args: []string{root, "--color"}},
		{name: "unknown flag", args: []string{"--bogus", root}},
		{name: "negative depth", args: []string{"--max-depth", "-1", root}},
		{name: "zero width", args: []string{"-w", "0", root}},
		{name: "bad pattern", args: []string{"--pattern", "(", root}},
		{name: "two paths", args: []string{root, root}},
		{name: "missing config file", args: []string{"--config", filepath.Join(root, "nope.yaml"), root}},
		{name: "bad log level", args: []string{"--log-level", "chatty", root}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, terminal.Fixed{}, tt.args...)
			require.Error(t, err)
			var cfgErr *models.ConfigError
			assert.True(t, errors.As(err, &cfgErr), "want ConfigError, got %T: %v", err, err)
			assert.Empty(t, out, "nothing is listed before a configuration error")
		})
	}
}

func TestMissingRoot(t *testing.T) {
	_, stderr, err := run(t, terminal.Fixed{}, filepath.Join(t.TempDir(), "missing"))
	var fsErr *models.FilesystemError
	require.True(t, errors.As(err, &fsErr), "got %v", err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, stderr, `[ERROR] filesystem call "stat" failed`)
}
