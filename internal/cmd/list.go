package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/harrison/treels/internal/config"
	"github.com/harrison/treels/internal/decorate"
	"github.com/harrison/treels/internal/display"
	"github.com/harrison/treels/internal/fileutil"
	"github.com/harrison/treels/internal/logger"
	"github.com/harrison/treels/internal/models"
	"github.com/harrison/treels/internal/render"
	"github.com/harrison/treels/internal/terminal"
	"github.com/spf13/cobra"
)

func validateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
		return models.NewConfigError("path", "", "", err)
	}
	return nil
}

// loadConfig reads the defaults file. An explicit --config must exist; the
// default location is optional.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, models.NewConfigError("--config", path, "cannot read defaults file", err)
		}
		return config.LoadConfig(path)
	}

	path, err := config.DefaultConfigPath()
	if err != nil {
		// No home or config directory: run on built-in defaults.
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(path)
}

// buildConfig layers the flags the user set over the defaults file.
func buildConfig(cmd *cobra.Command, args []string, flags *listFlags) (*config.Config, error) {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return nil, err
	}

	overrides, err := flags.overrides(cmd, args)
	if err != nil {
		return nil, err
	}
	cfg.MergeWithFlags(overrides)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runList(cmd *cobra.Command, args []string, flags *listFlags, deps Deps) error {
	cfg, err := buildConfig(cmd, args, flags)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	log := logger.NewConsoleLogger(errOut, cfg.LogLevel)

	term := deps.Terminal
	if term == nil {
		term = terminalFor(out)
	}
	opts := append([]decorate.Option{decorate.WithWorkDir(deps.FS.Getwd)}, deps.DecoratorOptions...)
	dec := decorate.New(cfg, term, opts...)

	if log.Enabled("warn") {
		warnColor := cfg.Color.Resolve(terminalFor(errOut).IsInteractive())
		for _, w := range display.Advisories(cfg, dec.ColorEnabled()) {
			w.Display(errOut, warnColor)
		}
	}

	log.Debugf("listing %s in %s mode", cfg.Root, cfg.Mode)
	walker := fileutil.NewWalker(deps.FS, fileutil.OptionsFromConfig(cfg), log)

	var stats models.Stats
	if cfg.Mode == config.ModeTree {
		err = walker.Walk(cfg.Root, &stats, render.NewTree(dec, out))
	} else {
		err = listFlat(cfg, walker, dec, term, out, &stats)
	}
	if err != nil {
		logFailure(log, err)
		return err
	}

	log.Infof("listed %d directories, %d files, %d bytes", stats.Directories, stats.Files, stats.TotalSize)
	// The summary is only bolded on a terminal, even under --color always.
	return render.NewSummary(out, dec.ColorEnabled() && term.IsInteractive()).Write(stats)
}

func listFlat(cfg *config.Config, walker *fileutil.Walker, dec *decorate.Decorator, term terminal.Terminal, out io.Writer, stats *models.Stats) error {
	entries, err := walker.Collect(cfg.Root, stats)
	if err != nil {
		return err
	}

	r, err := render.New(cfg, dec, term, out)
	if err != nil {
		return fmt.Errorf("select renderer: %w", err)
	}
	return r.Render(entries)
}

func logFailure(log *logger.ConsoleLogger, err error) {
	var fsErr *models.FilesystemError
	if errors.As(err, &fsErr) {
		log.Errorf("filesystem call %q failed on %q", fsErr.Op, fsErr.Path)
	}
}
