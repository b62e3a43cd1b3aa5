// Package app wires configuration, traversal, assembly, and the output
// collaborators into one run.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/seyallius/treeclip/internal/assembler"
	"github.com/seyallius/treeclip/internal/clipboard"
	"github.com/seyallius/treeclip/internal/config"
	"github.com/seyallius/treeclip/internal/editor"
	"github.com/seyallius/treeclip/internal/logging"
	"github.com/seyallius/treeclip/internal/stats"
	"github.com/seyallius/treeclip/internal/summary"
	"github.com/seyallius/treeclip/internal/walker"
)

// App encapsulates one treeclip invocation.
type App struct {
	cfg *config.Config
	log *logging.Console
}

// New creates an App from a normalized configuration.
func New(cfg *config.Config) *App {
	color.NoColor = !cfg.UseColors

	level := logging.LevelInfo
	if cfg.Verbose {
		level = logging.LevelDebug
	}
	if cfg.Quiet {
		level = logging.LevelWarn
	}
	return &App{
		cfg: cfg,
		log: logging.NewConsole(os.Stderr, level, cfg.UseColors),
	}
}

// Run performs the traversal and assembly, then hands the output to the
// requested collaborators. Per-entry failures are collected and reported;
// only whole-run preconditions abort.
func (a *App) Run() error {
	start := time.Now()

	absInput, err := filepath.Abs(a.cfg.InputPath)
	if err != nil {
		return fmt.Errorf("resolve input path %q: %w", a.cfg.InputPath, err)
	}
	info, err := os.Stat(absInput)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", walker.ErrRootNotFound, absInput)
		}
		return fmt.Errorf("access input path %q: %w", absInput, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", walker.ErrNotDirectory, absInput)
	}

	absOutput, err := filepath.Abs(a.cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("resolve output path %q: %w", a.cfg.OutputPath, err)
	}

	// Pattern compilation errors are fatal and detected before any
	// traversal or output file creation.
	matcher, err := a.buildMatcher(absInput)
	if err != nil {
		return err
	}

	a.log.Debug("input: %s, output: %s, skip hidden: %v, git: %v",
		absInput, absOutput, a.cfg.SkipHidden, a.cfg.UseGit)

	out, err := os.Create(absOutput)
	if err != nil {
		return fmt.Errorf("create output file %s: %w", absOutput, err)
	}

	asm := assembler.New(out, a.log)
	bar := a.progressBar()

	res, err := walker.Walk(absInput, matcher, func(file walker.IncludedFile) error {
		if bar != nil {
			_ = bar.Add(1)
		}
		return asm.WriteFile(file)
	},
		walker.WithLogger(a.log),
		walker.WithSkipHidden(a.cfg.SkipHidden),
		walker.WithSkipPath(absOutput),
	)
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}
	if err != nil {
		out.Close()
		return err
	}
	if err := asm.Flush(); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close output file %s: %w", absOutput, err)
	}

	if asm.Count() == 0 {
		return fmt.Errorf("no files found in %s", absInput)
	}

	summary.Report(a.log, res, asm.Failed(), asm.Count(), time.Since(start))
	if a.cfg.Verbose {
		summary.ListSkipped(a.log, res, asm.Failed())
	}

	return a.runCollaborators(absOutput)
}

// runCollaborators handles clipboard, stats, and editor. The clipboard is
// best-effort: the run already produced the output file.
func (a *App) runCollaborators(outputPath string) error {
	if a.cfg.Clipboard {
		if err := clipboard.CopyFile(outputPath); err != nil {
			a.log.Warn("clipboard copy failed: %v", err)
		} else {
			a.log.Info("Output copied to clipboard.")
		}
	}

	if a.cfg.Stats {
		st, err := stats.Collect(outputPath)
		if err != nil {
			a.log.Warn("stats unavailable: %v", err)
		} else {
			st.Print(os.Stdout, a.cfg.UseColors)
		}
	}

	if a.cfg.Editor {
		if err := editor.Open(outputPath); err != nil {
			return err
		}
		if a.cfg.Delete {
			if err := editor.Remove(outputPath); err != nil {
				return err
			}
			a.log.Info("Output file removed.")
		}
	}
	return nil
}

func (a *App) progressBar() *progressbar.ProgressBar {
	if a.cfg.FastMode || a.cfg.Quiet || !isatty.IsTerminal(os.Stderr.Fd()) {
		return nil
	}
	return progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("Bundling files"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSpinnerType(14),
	)
}
