package walker

import (
	"io/fs"
	"os"

	"github.com/seyallius/treeclip/internal/logging"
)

// ReadDirFunc lists the direct children of a directory.
type ReadDirFunc func(path string) ([]fs.DirEntry, error)

// Options configures the behavior of Walk.
type Options struct {
	Logger     logging.Logger
	SkipHidden bool
	ReadDir    ReadDirFunc
	skipPaths  map[string]struct{}
}

func defaultOptions() Options {
	return Options{
		Logger:     logging.Noop{},
		SkipHidden: true,
		ReadDir:    os.ReadDir,
	}
}

// Option is a functional option for configuring Walk.
type Option func(*Options)

// WithLogger sets a custom logger for the walker.
func WithLogger(logger logging.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithSkipHidden controls whether entries whose name starts with "." are
// skipped before pattern matching.
func WithSkipHidden(skip bool) Option {
	return func(o *Options) {
		o.SkipHidden = skip
	}
}

// WithReadDir replaces the directory-listing function. Tests inject a
// counting wrapper to observe filesystem access.
func WithReadDir(fn ReadDirFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.ReadDir = fn
		}
	}
}

// WithSkipPath silently passes over one absolute path, typically the output
// file when it lives under the traversal root.
func WithSkipPath(path string) Option {
	return func(o *Options) {
		if path == "" {
			return
		}
		if o.skipPaths == nil {
			o.skipPaths = make(map[string]struct{})
		}
		o.skipPaths[path] = struct{}{}
	}
}
