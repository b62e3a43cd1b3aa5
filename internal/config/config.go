// Package config holds the resolved run configuration.
package config

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
)

// DefaultOutput is the output file created when none is specified.
const DefaultOutput = "treeclip_temp.txt"

// Config holds all settings for one run, resolved from the command line.
type Config struct {
	// Paths
	InputPath  string
	OutputPath string
	RootDir    string // ignore-file lookup root

	// Filtering
	Exclude    []string
	SkipHidden bool
	UseGit     bool

	// Collaborators
	Clipboard bool
	Stats     bool
	Editor    bool
	Delete    bool

	// Presentation
	Verbose  bool
	Quiet    bool
	NoColor  bool
	FastMode bool

	UseColors bool
}

// Normalize fills defaults and resolves color usage.
func (c *Config) Normalize() {
	if c.InputPath == "" {
		c.InputPath = "."
	}
	if c.OutputPath == "" || c.OutputPath == "." {
		c.OutputPath = DefaultOutput
	}
	if c.RootDir == "" {
		c.RootDir = c.InputPath
	}
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd())
}

// Validate rejects inconsistent flag combinations.
func (c *Config) Validate() error {
	if c.Delete && !c.Editor {
		return errors.New("--delete requires --editor")
	}
	return nil
}
