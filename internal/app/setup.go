package app

import (
	"path/filepath"

	"github.com/seyallius/treeclip/internal/gitrules"
	"github.com/seyallius/treeclip/internal/ignorefile"
	"github.com/seyallius/treeclip/internal/pattern"
)

// buildMatcher assembles the exclusion matcher for one run. Pattern order
// fixes precedence under last-match-wins: the implicit .git rule first,
// then the ignore-file, then command-line excludes, so ad-hoc command-line
// patterns override the checked-in ignore-file and can re-include entries
// with a leading "!".
func (a *App) buildMatcher(absInput string) (*gitrules.Matcher, error) {
	rootDir, err := filepath.Abs(a.cfg.RootDir)
	if err != nil {
		rootDir = absInput
	}

	var patterns []string
	if a.cfg.UseGit {
		patterns = append(patterns, ".git/")
	}

	filePatterns, err := ignorefile.Load(rootDir)
	if err != nil {
		return nil, err
	}
	if len(filePatterns) > 0 {
		a.log.Info("Applying %d patterns from %s.", len(filePatterns), ignorefile.Name)
	}
	patterns = append(patterns, filePatterns...)
	patterns = append(patterns, a.cfg.Exclude...)

	set, err := pattern.Compile(patterns, pattern.Options{})
	if err != nil {
		return nil, err
	}

	return gitrules.New(rootDir, set, a.cfg.UseGit, a.log)
}
