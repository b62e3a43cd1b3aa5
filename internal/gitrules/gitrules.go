// Package gitrules layers optional repository .gitignore awareness on top
// of the explicit exclusion patterns.
package gitrules

import (
	"fmt"
	"path/filepath"

	gitignore "github.com/denormal/go-gitignore"

	"github.com/seyallius/treeclip/internal/logging"
	"github.com/seyallius/treeclip/internal/pattern"
)

// Matcher combines the compiled MatchSet with an optional repository
// gitignore engine. Explicit patterns always decide first; the repository
// rules are consulted only for paths no explicit pattern matched.
type Matcher struct {
	rules *pattern.MatchSet
	repo  gitignore.GitIgnore
	log   logging.Logger
}

// New builds a Matcher for rootDir. When useGit is false the repository
// engine is not initialized and the Matcher is a plain passthrough to the
// match set.
func New(rootDir string, rules *pattern.MatchSet, useGit bool, log logging.Logger) (*Matcher, error) {
	if log == nil {
		log = logging.Noop{}
	}
	m := &Matcher{rules: rules, log: log}
	if !useGit {
		return m, nil
	}

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("gitrules: resolve root %q: %w", rootDir, err)
	}

	repo, err := gitignore.NewRepository(absRoot)
	if err != nil {
		if repo == nil {
			// No .gitignore files found; continue with explicit rules only.
			log.Warn("gitrules: no .gitignore rules loaded for %s: %v", absRoot, err)
			return m, nil
		}
		return nil, fmt.Errorf("gitrules: load repository ignores: %w", err)
	}
	m.repo = repo
	log.Debug("gitrules: loaded repository ignores for %s", absRoot)
	return m, nil
}

// Decide evaluates explicit patterns first; unmatched paths fall through to
// the repository .gitignore rules when loaded.
func (m *Matcher) Decide(rel string, isDir bool) pattern.Decision {
	d := m.rules.Decide(rel, isDir)
	if d.Matched || m.repo == nil {
		return d
	}
	// Relative matches against the repository base regardless of the
	// process working directory.
	if match := m.repo.Relative(rel, isDir); match != nil && match.Ignore() {
		m.log.Debug("gitrules: %q ignored by repository rules", rel)
		return pattern.Decision{Matched: true, Excluded: true, RuleIndex: -1}
	}
	return d
}

// MayReincludeWithin delegates to the explicit rules. Repository-ignored
// directories (RuleIndex -1) are always safe to prune: treeclip's own
// negations never re-include through them, matching gitignore semantics.
func (m *Matcher) MayReincludeWithin(d pattern.Decision) bool {
	if d.RuleIndex < 0 {
		return false
	}
	return m.rules.MayReincludeWithin(d)
}
