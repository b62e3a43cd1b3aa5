// Package walker performs the deterministic, depth-first directory
// traversal that feeds the content assembler.
package walker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/seyallius/treeclip/internal/pattern"
)

// Fatal precondition errors. Per-entry failures never abort a walk.
var (
	ErrRootNotFound = errors.New("root path does not exist")
	ErrNotDirectory = errors.New("root path is not a directory")
)

// frame is one pending entry on the explicit work stack. Using a stack
// instead of call-stack recursion bounds stack depth on deeply nested trees.
type frame struct {
	abs string
	rel string

	isDir     bool
	isSymlink bool
	isRegular bool

	// excluded marks entries beneath an excluded directory that is being
	// descended only because a later negation may re-include content.
	excluded bool
	// exclRule is the index of the rule that excluded the ancestor, -1 when
	// none. It bounds which negations can still re-include below.
	exclRule int
}

// Walk traverses the tree rooted at root in depth-first pre-order with
// children sorted by name, calling fn for every included regular file.
// Excluded directories are pruned before being listed unless a later
// negation pattern may re-include content beneath them. Symlinks are never
// followed. Unlistable directories are recorded and traversal continues
// with their siblings.
func Walk(root string, matcher Matcher, fn WalkFunc, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var res Result

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return res, fmt.Errorf("walker: resolve root %q: %w", root, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return res, fmt.Errorf("%w: %s", ErrRootNotFound, absRoot)
		}
		return res, fmt.Errorf("walker: stat root %q: %w", absRoot, err)
	}
	if !info.IsDir() {
		return res, fmt.Errorf("%w: %s", ErrNotDirectory, absRoot)
	}

	o.Logger.Debug("walker: starting at %s (skip hidden: %v)", absRoot, o.SkipHidden)

	w := &walk{opts: o, matcher: matcher, fn: fn, res: &res}
	w.expand(frame{abs: absRoot, rel: "", exclRule: -1})

	for len(w.stack) > 0 {
		f := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		if _, skip := o.skipPaths[f.abs]; skip {
			continue
		}
		if err := w.visit(f); err != nil {
			return res, err
		}
	}

	o.Logger.Debug("walker: finished: %d files, %d dirs listed, %d skipped",
		res.Files, res.DirsListed, len(res.Skipped))
	return res, nil
}

type walk struct {
	opts    Options
	matcher Matcher
	fn      WalkFunc
	res     *Result
	stack   []frame
}

func (w *walk) visit(f frame) error {
	name := f.rel
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}

	// The hidden check applies to the entry's own name and runs before any
	// pattern matching.
	if w.opts.SkipHidden && strings.HasPrefix(name, ".") {
		w.opts.Logger.Debug("walker: skipping hidden entry %q", f.rel)
		w.res.track(f.rel, ReasonHidden, f.isDir)
		return nil
	}

	// Symlinks are leaf entries and are never descended into or read,
	// avoiding cycles and escapes from the root.
	if f.isSymlink {
		w.res.track(f.rel, ReasonSymlink, false)
		return nil
	}

	if f.isDir {
		w.visitDir(f)
		return nil
	}

	if !f.isRegular {
		w.res.track(f.rel, ReasonNotRegular, false)
		return nil
	}
	return w.visitFile(f)
}

func (w *walk) visitDir(f frame) {
	d := w.matcher.Decide(f.rel, true)

	if f.excluded {
		if d.Matched && !d.Excluded {
			// Re-included by a negation: back to normal traversal.
			w.expand(frame{abs: f.abs, rel: f.rel, exclRule: -1})
			return
		}
		rule := f.exclRule
		if d.Matched && d.Excluded {
			rule = d.RuleIndex
		}
		if w.mayReinclude(rule) {
			w.expand(frame{abs: f.abs, rel: f.rel, excluded: true, exclRule: rule})
			return
		}
		w.res.track(f.rel, ReasonExcluded, true)
		return
	}

	if d.Matched && d.Excluded {
		if w.matcher.MayReincludeWithin(d) {
			// A later negation may re-include content below: descend, but
			// only yield files the negation explicitly re-includes.
			w.opts.Logger.Debug("walker: descending into excluded %q for re-inclusion", f.rel)
			w.expand(frame{abs: f.abs, rel: f.rel, excluded: true, exclRule: d.RuleIndex})
			return
		}
		// Prune: the subtree is never listed, stat'ed, or opened.
		w.opts.Logger.Debug("walker: pruning excluded directory %q", f.rel)
		w.res.track(f.rel, ReasonExcluded, true)
		return
	}

	w.expand(f)
}

func (w *walk) visitFile(f frame) error {
	d := w.matcher.Decide(f.rel, false)

	if f.excluded {
		// Inside an excluded tree only an explicit re-inclusion survives.
		if !d.Matched || d.Excluded {
			w.res.track(f.rel, ReasonExcluded, false)
			return nil
		}
	} else if d.Matched && d.Excluded {
		w.res.track(f.rel, ReasonExcluded, false)
		return nil
	}

	w.res.Files++
	return w.fn(IncludedFile{Path: f.abs, Rel: f.rel})
}

// expand lists a directory and pushes its children in reverse name order so
// they pop in sorted order, giving a reproducible pre-order sequence.
func (w *walk) expand(f frame) {
	entries, err := w.opts.ReadDir(f.abs)
	if err != nil {
		rel := f.rel
		if rel == "" {
			rel = "."
		}
		w.opts.Logger.Warn("walker: cannot list %q: %v", rel, err)
		w.res.track(rel, ReasonListFailed, true)
		return
	}
	w.res.DirsListed++

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		rel := e.Name()
		if f.rel != "" {
			rel = f.rel + "/" + e.Name()
		}
		mode := e.Type()
		w.stack = append(w.stack, frame{
			abs:       filepath.Join(f.abs, e.Name()),
			rel:       rel,
			isDir:     e.IsDir(),
			isSymlink: mode&fs.ModeSymlink != 0,
			isRegular: mode.IsRegular(),
			excluded:  f.excluded,
			exclRule:  f.exclRule,
		})
	}
}

func (w *walk) mayReinclude(ruleIndex int) bool {
	return w.matcher.MayReincludeWithin(pattern.Decision{
		Matched:   ruleIndex >= 0,
		Excluded:  true,
		RuleIndex: ruleIndex,
	})
}
