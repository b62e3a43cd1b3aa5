// Package pattern compiles gitignore-style exclusion patterns into an
// immutable MatchSet and evaluates relative paths against it.
//
// Supported syntax: "*" and "?" wildcards inside a path segment, "**"
// matching any number of whole segments, a trailing "/" restricting a
// pattern to directories, a leading "/" anchoring a pattern to the root,
// and a leading "!" turning a pattern into a re-inclusion. A pattern
// without a "/" matches the final path segment at any depth.
package pattern

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors reported at compile time. Matching never fails.
var (
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrEmptyPattern   = fmt.Errorf("%w: empty after trimming", ErrInvalidPattern)
	ErrBadEscape      = fmt.Errorf("%w: unsupported escape sequence", ErrInvalidPattern)
)

// Options controls matcher behavior.
type Options struct {
	// CaseInsensitive lowercases both patterns and candidate paths.
	// Matching is case-sensitive by default.
	CaseInsensitive bool
}

// Decision is the outcome of evaluating one path against a MatchSet.
type Decision struct {
	// Matched reports whether any rule matched the path.
	Matched bool
	// Excluded reports the verdict of the last matching rule.
	Excluded bool
	// RuleIndex is the index of the last matching rule, -1 when no match.
	RuleIndex int
}

type segment struct {
	text       string
	doubleStar bool
	wildcard   bool
}

type rule struct {
	source   string
	segments []segment
	negated  bool
	dirOnly  bool
	anchored bool
	hasSlash bool
}

// MatchSet is an ordered sequence of compiled rules. It is immutable after
// Compile and safe for repeated, deterministic evaluation.
type MatchSet struct {
	rules           []rule
	lastNegation    int
	caseInsensitive bool
}

// Compile compiles raw pattern strings, preserving their order. Later
// patterns override earlier ones for the same path, so callers append
// higher-precedence sources (command-line excludes) last.
func Compile(patterns []string, opts Options) (*MatchSet, error) {
	ms := &MatchSet{
		rules:           make([]rule, 0, len(patterns)),
		lastNegation:    -1,
		caseInsensitive: opts.CaseInsensitive,
	}
	for _, raw := range patterns {
		r, err := compileRule(raw, opts.CaseInsensitive)
		if err != nil {
			return nil, err
		}
		if r.negated {
			ms.lastNegation = len(ms.rules)
		}
		ms.rules = append(ms.rules, *r)
	}
	return ms, nil
}

// Len returns the number of compiled rules.
func (m *MatchSet) Len() int {
	return len(m.rules)
}

// Decide evaluates a slash-separated relative path. The last matching rule
// determines the verdict; an unmatched path is included.
func (m *MatchSet) Decide(rel string, isDir bool) Decision {
	d := Decision{RuleIndex: -1}

	rel = normalizePath(rel)
	if rel == "" {
		return d
	}
	if m.caseInsensitive {
		rel = strings.ToLower(rel)
	}

	segs := strings.Split(rel, "/")
	for i := range m.rules {
		if m.rules[i].matches(segs, isDir) {
			d.Matched = true
			d.RuleIndex = i
			d.Excluded = !m.rules[i].negated
		}
	}
	return d
}

// IsExcluded reports whether the last matching rule excludes the path.
func (m *MatchSet) IsExcluded(rel string, isDir bool) bool {
	d := m.Decide(rel, isDir)
	return d.Matched && d.Excluded
}

// MayReincludeWithin reports whether a negated rule declared after the rule
// that produced d could re-include content beneath the matched directory.
// Walkers use it to choose between pruning and descending.
func (m *MatchSet) MayReincludeWithin(d Decision) bool {
	return d.RuleIndex >= 0 && m.lastNegation > d.RuleIndex
}

func compileRule(raw string, caseInsensitive bool) (*rule, error) {
	pat := strings.TrimSpace(raw)
	if pat == "" {
		return nil, fmt.Errorf("%w (%q)", ErrEmptyPattern, raw)
	}
	if err := checkEscapes(pat); err != nil {
		return nil, fmt.Errorf("%w (%q)", err, raw)
	}

	r := &rule{source: raw}
	switch {
	case strings.HasPrefix(pat, "!"):
		r.negated = true
		pat = pat[1:]
	case strings.HasPrefix(pat, `\!`), strings.HasPrefix(pat, `\#`):
		// Escaped leading token is kept as a literal.
		pat = pat[1:]
	}
	if caseInsensitive {
		pat = strings.ToLower(pat)
	}
	if strings.HasSuffix(pat, "/") {
		r.dirOnly = true
		pat = strings.TrimSuffix(pat, "/")
	}
	if strings.HasPrefix(pat, "/") {
		r.anchored = true
		pat = strings.TrimPrefix(pat, "/")
	}
	if pat == "" {
		return nil, fmt.Errorf("%w after normalization (%q)", ErrEmptyPattern, raw)
	}
	r.hasSlash = strings.Contains(pat, "/") || r.anchored

	for _, s := range strings.Split(pat, "/") {
		if s == "" {
			return nil, fmt.Errorf("%w: empty path segment (%q)", ErrInvalidPattern, raw)
		}
		r.segments = append(r.segments, newSegment(s))
	}
	return r, nil
}

// checkEscapes rejects backslash escapes outside the supported set.
func checkEscapes(pat string) error {
	for i := 0; i < len(pat); i++ {
		if pat[i] != '\\' {
			continue
		}
		if i+1 >= len(pat) {
			return fmt.Errorf("%w: trailing backslash", ErrBadEscape)
		}
		switch pat[i+1] {
		case '\\', '!', '#', '*', '?', '[', ']', ' ':
			i++
		default:
			return fmt.Errorf("%w: \\%c", ErrBadEscape, pat[i+1])
		}
	}
	return nil
}

func newSegment(text string) segment {
	return segment{
		text:       text,
		doubleStar: text == "**",
		wildcard:   strings.ContainsAny(text, "*?"),
	}
}

// matches reports whether the rule matches the path split into segments.
func (r *rule) matches(segs []string, isDir bool) bool {
	if len(segs) == 0 {
		return false
	}

	if !r.hasSlash {
		p := r.segments[0]
		if !r.dirOnly {
			return matchSegment(p, segs[len(segs)-1])
		}
		// Directory-only component rules match the named directory itself
		// and anything beneath it: test every component, counting the final
		// one only when the candidate is a directory.
		for i, s := range segs {
			if i == len(segs)-1 && !isDir {
				break
			}
			if matchSegment(p, s) {
				return true
			}
		}
		return false
	}

	// Patterns containing a slash are anchored to the traversal root,
	// mirroring gitignore.
	return matchSegments(r.segments, 0, segs, 0, isDir, r.dirOnly)
}

// matchSegments matches pattern segments against path segments with "**"
// spanning zero or more whole segments. Directory-only rules also match any
// descendant of the matched directory.
func matchSegments(pats []segment, pi int, segs []string, si int, isDir, dirOnly bool) bool {
	if pi == len(pats) {
		if si == len(segs) {
			return !dirOnly || isDir
		}
		return dirOnly
	}

	p := pats[pi]
	if p.doubleStar {
		if pi == len(pats)-1 {
			// Trailing "**" matches everything inside, not the directory
			// itself.
			return si < len(segs)
		}
		for k := si; k <= len(segs); k++ {
			if matchSegments(pats, pi+1, segs, k, isDir, dirOnly) {
				return true
			}
		}
		return false
	}

	if si >= len(segs) || !matchSegment(p, segs[si]) {
		return false
	}
	return matchSegments(pats, pi+1, segs, si+1, isDir, dirOnly)
}

func matchSegment(p segment, s string) bool {
	if !p.wildcard && !strings.ContainsRune(p.text, '\\') {
		return p.text == s
	}
	return matchWildcard(p.text, s)
}

// matchWildcard matches "*" and "?" against one path segment using
// iterative backtracking. A backslash escapes the following byte.
func matchWildcard(pattern, input string) bool {
	pIdx, sIdx := 0, 0
	starPattern, starInput := -1, 0

	for sIdx < len(input) {
		if pIdx < len(pattern) && pattern[pIdx] == '*' {
			// Remember star position and continue greedily.
			starPattern = pIdx
			pIdx++
			starInput = sIdx
			continue
		}
		if pIdx < len(pattern) {
			c := pattern[pIdx]
			if c == '\\' && pIdx+1 < len(pattern) {
				if pattern[pIdx+1] == input[sIdx] {
					pIdx += 2
					sIdx++
					continue
				}
			} else if c == '?' || c == input[sIdx] {
				pIdx++
				sIdx++
				continue
			}
		}
		if starPattern >= 0 {
			// Mismatch after a star: let "*" consume one more input byte.
			pIdx = starPattern + 1
			starInput++
			sIdx = starInput
			continue
		}
		return false
	}

	for pIdx < len(pattern) && pattern[pIdx] == '*' {
		pIdx++
	}
	return pIdx == len(pattern)
}

// normalizePath normalizes a candidate path to clean slash-separated
// relative form.
func normalizePath(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, `\`) {
		raw = strings.ReplaceAll(raw, `\`, `/`)
	}
	raw = strings.TrimPrefix(raw, "./")
	raw = strings.Trim(raw, "/")
	if raw == "." {
		return ""
	}
	return raw
}
