package walker

import (
	"github.com/seyallius/treeclip/internal/pattern"
)

// Matcher decides whether a relative path is excluded. pattern.MatchSet and
// gitrules.Matcher both satisfy it.
type Matcher interface {
	Decide(rel string, isDir bool) pattern.Decision
	MayReincludeWithin(d pattern.Decision) bool
}

// IncludedFile is a regular file that survived all exclusion and hidden
// checks. It is produced by Walk and consumed exactly once by the sink.
type IncludedFile struct {
	// Path is the absolute filesystem path.
	Path string
	// Rel is the path relative to the traversal root, always
	// slash-separated.
	Rel string
}

// WalkFunc receives each included file in deterministic traversal order.
// A non-nil error aborts the walk.
type WalkFunc func(file IncludedFile) error

// SkippedReason clarifies why an entry was not processed.
type SkippedReason string

const (
	ReasonHidden     SkippedReason = "hidden entry"
	ReasonExcluded   SkippedReason = "excluded by pattern"
	ReasonSymlink    SkippedReason = "symlink not followed"
	ReasonNotRegular SkippedReason = "not a regular file"
	ReasonListFailed SkippedReason = "directory not listable"
)

// SkippedItem records one entry that was skipped during traversal.
type SkippedItem struct {
	// Rel is the slash-separated path relative to the traversal root.
	Rel string
	// Reason explains the skip.
	Reason SkippedReason
	// IsDir reports whether the entry was a directory.
	IsDir bool
}

// Result accumulates the outcome of one traversal. Walk returns it by value;
// there is no shared state between invocations.
type Result struct {
	// Files is the number of files yielded to the WalkFunc.
	Files int
	// DirsListed is the number of directories actually listed. Pruned
	// directories are never listed.
	DirsListed int
	// Skipped holds every entry that was deliberately passed over.
	Skipped []SkippedItem
}

func (r *Result) track(rel string, reason SkippedReason, isDir bool) {
	r.Skipped = append(r.Skipped, SkippedItem{Rel: rel, Reason: reason, IsDir: isDir})
}
