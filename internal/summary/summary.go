// Package summary reports the final status of a run.
package summary

import (
	"sort"
	"time"

	"github.com/seyallius/treeclip/internal/assembler"
	"github.com/seyallius/treeclip/internal/logging"
	"github.com/seyallius/treeclip/internal/walker"
)

// Report logs the run outcome, distinguishing a fully completed run from
// one with skipped entries. Failures are counted, never silently dropped.
func Report(log logging.Logger, res walker.Result, failed []assembler.FailedFile, written int, duration time.Duration) {
	skipped := len(res.Skipped) + len(failed)
	if skipped == 0 {
		log.Info("Completed fully: %d files written in %v.", written, duration.Round(time.Millisecond))
		return
	}
	log.Info("Completed with %d skipped entries: %d files written in %v.",
		skipped, written, duration.Round(time.Millisecond))
}

// ListSkipped logs each skipped entry with its reason, sorted by path for
// consistent output.
func ListSkipped(log logging.Logger, res walker.Result, failed []assembler.FailedFile) {
	items := make([]walker.SkippedItem, len(res.Skipped))
	copy(items, res.Skipped)
	for _, f := range failed {
		items = append(items, walker.SkippedItem{Rel: f.Rel, Reason: walker.SkippedReason(f.Reason)})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Rel < items[j].Rel })

	for _, item := range items {
		kind := "file"
		if item.IsDir {
			kind = "dir"
		}
		log.Debug("skipped %s %q: %s", kind, item.Rel, item.Reason)
	}
}
