// Package assembler reads included files and writes path-labelled sections
// to the output sink.
package assembler

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/seyallius/treeclip/internal/logging"
	"github.com/seyallius/treeclip/internal/walker"
)

// FailedFile records one file that could not be assembled. Failures are
// per-file and never abort the run.
type FailedFile struct {
	Rel    string
	Reason string
}

// Assembler writes one section per included file:
//
//	==> relative/path
//	<content, trailing newlines normalized>
//	<blank line>
//
// Sections appear in the exact order files are received.
type Assembler struct {
	w      *bufio.Writer
	log    logging.Logger
	count  int
	failed []FailedFile
}

// New creates an Assembler writing to sink.
func New(sink io.Writer, log logging.Logger) *Assembler {
	if log == nil {
		log = logging.Noop{}
	}
	return &Assembler{w: bufio.NewWriter(sink), log: log}
}

// WriteFile reads the file and appends its section. Unreadable or
// non-UTF-8 files are recorded and skipped; only sink write errors are
// returned, since a broken sink ends the run.
func (a *Assembler) WriteFile(file walker.IncludedFile) error {
	content, err := os.ReadFile(file.Path)
	if err != nil {
		a.log.Warn("assembler: skipping %q: %v", file.Rel, err)
		a.failed = append(a.failed, FailedFile{Rel: file.Rel, Reason: err.Error()})
		return nil
	}
	if !utf8.Valid(content) {
		a.log.Warn("assembler: skipping %q: not valid UTF-8 text", file.Rel)
		a.failed = append(a.failed, FailedFile{Rel: file.Rel, Reason: "not valid UTF-8 text"})
		return nil
	}

	if _, err := fmt.Fprintf(a.w, "==> %s\n", file.Rel); err != nil {
		return fmt.Errorf("assembler: write header for %q: %w", file.Rel, err)
	}
	if _, err := a.w.Write(bytes.TrimRight(content, "\n")); err != nil {
		return fmt.Errorf("assembler: write content for %q: %w", file.Rel, err)
	}
	if _, err := a.w.WriteString("\n\n"); err != nil {
		return fmt.Errorf("assembler: write separator for %q: %w", file.Rel, err)
	}

	a.count++
	return nil
}

// Flush writes any buffered output to the sink.
func (a *Assembler) Flush() error {
	if err := a.w.Flush(); err != nil {
		return fmt.Errorf("assembler: flush output: %w", err)
	}
	return nil
}

// Count returns the number of sections written.
func (a *Assembler) Count() int {
	return a.count
}

// Failed returns the files that could not be assembled, in visit order.
func (a *Assembler) Failed() []FailedFile {
	return a.failed
}
