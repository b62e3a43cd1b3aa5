// Package stats computes human-readable statistics for the assembled
// output. It is a read-only consumer of the output file.
package stats

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/docker/go-units"
	"github.com/fatih/color"
)

// Stats summarizes the assembled output content.
type Stats struct {
	Lines int
	Words int
	Chars int
	Bytes int
}

// Collect reads the output file and computes its statistics.
func Collect(path string) (Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Stats{}, fmt.Errorf("stats: read %s: %w", path, err)
	}
	content := string(data)
	return Stats{
		Lines: strings.Count(content, "\n") + 1,
		Words: len(strings.Fields(content)),
		Chars: utf8.RuneCountInString(content),
		Bytes: len(data),
	}, nil
}

// HumanSize returns the byte count in human-readable form.
func (s Stats) HumanSize() string {
	return units.HumanSize(float64(s.Bytes))
}

// Print renders the statistics to w.
func (s Stats) Print(w io.Writer, useColors bool) {
	paint := fmt.Sprintf
	if useColors {
		paint = color.CyanString
	}
	fmt.Fprintln(w, paint("  Lines: %d", s.Lines))
	fmt.Fprintln(w, paint("  Words: %d", s.Words))
	fmt.Fprintln(w, paint("  Chars: %d", s.Chars))
	fmt.Fprintln(w, paint("  Size:  %s (%d bytes)", s.HumanSize(), s.Bytes))
}
