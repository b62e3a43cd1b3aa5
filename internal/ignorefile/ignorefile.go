// Package ignorefile loads exclusion patterns from a project's
// .treeclipignore file.
package ignorefile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Name is the ignore-file looked up at the configured root.
const Name = ".treeclipignore"

// Load reads the ignore-file at rootDir and returns its patterns in file
// order. A missing file yields no patterns and no error; a present but
// unreadable file is an error.
func Load(rootDir string) ([]string, error) {
	path := filepath.Join(rootDir, Name)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("ignorefile: open %s: %w", path, err)
	}
	defer f.Close()

	patterns, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("ignorefile: read %s: %w", path, err)
	}
	return patterns, nil
}

// parse keeps non-blank, non-comment lines verbatim, preserving order.
// Order matters: the matcher gives later patterns precedence.
func parse(f *os.File) ([]string, error) {
	var patterns []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimRight(s.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return patterns, nil
}
