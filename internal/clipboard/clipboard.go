// Package clipboard copies the assembled output to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/docker/go-units"
)

// maxSize caps clipboard content at 100 MB to prevent memory issues.
const maxSize = 100 * 1024 * 1024

// ErrTooLarge is returned when the output exceeds the clipboard size cap.
var ErrTooLarge = errors.New("content too large for clipboard")

// CopyFile places the contents of the file at path into the system
// clipboard. Callers treat failures as non-fatal: the output file already
// exists regardless.
func CopyFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("clipboard: stat %s: %w", path, err)
	}
	if info.Size() > maxSize {
		return fmt.Errorf("%w: %s exceeds %s", ErrTooLarge,
			units.HumanSize(float64(info.Size())), units.HumanSize(float64(maxSize)))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("clipboard: read %s: %w", path, err)
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		return fmt.Errorf("clipboard: write: %w", err)
	}
	return nil
}
