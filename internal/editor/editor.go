// Package editor opens the output file in a text editor and handles
// cleanup after the editor closes.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// ErrNoEditor is returned when no editor command can be determined.
var ErrNoEditor = errors.New("no editor available")

// Open launches an editor on the file at path and waits for it to close.
// $VISUAL and $EDITOR take precedence; otherwise the platform opener is
// used.
func Open(path string) error {
	name, args := command(path)
	if name == "" {
		return ErrNoEditor
	}

	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor: %s: %w", name, err)
	}
	return nil
}

// Remove deletes the output file after the editor has closed.
func Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("editor: remove %s: %w", path, err)
	}
	return nil
}

// command picks the editor command for the current environment.
func command(path string) (name string, args []string) {
	if ed := os.Getenv("VISUAL"); ed != "" {
		return ed, []string{path}
	}
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed, []string{path}
	}
	switch runtime.GOOS {
	case "darwin":
		// -W waits until the opened application exits.
		return "open", []string{"-W", path}
	case "windows":
		return "cmd", []string{"/c", "start", "/wait", "", path}
	default:
		return "xdg-open", []string{path}
	}
}
