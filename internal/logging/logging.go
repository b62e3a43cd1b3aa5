// Package logging provides leveled logging for the application.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Logger is the minimal logging interface consumed by the other packages.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Level defines log severity levels.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

// ParseLevel converts a level name to a Level. Unknown names map to Info.
func ParseLevel(name string) Level {
	switch strings.ToLower(name) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "none", "off":
		return LevelNone
	default:
		return LevelInfo
	}
}

// Console writes timestamped, optionally colored log lines to a writer.
type Console struct {
	out       io.Writer
	level     Level
	useColors bool
}

// NewConsole creates a Console logger at the given level.
func NewConsole(out io.Writer, level Level, useColors bool) *Console {
	return &Console{out: out, level: level, useColors: useColors}
}

// SetLevel changes the minimum level that gets written.
func (c *Console) SetLevel(level Level) {
	c.level = level
}

func (c *Console) Debug(format string, args ...interface{}) {
	c.write(LevelDebug, "DEBUG", color.CyanString, format, args...)
}

func (c *Console) Info(format string, args ...interface{}) {
	c.write(LevelInfo, "INFO", color.BlueString, format, args...)
}

func (c *Console) Warn(format string, args ...interface{}) {
	c.write(LevelWarn, "WARN", color.YellowString, format, args...)
}

func (c *Console) Error(format string, args ...interface{}) {
	c.write(LevelError, "ERROR", color.RedString, format, args...)
}

func (c *Console) write(level Level, prefix string, paint func(string, ...interface{}) string, format string, args ...interface{}) {
	if c.level > level {
		return
	}
	if c.useColors {
		prefix = paint(prefix)
	}
	fmt.Fprintf(c.out, "[%s %s] %s\n", time.Now().Format("15:04:05.000"), prefix, fmt.Sprintf(format, args...))
}

// Noop discards all log messages.
type Noop struct{}

func (Noop) Debug(format string, args ...interface{}) {}
func (Noop) Info(format string, args ...interface{})  {}
func (Noop) Warn(format string, args ...interface{})  {}
func (Noop) Error(format string, args ...interface{}) {}
