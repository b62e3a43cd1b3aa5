package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsole(&buf, LevelWarn, false)

	log.Debug("debug %d", 1)
	log.Info("info %d", 2)
	log.Warn("warn %d", 3)
	log.Error("error %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "debug 1")
	assert.NotContains(t, out, "info 2")
	assert.Contains(t, out, "warn 3")
	assert.Contains(t, out, "error 4")
}

func TestConsolePrefixes(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsole(&buf, LevelDebug, false)

	log.Info("hello")
	assert.Contains(t, buf.String(), "INFO")

	buf.Reset()
	log.Error("boom")
	assert.Contains(t, buf.String(), "ERROR")
}

func TestParseLevel(t *testing.T) {
	for input, want := range map[string]Level{
		"debug":   LevelDebug,
		"info":    LevelInfo,
		"warn":    LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"none":    LevelNone,
	} {
		assert.Equal(t, want, ParseLevel(input), "level %q", input)
	}

	// Unknown names fall back to info.
	assert.Equal(t, LevelInfo, ParseLevel("chatty"))
}

func TestNoopDiscards(t *testing.T) {
	// Noop must be safe with any arguments.
	var log Logger = Noop{}
	log.Debug("x %v", nil)
	log.Info("y")
	log.Warn("z %d %s", 1, "a")
	log.Error("w")
}
