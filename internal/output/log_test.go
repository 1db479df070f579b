package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(cfg LogConfig) *bytes.Buffer {
	var buf bytes.Buffer
	SetupLoggingTo(&buf, cfg)
	return &buf
}

func TestSetupLogging_TimestampDefaultOff(t *testing.T) {
	buf := captureLog(LogConfig{})
	Warn("hello")
	assert.NotRegexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(buf.String()),
		"output should not start with a timestamp")
}

func TestSetupLogging_TimestampExplicitlyEnabled(t *testing.T) {
	buf := captureLog(LogConfig{Timestamps: BoolPtr(true)})
	Warn("hello")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(buf.String()))
}

func TestSetupLogging_VerboseForcesTimestampsOn(t *testing.T) {
	buf := captureLog(LogConfig{Verbose: true, Timestamps: BoolPtr(false)})
	Debug("verbose-msg")
	out := buf.String()
	assert.Contains(t, out, "verbose-msg", "debug message should appear in verbose mode")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(out))
}

func TestSetupLogging_DebugHiddenByDefault(t *testing.T) {
	buf := captureLog(LogConfig{})
	Debug("hidden")
	Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogKeyvals(t *testing.T) {
	buf := captureLog(LogConfig{})
	Warn("copy failed", "path", "src/main.ts")
	assert.Contains(t, buf.String(), "copy failed")
	assert.Contains(t, buf.String(), "src/main.ts")
}

func TestBoolPtr(t *testing.T) {
	p := BoolPtr(true)
	assert.True(t, *p)
}
