package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, false)

	l.Info("started on %s", ":7000")
	l.Error("bad request: %v", "short key")
	l.Debug("hidden %d", 1)

	out := buf.String()
	assert.Regexp(t, `(?m)^INFO\t\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2} started on :7000$`, out)
	assert.Contains(t, out, "ERROR\t")
	assert.Contains(t, out, "logger_test.go")
	assert.Contains(t, out, "bad request: short key")
	assert.NotContains(t, out, "hidden")
}

func TestLogger_Verbose(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, true)

	l.Debug("candidates=%d", 42)
	assert.Regexp(t, `^DEBUG\t\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}\.\d{6} candidates=42\n$`, buf.String())
}
