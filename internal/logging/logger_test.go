package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWriter(buf, slog.LevelWarn)

	log.Info("hidden")
	log.Warn("unresolved reference", "label", "eq:1", "error", errors.New("missing"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "label=eq:1")
	assert.Contains(t, out, "err=missing")
	assert.NotContains(t, out, "error=")
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	assert.NotNil(t, log)
	assert.NotPanics(t, func() { log.Error("nothing happens", "error", errors.New("ignored")) })
}
