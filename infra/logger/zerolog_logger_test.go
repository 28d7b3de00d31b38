package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLoggerMethods(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	l := NewZerologLogger("test")
	require.NotNil(t, l)
	l.Debugf("debug %d", 1)
	l.Debugw("debug", map[string]any{"k": 1})
	l.Infof("info %s", "test")
	l.Infow("info", map[string]any{"k": 2})
	l.Warnf("warn")
	l.Errorf("error")
}

func TestZerologLogger_StructuredFields(t *testing.T) {
	t.Setenv("APP_ENV", "")
	SetLevel("info")
	defer SetLevel("info")

	var buf bytes.Buffer
	l := NewZerologLoggerTo(&buf, "inspection")
	l.Infow("inspected", map[string]any{"model": "Calliope", "due": true})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "inspection", line["component"])
	assert.Equal(t, "Calliope", line["model"])
	assert.Equal(t, true, line["due"])
	assert.Equal(t, "inspected", line["message"])
}

func TestSetLevel(t *testing.T) {
	defer SetLevel("info")
	SetLevel("warn")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
	SetLevel("bogus")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	var buf bytes.Buffer
	SetLevel("error")
	NewZerologLoggerTo(&buf, "x").Infof("hidden")
	assert.Empty(t, buf.String())
}
