package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsToInfoOnInvalidLevel(t *testing.T) {
	log := New("verbose")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
}

func TestNewWithOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("debug", "json", &buf)

	log.WithField("alert_id", 5).Debug("evaluated")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "evaluated", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.EqualValues(t, 5, entry["alert_id"])
}

func TestNewWithOutput_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("warn", "text", &buf)

	log.Info("skipped")
	log.Warn("lock held")

	assert.NotContains(t, buf.String(), "skipped")
	assert.Contains(t, buf.String(), `msg="lock held"`)
}
