package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{in: "debug", want: zerolog.DebugLevel},
		{in: "", want: zerolog.InfoLevel},
		{in: "INFO", want: zerolog.InfoLevel},
		{in: "warning", want: zerolog.WarnLevel},
		{in: "error", want: zerolog.ErrorLevel},
		{in: "off", want: zerolog.Disabled},
		{in: "loud", want: zerolog.InfoLevel, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestZerologAdapterWritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, FormatJSON, zerolog.DebugLevel)

	log.Info("Converter", "file converted", map[string]interface{}{"chars": 8})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Converter", entry["component"])
	assert.Equal(t, "file converted", entry["message"])
	assert.EqualValues(t, 8, entry["chars"])
}

func TestZerologAdapterError(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, FormatJSON, zerolog.InfoLevel)

	log.Error("Clipboard", errors.New("no display"), nil)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "no display", entry["error"])
}

func TestZerologAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, FormatJSON, zerolog.WarnLevel)

	log.Debug("View", "hidden", nil)
	log.Info("View", "hidden", nil)
	assert.Zero(t, buf.Len())

	log.Warning("View", "shown", nil)
	assert.Contains(t, buf.String(), "shown")
}
