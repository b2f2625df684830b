package app

import (
	"testing"
	"time"

	"base64-converter/internal/config"
	"base64-converter/internal/logger"

	"fyne.io/fyne/v2/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Window:    config.WindowConfig{Width: 760, Height: 560},
		Log:       config.LogConfig{Level: "info", Format: "console"},
		Clipboard: config.ClipboardConfig{Backend: "app"},
		Convert:   config.ConvertConfig{Timeout: time.Second},
		Save:      config.SaveConfig{Extension: ".txt"},
	}
}

func TestApplicationEndToEnd(t *testing.T) {
	a := test.NewTempApp(t)
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/hello.txt", []byte("hello"), 0o644))

	application, err := NewWithApp(a, fs, testConfig(), logger.Nop())
	require.NoError(t, err)

	application.Preselect("/in/hello.txt")
	state := application.View().GetViewState()
	assert.Equal(t, "Ready: hello.txt", state.StatusMessage)
	assert.True(t, state.ConvertEnabled)

	application.Controller().Convert()
	application.Controller().Wait()
	assert.Equal(t, "aGVsbG8=", application.View().GetViewState().OutputText)

	application.Controller().Copy()
	assert.Equal(t, "aGVsbG8=", a.Clipboard().Content())

	application.Shutdown()
	assert.False(t, application.repo.HasText())
}

func TestApplicationRejectsUnknownClipboard(t *testing.T) {
	a := test.NewTempApp(t)
	cfg := testConfig()
	cfg.Clipboard.Backend = "carrier-pigeon"

	_, err := NewWithApp(a, afero.NewMemMapFs(), cfg, logger.Nop())
	assert.Error(t, err)
}
