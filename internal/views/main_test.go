package views

import (
	"testing"

	"base64-converter/internal/views/components"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestView(t *testing.T) *MainView {
	t.Helper()
	a := test.NewTempApp(t)
	w := a.NewWindow(Title)
	t.Cleanup(w.Close)
	return NewMainView(w, 0)
}

func TestMainViewInitialState(t *testing.T) {
	mv := newTestView(t)

	state := mv.GetViewState()
	assert.Empty(t, state.FilePath)
	assert.Empty(t, state.OutputText)
	assert.Equal(t, components.InitialStatus, state.StatusMessage)
	assert.False(t, state.ConvertEnabled)
	assert.False(t, state.OutputEnabled)
}

func TestMainViewRoutesControlsToHandlers(t *testing.T) {
	mv := newTestView(t)

	calls := map[string]int{}
	mv.SetBrowseHandler(func() { calls["browse"]++ })
	mv.SetConvertHandler(func() { calls["convert"]++ })
	mv.SetCopyHandler(func() { calls["copy"]++ })
	mv.SetCopyDataURIHandler(func() { calls["datauri"]++ })
	mv.SetSaveHandler(func() { calls["save"]++ })

	mv.EnableConvert(true)
	mv.EnableOutputActions(true)

	test.Tap(mv.GetFilePanel().BrowseButton())
	convert, copyButton, save := mv.GetToolbar().Buttons()
	test.Tap(convert)
	test.Tap(copyButton)
	test.Tap(save)

	assert.Equal(t, map[string]int{"browse": 1, "convert": 1, "copy": 1, "save": 1}, calls)

	for _, entry := range []struct{ menu, label, key string }{
		{"File", "Open File...", "browse"},
		{"File", "Convert", "convert"},
		{"File", "Save As...", "save"},
		{"Edit", "Copy", "copy"},
		{"Edit", "Copy as Data URI", "datauri"},
	} {
		item := mv.MenuItem(entry.menu, entry.label)
		require.NotNil(t, item, "%s > %s", entry.menu, entry.label)
		item.Action()
	}

	assert.Equal(t, map[string]int{"browse": 2, "convert": 2, "copy": 2, "save": 2, "datauri": 1}, calls)
}

func TestMainViewUpdates(t *testing.T) {
	mv := newTestView(t)

	mv.SetSelectedPath("/tmp/photo.png")
	mv.ShowEncodedText("iVBORw0KGgo=")
	mv.UpdateStatus("Ready: photo.png")

	state := mv.GetViewState()
	assert.Equal(t, "/tmp/photo.png", state.FilePath)
	assert.Equal(t, "iVBORw0KGgo=", state.OutputText)
	assert.False(t, state.OutputTruncated)
	assert.Equal(t, "Ready: photo.png", state.StatusMessage)
}

func TestMainViewShowErrorOpensOverlay(t *testing.T) {
	mv := newTestView(t)

	mv.ShowError("Conversion Error", "Failed to read file:\nboom")

	assert.NotNil(t, mv.GetWindow().Canvas().Overlays().Top())
}
