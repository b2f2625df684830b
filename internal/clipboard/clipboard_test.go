package clipboard

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppClipboardWritesContent(t *testing.T) {
	a := test.NewTempApp(t)
	cb := NewAppClipboard(a)

	require.NoError(t, cb.WriteText("Zm9vYmFy"))
	assert.Equal(t, "Zm9vYmFy", a.Clipboard().Content())
}

func TestNew(t *testing.T) {
	a := test.NewTempApp(t)

	w, err := New("", a)
	require.NoError(t, err)
	assert.IsType(t, &AppClipboard{}, w)

	w, err = New(BackendSystem, a)
	require.NoError(t, err)
	assert.IsType(t, &SystemClipboard{}, w)

	_, err = New("pasteboard", a)
	assert.Error(t, err)
}
