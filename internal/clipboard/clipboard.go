// Package clipboard puts encoded text on the user's clipboard through either
// the toolkit or the operating system utilities.
package clipboard

import (
	"fmt"

	"fyne.io/fyne/v2"
	"github.com/atotto/clipboard"
)

const (
	BackendApp    = "app"
	BackendSystem = "system"
)

type Writer interface {
	WriteText(text string) error
}

// AppClipboard writes through the running fyne application.
type AppClipboard struct {
	app fyne.App
}

func NewAppClipboard(app fyne.App) *AppClipboard {
	return &AppClipboard{app: app}
}

func (c *AppClipboard) WriteText(text string) error {
	cb := c.app.Clipboard()
	if cb == nil {
		return fmt.Errorf("application clipboard unavailable")
	}
	cb.SetContent(text)
	return nil
}

// SystemClipboard shells out to the platform clipboard (pbcopy, xclip,
// xsel, wl-copy or the Windows API).
type SystemClipboard struct{}

func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

func (SystemClipboard) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("system clipboard not supported on this platform")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write system clipboard: %w", err)
	}
	return nil
}

// New picks a backend by config name.
func New(backend string, app fyne.App) (Writer, error) {
	switch backend {
	case "", BackendApp:
		return NewAppClipboard(app), nil
	case BackendSystem:
		return NewSystemClipboard(), nil
	}
	return nil, fmt.Errorf("unknown clipboard backend %q", backend)
}
