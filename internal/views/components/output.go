package components

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// OutputPanel is the scrollable, unwrapped monospace view of the encoded text.
// Edits made in the view never reach the stored encoding.
type OutputPanel struct {
	container *fyne.Container
	text      *widget.Entry
	maxChars  int

	mu        sync.Mutex
	truncated bool
}

// NewOutputPanel creates the panel. maxChars limits the preview; zero
// disables the limit.
func NewOutputPanel(maxChars int) *OutputPanel {
	op := &OutputPanel{maxChars: maxChars}

	op.text = widget.NewMultiLineEntry()
	op.text.TextStyle = fyne.TextStyle{Monospace: true}
	op.text.Wrapping = fyne.TextWrapOff

	op.container = container.NewStack(
		widget.NewCard("", "Base64 Output", op.text),
	)
	return op
}

// SetText replaces the preview. It reports whether the preview was cut.
func (op *OutputPanel) SetText(text string) bool {
	preview := text
	truncated := false
	if op.maxChars > 0 && len(text) > op.maxChars {
		// Base64 is ASCII so byte slicing is safe.
		preview = text[:op.maxChars]
		truncated = true
	}

	op.mu.Lock()
	op.truncated = truncated
	op.mu.Unlock()

	fyne.Do(func() {
		op.text.SetText(preview)
	})
	return truncated
}

func (op *OutputPanel) GetText() string {
	return op.text.Text
}

func (op *OutputPanel) Truncated() bool {
	op.mu.Lock()
	defer op.mu.Unlock()
	return op.truncated
}

func (op *OutputPanel) Clear() {
	op.SetText("")
}

func (op *OutputPanel) GetContainer() *fyne.Container {
	return op.container
}
