package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the Convert, Copy and Save actions.
type Toolbar struct {
	container     *fyne.Container
	convertButton *widget.Button
	copyButton    *widget.Button
	saveButton    *widget.Button

	convertHandler func()
	copyHandler    func()
	saveHandler    func()
}

// NewToolbar creates a toolbar with every action disabled.
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.convertButton = widget.NewButtonWithIcon("Convert to Base64", theme.MediaPlayIcon(), nil)
	t.convertButton.Importance = widget.HighImportance
	t.convertButton.Disable()

	t.copyButton = widget.NewButtonWithIcon("Copy to Clipboard", theme.ContentCopyIcon(), nil)
	t.copyButton.Disable()

	t.saveButton = widget.NewButtonWithIcon("Save As...", theme.DocumentSaveIcon(), nil)
	t.saveButton.Disable()
}

func (t *Toolbar) buildLayout() {
	t.container = container.NewHBox(
		t.convertButton,
		t.copyButton,
		t.saveButton,
	)
}

func (t *Toolbar) setupEventHandlers() {
	t.convertButton.OnTapped = func() {
		if t.convertHandler != nil {
			t.convertHandler()
		}
	}

	t.copyButton.OnTapped = func() {
		if t.copyHandler != nil {
			t.copyHandler()
		}
	}

	t.saveButton.OnTapped = func() {
		if t.saveHandler != nil {
			t.saveHandler()
		}
	}
}

func (t *Toolbar) SetConvertHandler(handler func()) {
	t.convertHandler = handler
}

func (t *Toolbar) SetCopyHandler(handler func()) {
	t.copyHandler = handler
}

func (t *Toolbar) SetSaveHandler(handler func()) {
	t.saveHandler = handler
}

// EnableConvert toggles the Convert action.
func (t *Toolbar) EnableConvert(enabled bool) {
	fyne.Do(func() {
		setEnabled(t.convertButton, enabled)
	})
}

// EnableOutputActions toggles Copy and Save together.
func (t *Toolbar) EnableOutputActions(enabled bool) {
	fyne.Do(func() {
		setEnabled(t.copyButton, enabled)
		setEnabled(t.saveButton, enabled)
	})
}

func (t *Toolbar) ConvertEnabled() bool {
	return !t.convertButton.Disabled()
}

func (t *Toolbar) OutputActionsEnabled() bool {
	return !t.copyButton.Disabled() && !t.saveButton.Disabled()
}

// Reset disables every action.
func (t *Toolbar) Reset() {
	fyne.Do(func() {
		t.convertButton.Disable()
		t.copyButton.Disable()
		t.saveButton.Disable()
	})
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

// Buttons returns the Convert, Copy and Save buttons in order.
func (t *Toolbar) Buttons() (convert, copyText, save *widget.Button) {
	return t.convertButton, t.copyButton, t.saveButton
}

func setEnabled(w fyne.Disableable, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}
