package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// FilePanel shows the selected input path next to a Browse button.
type FilePanel struct {
	container    *fyne.Container
	pathEntry    *widget.Entry
	browseButton *widget.Button

	browseHandler func()
}

func NewFilePanel() *FilePanel {
	fp := &FilePanel{}

	fp.pathEntry = widget.NewEntry()
	fp.pathEntry.SetPlaceHolder("No file selected")
	fp.pathEntry.TextStyle = fyne.TextStyle{Monospace: true}
	// The path only changes through Browse.
	fp.pathEntry.Disable()

	fp.browseButton = widget.NewButtonWithIcon("Browse File...", theme.FolderOpenIcon(), func() {
		if fp.browseHandler != nil {
			fp.browseHandler()
		}
	})

	fp.container = container.NewVBox(
		widget.NewCard("", "Input File", container.NewBorder(nil, nil, nil, fp.browseButton, fp.pathEntry)),
	)
	return fp
}

func (fp *FilePanel) SetBrowseHandler(handler func()) {
	fp.browseHandler = handler
}

func (fp *FilePanel) SetPath(path string) {
	fyne.Do(func() {
		fp.pathEntry.SetText(path)
	})
}

func (fp *FilePanel) GetPath() string {
	return fp.pathEntry.Text
}

func (fp *FilePanel) BrowseButton() *widget.Button {
	return fp.browseButton
}

func (fp *FilePanel) GetContainer() *fyne.Container {
	return fp.container
}
