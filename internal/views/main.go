package views

import (
	"path/filepath"

	"base64-converter/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	Title    = "Base64 File Converter"
	Subtitle = "Convert any file to Base64 for embedding in code"
)

// MainView is the single converter window
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	filePanel     *components.FilePanel
	toolbar       *components.Toolbar
	output        *components.OutputPanel
	statusBar     *components.StatusBar

	// Event handlers - connected to controller
	browseHandler      func()
	convertHandler     func()
	copyHandler        func()
	copyDataURIHandler func()
	saveHandler        func()
}

// NewMainView builds the layout and sets it as the window content.
// previewLimit caps the characters shown in the output panel.
func NewMainView(window fyne.Window, previewLimit int) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents(previewLimit)
	view.buildLayout()
	view.setupEventHandlers()
	view.setupMenus()

	return view
}

func (mv *MainView) initializeComponents(previewLimit int) {
	mv.filePanel = components.NewFilePanel()
	mv.toolbar = components.NewToolbar()
	mv.output = components.NewOutputPanel(previewLimit)
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	topArea := container.NewVBox(
		components.NewHeader(Title, Subtitle),
		mv.filePanel.GetContainer(),
		mv.toolbar.GetContainer(),
	)

	bottomArea := container.NewVBox(
		widget.NewSeparator(),
		mv.statusBar.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		topArea,
		bottomArea,
		nil,
		nil,
		mv.output.GetContainer(),
	)

	mv.window.SetContent(container.NewPadded(mv.mainContainer))
}

func (mv *MainView) setupEventHandlers() {
	mv.filePanel.SetBrowseHandler(func() { invoke(mv.browseHandler) })
	mv.toolbar.SetConvertHandler(func() { invoke(mv.convertHandler) })
	mv.toolbar.SetCopyHandler(func() { invoke(mv.copyHandler) })
	mv.toolbar.SetSaveHandler(func() { invoke(mv.saveHandler) })
}

func invoke(handler func()) {
	if handler != nil {
		handler()
	}
}

// Event handler setters - called by controller

func (mv *MainView) SetBrowseHandler(handler func()) {
	mv.browseHandler = handler
}

func (mv *MainView) SetConvertHandler(handler func()) {
	mv.convertHandler = handler
}

func (mv *MainView) SetCopyHandler(handler func()) {
	mv.copyHandler = handler
}

func (mv *MainView) SetCopyDataURIHandler(handler func()) {
	mv.copyDataURIHandler = handler
}

func (mv *MainView) SetSaveHandler(handler func()) {
	mv.saveHandler = handler
}

// UI update methods - called by controller

// SetSelectedPath shows the chosen input path.
func (mv *MainView) SetSelectedPath(path string) {
	mv.filePanel.SetPath(path)
}

func (mv *MainView) EnableConvert(enabled bool) {
	mv.toolbar.EnableConvert(enabled)
}

func (mv *MainView) EnableOutputActions(enabled bool) {
	mv.toolbar.EnableOutputActions(enabled)
}

// ShowEncodedText replaces the output preview and reports truncation.
func (mv *MainView) ShowEncodedText(text string) bool {
	return mv.output.SetText(text)
}

func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// ShowError displays a modal error with a custom title.
func (mv *MainView) ShowError(title, message string) {
	fyne.Do(func() {
		content := container.NewBorder(nil, nil,
			widget.NewIcon(theme.ErrorIcon()), nil,
			widget.NewLabel(message),
		)
		dialog.ShowCustom(title, "OK", content, mv.window)
	})
}

// ShowOpenDialog asks for a source file. The callback receives the local
// path and is not called when the user cancels.
func (mv *MainView) ShowOpenDialog(startPath string, callback func(path string)) {
	fyne.Do(func() {
		fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil {
				mv.ShowError("File Selection Error", err.Error())
				return
			}
			if reader == nil {
				return
			}
			path := reader.URI().Path()
			reader.Close()
			callback(path)
		}, mv.window)
		fd.SetConfirmText("Select")
		setDialogLocation(fd, startPath)
		fd.Resize(dialogSize(mv.window))
		fd.Show()
	})
}

// ShowSaveDialog asks for a destination. The writer is nil on cancel.
func (mv *MainView) ShowSaveDialog(startPath, fileName string, callback func(fyne.URIWriteCloser, error)) {
	fyne.Do(func() {
		fd := dialog.NewFileSave(callback, mv.window)
		fd.SetFileName(fileName)
		setDialogLocation(fd, startPath)
		fd.Resize(dialogSize(mv.window))
		fd.Show()
	})
}

type locatable interface {
	SetLocation(fyne.ListableURI)
}

// setDialogLocation opens the dialog in the directory of startPath when it
// is listable.
func setDialogLocation(fd locatable, startPath string) {
	if startPath == "" {
		return
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(filepath.Dir(startPath)))
	if err != nil {
		return
	}
	fd.SetLocation(lister)
}

func dialogSize(w fyne.Window) fyne.Size {
	size := w.Canvas().Size()
	return fyne.NewSize(size.Width*0.9, size.Height*0.9)
}

func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

func (mv *MainView) GetToolbar() *components.Toolbar {
	return mv.toolbar
}

func (mv *MainView) GetFilePanel() *components.FilePanel {
	return mv.filePanel
}

// Show displays the view
func (mv *MainView) Show() {
	fyne.Do(func() {
		mv.window.Show()
	})
}

// ViewState is a snapshot of what the user currently sees
type ViewState struct {
	FilePath        string
	OutputText      string
	OutputTruncated bool
	StatusMessage   string
	ConvertEnabled  bool
	OutputEnabled   bool
}

// GetViewState returns the current view state
func (mv *MainView) GetViewState() ViewState {
	return ViewState{
		FilePath:        mv.filePanel.GetPath(),
		OutputText:      mv.output.GetText(),
		OutputTruncated: mv.output.Truncated(),
		StatusMessage:   mv.statusBar.GetStatus(),
		ConvertEnabled:  mv.toolbar.ConvertEnabled(),
		OutputEnabled:   mv.toolbar.OutputActionsEnabled(),
	}
}
