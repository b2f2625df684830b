package controllers

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"

	"base64-converter/internal/clipboard"
	"base64-converter/internal/logger"
	"base64-converter/internal/models"
	"base64-converter/internal/services"
	"base64-converter/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
)

const component = "MainController"

// Event names emitted after each completed user action.
const (
	EventFileSelected  = "file_selected"
	EventFileConverted = "file_converted"
	EventTextCopied    = "text_copied"
	EventTextSaved     = "text_saved"
)

// MainController wires the converter window to the converter service.
type MainController struct {
	converter *services.ConverterService
	repo      *models.DocumentRepository
	clipboard clipboard.Writer
	logger    logger.Logger

	mainView      *views.MainView
	saveExtension string

	ctx        context.Context
	cancel     context.CancelFunc
	converting atomic.Bool
	inflight   sync.WaitGroup

	statusMu       sync.Mutex
	convertedState string

	eventHandlers map[string][]EventHandler
	eventMu       sync.RWMutex
}

// EventHandler represents a function that handles application events
type EventHandler func(data interface{}) error

func NewMainController(
	converter *services.ConverterService,
	repo *models.DocumentRepository,
	clip clipboard.Writer,
	log logger.Logger,
	saveExtension string,
) *MainController {
	ctx, cancel := context.WithCancel(context.Background())
	controller := &MainController{
		converter:     converter,
		repo:          repo,
		clipboard:     clip,
		logger:        log,
		saveExtension: saveExtension,
		ctx:           ctx,
		cancel:        cancel,
		eventHandlers: make(map[string][]EventHandler),
	}

	controller.initializeEventHandlers()
	return controller
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view
	mc.setupViewEventHandlers()
}

func (mc *MainController) setupViewEventHandlers() {
	mc.mainView.SetBrowseHandler(mc.Browse)
	mc.mainView.SetConvertHandler(mc.Convert)
	mc.mainView.SetCopyHandler(mc.Copy)
	mc.mainView.SetCopyDataURIHandler(mc.CopyDataURI)
	mc.mainView.SetSaveHandler(mc.Save)
}

// Browse opens the file picker starting at the current selection.
func (mc *MainController) Browse() {
	mc.mainView.ShowOpenDialog(mc.repo.SelectedPath(), mc.SelectFile)
}

// SelectFile records path as the conversion source and enables Convert.
func (mc *MainController) SelectFile(path string) {
	if path == "" {
		return
	}
	mc.repo.SelectPath(path)

	mc.mainView.SetSelectedPath(path)
	mc.mainView.EnableConvert(true)
	mc.mainView.UpdateStatus(fmt.Sprintf("Ready: %s", filepath.Base(path)))

	mc.emitEvent(EventFileSelected, path)
}

// Convert encodes the selected file in the background. Calls made while a
// conversion is running are ignored.
func (mc *MainController) Convert() {
	if mc.repo.SelectedPath() == "" {
		return
	}
	if !mc.converting.CompareAndSwap(false, true) {
		return
	}

	mc.mainView.EnableConvert(false)
	mc.mainView.UpdateStatus(fmt.Sprintf("Converting %s...", mc.repo.SelectedName()))

	mc.inflight.Add(1)
	go mc.performConversion()
}

func (mc *MainController) performConversion() {
	defer mc.inflight.Done()
	defer mc.converting.Store(false)
	defer mc.mainView.EnableConvert(true)

	doc, err := mc.converter.Convert(mc.ctx)
	if err != nil {
		mc.logger.Error(component, err, map[string]interface{}{
			"path": mc.repo.SelectedPath(),
		})
		mc.restoreStatus()
		mc.handleError("Conversion Error", "Failed to read file:\n"+err.Error())
		return
	}

	status := doc.Summary()
	if mc.mainView.ShowEncodedText(doc.Text) {
		status += " (preview truncated)"
	}
	mc.mainView.EnableOutputActions(true)
	mc.mainView.UpdateStatus(status)

	mc.statusMu.Lock()
	mc.convertedState = status
	mc.statusMu.Unlock()

	mc.emitEvent(EventFileConverted, doc)
}

// restoreStatus puts back the message describing the current state after a
// failed conversion.
func (mc *MainController) restoreStatus() {
	mc.statusMu.Lock()
	status := mc.convertedState
	mc.statusMu.Unlock()

	if status != "" && mc.repo.Document() != nil {
		mc.mainView.UpdateStatus(status)
		return
	}
	mc.mainView.UpdateStatus(fmt.Sprintf("Ready: %s", mc.repo.SelectedName()))
}

// Copy puts the full encoded text on the clipboard. No-op when empty.
func (mc *MainController) Copy() {
	text := mc.repo.Text()
	if text == "" {
		return
	}
	if err := mc.clipboard.WriteText(text); err != nil {
		mc.logger.Error(component, err, nil)
		mc.handleError("Clipboard Error", "Could not copy to clipboard:\n"+err.Error())
		return
	}
	mc.mainView.UpdateStatus("Copied to clipboard!")
	mc.emitEvent(EventTextCopied, len(text))
}

// CopyDataURI copies the encoding wrapped as a data: URI.
func (mc *MainController) CopyDataURI() {
	uri, err := mc.converter.DataURI()
	if err != nil {
		// Only ErrNothingToSave: there is no text yet.
		return
	}
	if err := mc.clipboard.WriteText(uri); err != nil {
		mc.logger.Error(component, err, nil)
		mc.handleError("Clipboard Error", "Could not copy to clipboard:\n"+err.Error())
		return
	}
	mc.mainView.UpdateStatus("Copied data URI to clipboard!")
	mc.emitEvent(EventTextCopied, len(uri))
}

// Save asks for a destination and writes the encoded text there.
func (mc *MainController) Save() {
	doc := mc.repo.Document()
	if doc == nil || doc.Text == "" {
		return
	}
	mc.mainView.ShowSaveDialog(
		doc.SourcePath,
		mc.converter.SuggestedSaveName(mc.saveExtension),
		mc.handleSaveDialog,
	)
}

func (mc *MainController) handleSaveDialog(writer fyne.URIWriteCloser, err error) {
	if err != nil {
		mc.handleError("Save Error", "Could not save file:\n"+err.Error())
		return
	}
	if writer == nil {
		return
	}
	mc.SaveTo(writer)
}

// SaveTo writes the encoded text to writer and closes it.
func (mc *MainController) SaveTo(writer fyne.URIWriteCloser) {
	name := writer.URI().Name()

	err := mc.converter.Save(mc.ctx, writer)
	if closeErr := writer.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close %s: %w", name, closeErr)
	}
	if err != nil {
		// The dialog has already created the file; do not leave a partial one.
		mc.discardDestination(writer.URI())
	}
	if errors.Is(err, services.ErrNothingToSave) {
		return
	}
	if err != nil {
		mc.logger.Error(component, err, map[string]interface{}{
			"destination": writer.URI().String(),
		})
		mc.handleError("Save Error", "Could not save file:\n"+err.Error())
		return
	}

	mc.mainView.UpdateStatus(fmt.Sprintf("Saved: %s", name))
	mc.emitEvent(EventTextSaved, writer.URI().String())
}

func (mc *MainController) discardDestination(uri fyne.URI) {
	if err := storage.Delete(uri); err != nil {
		mc.logger.Warning(component, "could not remove incomplete output", map[string]interface{}{
			"destination": uri.String(),
			"error":       err.Error(),
		})
	}
}

// addEventListener adds an event handler for a specific event type
func (mc *MainController) addEventListener(eventType string, handler EventHandler) {
	mc.eventMu.Lock()
	defer mc.eventMu.Unlock()
	mc.eventHandlers[eventType] = append(mc.eventHandlers[eventType], handler)
}

// AddEventListener registers an observer for one of the Event* names.
func (mc *MainController) AddEventListener(eventType string, handler EventHandler) {
	mc.addEventListener(eventType, handler)
}

// emitEvent runs the handlers for eventType in order on the caller's goroutine.
func (mc *MainController) emitEvent(eventType string, data interface{}) {
	mc.eventMu.RLock()
	handlers := mc.eventHandlers[eventType]
	mc.eventMu.RUnlock()

	for _, h := range handlers {
		if err := h(data); err != nil {
			mc.logger.Warning(component, "event handler failed", map[string]interface{}{
				"event": eventType,
				"error": err.Error(),
			})
		}
	}
}

func (mc *MainController) initializeEventHandlers() {
	mc.addEventListener(EventFileSelected, mc.onFileSelected)
	mc.addEventListener(EventFileConverted, mc.onFileConverted)
}

func (mc *MainController) onFileSelected(data interface{}) error {
	path, ok := data.(string)
	if !ok {
		return fmt.Errorf("invalid data type for %s event", EventFileSelected)
	}
	mc.logger.Debug(component, "file selected", map[string]interface{}{"path": path})
	return nil
}

func (mc *MainController) onFileConverted(data interface{}) error {
	doc, ok := data.(*models.EncodedDocument)
	if !ok {
		return fmt.Errorf("invalid data type for %s event", EventFileConverted)
	}
	mc.logger.Debug(component, "conversion displayed", map[string]interface{}{
		"source": doc.SourceName,
		"chars":  len(doc.Text),
	})
	return nil
}

// handleError surfaces a failure to the user
func (mc *MainController) handleError(title, message string) {
	mc.mainView.ShowError(title, message)
}

// Wait blocks until any background conversion has finished.
func (mc *MainController) Wait() {
	mc.inflight.Wait()
}

// Shutdown cancels in-flight work and waits for it to stop.
func (mc *MainController) Shutdown() {
	mc.cancel()
	mc.Wait()
}
