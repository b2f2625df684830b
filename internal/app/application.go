package app

import (
	"fmt"
	"runtime"
	"time"

	"base64-converter/internal/clipboard"
	"base64-converter/internal/config"
	"base64-converter/internal/controllers"
	"base64-converter/internal/logger"
	"base64-converter/internal/models"
	"base64-converter/internal/services"
	"base64-converter/internal/shutdown"
	"base64-converter/internal/views"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/afero"
)

const (
	AppName = "Base64 File Converter"
	AppID   = "io.github.base64converter"

	component       = "Application"
	shutdownTimeout = 5 * time.Second
)

// Version is overridden at build time via ldflags.
var Version = "dev"

// Application owns the window and the MVC components behind it.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller *controllers.MainController
	view       *views.MainView
	repo       *models.DocumentRepository
	shutdown   *shutdown.Manager
}

// New creates the production fyne app and wires the window into it.
func New(cfg *config.Config, log logger.Logger) (*Application, error) {
	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: Version,
	})
	fyneApp := fyneapp.NewWithID(AppID)
	return NewWithApp(fyneApp, afero.NewOsFs(), cfg, log)
}

// NewWithApp wires the application onto an existing fyne app and filesystem.
func NewWithApp(fyneApp fyne.App, fs afero.Fs, cfg *config.Config, log logger.Logger) (*Application, error) {
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	clip, err := clipboard.New(cfg.Clipboard.Backend, fyneApp)
	if err != nil {
		return nil, fmt.Errorf("clipboard: %w", err)
	}

	repo := models.NewDocumentRepository()
	converter := services.NewConverterService(fs, repo, log, services.ConvertOptions{
		MaxSize: cfg.Convert.MaxSize,
		Timeout: cfg.Convert.Timeout,
	})

	view := views.NewMainView(window, cfg.Display.MaxChars)
	controller := controllers.NewMainController(converter, repo, clip, log, cfg.Save.Extension)
	controller.SetMainView(view)

	shutdownManager := shutdown.NewManager(log, shutdownTimeout)
	shutdownManager.Register(repo)
	shutdownManager.Register(controller)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		controller: controller,
		view:       view,
		repo:       repo,
		shutdown:   shutdownManager,
	}
	application.setupWindowEvents()

	log.Info(component, "application initialized", map[string]interface{}{
		"version":     Version,
		"window_size": fmt.Sprintf("%.0fx%.0f", cfg.Window.Width, cfg.Window.Height),
		"clipboard":   cfg.Clipboard.Backend,
		"go_version":  runtime.Version(),
	})

	return application, nil
}

func (a *Application) setupWindowEvents() {
	a.window.SetOnClosed(func() {
		a.logger.Info(component, "window closed", nil)
		a.shutdown.Shutdown()
	})
}

// Preselect behaves as if the user had browsed to path.
func (a *Application) Preselect(path string) {
	if path == "" {
		return
	}
	a.controller.SelectFile(path)
}

// Run shows the window and blocks until the application quits.
func (a *Application) Run() error {
	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.logger.Info(component, "starting user interface", nil)
	a.window.ShowAndRun()

	a.shutdown.Shutdown()
	a.logger.Info(component, "application terminated", nil)
	return nil
}

// Shutdown stops background work and drops the in-memory document.
func (a *Application) Shutdown() {
	a.shutdown.Shutdown()
}

func (a *Application) View() *views.MainView {
	return a.view
}

func (a *Application) Controller() *controllers.MainController {
	return a.controller
}
