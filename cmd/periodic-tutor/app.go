package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"periodic-tutor/internal/controllers"
	"periodic-tutor/internal/logger"
	"periodic-tutor/internal/shutdown"
	"periodic-tutor/internal/views"
)

// Application wires the Fyne app to the tutor's MVC components
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	source  string

	controller *controllers.MainController
	view       *views.MainView

	shutdown *shutdown.Manager
}

// NewApplication creates the window and its components over a bootstrapped session
func NewApplication(s *session) *Application {
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(s.cfg.Window.Title)
	window.Resize(fyne.NewSize(s.cfg.Window.Width, s.cfg.Window.Height))
	window.CenterOnScreen()

	mainView := views.NewMainView(window, s.cfg.Window.Title)
	mainController := controllers.NewMainController(s.lookup, s.log, s.source)
	mainController.SetMainView(mainView)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     s.log,
		source:     s.source,
		controller: mainController,
		view:       mainView,
		shutdown:   shutdown.NewManager(s.log),
	}

	application.setupMenus()
	application.setupWindowEvents()
	application.shutdown.Register("fyne", shutdown.Func(func() {
		fyne.Do(fyneApp.Quit)
	}))

	s.log.Info("main", "application initialized", map[string]interface{}{
		"window_size": fmt.Sprintf("%.0fx%.0f", s.cfg.Window.Width, s.cfg.Window.Height),
		"elements":    s.lookup.Catalog().Len(),
	})

	return application
}

// Run shows the window and blocks until the app quits
func (a *Application) Run() error {
	a.shutdown.Listen()
	a.view.Show()
	a.fyneApp.Run()

	// no-op when a signal or the close dialog already ran it
	a.shutdown.Shutdown()
	a.logger.Info("main", "application terminated", nil)
	return nil
}

func (a *Application) setupMenus() {
	exportItem := fyne.NewMenuItem("Export Table...", a.view.RequestExport)
	quitItem := fyne.NewMenuItem("Quit", a.requestQuit)
	quitItem.IsQuit = true
	fileMenu := fyne.NewMenu("File", exportItem, fyne.NewMenuItemSeparator(), quitItem)

	aboutItem := fyne.NewMenuItem("About", func() {
		a.view.ShowAboutDialog(AppName, AppVersion, a.source)
	})
	helpMenu := fyne.NewMenu("Help", aboutItem)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(a.requestQuit)
}

func (a *Application) requestQuit() {
	a.logger.Debug("main", "quit requested", nil)
	a.view.ShowConfirm("Exit Application", "Are you sure you want to exit?", func(confirmed bool) {
		if confirmed {
			go a.shutdown.Shutdown()
		}
	})
}
