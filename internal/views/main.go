package views

import (
	"fmt"
	"io"

	"periodic-tutor/internal/models"
	"periodic-tutor/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// MainView is the tutor's single window: title, search bar, periodic grid,
// details panel and status bar
type MainView struct {
	window        fyne.Window
	title         string
	mainContainer *fyne.Container
	searchBar     *components.SearchBar
	grid          *components.PeriodicGrid
	infoPanel     *components.InfoPanel
	statusBar     *components.StatusBar

	// Event handlers - connected to controller
	elementHandler func(string)
	searchHandler  func(string)
	exportHandler  func(io.WriteCloser)
}

// NewMainView creates the main view and sets it as the window content
func NewMainView(window fyne.Window, title string) *MainView {
	view := &MainView{
		window: window,
		title:  title,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.searchBar = components.NewSearchBar()
	mv.grid = components.NewPeriodicGrid(models.PeriodicLayout())
	mv.infoPanel = components.NewInfoPanel()
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	topArea := container.NewVBox(
		components.NewHeader(mv.title),
		mv.searchBar.GetContainer(),
	)

	contentArea := container.NewVBox(
		container.NewCenter(mv.grid.GetContainer()),
		mv.infoPanel.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		topArea,
		mv.statusBar.GetContainer(),
		nil,
		nil,
		container.NewScroll(contentArea),
	)

	mv.window.SetContent(mv.mainContainer)
	mv.window.Canvas().Focus(mv.searchBar.Entry())
}

// setupEventHandlers forwards component events to whatever the controller set
func (mv *MainView) setupEventHandlers() {
	mv.grid.SetElementHandler(func(symbol string) {
		if mv.elementHandler != nil {
			mv.elementHandler(symbol)
		}
	})

	mv.searchBar.SetSearchHandler(func(query string) {
		if mv.searchHandler != nil {
			mv.searchHandler(query)
		}
	})
}

// SetElementHandler sets the handler for grid clicks
func (mv *MainView) SetElementHandler(handler func(string)) {
	mv.elementHandler = handler
}

// SetSearchHandler sets the handler for search submissions
func (mv *MainView) SetSearchHandler(handler func(string)) {
	mv.searchHandler = handler
}

// SetExportHandler sets the handler receiving the chosen export destination
func (mv *MainView) SetExportHandler(handler func(io.WriteCloser)) {
	mv.exportHandler = handler
}

// SetDetails replaces the text of the details panel
func (mv *MainView) SetDetails(text string) {
	fyne.Do(func() {
		mv.infoPanel.SetText(text)
	})
}

// SetStatus updates the status bar message
func (mv *MainView) SetStatus(status string) {
	fyne.Do(func() {
		mv.statusBar.SetStatus(status)
	})
}

// SetCatalogInfo describes the loaded catalog in the status bar
func (mv *MainView) SetCatalogInfo(count int, source string) {
	fyne.Do(func() {
		mv.statusBar.SetCatalogInfo(count, source)
	})
}

// ShowError displays err in a dialog titled title
func (mv *MainView) ShowError(title string, err error) {
	fyne.Do(func() {
		message := widget.NewLabel(err.Error())
		message.Wrapping = fyne.TextWrapWord
		dialog.ShowCustom(title, "OK", message, mv.window)
	})
}

// ShowConfirm displays a confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	fyne.Do(func() {
		dialog.ShowConfirm(title, message, callback, mv.window)
	})
}

// RequestExport asks for a destination file and hands it to the export handler
func (mv *MainView) RequestExport() {
	fyne.Do(func() {
		save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil {
				dialog.ShowError(err, mv.window)
				return
			}
			if writer == nil || mv.exportHandler == nil {
				return
			}
			mv.exportHandler(writer)
		}, mv.window)
		save.SetFileName("periodic_table.xlsx")
		save.SetFilter(storage.NewExtensionFileFilter([]string{".xlsx"}))
		save.Show()
	})
}

// ShowAboutDialog displays application information
func (mv *MainView) ShowAboutDialog(appName, version, source string) {
	fyne.Do(func() {
		content := container.NewVBox(
			widget.NewLabel(appName),
			widget.NewLabel(fmt.Sprintf("Version: %s", version)),
			widget.NewLabel(""),
			widget.NewLabel("Click an element or search by symbol to see its details."),
			widget.NewLabel(fmt.Sprintf("Element data: %s", source)),
		)

		dialog.ShowCustom("About", "Close", content, mv.window)
	})
}

// Show displays the view
func (mv *MainView) Show() {
	mv.window.Show()
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}
