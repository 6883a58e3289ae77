package controllers

import (
	"fmt"
	"io"

	"periodic-tutor/internal/errors"
	"periodic-tutor/internal/export"
	"periodic-tutor/internal/logger"
	"periodic-tutor/internal/models"
	"periodic-tutor/internal/services"
)

// Messages shown to the user
const (
	ErrorTitle         = "Error"
	ExportFailedTitle  = "Export Failed"
	MissingInputNotice = "Please enter a symbol to search."
)

// View is the part of the main view the controller drives
type View interface {
	SetElementHandler(handler func(symbol string))
	SetSearchHandler(handler func(query string))
	SetExportHandler(handler func(w io.WriteCloser))
	SetDetails(text string)
	SetStatus(status string)
	SetCatalogInfo(count int, source string)
	ShowError(title string, err error)
}

// MainController routes grid clicks, searches and exports to the services
// and reports the outcome back to the view
type MainController struct {
	lookup *services.LookupService
	logger logger.Logger
	source string

	mainView View
}

// NewMainController creates a controller over the lookup service. source
// names where the catalog came from and is shown in the status bar.
func NewMainController(lookup *services.LookupService, log logger.Logger, source string) *MainController {
	return &MainController{
		lookup: lookup,
		logger: log,
		source: source,
	}
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view View) {
	mc.mainView = view
	mc.setupViewEventHandlers()
	view.SetCatalogInfo(mc.lookup.Catalog().Len(), mc.source)
}

func (mc *MainController) setupViewEventHandlers() {
	mc.mainView.SetElementHandler(mc.ShowElement)
	mc.mainView.SetSearchHandler(mc.Search)
	mc.mainView.SetExportHandler(mc.ExportTable)
}

// ShowElement handles a click on a grid symbol
func (mc *MainController) ShowElement(symbol string) {
	record, err := mc.lookup.FindBySymbol(symbol)
	mc.present("grid", record, err)
}

// Search handles a submitted search query
func (mc *MainController) Search(query string) {
	record, err := mc.lookup.Search(query)
	mc.present("search", record, err)
}

func (mc *MainController) present(source string, record models.Record, err error) {
	if err != nil {
		mc.handleError(ErrorTitle, err)
		return
	}

	mc.logger.Info("controller", "element shown", map[string]interface{}{
		"symbol": record.Symbol,
		"source": source,
	})
	if mc.mainView != nil {
		mc.mainView.SetDetails(record.Details())
		mc.mainView.SetStatus(fmt.Sprintf("Showing %s", record.DisplayName()))
	}
}

// ExportTable writes the catalog spreadsheet to w and closes it
func (mc *MainController) ExportTable(w io.WriteCloser) {
	records := mc.lookup.Catalog().Records()
	err := export.Write(w, records)
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		mc.handleError(ExportFailedTitle, err)
		return
	}

	mc.logger.Info("controller", "catalog exported", map[string]interface{}{"records": len(records)})
	if mc.mainView != nil {
		mc.mainView.SetStatus(fmt.Sprintf("Exported %d elements", len(records)))
	}
}

// handleError reports a failed interaction under title. The view state is
// left as it was. Invalid errors are expected outcomes of user input; anything
// else is logged as a failure.
func (mc *MainController) handleError(title string, err error) {
	notice := err
	switch errors.Classify(err) {
	case errors.ErrorInvalid:
		if errors.Is(err, errors.ErrMissingInput) {
			notice = errors.New(MissingInputNotice)
			mc.logger.Debug("controller", "empty search rejected", nil)
		} else {
			mc.logger.Info("controller", "lookup miss", map[string]interface{}{"notice": err.Error()})
		}
	default:
		mc.logger.Error("controller", err, map[string]interface{}{"title": title})
	}

	if mc.mainView != nil {
		mc.mainView.ShowError(title, notice)
	}
}
