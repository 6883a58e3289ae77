package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the last action and where the catalog came from
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	catalogInfo *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.catalogInfo = widget.NewLabel("No elements loaded")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.catalogInfo,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetCatalogInfo shows how many elements were loaded and from where
func (sb *StatusBar) SetCatalogInfo(count int, source string) {
	sb.catalogInfo.SetText(fmt.Sprintf("%d elements from %s", count, source))
}

// GetCatalogInfo returns the catalog description
func (sb *StatusBar) GetCatalogInfo() string {
	return sb.catalogInfo.Text
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
