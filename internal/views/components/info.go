package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// InfoPrompt is shown before any element has been selected
const InfoPrompt = "Click on an element to see details."

// InfoPanel is the single region element details are rendered into
type InfoPanel struct {
	container *fyne.Container
	label     *widget.Label
}

// NewInfoPanel creates a new info panel component
func NewInfoPanel() *InfoPanel {
	label := widget.NewLabel(InfoPrompt)
	label.Wrapping = fyne.TextWrapWord
	label.TextStyle = fyne.TextStyle{Monospace: true}

	return &InfoPanel{
		label:     label,
		container: container.NewPadded(widget.NewCard("", "", label)),
	}
}

// SetText replaces the displayed details
func (ip *InfoPanel) SetText(text string) {
	ip.label.SetText(text)
}

// Text returns the displayed details
func (ip *InfoPanel) Text() string {
	return ip.label.Text
}

// Reset restores the initial prompt
func (ip *InfoPanel) Reset() {
	ip.label.SetText(InfoPrompt)
}

// GetContainer returns the info panel container
func (ip *InfoPanel) GetContainer() *fyne.Container {
	return ip.container
}
