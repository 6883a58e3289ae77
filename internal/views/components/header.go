package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// HeaderBackground is the title strip colour
var HeaderBackground = color.NRGBA{R: 0x3c, G: 0x3f, B: 0x41, A: 0xff}

// NewHeader builds the title strip shown above the search bar
func NewHeader(title string) *fyne.Container {
	text := canvas.NewText(title, color.White)
	text.TextSize = 24
	text.TextStyle = fyne.TextStyle{Bold: true}
	text.Alignment = fyne.TextAlignCenter

	background := canvas.NewRectangle(HeaderBackground)
	return container.NewStack(background, container.NewPadded(text))
}
