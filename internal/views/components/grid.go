package components

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"periodic-tutor/internal/models"
)

// CellSize is the size of one grid button
var CellSize = fyne.NewSize(52, 40)

// PeriodicGrid lays the element buttons out in periodic-table positions.
// Every button reports its own symbol; the grid does not know which symbols
// the ontology actually contains.
type PeriodicGrid struct {
	container *fyne.Container
	buttons   map[string]*widget.Button

	elementHandler func(symbol string)
}

// NewPeriodicGrid creates the grid from the given cells
func NewPeriodicGrid(cells []models.Cell) *PeriodicGrid {
	g := &PeriodicGrid{buttons: make(map[string]*widget.Button, len(cells))}
	g.build(cells)
	return g
}

func (g *PeriodicGrid) build(cells []models.Cell) {
	rows := 0
	for _, c := range cells {
		if c.Row+1 > rows {
			rows = c.Row + 1
		}
	}

	slots := make([]fyne.CanvasObject, rows*models.GridColumns)
	for i := range slots {
		slots[i] = layout.NewSpacer()
	}

	for _, c := range cells {
		symbol := c.Symbol
		button := widget.NewButton(symbol, func() { g.selectElement(symbol) })
		button.Importance = widget.LowImportance
		g.buttons[symbol] = button

		background := canvas.NewRectangle(ParseHexColor(c.Category.Color()))
		background.CornerRadius = 4
		slots[c.Row*models.GridColumns+c.Column] = container.NewStack(background, button)
	}

	g.container = container.New(newFixedColumns(models.GridColumns, CellSize), slots...)
}

func (g *PeriodicGrid) selectElement(symbol string) {
	if g.elementHandler != nil {
		g.elementHandler(symbol)
	}
}

// SetElementHandler sets the handler for button taps
func (g *PeriodicGrid) SetElementHandler(handler func(symbol string)) {
	g.elementHandler = handler
}

// Button returns the button for symbol, or nil when the grid has none
func (g *PeriodicGrid) Button(symbol string) *widget.Button {
	return g.buttons[symbol]
}

// Len returns the number of element buttons
func (g *PeriodicGrid) Len() int {
	return len(g.buttons)
}

// GetContainer returns the grid container
func (g *PeriodicGrid) GetContainer() *fyne.Container {
	return g.container
}

// ParseHexColor reads #rrggbb; malformed input yields opaque grey
func ParseHexColor(hex string) color.NRGBA {
	c := color.NRGBA{A: 0xff}
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return color.NRGBA{R: 0xcf, G: 0xd8, B: 0xdc, A: 0xff}
	}
	return c
}

// fixedColumns places objects in a grid of a fixed column count with fixed
// cell sizes, so empty slots keep their width
type fixedColumns struct {
	columns int
	cell    fyne.Size
	pad     float32
}

func newFixedColumns(columns int, cell fyne.Size) fyne.Layout {
	return &fixedColumns{columns: columns, cell: cell, pad: 4}
}

func (f *fixedColumns) Layout(objects []fyne.CanvasObject, _ fyne.Size) {
	for i, o := range objects {
		row, col := i/f.columns, i%f.columns
		o.Move(fyne.NewPos(float32(col)*(f.cell.Width+f.pad), float32(row)*(f.cell.Height+f.pad)))
		o.Resize(f.cell)
	}
}

func (f *fixedColumns) MinSize(objects []fyne.CanvasObject) fyne.Size {
	rows := (len(objects) + f.columns - 1) / f.columns
	return fyne.NewSize(
		float32(f.columns)*(f.cell.Width+f.pad)-f.pad,
		float32(rows)*(f.cell.Height+f.pad)-f.pad,
	)
}
