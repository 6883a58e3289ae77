package views

import (
	"errors"
	"io"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"periodic-tutor/internal/views/components"
)

func newTestView(t *testing.T) *MainView {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	return NewMainView(test.NewWindow(nil), "Periodic Table Tutor")
}

func TestMainViewForwardsGridTaps(t *testing.T) {
	mv := newTestView(t)

	var symbols []string
	mv.SetElementHandler(func(s string) { symbols = append(symbols, s) })

	test.Tap(mv.grid.Button("O"))
	assert.Equal(t, []string{"O"}, symbols)
}

func TestMainViewForwardsSearch(t *testing.T) {
	mv := newTestView(t)

	var queries []string
	mv.SetSearchHandler(func(q string) { queries = append(queries, q) })

	mv.searchBar.Entry().SetText("Fe")
	test.Tap(mv.searchBar.Button())
	assert.Equal(t, []string{"Fe"}, queries)
}

func TestMainViewEventsBeforeHandlersAreIgnored(t *testing.T) {
	mv := newTestView(t)

	assert.NotPanics(t, func() {
		test.Tap(mv.grid.Button("H"))
		test.Tap(mv.searchBar.Button())
	})
}

func TestMainViewUpdatesPanels(t *testing.T) {
	mv := newTestView(t)
	assert.Equal(t, components.InfoPrompt, mv.infoPanel.Text())

	mv.SetDetails("Element: Helium")
	mv.SetStatus("Showing Helium")
	mv.SetCatalogInfo(2, "elements.ttl")

	assert.Equal(t, "Element: Helium", mv.infoPanel.Text())
	assert.Equal(t, "Showing Helium", mv.statusBar.GetStatus())
	assert.Equal(t, "2 elements from elements.ttl", mv.statusBar.GetCatalogInfo())
}

func TestMainViewSetsWindowContent(t *testing.T) {
	mv := newTestView(t)
	require.NotNil(t, mv.GetWindow().Content())

	var exported io.WriteCloser
	mv.SetExportHandler(func(w io.WriteCloser) { exported = w })
	assert.NotNil(t, mv.exportHandler)
	assert.Nil(t, exported)
}

// labels collects the text of every label under o
func labels(o fyne.CanvasObject) []string {
	var out []string
	switch obj := o.(type) {
	case *widget.Label:
		out = append(out, obj.Text)
	case *fyne.Container:
		for _, child := range obj.Objects {
			out = append(out, labels(child)...)
		}
	case fyne.Widget:
		for _, child := range test.WidgetRenderer(obj).Objects() {
			out = append(out, labels(child)...)
		}
	}
	return out
}

func TestShowErrorUsesTitle(t *testing.T) {
	mv := newTestView(t)

	mv.ShowError("Export Failed", errors.New("disk full"))

	top := mv.GetWindow().Canvas().Overlays().Top()
	require.NotNil(t, top)
	shown := labels(top)
	assert.Contains(t, shown, "Export Failed")
	assert.Contains(t, shown, "disk full")
}
