package controllers

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"periodic-tutor/internal/errors"
	"periodic-tutor/internal/logger"
	"periodic-tutor/internal/models"
	"periodic-tutor/internal/services"
)

type shownError struct {
	title string
	err   error
}

type fakeView struct {
	onElement func(string)
	onSearch  func(string)
	onExport  func(io.WriteCloser)

	details     string
	statuses    []string
	errors      []shownError
	catalogSize int
	source      string
}

func (v *fakeView) SetElementHandler(h func(string))       { v.onElement = h }
func (v *fakeView) SetSearchHandler(h func(string))        { v.onSearch = h }
func (v *fakeView) SetExportHandler(h func(io.WriteCloser)) { v.onExport = h }
func (v *fakeView) SetDetails(text string)                 { v.details = text }
func (v *fakeView) SetStatus(status string)                { v.statuses = append(v.statuses, status) }
func (v *fakeView) SetCatalogInfo(count int, source string) {
	v.catalogSize = count
	v.source = source
}
func (v *fakeView) ShowError(title string, err error) {
	v.errors = append(v.errors, shownError{title: title, err: err})
}

type bufferCloser struct {
	bytes.Buffer
	closed bool
}

func (b *bufferCloser) Close() error {
	b.closed = true
	return nil
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }
func (failingWriter) Close() error              { return nil }

func newTestController(t *testing.T) (*MainController, *fakeView) {
	t.Helper()
	catalog := models.NewCatalog([]models.Record{
		{
			Symbol:       "H",
			Name:         models.Text("Hydrogen"),
			AtomicNumber: models.Int(1),
			Group:        models.Int(1),
			Reactivity:   models.Text("high"),
		},
		{Symbol: "He", AtomicNumber: models.Int(2), Group: models.Int(18), Reactivity: models.Text("inert")},
	})
	lookup := services.NewLookupService(catalog, logger.NewNop())
	mc := NewMainController(lookup, logger.NewNop(), "embedded")

	view := &fakeView{}
	mc.SetMainView(view)
	return mc, view
}

func TestSetMainViewWiresHandlers(t *testing.T) {
	_, view := newTestController(t)

	require.NotNil(t, view.onElement)
	require.NotNil(t, view.onSearch)
	require.NotNil(t, view.onExport)
	assert.Equal(t, 2, view.catalogSize)
	assert.Equal(t, "embedded", view.source)
}

func TestGridClickShowsDetails(t *testing.T) {
	_, view := newTestController(t)

	view.onElement("H")

	assert.Equal(t, "Element: Hydrogen\nSymbol: H\nAtomic Number: 1\nGroup: 1\nReactivity: high", view.details)
	assert.Equal(t, []string{"Showing Hydrogen"}, view.statuses)
	assert.Empty(t, view.errors)
}

func TestGridClickRendersUnknownName(t *testing.T) {
	_, view := newTestController(t)

	view.onElement("He")

	assert.Equal(t, "Element: Unknown\nSymbol: He\nAtomic Number: 2\nGroup: 18\nReactivity: inert", view.details)
}

func TestSearchTrimsAndShows(t *testing.T) {
	_, view := newTestController(t)

	view.onSearch("  He  ")

	assert.Contains(t, view.details, "Symbol: He")
	assert.Empty(t, view.errors)
}

func TestSearchMissReportsSymbol(t *testing.T) {
	_, view := newTestController(t)
	view.onElement("H")
	before := view.details

	view.onSearch("Xx")

	require.Len(t, view.errors, 1)
	assert.Equal(t, ErrorTitle, view.errors[0].title)
	assert.Equal(t, "No data found for element with symbol 'Xx'.", view.errors[0].err.Error())
	assert.Equal(t, before, view.details, "a miss leaves the display unchanged")
}

func TestGridClickMissReportsSymbol(t *testing.T) {
	_, view := newTestController(t)

	view.onElement("Og")

	require.Len(t, view.errors, 1)
	assert.Contains(t, view.errors[0].err.Error(), "'Og'")
	assert.Empty(t, view.details)
}

func TestEmptySearchAsksForSymbol(t *testing.T) {
	_, view := newTestController(t)

	for _, query := range []string{"", "   "} {
		view.onSearch(query)
	}

	require.Len(t, view.errors, 2)
	for _, shown := range view.errors {
		assert.Equal(t, ErrorTitle, shown.title)
		assert.Equal(t, MissingInputNotice, shown.err.Error())
	}
	assert.Empty(t, view.details)
}

func TestExportTable(t *testing.T) {
	_, view := newTestController(t)

	out := &bufferCloser{}
	view.onExport(out)

	assert.True(t, out.closed)
	assert.Empty(t, view.errors)
	assert.Equal(t, []string{"Exported 2 elements"}, view.statuses)

	f, err := excelize.OpenReader(&out.Buffer)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Elements")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestExportTableFailure(t *testing.T) {
	_, view := newTestController(t)

	view.onExport(failingWriter{})

	require.Len(t, view.errors, 1)
	assert.Equal(t, ExportFailedTitle, view.errors[0].title)
	assert.Contains(t, view.errors[0].err.Error(), "disk full")
	assert.Empty(t, view.statuses)
}

func TestOnlyUnexpectedErrorsAreLoggedAsFailures(t *testing.T) {
	var buf bytes.Buffer
	catalog := models.NewCatalog([]models.Record{{Symbol: "H"}})
	mc := NewMainController(services.NewLookupService(catalog, logger.NewNop()),
		logger.New(logger.DebugLevel, "json", &buf), "embedded")
	view := &fakeView{}
	mc.SetMainView(view)

	view.onSearch("Xx")
	view.onSearch(" ")
	assert.NotContains(t, buf.String(), `"level":"error"`)

	view.onExport(failingWriter{})
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), `"title":"Export Failed"`)
	require.Len(t, view.errors, 3)
}

func TestControllerWithoutViewDoesNotPanic(t *testing.T) {
	lookup := services.NewLookupService(models.NewCatalog(nil), logger.NewNop())
	mc := NewMainController(lookup, logger.NewNop(), "embedded")

	assert.NotPanics(t, func() {
		mc.ShowElement("H")
		mc.Search("")
	})
}
