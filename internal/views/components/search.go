package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SearchBar is the "Search by Symbol" entry with its button. Pressing Enter in
// the entry and tapping the button submit the same text.
type SearchBar struct {
	container *fyne.Container
	entry     *widget.Entry
	button    *widget.Button

	searchHandler func(query string)
}

// NewSearchBar creates a new search bar component
func NewSearchBar() *SearchBar {
	sb := &SearchBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *SearchBar) createComponents() {
	sb.entry = widget.NewEntry()
	sb.entry.SetPlaceHolder("e.g. He")
	sb.entry.OnSubmitted = func(text string) { sb.submit(text) }

	sb.button = widget.NewButton("Search", func() { sb.submit(sb.entry.Text) })
	sb.button.Importance = widget.HighImportance
}

func (sb *SearchBar) buildLayout() {
	entry := container.NewGridWrap(fyne.NewSize(140, sb.entry.MinSize().Height), sb.entry)
	sb.container = container.NewCenter(container.NewHBox(
		widget.NewLabel("Search by Symbol:"),
		entry,
		sb.button,
	))
}

func (sb *SearchBar) submit(text string) {
	if sb.searchHandler != nil {
		sb.searchHandler(text)
	}
}

// SetSearchHandler sets the handler for submitted queries
func (sb *SearchBar) SetSearchHandler(handler func(query string)) {
	sb.searchHandler = handler
}

// Entry returns the text entry
func (sb *SearchBar) Entry() *widget.Entry {
	return sb.entry
}

// Button returns the search button
func (sb *SearchBar) Button() *widget.Button {
	return sb.button
}

// GetContainer returns the search bar container
func (sb *SearchBar) GetContainer() *fyne.Container {
	return sb.container
}
