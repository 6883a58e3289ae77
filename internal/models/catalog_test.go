package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []Record {
	return []Record{
		hydrogen(),
		{Symbol: "He", Name: Text("Helium"), AtomicNumber: Int(2), Group: Int(18), Reactivity: Text("inert")},
		{Symbol: "X", Name: Text("First X")},
		{Symbol: "Li", Name: Text("Lithium")},
		{Symbol: "X", Name: Text("Second X")},
		{Symbol: "", Name: Text("No symbol")},
		{Symbol: "Li", Name: Text("Lithium again")},
	}
}

func TestFindBySymbolFindsEveryLoadedSymbol(t *testing.T) {
	records := sampleRecords()
	c := NewCatalog(records)

	for _, r := range records {
		if r.Symbol == "" {
			continue
		}
		found, ok := c.FindBySymbol(r.Symbol)
		require.True(t, ok, r.Symbol)
		assert.Equal(t, r.Symbol, found.Symbol)
	}
}

func TestFindBySymbolMisses(t *testing.T) {
	c := NewCatalog(sampleRecords())

	for _, symbol := range []string{"Xx", "h", "HE", " H", "H ", ""} {
		_, ok := c.FindBySymbol(symbol)
		assert.False(t, ok, "%q should not match", symbol)
	}
}

func TestFindBySymbolFirstMatchWins(t *testing.T) {
	c := NewCatalog(sampleRecords())

	for i := 0; i < 3; i++ {
		found, ok := c.FindBySymbol("X")
		require.True(t, ok)
		assert.Equal(t, "First X", *found.Name)
	}
}

func TestCatalogIsolatedFromInput(t *testing.T) {
	records := sampleRecords()
	c := NewCatalog(records)
	records[0] = Record{Symbol: "H", Name: Text("Changed")}

	found, _ := c.FindBySymbol("H")
	assert.Equal(t, "Hydrogen", *found.Name)

	out := c.Records()
	out[1].Symbol = "Zz"
	_, ok := c.FindBySymbol("He")
	assert.True(t, ok)
	assert.Equal(t, 7, c.Len())
}

func TestDuplicateSymbols(t *testing.T) {
	c := NewCatalog(sampleRecords())
	assert.Equal(t, []string{"X", "Li"}, c.DuplicateSymbols())

	assert.Empty(t, NewCatalog([]Record{hydrogen()}).DuplicateSymbols())
}
