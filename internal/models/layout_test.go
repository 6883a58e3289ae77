package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodicLayoutCoversAllElements(t *testing.T) {
	cells := PeriodicLayout()
	require.Len(t, cells, 118)

	seen := make(map[string]bool)
	positions := make(map[[2]int]bool)
	for _, c := range cells {
		assert.False(t, seen[c.Symbol], "duplicate symbol %s", c.Symbol)
		seen[c.Symbol] = true

		pos := [2]int{c.Row, c.Column}
		assert.False(t, positions[pos], "two cells at %v", pos)
		positions[pos] = true

		assert.GreaterOrEqual(t, c.Column, 0)
		assert.Less(t, c.Column, GridColumns)
		assert.Less(t, c.Row, GridRows())
		assert.NotEqual(t, CategoryUnknown, c.Category, c.Symbol)
	}
}

func TestPeriodicLayoutPositions(t *testing.T) {
	bySymbol := make(map[string]Cell)
	for _, c := range PeriodicLayout() {
		bySymbol[c.Symbol] = c
	}

	tests := []struct {
		symbol string
		row    int
		column int
	}{
		{"H", 0, 0},
		{"He", 0, 17},
		{"B", 1, 12},
		{"Fe", 3, 7},
		{"Og", 6, 17},
		{"Ce", 8, 3},
		{"Lr", 9, 16},
	}

	for _, test := range tests {
		t.Run(test.symbol, func(t *testing.T) {
			c, ok := bySymbol[test.symbol]
			require.True(t, ok)
			assert.Equal(t, test.row, c.Row)
			assert.Equal(t, test.column, c.Column)
		})
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		symbol   string
		expected Category
	}{
		{"H", CategoryHydrogen},
		{"Na", CategoryAlkaliMetal},
		{"Mg", CategoryAlkalineEarthMetal},
		{"Fe", CategoryTransitionMetal},
		{"Cn", CategoryTransitionMetal},
		{"Pb", CategoryPostTransitionMetal},
		{"Si", CategoryMetalloid},
		{"O", CategoryNonmetal},
		{"Cl", CategoryHalogen},
		{"Ar", CategoryNobleGas},
		{"La", CategoryLanthanide},
		{"U", CategoryActinide},
		{"Xx", CategoryUnknown},
	}

	for _, test := range tests {
		t.Run(test.symbol, func(t *testing.T) {
			assert.Equal(t, test.expected, CategoryOf(test.symbol))
		})
	}
}

func TestCategoryColors(t *testing.T) {
	assert.Equal(t, "#f4b942", CategoryHydrogen.Color())
	assert.Equal(t, "#b0d4e3", CategoryNobleGas.Color())
	assert.Equal(t, "#fdd835", CategoryAlkaliMetal.Color())
	assert.Equal(t, "#cfd8dc", CategoryUnknown.Color())
	assert.Equal(t, "noble gas", CategoryNobleGas.String())
}
