package models

// Category groups elements for colouring the grid
type Category int

const (
	CategoryUnknown Category = iota
	CategoryHydrogen
	CategoryAlkaliMetal
	CategoryAlkalineEarthMetal
	CategoryTransitionMetal
	CategoryPostTransitionMetal
	CategoryMetalloid
	CategoryNonmetal
	CategoryHalogen
	CategoryNobleGas
	CategoryLanthanide
	CategoryActinide
)

func (c Category) String() string {
	switch c {
	case CategoryHydrogen:
		return "hydrogen"
	case CategoryAlkaliMetal:
		return "alkali metal"
	case CategoryAlkalineEarthMetal:
		return "alkaline earth metal"
	case CategoryTransitionMetal:
		return "transition metal"
	case CategoryPostTransitionMetal:
		return "post-transition metal"
	case CategoryMetalloid:
		return "metalloid"
	case CategoryNonmetal:
		return "nonmetal"
	case CategoryHalogen:
		return "halogen"
	case CategoryNobleGas:
		return "noble gas"
	case CategoryLanthanide:
		return "lanthanide"
	case CategoryActinide:
		return "actinide"
	default:
		return "unknown"
	}
}

// Color returns the button colour for the category as a #rrggbb string
func (c Category) Color() string {
	switch c {
	case CategoryHydrogen:
		return "#f4b942"
	case CategoryAlkaliMetal:
		return "#fdd835"
	case CategoryAlkalineEarthMetal:
		return "#cfd8dc"
	case CategoryTransitionMetal:
		return "#ffccbc"
	case CategoryPostTransitionMetal:
		return "#b0bec5"
	case CategoryMetalloid:
		return "#90caf9"
	case CategoryNonmetal:
		return "#8bc34a"
	case CategoryHalogen:
		return "#c5e1a5"
	case CategoryNobleGas:
		return "#b0d4e3"
	case CategoryLanthanide:
		return "#f8bbd0"
	case CategoryActinide:
		return "#e1bee7"
	default:
		return "#cfd8dc"
	}
}

// GridColumns is the width of the periodic grid
const GridColumns = 18

// Cell is one clickable position of the periodic grid
type Cell struct {
	Symbol   string
	Row      int
	Column   int
	Category Category
}

// Periods 1-7 occupy rows 0-6. Row 7 is left empty and the f-block series
// sit in rows 8 and 9, starting under group 4.
var gridRows = [][]string{
	{"H", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "He"},
	{"Li", "Be", "", "", "", "", "", "", "", "", "", "", "B", "C", "N", "O", "F", "Ne"},
	{"Na", "Mg", "", "", "", "", "", "", "", "", "", "", "Al", "Si", "P", "S", "Cl", "Ar"},
	{"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn", "Ga", "Ge", "As", "Se", "Br", "Kr"},
	{"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn", "Sb", "Te", "I", "Xe"},
	{"Cs", "Ba", "La", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn"},
	{"Fr", "Ra", "Ac", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og"},
	{},
	{"", "", "", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu", ""},
	{"", "", "", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm", "Md", "No", "Lr", ""},
}

var categories = map[Category][]string{
	CategoryHydrogen:            {"H"},
	CategoryAlkaliMetal:         {"Li", "Na", "K", "Rb", "Cs", "Fr"},
	CategoryAlkalineEarthMetal:  {"Be", "Mg", "Ca", "Sr", "Ba", "Ra"},
	CategoryMetalloid:           {"B", "Si", "Ge", "As", "Sb", "Te"},
	CategoryNonmetal:            {"C", "N", "O", "P", "S", "Se"},
	CategoryHalogen:             {"F", "Cl", "Br", "I", "At", "Ts"},
	CategoryNobleGas:            {"He", "Ne", "Ar", "Kr", "Xe", "Rn", "Og"},
	CategoryPostTransitionMetal: {"Al", "Ga", "In", "Sn", "Tl", "Pb", "Bi", "Po", "Nh", "Fl", "Mc", "Lv"},
	CategoryLanthanide:          {"La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu"},
	CategoryActinide:            {"Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm", "Md", "No", "Lr"},
}

var categoryBySymbol = func() map[string]Category {
	m := make(map[string]Category)
	for c, symbols := range categories {
		for _, s := range symbols {
			m[s] = c
		}
	}
	return m
}()

// CategoryOf returns the category of a grid symbol. Symbols in the d-block
// that are not listed elsewhere are transition metals.
func CategoryOf(symbol string) Category {
	if c, ok := categoryBySymbol[symbol]; ok {
		return c
	}
	for row, symbols := range gridRows {
		if row > 6 {
			break
		}
		for col, s := range symbols {
			if s == symbol && col >= 2 && col <= 11 {
				return CategoryTransitionMetal
			}
		}
	}
	return CategoryUnknown
}

// PeriodicLayout returns every cell of the grid, row by row
func PeriodicLayout() []Cell {
	cells := make([]Cell, 0, 118)
	for row, symbols := range gridRows {
		for col, s := range symbols {
			if s == "" {
				continue
			}
			cells = append(cells, Cell{Symbol: s, Row: row, Column: col, Category: CategoryOf(s)})
		}
	}
	return cells
}

// GridRows is the number of rows PeriodicLayout spans
func GridRows() int {
	return len(gridRows)
}
