package models

// Catalog is the read-only collection of element records for a session.
// Records keep their load order; when symbols repeat the earliest record wins.
type Catalog struct {
	records []Record
	index   map[string]int
}

// NewCatalog copies records into a catalog
func NewCatalog(records []Record) *Catalog {
	c := &Catalog{
		records: make([]Record, len(records)),
		index:   make(map[string]int, len(records)),
	}
	copy(c.records, records)

	for i, r := range c.records {
		if r.Symbol == "" {
			continue
		}
		if _, seen := c.index[r.Symbol]; !seen {
			c.index[r.Symbol] = i
		}
	}
	return c
}

// FindBySymbol returns the first record whose symbol equals symbol exactly.
// Matching is case-sensitive and applies no trimming.
func (c *Catalog) FindBySymbol(symbol string) (Record, bool) {
	i, ok := c.index[symbol]
	if !ok {
		return Record{}, false
	}
	return c.records[i], true
}

// Len returns the number of records
func (c *Catalog) Len() int {
	return len(c.records)
}

// Records returns a copy of all records in load order
func (c *Catalog) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// DuplicateSymbols lists symbols carried by more than one record, in the order
// their second occurrence appears
func (c *Catalog) DuplicateSymbols() []string {
	counts := make(map[string]int)
	var dups []string
	for _, r := range c.records {
		if r.Symbol == "" {
			continue
		}
		counts[r.Symbol]++
		if counts[r.Symbol] == 2 {
			dups = append(dups, r.Symbol)
		}
	}
	return dups
}
