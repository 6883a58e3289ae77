package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Unknown is rendered for any attribute the ontology does not supply
const Unknown = "Unknown"

// Record describes one chemical element as loaded from the ontology.
// Symbol is the lookup key; every other attribute may be absent.
type Record struct {
	Symbol       string
	Name         *string
	AtomicNumber *int
	Group        *int
	Reactivity   *string
}

// Text and Int build optional attribute values
func Text(s string) *string { return &s }

func Int(n int) *int { return &n }

func display[T any](v *T) string {
	if v == nil {
		return Unknown
	}
	return fmt.Sprint(*v)
}

// Fields returns the five attributes in display order with Unknown fallbacks
func (r Record) Fields() []Field {
	symbol := Unknown
	if r.Symbol != "" {
		symbol = r.Symbol
	}
	return []Field{
		{Label: "Element", Value: display(r.Name)},
		{Label: "Symbol", Value: symbol},
		{Label: "Atomic Number", Value: display(r.AtomicNumber)},
		{Label: "Group", Value: display(r.Group)},
		{Label: "Reactivity", Value: display(r.Reactivity)},
	}
}

// Field is one labelled attribute of a rendered record
type Field struct {
	Label string
	Value string
}

// Details renders the record as shown in the info panel:
//
//	Element: Hydrogen
//	Symbol: H
//	Atomic Number: 1
//	Group: 1
//	Reactivity: high
func (r Record) Details() string {
	fields := r.Fields()
	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = f.Label + ": " + f.Value
	}
	return strings.Join(lines, "\n")
}

// DisplayName is the element name, or its symbol when the name is absent
func (r Record) DisplayName() string {
	if r.Name != nil && *r.Name != "" {
		return *r.Name
	}
	return r.Symbol
}

// ParseInt reads an integer attribute; the second result is false when the
// lexical form is not an integer
func ParseInt(lexical string) (*int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(lexical))
	if err != nil {
		return nil, false
	}
	return &n, true
}
