// Package export writes the element catalog to a spreadsheet.
package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"periodic-tutor/internal/errors"
	"periodic-tutor/internal/models"
)

// SheetName is the worksheet the catalog is written to
const SheetName = "Elements"

// Header is the first row of the sheet
var Header = []interface{}{"Symbol", "Name", "Atomic Number", "Group", "Reactivity"}

// Write streams the records, in catalog order, as an XLSX workbook to w
func Write(w io.Writer, records []models.Record) error {
	f, err := build(records)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "export", "Write", "write workbook")
	}
	return nil
}

// SaveAs writes the workbook to path
func SaveAs(path string, records []models.Record) error {
	f, err := build(records)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return errors.Wrap(err, "export", "SaveAs", "save workbook")
	}
	return nil
}

func build(records []models.Record) (*excelize.File, error) {
	f := excelize.NewFile()
	// A new file starts with Sheet1; rename it rather than add a second sheet.
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, errors.Wrap(err, "export", "build", "rename sheet")
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return nil, errors.Wrap(err, "export", "build", "open stream writer")
	}
	if err := sw.SetRow("A1", Header); err != nil {
		return nil, errors.Wrap(err, "export", "build", "write header")
	}

	for i, r := range records {
		fields := r.Fields()
		// Field order is Element, Symbol, ...; the sheet leads with the symbol.
		row := []interface{}{fields[1].Value, fields[0].Value, fields[2].Value, fields[3].Value, fields[4].Value}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, row); err != nil {
			return nil, errors.Wrap(err, "export", "build", "write row")
		}
	}
	if err := sw.Flush(); err != nil {
		return nil, errors.Wrap(err, "export", "build", "flush rows")
	}
	return f, nil
}
