// Package export serializes distance matrices to tabular files.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/couchcryptid/city-distance/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Format selects the output file format.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "excel"
)

// ErrUnsupportedFormat is returned for format values other than csv/excel.
// Unlike lookup failures this is a caller error, so it propagates.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Write serializes the matrix to filename in the given format. The first row
// and first column carry the place labels; unknown cells are left empty.
// Nothing is written when the format is unsupported.
func Write(m domain.DistanceMatrix, filename string, format Format) error {
	switch format {
	case FormatCSV:
		return writeCSV(m, filename)
	case FormatExcel:
		return writeExcel(m, filename)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func writeCSV(m domain.DistanceMatrix, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows(m)); err != nil {
		f.Close()
		return fmt.Errorf("write csv: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filename, err)
	}
	return nil
}

func writeExcel(m domain.DistanceMatrix, filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows(m) {
		axis, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell name for row %d: %w", i+1, err)
		}
		// Numeric strings go in as numbers so spreadsheet formulas work.
		typed := make([]any, len(row))
		for j, v := range row {
			if km, err := strconv.ParseFloat(v, 64); err == nil && i > 0 && j > 0 {
				typed[j] = km
				continue
			}
			typed[j] = v
		}
		if err := f.SetSheetRow(sheet, axis, &typed); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

// rows renders the matrix as strings: a header row of labels, then one row
// per place with its label first. Unknown distances become empty cells.
func rows(m domain.DistanceMatrix) [][]string {
	out := make([][]string, 0, m.Size()+1)

	header := append([]string{""}, m.Places...)
	out = append(out, header)

	for i, place := range m.Places {
		row := make([]string, 0, m.Size()+1)
		row = append(row, place)
		for _, c := range m.Cells[i] {
			if c.Known {
				row = append(row, strconv.FormatFloat(c.Km, 'f', 2, 64))
			} else {
				row = append(row, "")
			}
		}
		out = append(out, row)
	}

	return out
}
