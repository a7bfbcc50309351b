// Package parser provides the patchbay matrix extraction engine and the
// spreadsheet readers it runs on.
package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Worksheet is read-only access to one sheet. Rows and columns are 1-based;
// cells outside the sheet read as empty.
type Worksheet interface {
	Name() string
	Cell(row, col int) string
	MaxRow() int
	MaxColumn() int
}

// Grid is an in-memory Worksheet backed by an arena of cell text.
type Grid struct {
	name   string
	cells  [][]string
	maxRow int
	maxCol int
}

// NewGrid builds a Grid from row-major cell text. rows[0][0] is cell A1.
func NewGrid(name string, rows [][]string) *Grid {
	g := &Grid{name: name, cells: rows}
	_, maxRow, _, maxCol := findDataBounds(rows)
	g.maxRow = maxRow + 1
	g.maxCol = maxCol + 1
	return g
}

// LoadWorksheet reads a sheet from an open workbook into a Grid.
// Cell values are read raw so numeric channel labels keep their stored form.
func LoadWorksheet(f *excelize.File, sheetName string) (*Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	return NewGrid(sheetName, rows), nil
}

// Name returns the sheet name.
func (g *Grid) Name() string { return g.name }

// MaxRow returns the last row holding data.
func (g *Grid) MaxRow() int { return g.maxRow }

// MaxColumn returns the last column holding data.
func (g *Grid) MaxColumn() int { return g.maxCol }

// Cell returns the trimmed text at (row, col).
func (g *Grid) Cell(row, col int) string {
	if row < 1 || col < 1 || row > len(g.cells) {
		return ""
	}
	r := g.cells[row-1]
	if col > len(r) {
		return ""
	}
	return strings.TrimSpace(r[col-1])
}

// Clip returns a Grid that only exposes cells inside area. Row and column
// numbering stays absolute.
func (g *Grid) Clip(area Area) *Grid {
	rows := make([][]string, 0, area.R2)
	for r := 1; r <= area.R2 && r <= len(g.cells); r++ {
		var row []string
		if r >= area.R1 {
			src := g.cells[r-1]
			row = make([]string, 0, area.C2)
			for c := 1; c <= area.C2 && c <= len(src); c++ {
				if c < area.C1 {
					row = append(row, "")
					continue
				}
				row = append(row, src[c-1])
			}
		}
		rows = append(rows, row)
	}
	return NewGrid(g.name, rows)
}

// parseChannel parses a channel label. Floats are truncated toward zero
// ("3.0" is channel 3). ok is false for empty or non-numeric text.
func parseChannel(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}
