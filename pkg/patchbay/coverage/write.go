package coverage

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/ifls/patchbay-go/pkg/patchbay/models"
	"github.com/xuri/excelize/v2"
)

const (
	coverageSheet = "coverage"
	summarySheet  = "summary"
)

var rowHeader = []string{
	"id", "name_de", "manufacturer", "model", "priority_group", "category_de",
	"controls_count", "manual_sources_count", "controls_completeness",
	"manual_verified", "panel_verified",
}

var summaryHeader = []string{"priority_group", "controls_completeness", "devices"}

func rowValues(r models.CoverageRow) []any {
	return []any{
		r.ID, r.NameDE, r.Manufacturer, r.Model, string(r.PriorityGroup), r.CategoryDE,
		r.ControlsCount, r.ManualSourcesCount, r.ControlsCompleteness,
		r.ManualVerified, r.PanelVerified,
	}
}

// WriteCSV writes rows with a header line.
func WriteCSV(path string, rows []models.CoverageRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(rowHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.ID, r.NameDE, r.Manufacturer, r.Model, string(r.PriorityGroup), r.CategoryDE,
			strconv.Itoa(r.ControlsCount), strconv.Itoa(r.ManualSourcesCount), r.ControlsCompleteness,
			strconv.FormatBool(r.ManualVerified), strconv.FormatBool(r.PanelVerified),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// WriteXLSX writes a workbook with a coverage sheet and a summary sheet.
func WriteXLSX(path string, rows []models.CoverageRow, summary []models.CoverageSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", coverageSheet); err != nil {
		return err
	}
	if err := setRow(f, coverageSheet, 1, toAny(rowHeader)); err != nil {
		return err
	}
	for i, r := range rows {
		if err := setRow(f, coverageSheet, i+2, rowValues(r)); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	if err := setRow(f, summarySheet, 1, toAny(summaryHeader)); err != nil {
		return err
	}
	for i, s := range summary {
		vals := []any{string(s.PriorityGroup), s.ControlsCompleteness, s.Devices}
		if err := setRow(f, summarySheet, i+2, vals); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
