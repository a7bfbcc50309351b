package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Area is an inclusive 1-based cell range.
type Area struct {
	R1 int `json:"r1"`
	C1 int `json:"c1"`
	R2 int `json:"r2"`
	C2 int `json:"c2"`
}

// ResolveArea turns ref into an Area on sheetName. ref is either an A1 range
// ("A1:K40", "'Sheet 1'!$A$1:$K$40") or a defined name scoped to the sheet or
// the workbook.
func ResolveArea(f *excelize.File, sheetName, ref string) (Area, error) {
	ref = strings.TrimSpace(ref)
	if strings.Contains(ref, ":") {
		sheet, area, ok := parseAreaReference(ref)
		if !ok {
			return Area{}, fmt.Errorf("invalid range %q", ref)
		}
		if sheet != "" && sheet != sheetName {
			return Area{}, fmt.Errorf("range %q refers to sheet %q, not %q", ref, sheet, sheetName)
		}
		return area, nil
	}

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, ref) {
			continue
		}
		if dn.Scope != "" && dn.Scope != "Workbook" && dn.Scope != sheetName {
			continue
		}
		sheet, area, ok := parseAreaReference(dn.RefersTo)
		if !ok {
			return Area{}, fmt.Errorf("defined name %q refers to %q, not a range", ref, dn.RefersTo)
		}
		if sheet != "" && sheet != sheetName {
			continue
		}
		return area, nil
	}
	return Area{}, fmt.Errorf("no range or defined name %q on sheet %q", ref, sheetName)
}

// parseAreaReference parses 'Sheet'!$A$1:$D$10 or A1:D10.
func parseAreaReference(ref string) (string, Area, bool) {
	ref = strings.TrimSpace(ref)
	// Only the first range of a multi-range reference is used.
	if idx := strings.Index(ref, ","); idx >= 0 {
		ref = ref[:idx]
	}

	var sheet string
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = strings.Trim(ref[:idx], "'")
		ref = ref[idx+1:]
	}

	ref = strings.ReplaceAll(ref, "$", "")
	parts := strings.Split(ref, ":")
	if len(parts) != 2 {
		return "", Area{}, false
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return "", Area{}, false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return "", Area{}, false
	}
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return sheet, Area{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, true
}
