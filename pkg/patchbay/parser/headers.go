package parser

import "strings"

// Header prefixes, matched case-insensitively against trimmed cell text.
const (
	PrefixWideOutputs = "output kanal patchbay"
	PrefixWideInputs  = "input kanal patchbay"
	PrefixLegacy      = "kanal"
)

// FindRowWithPrefix scans col top to bottom and returns the first row whose
// text starts with any of prefixes.
func FindRowWithPrefix(ws Worksheet, col int, prefixes ...string) (int, bool) {
	for r := 1; r <= ws.MaxRow(); r++ {
		s := foldText(ws.Cell(r, col))
		if s == "" {
			continue
		}
		for _, p := range prefixes {
			if strings.HasPrefix(s, foldText(p)) {
				return r, true
			}
		}
	}
	return 0, false
}

// FindMatrixHeader scans the sheet row-major from fromRow for the first cell
// starting with "kanal". Stacked legacy matrices are told apart only by
// searching below the previous one, so callers pass the row after it.
func FindMatrixHeader(ws Worksheet, fromRow int) (Anchor, bool) {
	if fromRow < 1 {
		fromRow = 1
	}
	for r := fromRow; r <= ws.MaxRow(); r++ {
		for c := 1; c <= ws.MaxColumn(); c++ {
			if hasFoldedPrefix(ws.Cell(r, c), PrefixLegacy) {
				return Anchor{Row: r, Col: c}, true
			}
		}
	}
	return Anchor{}, false
}
