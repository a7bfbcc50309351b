package parser

import (
	"testing"

	"github.com/ifls/patchbay-go/pkg/patchbay/models"
)

func TestNormalizeMark(t *testing.T) {
	tests := []struct {
		input    string
		expected models.RoutingMark
	}{
		{"", models.MarkNone},
		{"   ", models.MarkNone},
		{"x", models.MarkNone},
		{"X", models.MarkNone},
		{"✗", models.MarkNone},
		{"✓", models.MarkPresent},
		{" ✓ ", models.MarkPresent},
		{"check", models.MarkPresent},
		{"OK", models.MarkPresent},
		{"Yes", models.MarkPresent},
		{"ＯＫ", models.MarkPresent},
		{"Sidechain In", models.MarkSidechainIn},
		{"sidechain left", models.MarkSidechainIn},
		{"✓ links", models.MarkLeft},
		{"Left", models.MarkLeft},
		{"rechts", models.MarkRight},
		{"✓ Rechts", models.MarkRight},
		{"RIGHT ch", models.MarkRight},
		{"✓✓", models.MarkPresent},
		{"ok ✓", models.MarkPresent},
		{"???", models.MarkUnknown},
		{"1", models.MarkUnknown},
		{"xx", models.MarkUnknown},
	}

	for _, tt := range tests {
		result := NormalizeMark(tt.input)
		if result != tt.expected {
			t.Errorf("NormalizeMark(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestNormalizeMarkAlwaysValid(t *testing.T) {
	inputs := []string{"", "x", "✓", "links", "rechts", "sidechain", "\t", "ä", "0.5", "✗✗"}
	for _, in := range inputs {
		if m := NormalizeMark(in); !m.Valid() {
			t.Errorf("NormalizeMark(%q) = %q, not a defined mark", in, m)
		}
	}
}
