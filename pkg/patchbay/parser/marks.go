package parser

import (
	"strings"

	"github.com/ifls/patchbay-go/pkg/patchbay/models"
)

const checkGlyph = "✓"

// markRule classifies folded cell text. Rules are tried in order and the
// first match wins, since one value can satisfy several rules.
type markRule func(s string) (models.RoutingMark, bool)

var markRules = []markRule{
	equalsAny(models.MarkNone, "x", "✗"),
	equalsAny(models.MarkPresent, checkGlyph, "check", "ok", "yes"),
	containsAny(models.MarkSidechainIn, "sidechain"),
	containsAny(models.MarkLeft, "links", "left"),
	containsAny(models.MarkRight, "rechts", "right"),
	checkWithSide,
}

// NormalizeMark maps a raw cell value to its routing mark. It is total:
// blank is none and anything unrecognized is unknown.
func NormalizeMark(raw string) models.RoutingMark {
	s := foldText(raw)
	if s == "" {
		return models.MarkNone
	}
	for _, rule := range markRules {
		if mark, ok := rule(s); ok {
			return mark
		}
	}
	return models.MarkUnknown
}

func equalsAny(mark models.RoutingMark, values ...string) markRule {
	return func(s string) (models.RoutingMark, bool) {
		for _, v := range values {
			if s == v {
				return mark, true
			}
		}
		return "", false
	}
}

func containsAny(mark models.RoutingMark, words ...string) markRule {
	return func(s string) (models.RoutingMark, bool) {
		for _, w := range words {
			if strings.Contains(s, w) {
				return mark, true
			}
		}
		return "", false
	}
}

// checkWithSide handles a check glyph mixed with other text.
func checkWithSide(s string) (models.RoutingMark, bool) {
	if !strings.Contains(s, checkGlyph) {
		return "", false
	}
	switch {
	case strings.Contains(s, "links"):
		return models.MarkLeft, true
	case strings.Contains(s, "rechts"):
		return models.MarkRight, true
	}
	return models.MarkPresent, true
}
