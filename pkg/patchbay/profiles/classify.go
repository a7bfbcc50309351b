// Package profiles generates device profile skeletons from the gear inventory.
package profiles

import (
	"regexp"
	"strings"

	"github.com/ifls/patchbay-go/pkg/patchbay/models"
)

var (
	synthKeywords   = []string{"synth", "toy", "keyboard", "keys", "groove", "drum machine", "drum", "sampler"}
	fxKeywords      = []string{"delay", "reverb", "chorus", "flanger", "phaser", "vibrato", "tremolo", "mod", "lofi", "bit", "crusher", "ring", "pitch", "whammy", "filter", "envelope"}
	routingKeywords = []string{"di", "reamp", "patch", "patchbay", "mixer", "interface", "compress", "gate", "limiter", "preamp"}
)

// Classify assigns a priority group by keyword over the item's descriptive
// text. Synth keywords win over routing, routing over fx. ok is false when
// nothing matches.
func Classify(item models.GearItem) (models.PriorityGroup, bool) {
	text := strings.ToLower(strings.Join([]string{
		item.MainCategory,
		item.SubCategory,
		item.CategoryType,
		item.Manufacturer,
		item.Model,
		item.NotesText,
		item.TechText,
	}, " "))

	switch {
	case containsAny(text, synthKeywords):
		return models.PrioritySynth, true
	case containsAny(text, routingKeywords):
		return models.PriorityRouting, true
	case containsAny(text, fxKeywords):
		return models.PriorityFX, true
	}
	return "", false
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// controlSeparator splits free-text control lists on line breaks and
// bullets, including the mojibake form of "•" left by bad CSV exports.
var controlSeparator = regexp.MustCompile("[\n\r]+|â€¢|•")

// ParseControls splits the inventory's control text into control entries.
func ParseControls(raw string) []models.Control {
	controls := []models.Control{}
	for _, part := range controlSeparator.Split(raw, -1) {
		part = strings.Trim(part, " -\t")
		if part == "" {
			continue
		}
		controls = append(controls, models.Control{NameEN: part, Type: "unknown"})
	}
	return controls
}
