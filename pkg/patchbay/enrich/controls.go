// Package enrich fills device profiles from their online manuals.
package enrich

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ifls/patchbay-go/pkg/patchbay/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxControls caps the controls taken from one manual.
const maxControls = 40

var controlNouns = map[string]bool{
	"KNOB": true, "SWITCH": true, "FOOTSWITCH": true, "BUTTON": true,
	"LED": true, "JACK": true, "INPUT": true, "OUTPUT": true,
}

// Patterns run over upper-cased manual text: label before a control noun,
// label after a control noun, and common parameter words on their own.
var controlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b([A-Z][A-Z0-9/\-\s]{2,32}\b)\s+(KNOB|SWITCH|FOOTSWITCH|BUTTON|LED|JACK|INPUT|OUTPUT)`),
	regexp.MustCompile(`\b(KNOB|SWITCH|FOOTSWITCH|BUTTON|LED|JACK|INPUT|OUTPUT)\b[:\s\-]+([A-Z][A-Z0-9/\-\s]{2,32}\b)`),
	regexp.MustCompile(`\b(LEVEL|TONE|ATTACK|SUSTAIN|RATE|DEPTH|MIX|BIT|SAMPLE RATE|MODE|TYPE|TIME|FEEDBACK|REPEAT)\b`),
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// ExtractControls guesses control labels from manual text. Labels are
// deduplicated, sorted, title-cased and capped at 40.
func ExtractControls(text string) []models.Control {
	upper := strings.ToUpper(text)
	found := make(map[string]bool)
	for _, re := range controlPatterns {
		for _, g := range re.FindAllStringSubmatch(upper, -1) {
			groups := g[1:]
			label := groups[0]
			if len(groups) == 2 {
				switch {
				case controlNouns[groups[0]]:
					label = groups[1]
				case controlNouns[groups[1]]:
					label = groups[0]
				}
			}
			label = strings.TrimSpace(whitespaceRun.ReplaceAllString(strings.TrimSpace(label), " "))
			if n := len([]rune(label)); n >= 2 && n <= 40 {
				found[label] = true
			}
		}
	}

	labels := make([]string, 0, len(found))
	for l := range found {
		if !controlNouns[l] {
			labels = append(labels, l)
		}
	}
	sort.Strings(labels)

	title := cases.Title(language.Und)
	controls := []models.Control{}
	for _, l := range labels {
		if len(controls) == maxControls {
			break
		}
		controls = append(controls, models.Control{NameEN: title.String(l), Type: "unknown"})
	}
	return controls
}
