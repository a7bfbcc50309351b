package enrich

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func controlNames(t *testing.T, text string) []string {
	t.Helper()
	var names []string
	for _, c := range ExtractControls(text) {
		require.Equal(t, "unknown", c.Type)
		names = append(names, c.NameEN)
	}
	return names
}

func TestExtractControls(t *testing.T) {
	text := "1. Gain knob: sets gain.\n2. Switch - mode.\n3. rate\n4. Input jack."

	assert.Equal(t, []string{"Gain", "Mode", "Rate", "Sets Gain"}, controlNames(t, text))
}

func TestExtractControlsDropsBareNouns(t *testing.T) {
	assert.Empty(t, controlNames(t, "input jack. led."))
}

func TestExtractControlsCaps(t *testing.T) {
	var sb strings.Builder
	for c := 'A'; c <= 'Z'; c++ {
		for d := 'A'; d <= 'B'; d++ {
			sb.WriteString(string([]rune{c, d, d}) + " KNOB.\n")
		}
	}
	assert.Len(t, ExtractControls(sb.String()), maxControls)
}

func TestHTMLToText(t *testing.T) {
	page := `<html><head><title>T</title><style>p{}</style></head>
<body><h1>Manual</h1><p>LEVEL <b>knob</b></p><script>x()</script></body></html>`

	text, err := HTMLToText([]byte(page))
	require.NoError(t, err)
	assert.Equal(t, "Manual\nLEVEL\nknob", text)
}

func TestPDFToTextRejectsGarbage(t *testing.T) {
	_, err := PDFToText([]byte("definitely not a pdf"), 10)
	assert.Error(t, err)
}
