package enrich

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManualMap(t *testing.T) {
	csvText := "\ufeffid,name,manual_url\n" +
		"boss_dd_3,Boss DD-3,https://example.com/dd3.pdf\n" +
		"no_url,Nothing,\n" +
		"short\n" +
		"korg,Korg, https://example.com/korg.html \n"

	refs, err := parseManualMap(strings.NewReader(csvText))
	require.NoError(t, err)
	assert.Equal(t, []ManualRef{
		{ID: "boss_dd_3", URL: "https://example.com/dd3.pdf"},
		{ID: "korg", URL: "https://example.com/korg.html"},
	}, refs)
}

func TestParseManualMapNeedsColumns(t *testing.T) {
	_, err := parseManualMap(strings.NewReader("id,url\na,b\n"))
	assert.Error(t, err)
}
