package profiles

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ifls/patchbay-go/pkg/patchbay/models"
	"github.com/ifls/patchbay-go/pkg/patchbay/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		item models.GearItem
		want models.PriorityGroup
		ok   bool
	}{
		{"synth by category", models.GearItem{MainCategory: "Synthesizer"}, models.PrioritySynth, true},
		{"synth beats fx", models.GearItem{MainCategory: "Drum", NotesText: "delay"}, models.PrioritySynth, true},
		{"routing beats fx", models.GearItem{MainCategory: "Mixer", NotesText: "reverb"}, models.PriorityRouting, true},
		{"fx", models.GearItem{SubCategory: "Reverb", Manufacturer: "Strymon"}, models.PriorityFX, true},
		{"case insensitive", models.GearItem{Model: "PHASER 90"}, models.PriorityFX, true},
		{"no match", models.GearItem{MainCategory: "Kabel", Manufacturer: "Neutrik", Model: "XLR"}, "", false},
	}

	for _, tt := range tests {
		got, ok := Classify(tt.item)
		assert.Equal(t, tt.want, got, tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
	}
}

func TestParseControls(t *testing.T) {
	raw := "Level\r\n- Tone -\n\n• Drive â€¢ Mix\tDepth"
	got := ParseControls(raw)

	names := make([]string, len(got))
	for i, c := range got {
		names[i] = c.NameEN
		assert.Equal(t, "unknown", c.Type)
	}
	assert.Equal(t, []string{"Level", "Tone", "Drive", "Mix\tDepth"}, names)
	assert.Empty(t, ParseControls(""))
}

func TestGenerate(t *testing.T) {
	root := t.TempDir()
	outDir := filepath.Join(root, "device_profiles")
	docsDir := filepath.Join(root, "docs")
	now := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)

	gear := []models.GearItem{
		{ID: "boss_dd_3", MainCategory: "Effekte", SubCategory: "Delay", Manufacturer: "Boss", Model: "DD-3", Count: 1, ControlsText: "E.Level\nFeedback"},
		{ID: "neutrik_xlr", MainCategory: "Kabel", Manufacturer: "Neutrik", Model: "XLR"},
		{MainCategory: "Synth", Manufacturer: "Korg", Model: "Volca Keys"},
	}

	index, err := Generate(gear, Options{
		Source:  "gear.json",
		OutDir:  outDir,
		DocsDir: docsDir,
		Now:     func() time.Time { return now },
	})
	require.NoError(t, err)
	require.Len(t, index.Devices, 2)
	assert.Equal(t, models.ProfileIndexEntry{ID: "boss_dd_3", NameDE: "Boss DD-3", PriorityGroup: models.PriorityFX}, index.Devices[0])
	assert.Equal(t, "korg_volca_keys", index.Devices[1].ID)

	var prof models.DeviceProfile
	require.NoError(t, output.ReadJSON(filepath.Join(outDir, "boss_dd_3.json"), &prof))
	assert.Equal(t, "2026-05-06T07:08:09Z", prof.Meta.GeneratedAtUTC)
	assert.Equal(t, "mixed", prof.Meta.Language)
	assert.Equal(t, "Effekte", prof.CategoriesDE.Hauptkategorie)
	assert.Equal(t, "instrument_or_line", prof.LevelGuess)
	assert.Len(t, prof.Controls, 2)
	assert.False(t, prof.Enriched)
	assert.NotNil(t, prof.ManualSources)

	_, err = os.Stat(filepath.Join(outDir, "neutrik_xlr.json"))
	assert.True(t, os.IsNotExist(err))

	var idx models.ProfileIndex
	require.NoError(t, output.ReadJSON(filepath.Join(root, IndexFileName), &idx))
	assert.Len(t, idx.Devices, 2)

	page, err := os.ReadFile(filepath.Join(docsDir, "boss_dd_3.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Boss DD-3\n\n**Priority:** fx\n\n## Controls (EN)\n- **E.Level**\n- **Feedback**\n", string(page))
}

func TestMarkdownCapsControls(t *testing.T) {
	p := models.DeviceProfile{NameDE: "Big", PriorityGroup: models.PrioritySynth}
	for i := 0; i < 50; i++ {
		p.Controls = append(p.Controls, models.Control{NameEN: "K"})
	}
	md := Markdown(p)
	assert.Equal(t, maxDocControls, strings.Count(md, "- **K**\n"))
}
