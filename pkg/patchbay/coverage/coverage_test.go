package coverage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/ifls/patchbay-go/pkg/patchbay/models"
	"github.com/ifls/patchbay-go/pkg/patchbay/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeProfiles(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	profiles := []models.DeviceProfile{
		{ID: "z_fx", NameDE: "Zoom MS-70", Manufacturer: "Zoom", PriorityGroup: models.PriorityFX,
			Controls: []models.Control{{NameEN: "Level"}}, Meta: models.ProfileMeta{ControlsCompleteness: "partial"}},
		{ID: "korg", NameDE: "Korg Volca", Manufacturer: "Korg", PriorityGroup: models.PrioritySynth,
			ManualSources: []string{"u"}, Meta: models.ProfileMeta{ManualVerified: true, ControlsCompleteness: "full"}},
		{ID: "boss", NameDE: "Boss DD-3", Manufacturer: "Boss", PriorityGroup: models.PriorityFX,
			ControlsVerifiedByImage: true, Meta: models.ProfileMeta{ControlsCompleteness: "partial"}},
	}
	for _, p := range profiles {
		require.NoError(t, output.WriteJSON(filepath.Join(dir, p.ID+".json"), p))
	}
	return dir
}

func TestBuild(t *testing.T) {
	rows, err := Build(writeProfiles(t))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"boss", "z_fx", "korg"}, []string{rows[0].ID, rows[1].ID, rows[2].ID})
	assert.True(t, rows[0].PanelVerified)
	assert.Equal(t, 1, rows[1].ControlsCount)
	assert.Equal(t, 1, rows[2].ManualSourcesCount)
	assert.True(t, rows[2].ManualVerified)
}

func TestSummarize(t *testing.T) {
	rows, err := Build(writeProfiles(t))
	require.NoError(t, err)

	assert.Equal(t, []models.CoverageSummary{
		{PriorityGroup: models.PriorityFX, ControlsCompleteness: "partial", Devices: 2},
		{PriorityGroup: models.PrioritySynth, ControlsCompleteness: "full", Devices: 1},
	}, Summarize(rows))
}

func TestWrite(t *testing.T) {
	rows, err := Build(writeProfiles(t))
	require.NoError(t, err)

	outDir := filepath.Join(t.TempDir(), "Docs")
	rep, err := Write(outDir, "20260101_000000", rows)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "coverage_report_20260101_000000.csv"), rep.CSV)

	f, err := os.Open(rep.CSV)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, rowHeader, records[0])
	assert.Equal(t, "boss", records[1][0])
	assert.Equal(t, "true", records[1][10])

	x, err := excelize.OpenFile(rep.XLSX)
	require.NoError(t, err)
	defer x.Close()
	assert.Equal(t, []string{coverageSheet, summarySheet}, x.GetSheetList())

	cov, err := x.GetRows(coverageSheet)
	require.NoError(t, err)
	assert.Len(t, cov, 4)
	assert.Equal(t, "Zoom MS-70", cov[2][1])

	sum, err := x.GetRows(summarySheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"fx", "partial", "2"}, sum[1])
}

func TestBuildInvalidProfile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("not json"), 0644))
	_, err := Build(dir)
	assert.Error(t, err)
}
