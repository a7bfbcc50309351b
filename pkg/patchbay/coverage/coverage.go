// Package coverage reports how complete the device profiles are.
package coverage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ifls/patchbay-go/pkg/patchbay/models"
	"github.com/ifls/patchbay-go/pkg/patchbay/output"
)

// Build reads every profile in dir and returns one row per profile, sorted
// by priority group, manufacturer and name.
func Build(dir string) ([]models.CoverageRow, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}

	rows := make([]models.CoverageRow, 0, len(paths))
	for _, p := range paths {
		var prof models.DeviceProfile
		if err := output.ReadJSON(p, &prof); err != nil {
			return nil, err
		}
		rows = append(rows, Row(prof))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.PriorityGroup != b.PriorityGroup {
			return a.PriorityGroup < b.PriorityGroup
		}
		if a.Manufacturer != b.Manufacturer {
			return a.Manufacturer < b.Manufacturer
		}
		return a.NameDE < b.NameDE
	})
	return rows, nil
}

// Row summarizes one profile.
func Row(p models.DeviceProfile) models.CoverageRow {
	return models.CoverageRow{
		ID:                   p.ID,
		NameDE:               p.NameDE,
		Manufacturer:         p.Manufacturer,
		Model:                p.Model,
		PriorityGroup:        p.PriorityGroup,
		CategoryDE:           p.CategoryDE,
		ControlsCount:        len(p.Controls),
		ManualSourcesCount:   len(p.ManualSources),
		ControlsCompleteness: p.Meta.ControlsCompleteness,
		ManualVerified:       p.Meta.ManualVerified,
		PanelVerified:        p.Meta.PanelVerified || p.ControlsVerifiedByImage,
	}
}

// Summarize counts rows per priority group and completeness.
func Summarize(rows []models.CoverageRow) []models.CoverageSummary {
	type key struct {
		group        models.PriorityGroup
		completeness string
	}
	counts := make(map[key]int)
	for _, r := range rows {
		counts[key{r.PriorityGroup, r.ControlsCompleteness}]++
	}

	out := make([]models.CoverageSummary, 0, len(counts))
	for k, n := range counts {
		out = append(out, models.CoverageSummary{
			PriorityGroup:        k.group,
			ControlsCompleteness: k.completeness,
			Devices:              n,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PriorityGroup != out[j].PriorityGroup {
			return out[i].PriorityGroup < out[j].PriorityGroup
		}
		return out[i].ControlsCompleteness < out[j].ControlsCompleteness
	})
	return out
}

// Report is the pair of files one Write produced.
type Report struct {
	CSV  string
	XLSX string
}

// Write emits coverage_report_<stamp>.csv and .xlsx into dir.
func Write(dir, stamp string, rows []models.CoverageRow) (Report, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Report{}, err
	}
	base := filepath.Join(dir, fmt.Sprintf("coverage_report_%s", stamp))
	rep := Report{CSV: base + ".csv", XLSX: base + ".xlsx"}

	if err := WriteCSV(rep.CSV, rows); err != nil {
		return Report{}, err
	}
	if err := WriteXLSX(rep.XLSX, rows, Summarize(rows)); err != nil {
		return Report{}, err
	}
	return rep, nil
}
