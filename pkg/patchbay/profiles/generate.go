package profiles

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ifls/patchbay-go/pkg/patchbay/models"
	"github.com/ifls/patchbay-go/pkg/patchbay/output"
	"github.com/ifls/patchbay-go/pkg/patchbay/parser"
	"go.uber.org/zap"
)

// IndexFileName is written next to the profiles directory.
const IndexFileName = "device_profiles_index.json"

// maxDocControls caps the controls listed on a Markdown page.
const maxDocControls = 40

// Options configures profile generation.
type Options struct {
	// Source is recorded in each profile's meta.
	Source string
	// OutDir receives <id>.json per profile.
	OutDir string
	// DocsDir, if set, receives a Markdown page per profile.
	DocsDir string
	Logger  *zap.Logger
	Now     func() time.Time
}

// Build turns gear items into profile skeletons. Items without a priority
// group are skipped.
func Build(gear []models.GearItem, source string, now time.Time) []models.DeviceProfile {
	stamp := models.FormatUTC(now)
	var out []models.DeviceProfile
	for _, it := range gear {
		group, ok := Classify(it)
		if !ok {
			continue
		}
		id := it.ID
		if id == "" {
			id = parser.SlugID(it.Manufacturer + " " + it.Model)
		}
		out = append(out, models.DeviceProfile{
			Meta:         models.ProfileMeta{GeneratedAtUTC: stamp, Language: "mixed", Source: source},
			ID:           id,
			NameDE:       strings.TrimSpace(it.Manufacturer + " " + it.Model),
			Manufacturer: it.Manufacturer,
			Model:        it.Model,
			Count:        it.Count,
			CategoriesDE: models.CategoriesDE{
				Hauptkategorie: it.MainCategory,
				Unterkategorie: it.SubCategory,
				KategorieTyp:   it.CategoryType,
			},
			PriorityGroup: group,
			SignalRole:    []string{},
			LevelGuess:    "instrument_or_line",
			IORawDE:       it.IOText,
			ControlsRawDE: it.ControlsText,
			Controls:      ParseControls(it.ControlsText),
			PowerRawDE:    it.PowerText,
			NotesRawDE:    it.NotesText,
			TechRawDE:     it.TechText,
			ManualSources: []string{},
			BestForTags:   []string{},
			DangerZonesDE: []string{},
		})
	}
	return out
}

// Generate builds profiles from gear and writes them, the index and the
// optional Markdown pages. It returns the index it wrote.
func Generate(gear []models.GearItem, opts Options) (*models.ProfileIndex, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	now := time.Now()
	if opts.Now != nil {
		now = opts.Now()
	}

	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return nil, err
	}
	if opts.DocsDir != "" {
		if err := os.MkdirAll(opts.DocsDir, 0755); err != nil {
			return nil, err
		}
	}

	index := &models.ProfileIndex{
		Meta:    models.ProfileMeta{GeneratedAtUTC: models.FormatUTC(now)},
		Devices: []models.ProfileIndexEntry{},
	}
	for _, p := range Build(gear, opts.Source, now) {
		if err := output.WriteJSON(filepath.Join(opts.OutDir, p.ID+".json"), p); err != nil {
			return nil, fmt.Errorf("write profile %s: %w", p.ID, err)
		}
		index.Devices = append(index.Devices, models.ProfileIndexEntry{
			ID:            p.ID,
			NameDE:        p.NameDE,
			PriorityGroup: p.PriorityGroup,
		})

		if opts.DocsDir != "" {
			page := filepath.Join(opts.DocsDir, p.ID+".md")
			if err := os.WriteFile(page, []byte(Markdown(p)), 0644); err != nil {
				return nil, fmt.Errorf("write page %s: %w", p.ID, err)
			}
		}
		log.Debug("wrote profile", zap.String("id", p.ID), zap.String("group", string(p.PriorityGroup)))
	}

	indexPath := filepath.Join(filepath.Dir(filepath.Clean(opts.OutDir)), IndexFileName)
	if err := output.WriteJSON(indexPath, index); err != nil {
		return nil, err
	}
	log.Info("generated profiles", zap.Int("profiles", len(index.Devices)), zap.String("index", indexPath))
	return index, nil
}

// Markdown renders the short review page for a profile.
func Markdown(p models.DeviceProfile) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n**Priority:** %s\n\n## Controls (EN)\n", p.NameDE, p.PriorityGroup)
	for i, c := range p.Controls {
		if i == maxDocControls {
			break
		}
		fmt.Fprintf(&sb, "- **%s**\n", c.NameEN)
	}
	return sb.String()
}
