package parser

import (
	"fmt"
	"strings"

	"github.com/ifls/patchbay-go/pkg/patchbay/models"
)

// Inventory column headers, as written in the gear workbook.
const (
	ColMainCategory = "Hauptkategorie"
	ColSubCategory  = "Unterkategorie"
	ColCategoryType = "Kategorie-Typ"
	ColManufacturer = "Hersteller"
	ColModel        = "Modell"
	ColCount        = "Anzahl"
	ColIO           = "Ein-/Ausgänge"
	ColControls     = "Parameter/Regler"
	ColPower        = "Strom/Info"
	ColNotes        = "Notes/Highlights"
	ColTech         = "Besonderheiten / Technische Daten"
)

// GearColumns lists every column the inventory sheet must carry.
var GearColumns = []string{
	ColMainCategory, ColSubCategory, ColCategoryType, ColManufacturer, ColModel, ColCount,
	ColIO, ColControls, ColPower, ColNotes, ColTech,
}

// ParseGear maps the inventory sheet to gear items. Row 1 is the header row;
// rows without manufacturer, model and main category are skipped.
func ParseGear(ws Worksheet) ([]models.GearItem, error) {
	cols := make(map[string]int)
	for c := 1; c <= ws.MaxColumn(); c++ {
		name := ws.Cell(1, c)
		if _, seen := cols[name]; name != "" && !seen {
			cols[name] = c
		}
	}

	var missing []string
	for _, name := range GearColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("sheet %q: %w: %s", ws.Name(), ErrMissingColumns, strings.Join(missing, ", "))
	}

	gear := []models.GearItem{}
	for r := 2; r <= ws.MaxRow(); r++ {
		get := func(name string) string { return ws.Cell(r, cols[name]) }

		count, _ := parseChannel(get(ColCount))
		item := models.GearItem{
			ID:           SlugID(get(ColManufacturer), get(ColModel)),
			MainCategory: get(ColMainCategory),
			SubCategory:  get(ColSubCategory),
			CategoryType: get(ColCategoryType),
			Manufacturer: get(ColManufacturer),
			Model:        get(ColModel),
			Count:        count,
			IOText:       get(ColIO),
			ControlsText: get(ColControls),
			PowerText:    get(ColPower),
			NotesText:    get(ColNotes),
			TechText:     get(ColTech),
			Tags:         []string{},
		}
		if item.Manufacturer == "" && item.Model == "" && item.MainCategory == "" {
			continue
		}
		gear = append(gear, item)
	}
	return gear, nil
}
