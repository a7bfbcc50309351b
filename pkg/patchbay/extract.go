package patchbay

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ifls/patchbay-go/pkg/patchbay/models"
	"github.com/ifls/patchbay-go/pkg/patchbay/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Component names used in ExtractionError.
const (
	ComponentPatchbay = "patchbay"
	ComponentGear     = "gear"
)

// ExtractRouting extracts the outputs and inputs matrices from a patchbay workbook.
func ExtractRouting(path string, opts Options) (*models.RoutingDocument, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, NewExtractionError(path, "", ComponentPatchbay, err)
	}
	defer f.Close()

	sheetName := opts.Sheet
	if sheetName == "" {
		sheetName = f.GetSheetName(f.GetActiveSheetIndex())
	}

	ws, err := parser.LoadWorksheet(f, sheetName)
	if err != nil {
		return nil, NewExtractionError(path, sheetName, ComponentPatchbay, err)
	}
	if opts.Area != "" {
		area, err := parser.ResolveArea(f, sheetName, opts.Area)
		if err != nil {
			return nil, NewExtractionError(path, sheetName, ComponentPatchbay, err)
		}
		ws = ws.Clip(area)
	}

	return RoutingFromWorksheet(ws, filepath.Base(path), opts)
}

// RoutingFromWorksheet runs the matrix extraction on an already loaded sheet
// and stamps provenance for sourceFile.
func RoutingFromWorksheet(ws parser.Worksheet, sourceFile string, opts Options) (*models.RoutingDocument, error) {
	log := opts.logger().With(zap.String("source", sourceFile))
	doc, err := parser.ParseRouting(ws, parser.RoutingOptions{
		OptionalInputs: opts.OptionalInputs,
		Logger:         log,
	})
	if err != nil {
		return nil, NewExtractionError(sourceFile, ws.Name(), ComponentPatchbay, err)
	}

	meta := models.NewMeta(opts.now(), sourceFile)
	meta.Sheet = doc.Meta.Sheet
	meta.Layouts = doc.Meta.Layouts
	doc.Meta = meta
	return doc, nil
}

// ConvertGear reads the device inventory workbook.
func ConvertGear(path string, opts Options) (*models.GearDocument, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, NewExtractionError(path, "", ComponentGear, err)
	}
	defer f.Close()

	sheetName := opts.Sheet
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, NewExtractionError(path, "", ComponentGear, ErrInvalidFormat)
		}
		sheetName = sheets[0]
	}

	ws, err := parser.LoadWorksheet(f, sheetName)
	if err != nil {
		return nil, NewExtractionError(path, sheetName, ComponentGear, err)
	}
	gear, err := parser.ParseGear(ws)
	if err != nil {
		return nil, NewExtractionError(path, sheetName, ComponentGear, err)
	}

	opts.logger().Info("read gear inventory",
		zap.String("source", filepath.Base(path)),
		zap.String("sheet", sheetName),
		zap.Int("items", len(gear)))

	return &models.GearDocument{
		Meta: models.NewMeta(opts.now(), filepath.Base(path)),
		Gear: gear,
	}, nil
}

func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return f, nil
}
