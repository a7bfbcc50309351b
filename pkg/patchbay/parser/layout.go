package parser

import (
	"errors"

	"github.com/ifls/patchbay-go/pkg/patchbay/models"
	"go.uber.org/zap"
)

// LayoutResult is the outcome of one layout attempt for one section.
// A zero Layout means no header was found.
type LayoutResult struct {
	Layout  models.Layout
	Header  Anchor
	Matrix  *models.Matrix
	LastRow int
}

// Found reports whether the attempt produced a matrix.
func (r LayoutResult) Found() bool {
	return r.Matrix != nil
}

// RoutingOptions configures ParseRouting.
type RoutingOptions struct {
	// OptionalInputs drops an inputs section whose body is empty instead of
	// failing the extraction.
	OptionalInputs bool
	// Logger receives progress and review warnings. Nil disables logging.
	Logger *zap.Logger
}

// ParseRouting extracts the outputs and inputs matrices from ws.
//
// Each section is tried in the wide layout first. Outputs fall back to the
// legacy layout, and a legacy outputs matrix lets inputs be searched for as a
// second legacy matrix below it. At least one section must be found.
// The returned document carries Meta.Sheet and Meta.Layouts only.
func ParseRouting(ws Worksheet, opts RoutingOptions) (*models.RoutingDocument, error) {
	d := &dispatcher{ws: ws, opts: opts, log: opts.Logger}
	if d.log == nil {
		d.log = zap.NewNop()
	}
	d.log = d.log.With(zap.String("sheet", ws.Name()))

	out, err := d.wide(models.SectionOutputs, PrefixWideOutputs)
	if err != nil {
		return nil, err
	}
	in, err := d.wide(models.SectionInputs, PrefixWideInputs)
	if err != nil {
		return nil, err
	}

	if !out.Found() {
		out, err = d.legacy(models.SectionOutputs, 1)
		if err != nil {
			return nil, err
		}
		if out.Layout == models.LayoutLegacy && !in.Found() {
			in, err = d.legacy(models.SectionInputs, out.LastRow+1)
			if err != nil {
				return nil, err
			}
		}
	}

	if !out.Found() && !in.Found() {
		return nil, &ConfigurationError{Sheet: ws.Name(), Err: ErrNoHeader}
	}

	doc := &models.RoutingDocument{
		Meta: models.Meta{
			Sheet:   ws.Name(),
			Layouts: make(map[string]models.Layout),
		},
	}
	if out.Found() {
		doc.Outputs = out.Matrix
		doc.Meta.Layouts[models.SectionOutputs] = out.Layout
	}
	if in.Found() {
		doc.Inputs = in.Matrix
		doc.Meta.Layouts[models.SectionInputs] = in.Layout
	}
	if out.Found() && in.Found() && out.Layout != in.Layout {
		d.log.Warn("sections use different layouts, review the sheet",
			zap.String("outputs", string(out.Layout)),
			zap.String("inputs", string(in.Layout)))
	}
	return doc, nil
}

type dispatcher struct {
	ws   Worksheet
	opts RoutingOptions
	log  *zap.Logger
}

func (d *dispatcher) wide(section, prefix string) (LayoutResult, error) {
	row, ok := FindRowWithPrefix(d.ws, WideNameColumn, prefix)
	if !ok {
		return LayoutResult{}, nil
	}
	header := Anchor{Row: row, Col: WideNameColumn}
	d.log.Debug("found matrix header",
		zap.String("section", section), zap.String("layout", string(models.LayoutWide)),
		zap.Int("row", header.Row), zap.Int("col", header.Col))

	m, last, err := ParseWideMatrix(d.ws, section, row)
	return d.result(section, models.LayoutWide, header, m, last, err)
}

func (d *dispatcher) legacy(section string, fromRow int) (LayoutResult, error) {
	header, ok := FindMatrixHeader(d.ws, fromRow)
	if !ok {
		return LayoutResult{}, nil
	}
	d.log.Debug("found matrix header",
		zap.String("section", section), zap.String("layout", string(models.LayoutLegacy)),
		zap.Int("row", header.Row), zap.Int("col", header.Col))

	m, last, err := ParseLegacyMatrix(d.ws, section, header)
	return d.result(section, models.LayoutLegacy, header, m, last, err)
}

func (d *dispatcher) result(section string, layout models.Layout, header Anchor, m *models.Matrix, last int, err error) (LayoutResult, error) {
	if err != nil {
		var dataErr *DataError
		if section == models.SectionInputs && d.opts.OptionalInputs && errors.As(err, &dataErr) {
			d.log.Warn("dropping optional section", zap.String("section", section), zap.Error(err))
			return LayoutResult{}, nil
		}
		return LayoutResult{}, err
	}

	d.log.Info("assembled matrix",
		zap.String("section", section),
		zap.String("layout", string(layout)),
		zap.Int("channels", len(m.Channels)),
		zap.Int("devices", len(m.Devices)),
		zap.Int("unknown_marks", m.CountMarks()[models.MarkUnknown]))
	return LayoutResult{Layout: layout, Header: header, Matrix: m, LastRow: last}, nil
}
