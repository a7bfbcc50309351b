package parser

import (
	"github.com/ifls/patchbay-go/pkg/patchbay/models"
)

// Wide layout columns: device names in A, channel numbers from B.
const (
	WideNameColumn    = 1
	WideChannelColumn = 2
)

// ParseWideMatrix assembles the wide matrix titled at headerRow. It returns
// the matrix and the last sheet row it consumed.
func ParseWideMatrix(ws Worksheet, section string, headerRow int) (*models.Matrix, int, error) {
	channels := ReadChannelHeader(ws, headerRow, WideChannelColumn)
	if len(channels) == 0 {
		return nil, 0, &DataError{
			Sheet: ws.Name(), Section: section, Layout: models.LayoutWide,
			Row: headerRow, Col: WideChannelColumn, Err: ErrNoChannels,
		}
	}

	devices := ReadDeviceRows(ws, headerRow+1, WideNameColumn)
	if len(devices) == 0 {
		return nil, 0, &DataError{
			Sheet: ws.Name(), Section: section, Layout: models.LayoutWide,
			Row: headerRow + 1, Col: WideNameColumn, Err: ErrNoDevices,
		}
	}

	m := assemble(ws, channels, devices, func(ch ChannelLabel, dev DeviceLabel) Anchor {
		return Anchor{Row: dev.At.Row, Col: ch.At.Col}
	})
	return m, headerRow + len(devices), nil
}

// ParseLegacyMatrix assembles the tall matrix whose "Kanal" title cell is at.
// Devices run right of the title, channels run down beneath it.
func ParseLegacyMatrix(ws Worksheet, section string, at Anchor) (*models.Matrix, int, error) {
	devices := ReadDeviceColumns(ws, at.Row, at.Col)
	if len(devices) == 0 {
		return nil, 0, &DataError{
			Sheet: ws.Name(), Section: section, Layout: models.LayoutLegacy,
			Row: at.Row, Col: at.Col + 1, Err: ErrNoDevices,
		}
	}

	channels := ReadChannels(ws, at.Row+1, at.Col)
	if len(channels) == 0 {
		return nil, 0, &DataError{
			Sheet: ws.Name(), Section: section, Layout: models.LayoutLegacy,
			Row: at.Row + 1, Col: at.Col, Err: ErrNoChannels,
		}
	}

	m := assemble(ws, channels, devices, func(ch ChannelLabel, dev DeviceLabel) Anchor {
		return Anchor{Row: ch.At.Row, Col: dev.At.Col}
	})
	return m, at.Row + len(channels), nil
}

// assemble fills one mark per (device, channel), reading the cell that
// cellAt picks for the pair. Blank cells become none, so every device map
// holds every channel.
func assemble(ws Worksheet, channels []ChannelLabel, devices []DeviceLabel, cellAt func(ChannelLabel, DeviceLabel) Anchor) *models.Matrix {
	m := &models.Matrix{
		Channels: make([]int, 0, len(channels)),
		Devices:  make([]models.Device, 0, len(devices)),
	}
	for _, ch := range channels {
		m.Channels = append(m.Channels, ch.Number)
	}
	for _, dev := range devices {
		marks := models.NewChannelMap(len(channels))
		for _, ch := range channels {
			pos := cellAt(ch, dev)
			marks.Set(ch.Number, NormalizeMark(ws.Cell(pos.Row, pos.Col)))
		}
		m.Devices = append(m.Devices, models.Device{Name: dev.Name, Map: marks})
	}
	return m
}
