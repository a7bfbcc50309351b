package parser

// Anchor is a 1-based cell position.
type Anchor struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ChannelLabel is a channel number and the cell it was read from.
type ChannelLabel struct {
	Number int
	At     Anchor
}

// DeviceLabel is a device name and the cell it was read from.
type DeviceLabel struct {
	Name string
	At   Anchor
}

// ReadChannels reads channel numbers down col starting at startRow. The run
// ends at the first blank or non-numeric cell; nothing past it is read.
func ReadChannels(ws Worksheet, startRow, col int) []ChannelLabel {
	var channels []ChannelLabel
	for r := startRow; r <= ws.MaxRow(); r++ {
		ch, ok := parseChannel(ws.Cell(r, col))
		if !ok {
			break
		}
		channels = append(channels, ChannelLabel{Number: ch, At: Anchor{Row: r, Col: col}})
	}
	return channels
}

// ReadChannelHeader reads channel numbers across row starting at startCol,
// with the same stop rule as ReadChannels.
func ReadChannelHeader(ws Worksheet, row, startCol int) []ChannelLabel {
	var channels []ChannelLabel
	for c := startCol; c <= ws.MaxColumn(); c++ {
		ch, ok := parseChannel(ws.Cell(row, c))
		if !ok {
			break
		}
		channels = append(channels, ChannelLabel{Number: ch, At: Anchor{Row: row, Col: c}})
	}
	return channels
}

// ReadDeviceColumns reads device names across headerRow, starting one column
// right of titleCol, until the first blank cell.
func ReadDeviceColumns(ws Worksheet, headerRow, titleCol int) []DeviceLabel {
	var devices []DeviceLabel
	for c := titleCol + 1; c <= ws.MaxColumn(); c++ {
		name := ws.Cell(headerRow, c)
		if name == "" {
			break
		}
		devices = append(devices, DeviceLabel{Name: name, At: Anchor{Row: headerRow, Col: c}})
	}
	return devices
}

// ReadDeviceRows reads device names down nameCol starting at startRow until
// the first blank name.
func ReadDeviceRows(ws Worksheet, startRow, nameCol int) []DeviceLabel {
	var devices []DeviceLabel
	for r := startRow; r <= ws.MaxRow(); r++ {
		name := ws.Cell(r, nameCol)
		if name == "" {
			break
		}
		devices = append(devices, DeviceLabel{Name: name, At: Anchor{Row: r, Col: nameCol}})
	}
	return devices
}
