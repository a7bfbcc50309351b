package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Layout names a spreadsheet matrix convention.
type Layout string

const (
	// LayoutWide has channel numbers across the header row and device names down column A.
	LayoutWide Layout = "wide"
	// LayoutLegacy has device names across the header row and channel numbers down the "Kanal" column.
	LayoutLegacy Layout = "legacy"
)

// Section names.
const (
	SectionOutputs = "outputs"
	SectionInputs  = "inputs"
)

// ChannelMap maps stringified channel numbers to marks, keeping insertion order.
type ChannelMap struct {
	keys  []string
	marks map[string]RoutingMark
}

// NewChannelMap returns an empty map sized for n channels.
func NewChannelMap(n int) *ChannelMap {
	return &ChannelMap{
		keys:  make([]string, 0, n),
		marks: make(map[string]RoutingMark, n),
	}
}

// Set stores the mark for channel ch. A repeated channel keeps its first
// position and takes the latest mark.
func (m *ChannelMap) Set(ch int, mark RoutingMark) {
	key := strconv.Itoa(ch)
	if m.marks == nil {
		m.marks = make(map[string]RoutingMark)
	}
	if _, ok := m.marks[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.marks[key] = mark
}

// Get returns the mark for channel ch.
func (m *ChannelMap) Get(ch int) (RoutingMark, bool) {
	if m == nil {
		return "", false
	}
	mark, ok := m.marks[strconv.Itoa(ch)]
	return mark, ok
}

// Keys returns the channel keys in insertion order.
func (m *ChannelMap) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string{}, m.keys...)
}

// Len returns the number of distinct channels.
func (m *ChannelMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// MarshalJSON writes the map as an object with keys in channel order.
func (m *ChannelMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if m != nil {
		for i, k := range m.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			val, err := json.Marshal(string(m.marks[k]))
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(val)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object of channel keys to marks, preserving key order.
func (m *ChannelMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("channel map: expected object, got %v", tok)
	}
	m.keys = nil
	m.marks = make(map[string]RoutingMark)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var mark RoutingMark
		if err := dec.Decode(&mark); err != nil {
			return fmt.Errorf("channel map key %q: %w", key, err)
		}
		if _, ok := m.marks[key]; !ok {
			m.keys = append(m.keys, key)
		}
		m.marks[key] = mark
	}
	_, err = dec.Token()
	return err
}

// Device is one named device and its per-channel marks.
type Device struct {
	// Name is the device label as written in the sheet.
	Name string `json:"name"`
	// Map holds a mark for every channel of the owning matrix.
	Map *ChannelMap `json:"map"`
}

// Matrix is the channel by device grid for one section.
type Matrix struct {
	// Channels are the channel numbers in sheet order, duplicates kept.
	Channels []int `json:"channels"`
	// Devices are the devices in sheet order.
	Devices []Device `json:"devices"`
}

// CountMarks returns how many cells carry each mark.
func (m *Matrix) CountMarks() map[RoutingMark]int {
	counts := make(map[RoutingMark]int)
	for _, d := range m.Devices {
		for _, k := range d.Map.Keys() {
			counts[d.Map.marks[k]]++
		}
	}
	return counts
}

// RoutingDocument is the extraction result for one patchbay workbook.
type RoutingDocument struct {
	Meta    Meta    `json:"meta"`
	Outputs *Matrix `json:"outputs,omitempty"`
	Inputs  *Matrix `json:"inputs,omitempty"`
}

// Valid reports whether at least one section is populated.
func (d *RoutingDocument) Valid() bool {
	return d.Outputs != nil || d.Inputs != nil
}
