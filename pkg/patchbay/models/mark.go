package models

// RoutingMark is the canonical meaning of one matrix cell.
type RoutingMark string

const (
	// MarkPresent means the device is connected on the channel.
	MarkPresent RoutingMark = "present"
	// MarkNone means blank or explicitly not connected.
	MarkNone RoutingMark = "none"
	// MarkLeft is the left side of a stereo pair.
	MarkLeft RoutingMark = "left"
	// MarkRight is the right side of a stereo pair.
	MarkRight RoutingMark = "right"
	// MarkSidechainIn is a sidechain input.
	MarkSidechainIn RoutingMark = "sidechain_in"
	// MarkUnknown is a non-empty value that could not be classified.
	// Consumers must treat it as needing review, not as absence.
	MarkUnknown RoutingMark = "unknown"
)

// Marks lists every routing mark.
var Marks = []RoutingMark{MarkPresent, MarkNone, MarkLeft, MarkRight, MarkSidechainIn, MarkUnknown}

// Valid reports whether m is one of the defined marks.
func (m RoutingMark) Valid() bool {
	for _, v := range Marks {
		if m == v {
			return true
		}
	}
	return false
}

func (m RoutingMark) String() string { return string(m) }
