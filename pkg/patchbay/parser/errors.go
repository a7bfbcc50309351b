package parser

import (
	"errors"
	"fmt"

	"github.com/ifls/patchbay-go/pkg/patchbay/models"
)

var (
	// ErrNoHeader indicates no matrix header of any layout was found.
	ErrNoHeader = errors.New("no recognizable matrix header")
	// ErrNoChannels indicates a header without channel numbers.
	ErrNoChannels = errors.New("no channel numbers found")
	// ErrNoDevices indicates a header without devices.
	ErrNoDevices = errors.New("no devices found")
	// ErrMissingColumns indicates an inventory sheet lacks required columns.
	ErrMissingColumns = errors.New("missing columns")
)

// ConfigurationError reports that nothing extractable was found in a sheet.
type ConfigurationError struct {
	Sheet   string
	Section string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Section == "" {
		return fmt.Sprintf("sheet %q: %v (looked for wide %q/%q and legacy %q headers)",
			e.Sheet, e.Err, PrefixWideOutputs, PrefixWideInputs, PrefixLegacy)
	}
	return fmt.Sprintf("sheet %q, %s: %v", e.Sheet, e.Section, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// DataError reports a header whose body is missing or malformed.
// Row and Col point at the cell where the body was expected.
type DataError struct {
	Sheet   string
	Section string
	Layout  models.Layout
	Row     int
	Col     int
	Err     error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("sheet %q, %s (%s matrix) at row %d, col %d: %v",
		e.Sheet, e.Section, e.Layout, e.Row, e.Col, e.Err)
}

func (e *DataError) Unwrap() error {
	return e.Err
}
