package patchbay

import (
	"errors"
	"fmt"

	"github.com/ifls/patchbay-go/pkg/patchbay/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// Engine errors, re-exported for errors.Is checks by callers.
var (
	ErrNoHeader       = parser.ErrNoHeader
	ErrNoChannels     = parser.ErrNoChannels
	ErrNoDevices      = parser.ErrNoDevices
	ErrMissingColumns = parser.ErrMissingColumns
)

// ExtractionError represents an error during extraction.
type ExtractionError struct {
	Path      string
	SheetName string
	Component string // "patchbay" or "gear"
	Err       error
}

func (e *ExtractionError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("extraction error in %s (%s): %v", e.Path, e.Component, e.Err)
	}
	return fmt.Sprintf("extraction error in %s sheet %q (%s): %v", e.Path, e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(path, sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		Path:      path,
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}

// IsConfigurationError reports whether err means no matrix layout was found.
func IsConfigurationError(err error) bool {
	var target *parser.ConfigurationError
	return errors.As(err, &target)
}

// IsDataError reports whether err means a matrix header had no usable body.
func IsDataError(err error) bool {
	var target *parser.DataError
	return errors.As(err, &target)
}
