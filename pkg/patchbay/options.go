// Package patchbay extracts routing matrices and the device inventory from
// the studio's patchbay and gear workbooks.
package patchbay

import (
	"time"

	"go.uber.org/zap"
)

// Options configures extraction behavior.
type Options struct {
	// Sheet names the worksheet to read. Empty means the active sheet for
	// patchbay workbooks and the first sheet for gear workbooks.
	Sheet string
	// Area limits the patchbay scan to an A1 range or a defined name.
	Area string
	// OptionalInputs lets a patchbay document omit an inputs section whose
	// header has no body.
	OptionalInputs bool
	// Logger receives structured progress logs. If nil, nothing is logged.
	Logger *zap.Logger
	// Now stamps provenance. If nil, time.Now is used.
	Now func() time.Time
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}
