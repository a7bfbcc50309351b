// Package models defines data structures for patchbay and gear extraction.
package models

import (
	"time"

	"github.com/google/uuid"
)

// SchemaVersion is the version of the JSON documents produced by this module.
const SchemaVersion = "0.1.0"

// Meta holds provenance for a generated document.
type Meta struct {
	// SchemaVersion is the document schema version.
	SchemaVersion string `json:"schema_version"`
	// GeneratedAtUTC is the generation time in RFC 3339 (seconds, UTC).
	GeneratedAtUTC string `json:"generated_at_utc"`
	// SourceFiles lists the input file names (no path).
	SourceFiles []string `json:"source_files"`
	// RunID identifies the extraction run.
	RunID string `json:"run_id,omitempty"`
	// Sheet is the worksheet the document was read from.
	Sheet string `json:"sheet,omitempty"`
	// Layouts maps section name to the layout that populated it.
	Layouts map[string]Layout `json:"layouts,omitempty"`
}

// NewMeta returns provenance stamped with now and a fresh run id.
func NewMeta(now time.Time, sourceFiles ...string) Meta {
	return Meta{
		SchemaVersion:  SchemaVersion,
		GeneratedAtUTC: FormatUTC(now),
		SourceFiles:    append([]string{}, sourceFiles...),
		RunID:          uuid.NewString(),
	}
}

// FormatUTC formats t as RFC 3339 in UTC with second precision.
func FormatUTC(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(time.RFC3339)
}
