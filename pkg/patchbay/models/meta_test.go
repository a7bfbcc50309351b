package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeta(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 30, 15, 999, time.FixedZone("CET", 3600))
	meta := NewMeta(now, "patchbay.xlsx")

	assert.Equal(t, SchemaVersion, meta.SchemaVersion)
	assert.Equal(t, "2026-03-01T11:30:15Z", meta.GeneratedAtUTC)
	assert.Equal(t, []string{"patchbay.xlsx"}, meta.SourceFiles)
	_, err := uuid.Parse(meta.RunID)
	require.NoError(t, err)
}
