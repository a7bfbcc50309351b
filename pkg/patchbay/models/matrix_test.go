package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelMapKeepsChannelOrder(t *testing.T) {
	m := NewChannelMap(3)
	m.Set(10, MarkPresent)
	m.Set(2, MarkNone)
	m.Set(10, MarkLeft)

	assert.Equal(t, []string{"10", "2"}, m.Keys())
	assert.Equal(t, 2, m.Len())

	mark, ok := m.Get(10)
	assert.True(t, ok)
	assert.Equal(t, MarkLeft, mark)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"10":"left","2":"none"}`, string(data))

	var back ChannelMap
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, m.Keys(), back.Keys())
}

func TestChannelMapRejectsNonObject(t *testing.T) {
	var m ChannelMap
	assert.Error(t, json.Unmarshal([]byte(`["1"]`), &m))
}

func TestRoutingDocumentJSON(t *testing.T) {
	marks := NewChannelMap(1)
	marks.Set(1, MarkSidechainIn)
	doc := RoutingDocument{
		Meta:    Meta{SchemaVersion: SchemaVersion, SourceFiles: []string{"p.xlsx"}},
		Outputs: &Matrix{Channels: []int{1}, Devices: []Device{{Name: "Comp", Map: marks}}},
	}
	assert.True(t, doc.Valid())

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"outputs":{"channels":[1],"devices":[{"name":"Comp","map":{"1":"sidechain_in"}}]}`)
	assert.NotContains(t, string(data), `"inputs"`)

	assert.False(t, (&RoutingDocument{}).Valid())
	assert.Equal(t, 1, doc.Outputs.CountMarks()[MarkSidechainIn])
}
