package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxJSONArrayForm(t *testing.T) {
	box := Box{X1: 10, Y1: 20, X2: 110, Y2: 140}

	data, err := json.Marshal(box)
	require.NoError(t, err)
	assert.Equal(t, "[10,20,110,140]", string(data))

	var decoded Box
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, box, decoded)
}

func TestBoxSeedKeyMatchesCoordinateListing(t *testing.T) {
	box := Box{X1: 10, Y1: 20, X2: 110, Y2: 140}
	assert.Equal(t, "[10 20 110 140]", box.SeedKey())
}
