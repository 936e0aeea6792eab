package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBandRejectsDisorder(t *testing.T) {
	_, err := NewBand(5, 3, 8)
	assert.Error(t, err)
	_, err = NewBand(3, 9, 8)
	assert.Error(t, err)
	b, err := NewBand(3, 5, 8)
	require.NoError(t, err)
	assert.True(t, b.Ordered())
}

func TestBandAt(t *testing.T) {
	b := Band{Min: 1, Typical: 2, Max: 3}
	assert.Equal(t, 1.0, b.At(UsageLow))
	assert.Equal(t, 2.0, b.At(UsageTypical))
	assert.Equal(t, 3.0, b.At(UsageHigh))
}

func TestBandAddScalarKeepsOrdering(t *testing.T) {
	b := Band{Min: 3, Typical: 5, Max: 8}
	shifted := b.AddScalar(3)
	assert.Equal(t, Band{Min: 6, Typical: 8, Max: 11}, shifted)
	assert.True(t, shifted.Ordered())
}

func TestBandJSONArrayShape(t *testing.T) {
	b := Band{Min: 3, Typical: 5, Max: 8}
	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, "[3,5,8]", string(data))

	var back Band
	require.NoError(t, json.Unmarshal([]byte("[1, 2.5, 4]"), &back))
	assert.Equal(t, Band{Min: 1, Typical: 2.5, Max: 4}, back)
}

func TestBandJSONRejectsDisorder(t *testing.T) {
	var b Band
	err := json.Unmarshal([]byte("[5, 3, 8]"), &b)
	assert.Error(t, err)
}

func TestUsageLevelValid(t *testing.T) {
	assert.True(t, UsageLow.Valid())
	assert.True(t, UsageHigh.Valid())
	assert.False(t, UsageLevel(3).Valid())
	assert.False(t, UsageLevel(-1).Valid())
}
