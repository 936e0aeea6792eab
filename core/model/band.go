package model

import (
	"encoding/json"
	"fmt"
)

// UsageLevel selects one element of a Band. The three levels are discrete;
// no interpolation between them is performed.
type UsageLevel int

const (
	UsageLow UsageLevel = iota
	UsageTypical
	UsageHigh
)

// Valid reports whether the level is one of the three defined values.
func (u UsageLevel) Valid() bool { return u >= UsageLow && u <= UsageHigh }

func (u UsageLevel) String() string {
	switch u {
	case UsageLow:
		return "low"
	case UsageTypical:
		return "typical"
	case UsageHigh:
		return "high"
	default:
		return fmt.Sprintf("usage(%d)", int(u))
	}
}

// Band describes a quantity's expected range as an ordered (min, typical, max)
// triple. On the wire it is a 3-element JSON array, matching the dataset files.
type Band struct {
	Min     float64
	Typical float64
	Max     float64
}

// NewBand builds a Band and enforces min <= typical <= max.
func NewBand(min, typical, max float64) (Band, error) {
	b := Band{Min: min, Typical: typical, Max: max}
	if !b.Ordered() {
		return Band{}, fmt.Errorf("band [%g, %g, %g] violates min <= typical <= max", min, typical, max)
	}
	return b, nil
}

// Ordered reports whether min <= typical <= max holds.
func (b Band) Ordered() bool { return b.Min <= b.Typical && b.Typical <= b.Max }

// At returns the element selected by the usage level.
func (b Band) At(u UsageLevel) float64 {
	switch u {
	case UsageLow:
		return b.Min
	case UsageHigh:
		return b.Max
	default:
		return b.Typical
	}
}

// AddScalar shifts all three positions by the same amount. A pack contributes
// one realized scalar at the chosen usage level, so the shift preserves the
// band ordering.
func (b Band) AddScalar(v float64) Band {
	return Band{Min: b.Min + v, Typical: b.Typical + v, Max: b.Max + v}
}

// MarshalJSON encodes the band as [min, typical, max].
func (b Band) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{b.Min, b.Typical, b.Max})
}

// UnmarshalJSON decodes a 3-element array and validates its ordering.
func (b *Band) UnmarshalJSON(data []byte) error {
	var arr [3]float64
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("band must be a [min, typical, max] array: %w", err)
	}
	nb, err := NewBand(arr[0], arr[1], arr[2])
	if err != nil {
		return err
	}
	*b = nb
	return nil
}
