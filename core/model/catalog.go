package model

import "fmt"

// PackGroup identifies the electrical interface a pack belongs to.
type PackGroup string

const (
	GroupAC1P PackGroup = "AC1P"
	GroupAC3P PackGroup = "AC3P"
	GroupDC12 PackGroup = "DC12"
	GroupDC24 PackGroup = "DC24"
	GroupDC48 PackGroup = "DC48"
)

// PackGroups lists all known groups in a stable order.
var PackGroups = []PackGroup{GroupAC1P, GroupAC3P, GroupDC12, GroupDC24, GroupDC48}

// ParsePackGroup accepts the canonical group names plus the legacy dataset
// aliases ("ac1p", "dc12v", ...).
func ParsePackGroup(s string) (PackGroup, error) {
	switch s {
	case "AC1P", "ac1p", "ac", "ac_1p":
		return GroupAC1P, nil
	case "AC3P", "ac3p", "ac_3p":
		return GroupAC3P, nil
	case "DC12", "dc12", "dc12v", "DC12V":
		return GroupDC12, nil
	case "DC24", "dc24", "dc24v", "DC24V":
		return GroupDC24, nil
	case "DC48", "dc48", "dc48v", "DC48V":
		return GroupDC48, nil
	default:
		return "", fmt.Errorf("unknown pack group %q", s)
	}
}

// Valid reports whether the group is one of the five known interfaces.
func (g PackGroup) Valid() bool {
	switch g {
	case GroupAC1P, GroupAC3P, GroupDC12, GroupDC24, GroupDC48:
		return true
	}
	return false
}

// Archetype is a catalog baseline load profile for a typical home
// configuration. Immutable reference data; at most one per request.
type Archetype struct {
	Key         string `json:"key"`
	Name        string `json:"name,omitempty"`
	BaseLoadKWh Band   `json:"base_load_kwh_day"`
	BasePeakW   Band   `json:"base_peak_w"`
}

// Pack is a catalog entry for a cluster of appliances sharing an electrical
// interface. Its bands describe the probabilistic daily draw; a request picks
// one scalar per band via a usage level.
type Pack struct {
	Key    string    `json:"key"`
	Name   string    `json:"name,omitempty"`
	Group  PackGroup `json:"group,omitempty"`
	KWhDay Band      `json:"kwh_day"`
	PeakW  Band      `json:"peak_w"`
}

// SolarYield holds a city's per-kWp daily generation figures. The average is
// derived with the fixed seasonal weighting used by the dataset.
type SolarYield struct {
	City            string  `json:"city"`
	SummerKWhPerKWp float64 `json:"summer_kwh_per_kwp"`
	WinterKWhPerKWp float64 `json:"winter_kwh_per_kwp"`
}

// Tier describes a battery+inverter bundle in the sizing catalog. Capacity
// and inverter figures are pre-margined; the selector applies no additional
// multiplier on top of them.
type Tier struct {
	TierID     string   `json:"tier_id"`
	Name       string   `json:"name"`
	CapacityWh float64  `json:"capacity_wh_total"`
	InverterW  float64  `json:"inverter_w_continuous"`
	PVInputW   float64  `json:"pv_input_w_max,omitempty"`
	Products   []string `json:"products,omitempty"`
}
