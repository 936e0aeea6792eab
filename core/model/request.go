package model

// SelectedPack references a catalog pack by (group, key) and carries the
// usage level the user picked for it. Request-scoped, never stored.
type SelectedPack struct {
	Group PackGroup  `json:"group"`
	Key   string     `json:"key"`
	Usage UsageLevel `json:"usage_index"`
}

// EstimateRequest is the engine's single input. In expert mode the archetype
// baseline is optional and the selected packs are expected to describe the
// full load.
type EstimateRequest struct {
	ArchetypeID string         `json:"archetype_id,omitempty"`
	ExpertMode  bool           `json:"expert_mode"`
	City        string         `json:"city,omitempty"`
	SolarWp     float64        `json:"solar_wp"`
	Packs       []SelectedPack `json:"packs,omitempty"`
}

// SolarRequested reports whether the request asks for a solar estimate.
// A non-positive array size means "no solar configured", not an error.
func (r EstimateRequest) SolarRequested() bool { return r.SolarWp > 0 }

// ConsumptionProfile is the Builder's output: the merged daily-energy and
// peak-power bands for the requested load.
type ConsumptionProfile struct {
	DailyKWh Band `json:"daily_kwh_band"`
	PeakW    Band `json:"peak_power_band_w"`
}

// SolarEstimate summarizes daily generation for a city and array size.
type SolarEstimate struct {
	City           string  `json:"city"`
	Wp             float64 `json:"wp"`
	AvgDailyKWh    float64 `json:"avg_daily_kwh"`
	SummerDailyKWh float64 `json:"summer_daily_kwh"`
	WinterDailyKWh float64 `json:"winter_daily_kwh"`
}

// SavingsEstimate projects bill savings and CO2 reduction over the configured
// horizon. The daily offset is held constant across years; only the unit
// price compounds.
type SavingsEstimate struct {
	DailyOffsetKWh   float64 `json:"daily_offset_kwh"`
	Year1Savings     float64 `json:"year1_savings"`
	MultiYearSavings float64 `json:"multi_year_savings"`
	YearlyCO2Kg      float64 `json:"yearly_co2_kg"`
}

// ProfileReport combines the consumption profile with the optional solar and
// savings sections. Solar and Savings are nil when no solar is configured,
// which is distinct from a computed zero.
type ProfileReport struct {
	ConsumptionProfile
	Solar   *SolarEstimate   `json:"solar,omitempty"`
	Savings *SavingsEstimate `json:"savings,omitempty"`
}

// EstimateResult is the engine's single output. Recommendations holds zero or
// one tiers; an empty list means no catalog entry covers the load.
type EstimateResult struct {
	Profile         ProfileReport `json:"profile"`
	Recommendations []Tier        `json:"recommendations"`
}
