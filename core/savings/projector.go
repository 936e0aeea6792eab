// Package savings projects bill savings and CO2 reduction from a consumption
// profile and a solar yield estimate.
package savings

import "fmt"

const daysPerYear = 365

// Params holds the projection constants. They are supplied at process
// configuration time, not per request.
type Params struct {
	// UnitPrice is the electricity price per kWh in the configured currency.
	UnitPrice float64 `json:"unit_price"`
	// GrowthRate is the yearly price growth rate (0.25 means +25%/year).
	GrowthRate float64 `json:"growth_rate"`
	// CO2KgPerKWh is the grid CO2 intensity factor.
	CO2KgPerKWh float64 `json:"co2_kg_per_kwh"`
	// HorizonYears is the projection horizon.
	HorizonYears int `json:"horizon_years"`
}

// DefaultParams mirrors the reference dataset's assumptions.
func DefaultParams() Params {
	return Params{
		UnitPrice:    3.1,
		GrowthRate:   0.25,
		CO2KgPerKWh:  0.45,
		HorizonYears: 5,
	}
}

// SetDefaults fills unset fields from DefaultParams. A zero growth rate is a
// valid setting, so only a fully zero Params gets the default rate.
func (p *Params) SetDefaults() {
	def := DefaultParams()
	if *p == (Params{}) {
		*p = def
		return
	}
	if p.UnitPrice == 0 {
		p.UnitPrice = def.UnitPrice
	}
	if p.CO2KgPerKWh == 0 {
		p.CO2KgPerKWh = def.CO2KgPerKWh
	}
	if p.HorizonYears == 0 {
		p.HorizonYears = def.HorizonYears
	}
}

// Validate checks the params are usable for a projection.
func (p Params) Validate() error {
	if p.UnitPrice < 0 {
		return fmt.Errorf("unit_price must be non-negative")
	}
	if p.GrowthRate < -1 {
		return fmt.Errorf("growth_rate must not be below -1")
	}
	if p.CO2KgPerKWh < 0 {
		return fmt.Errorf("co2_kg_per_kwh must be non-negative")
	}
	if p.HorizonYears < 1 {
		return fmt.Errorf("horizon_years must be at least 1")
	}
	return nil
}

// Projection is the computed savings summary.
type Projection struct {
	DailyOffsetKWh   float64
	Year1Savings     float64
	MultiYearSavings float64
	YearlyCO2Kg      float64
}

// Project computes the daily grid offset and the resulting financial and
// emissions figures. The offset is capped at actual consumption; surplus
// generation earns no export credit. Across the horizon the offset is held
// constant and only the unit price compounds.
func Project(p Params, typicalDailyKWh, avgDailySolarKWh float64) Projection {
	offset := min(typicalDailyKWh, avgDailySolarKWh)
	yearlyKWh := offset * daysPerYear

	multiYear := 0.0
	price := p.UnitPrice
	for year := 0; year < p.HorizonYears; year++ {
		multiYear += yearlyKWh * price
		price *= 1 + p.GrowthRate
	}

	return Projection{
		DailyOffsetKWh:   offset,
		Year1Savings:     yearlyKWh * p.UnitPrice,
		MultiYearSavings: multiYear,
		YearlyCO2Kg:      yearlyKWh * p.CO2KgPerKWh,
	}
}
