// Package solar converts a city and array size into daily generation figures.
package solar

import "github.com/omerfdk/sunsizer/core/model"

// Seasonal weights used to derive the average daily yield from the summer and
// winter per-kWp figures. These match the reference dataset's definition of
// "average".
const (
	summerWeight = 0.6
	winterWeight = 0.4
)

// YieldLookup resolves a city against the solar yield table.
type YieldLookup interface {
	SolarYield(city string) (model.SolarYield, bool)
}

// Estimate returns the average, summer and winter daily generation for the
// given city and array size in Wp. The yield scales linearly with array size;
// cities are matched exactly, with no interpolation between them.
func Estimate(yields YieldLookup, city string, wp float64) (*model.SolarEstimate, error) {
	if wp <= 0 {
		return nil, &model.InvalidInputError{Name: "solar_wp", Reason: "must be positive for a solar estimate"}
	}
	y, ok := yields.SolarYield(city)
	if !ok {
		return nil, &model.UnknownCityError{City: city}
	}
	kwp := wp / 1000
	summer := y.SummerKWhPerKWp * kwp
	winter := y.WinterKWhPerKWp * kwp
	return &model.SolarEstimate{
		City:           city,
		Wp:             wp,
		AvgDailyKWh:    summer*summerWeight + winter*winterWeight,
		SummerDailyKWh: summer,
		WinterDailyKWh: winter,
	}, nil
}
