package solar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omerfdk/sunsizer/core/model"
)

type fakeTable map[string]model.SolarYield

func (f fakeTable) SolarYield(city string) (model.SolarYield, bool) {
	y, ok := f[city]
	return y, ok
}

func izmirTable() fakeTable {
	// 0.6*5.5 + 0.4*3.0 = 4.5 kWh/kWp/day average
	return fakeTable{
		"Izmir": {City: "Izmir", SummerKWhPerKWp: 5.5, WinterKWhPerKWp: 3.0},
	}
}

func TestEstimateSeasonalFigures(t *testing.T) {
	est, err := Estimate(izmirTable(), "Izmir", 2000)
	require.NoError(t, err)
	assert.Equal(t, "Izmir", est.City)
	assert.InDelta(t, 11.0, est.SummerDailyKWh, 1e-9)
	assert.InDelta(t, 6.0, est.WinterDailyKWh, 1e-9)
	assert.InDelta(t, 9.0, est.AvgDailyKWh, 1e-9)
}

func TestEstimateLinearInArraySize(t *testing.T) {
	small, err := Estimate(izmirTable(), "Izmir", 1500)
	require.NoError(t, err)
	big, err := Estimate(izmirTable(), "Izmir", 3000)
	require.NoError(t, err)
	assert.InDelta(t, 2*small.AvgDailyKWh, big.AvgDailyKWh, 1e-9)
	assert.InDelta(t, 2*small.SummerDailyKWh, big.SummerDailyKWh, 1e-9)
	assert.InDelta(t, 2*small.WinterDailyKWh, big.WinterDailyKWh, 1e-9)
}

func TestEstimateUnknownCity(t *testing.T) {
	_, err := Estimate(izmirTable(), "Atlantis", 2000)
	var unknown *model.UnknownCityError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Atlantis", unknown.City)
}

func TestEstimateNonPositiveArray(t *testing.T) {
	_, err := Estimate(izmirTable(), "Izmir", 0)
	var invalid *model.InvalidInputError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "solar_wp", invalid.Field())
}
