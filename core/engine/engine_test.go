package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omerfdk/sunsizer/core/catalog"
	"github.com/omerfdk/sunsizer/core/model"
	"github.com/omerfdk/sunsizer/core/savings"
	"github.com/omerfdk/sunsizer/infra/logger"
)

func testSnapshot() *catalog.Snapshot {
	return catalog.NewSnapshot(
		[]model.Archetype{{
			Key:         "two_room_apartment",
			BaseLoadKWh: model.Band{Min: 3, Typical: 5, Max: 8},
			BasePeakW:   model.Band{Min: 400, Typical: 900, Max: 1500},
		}},
		[]model.Pack{{
			Key:    "camper_fridge",
			Group:  model.GroupDC12,
			KWhDay: model.Band{Min: 1, Typical: 2, Max: 3},
			PeakW:  model.Band{Min: 50, Typical: 80, Max: 120},
		}},
		[]model.SolarYield{{City: "Izmir", SummerKWhPerKWp: 5.5, WinterKWhPerKWp: 3.0}},
		[]model.Tier{
			{TierID: "tier_1", CapacityWh: 2048, InverterW: 2400},
			{TierID: "tier_2", CapacityWh: 7200, InverterW: 3600},
		},
	)
}

func testEngine() *Engine {
	return New(catalog.NewStore(testSnapshot()), savings.DefaultParams(), logger.NopLogger{})
}

func TestEstimateArchetypeWithSolar(t *testing.T) {
	eng := testEngine()
	res, err := eng.Estimate(model.EstimateRequest{
		ArchetypeID: "two_room_apartment",
		City:        "Izmir",
		SolarWp:     2000,
	})
	require.NoError(t, err)

	assert.Equal(t, model.Band{Min: 3, Typical: 5, Max: 8}, res.Profile.DailyKWh)
	require.NotNil(t, res.Profile.Solar)
	assert.InDelta(t, 9.0, res.Profile.Solar.AvgDailyKWh, 1e-9)
	require.NotNil(t, res.Profile.Savings)
	// Offset is capped at consumption even though solar covers more.
	assert.InDelta(t, 5.0, res.Profile.Savings.DailyOffsetKWh, 1e-9)
	assert.InDelta(t, 5*365*3.1, res.Profile.Savings.Year1Savings, 1e-6)

	require.Len(t, res.Recommendations, 1)
	assert.Equal(t, "tier_2", res.Recommendations[0].TierID)
}

func TestEstimatePackShiftsBandsUniformly(t *testing.T) {
	eng := testEngine()
	res, err := eng.Estimate(model.EstimateRequest{
		ArchetypeID: "two_room_apartment",
		Packs:       []model.SelectedPack{{Group: model.GroupDC12, Key: "camper_fridge", Usage: model.UsageHigh}},
	})
	require.NoError(t, err)
	assert.Equal(t, model.Band{Min: 6, Typical: 8, Max: 11}, res.Profile.DailyKWh)
}

func TestEstimateNoSolarConfigured(t *testing.T) {
	eng := testEngine()
	res, err := eng.Estimate(model.EstimateRequest{ArchetypeID: "two_room_apartment", SolarWp: 0})
	require.NoError(t, err)
	assert.Nil(t, res.Profile.Solar)
	assert.Nil(t, res.Profile.Savings)
	// Recommendations are still computed from consumption alone.
	require.Len(t, res.Recommendations, 1)
	assert.Equal(t, "tier_2", res.Recommendations[0].TierID)
}

func TestEstimateUnknownCity(t *testing.T) {
	eng := testEngine()
	_, err := eng.Estimate(model.EstimateRequest{
		ArchetypeID: "two_room_apartment",
		City:        "Atlantis",
		SolarWp:     2000,
	})
	var unknown *model.UnknownCityError
	require.True(t, errors.As(err, &unknown))
}

func TestEstimateCityRequiredWithSolar(t *testing.T) {
	eng := testEngine()
	_, err := eng.Estimate(model.EstimateRequest{ArchetypeID: "two_room_apartment", SolarWp: 2000})
	var invalid *model.InvalidInputError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "city", invalid.Field())
}

func TestEstimateNegativeArraySize(t *testing.T) {
	eng := testEngine()
	_, err := eng.Estimate(model.EstimateRequest{ArchetypeID: "two_room_apartment", SolarWp: -500})
	var invalid *model.InvalidInputError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "solar_wp", invalid.Field())
}

func TestEstimateUnknownArchetype(t *testing.T) {
	eng := testEngine()
	_, err := eng.Estimate(model.EstimateRequest{ArchetypeID: "castle"})
	var invalid *model.InvalidInputError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "archetype_id", invalid.Field())
}

func TestEstimateIncompleteProfile(t *testing.T) {
	eng := testEngine()
	_, err := eng.Estimate(model.EstimateRequest{})
	var incomplete *model.IncompleteProfileError
	require.True(t, errors.As(err, &incomplete))

	_, err = eng.Estimate(model.EstimateRequest{ExpertMode: true})
	require.True(t, errors.As(err, &incomplete))
	assert.True(t, incomplete.ExpertMode)
}

func TestEstimateExpertModePacksOnly(t *testing.T) {
	eng := testEngine()
	res, err := eng.Estimate(model.EstimateRequest{
		ExpertMode: true,
		Packs:      []model.SelectedPack{{Group: model.GroupDC12, Key: "camper_fridge", Usage: model.UsageTypical}},
	})
	require.NoError(t, err)
	assert.Equal(t, model.Band{Min: 2, Typical: 2, Max: 2}, res.Profile.DailyKWh)
	require.Len(t, res.Recommendations, 1)
	assert.Equal(t, "tier_1", res.Recommendations[0].TierID)
}

func TestEstimateUnknownPackRejectedBeforeComputation(t *testing.T) {
	eng := testEngine()
	_, err := eng.Estimate(model.EstimateRequest{
		ArchetypeID: "two_room_apartment",
		Packs:       []model.SelectedPack{{Group: model.GroupAC1P, Key: "ghost", Usage: model.UsageTypical}},
	})
	var unknown *model.UnknownPackError
	require.True(t, errors.As(err, &unknown))
}

func TestEstimateLoadExceedsCatalog(t *testing.T) {
	snap := catalog.NewSnapshot(
		[]model.Archetype{{
			Key:         "mansion",
			BaseLoadKWh: model.Band{Min: 30, Typical: 40, Max: 60},
			BasePeakW:   model.Band{Min: 5000, Typical: 9000, Max: 15000},
		}},
		nil, nil,
		[]model.Tier{{TierID: "tier_1", CapacityWh: 2048, InverterW: 2400}},
	)
	eng := New(catalog.NewStore(snap), savings.DefaultParams(), logger.NopLogger{})
	res, err := eng.Estimate(model.EstimateRequest{ArchetypeID: "mansion"})
	require.NoError(t, err)
	// Oversized load is not an error: the caller is told nothing fits.
	assert.Empty(t, res.Recommendations)
	assert.NotNil(t, res.Recommendations)
}

func TestEstimateInvalidGroup(t *testing.T) {
	eng := testEngine()
	_, err := eng.Estimate(model.EstimateRequest{
		ArchetypeID: "two_room_apartment",
		Packs:       []model.SelectedPack{{Group: "AC9P", Key: "x", Usage: model.UsageTypical}},
	})
	var invalid *model.InvalidInputError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "group", invalid.Field())
}
