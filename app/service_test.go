package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omerfdk/sunsizer/config"
	"github.com/omerfdk/sunsizer/core/model"
	"github.com/omerfdk/sunsizer/core/savings"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.SetDefaults()
	cfg.Catalog.Dir = filepath.Join("testdata", "datasets")
	cfg.Projection = savings.DefaultParams()
	return cfg
}

func TestNewLoadsCatalogs(t *testing.T) {
	svc, err := New(testConfig())
	require.NoError(t, err)
	defer func() { assert.NoError(t, svc.Close()) }()

	snap := svc.Store.Snapshot()
	_, ok := snap.Archetype("two_room_apartment")
	assert.True(t, ok)

	res, err := svc.Engine.Estimate(model.EstimateRequest{
		ArchetypeID: "two_room_apartment",
		City:        "Izmir",
		SolarWp:     2000,
	})
	require.NoError(t, err)
	require.NotNil(t, res.Profile.Savings)
	assert.InDelta(t, 5.0, res.Profile.Savings.DailyOffsetKWh, 1e-9)
}

func TestNewFailsOnMissingCatalogDir(t *testing.T) {
	cfg := testConfig()
	cfg.Catalog.Dir = filepath.Join("testdata", "missing")
	_, err := New(cfg)
	assert.Error(t, err)
}
