package initdata

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omerfdk/sunsizer/core/catalog"
	"github.com/omerfdk/sunsizer/core/model"
)

func TestHandlerServesCatalogs(t *testing.T) {
	snap := catalog.NewSnapshot(
		[]model.Archetype{{Key: "studio_flat", BaseLoadKWh: model.Band{Min: 2, Typical: 3.5, Max: 5.5}, BasePeakW: model.Band{Min: 300, Typical: 700, Max: 1200}}},
		[]model.Pack{{Key: "lighting", Group: model.GroupAC1P, KWhDay: model.Band{Min: 0.2, Typical: 0.4, Max: 0.8}, PeakW: model.Band{Min: 40, Typical: 80, Max: 150}}},
		[]model.SolarYield{{City: "Ankara", SummerKWhPerKWp: 5.2, WinterKWhPerKWp: 2.4}},
		[]model.Tier{{TierID: "tier_1", Name: "Essential", CapacityWh: 2048, InverterW: 2400}},
	)
	h := NewHandler(catalog.NewStore(snap))

	req := httptest.NewRequest(http.MethodGet, "/api/init", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Archetypes map[string]model.Archetype       `json:"archetypes"`
		Packs      map[string]map[string]model.Pack `json:"packs"`
		Tiers      []model.Tier                     `json:"tiers"`
		Solar      map[string]model.SolarYield      `json:"solar"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Contains(t, out.Archetypes, "studio_flat")
	assert.Contains(t, out.Packs, "AC1P")
	assert.Len(t, out.Tiers, 1)
	assert.Contains(t, out.Solar, "Ankara")
}

func TestHandlerMethodNotAllowed(t *testing.T) {
	h := NewHandler(catalog.NewStore(catalog.NewSnapshot(nil, nil, nil, nil)))
	req := httptest.NewRequest(http.MethodPost, "/api/init", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
