package scenarios

import (
	"errors"
	"testing"

	"github.com/omerfdk/sunsizer/core/catalog"
	"github.com/omerfdk/sunsizer/core/engine"
	"github.com/omerfdk/sunsizer/core/model"
	"github.com/omerfdk/sunsizer/core/savings"
	"github.com/omerfdk/sunsizer/infra/logger"
)

const delta = 1e-6

// RunScenario executes one scenario against an engine built over the given
// catalog snapshot.
func RunScenario(t *testing.T, sc *Scenario, snap *catalog.Snapshot) {
	t.Helper()

	req, err := sc.Request.ToModel()
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	eng := engine.New(catalog.NewStore(snap), savings.DefaultParams(), logger.NopLogger{})
	res, err := eng.Estimate(req)

	if sc.Expected.ErrorField != "" {
		var fieldErr model.FieldError
		if !errors.As(err, &fieldErr) {
			t.Fatalf("expected rejection on %s, got err=%v", sc.Expected.ErrorField, err)
		}
		if fieldErr.Field() != sc.Expected.ErrorField {
			t.Fatalf("expected rejection on %s, got %s", sc.Expected.ErrorField, fieldErr.Field())
		}
		return
	}
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}

	checkBand(t, "daily_kwh_band", sc.Expected.DailyKWhBand, res.Profile.DailyKWh)
	checkBand(t, "peak_power_band_w", sc.Expected.PeakPowerBandW, res.Profile.PeakW)

	if sc.Expected.AvgSolarKWh != nil {
		if res.Profile.Solar == nil {
			t.Fatalf("expected solar estimate, got none")
		}
		if diff := res.Profile.Solar.AvgDailyKWh - *sc.Expected.AvgSolarKWh; diff > delta || diff < -delta {
			t.Errorf("avg solar: want %g got %g", *sc.Expected.AvgSolarKWh, res.Profile.Solar.AvgDailyKWh)
		}
	}
	if sc.Expected.DailyOffsetKWh != nil {
		if res.Profile.Savings == nil {
			t.Fatalf("expected savings estimate, got none")
		}
		if diff := res.Profile.Savings.DailyOffsetKWh - *sc.Expected.DailyOffsetKWh; diff > delta || diff < -delta {
			t.Errorf("daily offset: want %g got %g", *sc.Expected.DailyOffsetKWh, res.Profile.Savings.DailyOffsetKWh)
		}
	}
	if sc.Expected.TierID != nil {
		if *sc.Expected.TierID == "" {
			if len(res.Recommendations) != 0 {
				t.Errorf("expected no recommendation, got %s", res.Recommendations[0].TierID)
			}
		} else {
			if len(res.Recommendations) != 1 {
				t.Fatalf("expected one recommendation, got %d", len(res.Recommendations))
			}
			if res.Recommendations[0].TierID != *sc.Expected.TierID {
				t.Errorf("tier: want %s got %s", *sc.Expected.TierID, res.Recommendations[0].TierID)
			}
		}
	}
}

func checkBand(t *testing.T, name string, want []float64, got model.Band) {
	t.Helper()
	if want == nil {
		return
	}
	if len(want) != 3 {
		t.Fatalf("%s expectation must have 3 elements", name)
	}
	for i, w := range want {
		g := [3]float64{got.Min, got.Typical, got.Max}[i]
		if diff := g - w; diff > delta || diff < -delta {
			t.Errorf("%s[%d]: want %g got %g", name, i, w, g)
		}
	}
}
