// Package engine orchestrates the profile builder, solar estimator, savings
// projector and tier selector behind a single facade.
package engine

import (
	"github.com/omerfdk/sunsizer/core/catalog"
	"github.com/omerfdk/sunsizer/core/logger"
	"github.com/omerfdk/sunsizer/core/model"
	"github.com/omerfdk/sunsizer/core/profile"
	"github.com/omerfdk/sunsizer/core/savings"
	"github.com/omerfdk/sunsizer/core/sizing"
	"github.com/omerfdk/sunsizer/core/solar"
)

// Engine computes one estimate per request. It holds no mutable state of its
// own; all reference data comes from the catalog store's current snapshot, so
// concurrent requests need no coordination.
type Engine struct {
	store  *catalog.Store
	params savings.Params
	log    logger.Logger
}

// New creates an Engine over the given catalog store and projection params.
func New(store *catalog.Store, params savings.Params, log logger.Logger) *Engine {
	return &Engine{store: store, params: params, log: log}
}

// Estimate validates the request, then runs the builder, estimator, projector
// and selector in fixed order. Validation failures surface as typed errors
// before any computation result is produced; a rejected request never yields
// a partial response.
func (e *Engine) Estimate(req model.EstimateRequest) (*model.EstimateResult, error) {
	snap := e.store.Snapshot()

	if err := validate(snap, req); err != nil {
		return nil, err
	}

	var arch *model.Archetype
	if req.ArchetypeID != "" {
		a, _ := snap.Archetype(req.ArchetypeID)
		arch = &a
	}

	prof, err := profile.Build(snap, arch, req.Packs, req.ExpertMode)
	if err != nil {
		return nil, err
	}

	result := &model.EstimateResult{
		Profile:         model.ProfileReport{ConsumptionProfile: prof},
		Recommendations: []model.Tier{},
	}

	if req.SolarRequested() {
		est, err := solar.Estimate(snap, req.City, req.SolarWp)
		if err != nil {
			return nil, err
		}
		proj := savings.Project(e.params, prof.DailyKWh.Typical, est.AvgDailyKWh)
		result.Profile.Solar = est
		result.Profile.Savings = &model.SavingsEstimate{
			DailyOffsetKWh:   proj.DailyOffsetKWh,
			Year1Savings:     proj.Year1Savings,
			MultiYearSavings: proj.MultiYearSavings,
			YearlyCO2Kg:      proj.YearlyCO2Kg,
		}
	}

	if tier, ok := sizing.Select(snap.Tiers(), prof); ok {
		result.Recommendations = append(result.Recommendations, tier)
	} else {
		e.log.Debugw("no tier covers load", map[string]any{
			"typical_kwh":    prof.DailyKWh.Typical,
			"typical_peak_w": prof.PeakW.Typical,
		})
	}
	return result, nil
}

// validate rejects malformed requests before any computation. The checks run
// in a fixed order so rejections are deterministic: input shape, load
// sources, pack existence, then the solar city.
func validate(snap *catalog.Snapshot, req model.EstimateRequest) error {
	if req.SolarWp < 0 {
		return &model.InvalidInputError{Name: "solar_wp", Reason: "must not be negative"}
	}
	for _, sel := range req.Packs {
		if !sel.Usage.Valid() {
			return &model.InvalidInputError{
				Name:   "usage_index",
				Reason: "must be 0 (low), 1 (typical) or 2 (high)",
			}
		}
		if !sel.Group.Valid() {
			return &model.InvalidInputError{Name: "group", Reason: "unknown pack group " + string(sel.Group)}
		}
	}

	if !req.ExpertMode && req.ArchetypeID == "" {
		return &model.IncompleteProfileError{ExpertMode: false}
	}
	if req.ExpertMode && req.ArchetypeID == "" && len(req.Packs) == 0 {
		return &model.IncompleteProfileError{ExpertMode: true}
	}
	if req.ArchetypeID != "" {
		if _, ok := snap.Archetype(req.ArchetypeID); !ok {
			return &model.InvalidInputError{Name: "archetype_id", Reason: "unknown archetype " + req.ArchetypeID}
		}
	}

	for _, sel := range req.Packs {
		if _, ok := snap.Pack(sel.Group, sel.Key); !ok {
			return &model.UnknownPackError{Group: sel.Group, Key: sel.Key}
		}
	}

	if req.SolarRequested() {
		if req.City == "" {
			return &model.InvalidInputError{Name: "city", Reason: "required for a solar estimate"}
		}
		if _, ok := snap.SolarYield(req.City); !ok {
			return &model.UnknownCityError{City: req.City}
		}
	}
	return nil
}
