// Package profile merges an archetype baseline and selected appliance packs
// into a single consumption profile.
package profile

import "github.com/omerfdk/sunsizer/core/model"

// PackLookup resolves a selected pack against the catalog.
type PackLookup interface {
	Pack(group model.PackGroup, key string) (model.Pack, bool)
}

// Build merges the optional archetype baseline with the selected packs.
//
// The baseline keeps its own spread: its bands enter the totals element-wise.
// Each pack contributes one realized scalar per band, chosen by its usage
// level, and that scalar is added uniformly to all three positions. Peak
// power is summed across sources rather than combined by a maximum; all loads
// are assumed able to coincide, which is a deliberate worst-case sizing
// policy.
func Build(packs PackLookup, arch *model.Archetype, selected []model.SelectedPack, expertMode bool) (model.ConsumptionProfile, error) {
	if arch == nil && len(selected) == 0 {
		return model.ConsumptionProfile{}, &model.IncompleteProfileError{ExpertMode: expertMode}
	}
	if !expertMode && arch == nil {
		return model.ConsumptionProfile{}, &model.IncompleteProfileError{ExpertMode: false}
	}

	var prof model.ConsumptionProfile
	if arch != nil {
		prof.DailyKWh = arch.BaseLoadKWh
		prof.PeakW = arch.BasePeakW
	}

	for _, sel := range selected {
		if !sel.Usage.Valid() {
			return model.ConsumptionProfile{}, &model.InvalidInputError{
				Name:   "usage_index",
				Reason: "must be 0 (low), 1 (typical) or 2 (high)",
			}
		}
		pack, ok := packs.Pack(sel.Group, sel.Key)
		if !ok {
			return model.ConsumptionProfile{}, &model.UnknownPackError{Group: sel.Group, Key: sel.Key}
		}
		prof.DailyKWh = prof.DailyKWh.AddScalar(pack.KWhDay.At(sel.Usage))
		prof.PeakW = prof.PeakW.AddScalar(pack.PeakW.At(sel.Usage))
	}
	return prof, nil
}
