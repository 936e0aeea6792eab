// Package sizing selects the smallest catalog tier that covers a consumption
// profile.
package sizing

import "github.com/omerfdk/sunsizer/core/model"

// Select scans the tier catalog in ascending capacity order and returns the
// first tier whose usable capacity covers the typical daily energy need and
// whose continuous inverter rating covers the typical peak power. Catalog
// figures are pre-margined, so no extra multiplier is applied here.
//
// If no tier suffices the second return is false: the caller is told that
// nothing in the catalog fits rather than being handed an undersized or
// oversized fallback.
func Select(tiers []model.Tier, prof model.ConsumptionProfile) (model.Tier, bool) {
	requiredWh := prof.DailyKWh.Typical * 1000
	requiredW := prof.PeakW.Typical

	for i, t := range tiers {
		if t.CapacityWh < requiredWh || t.InverterW < requiredW {
			continue
		}
		best := t
		// Equal-capacity entries should not occur in a well-formed catalog,
		// but if they do, prefer the least over-provisioned inverter.
		for _, other := range tiers[i+1:] {
			if other.CapacityWh != best.CapacityWh {
				break
			}
			if other.InverterW >= requiredW && other.InverterW < best.InverterW {
				best = other
			}
		}
		return best, true
	}
	return model.Tier{}, false
}
