package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/omerfdk/sunsizer/core/model"
)

// Dataset file names, matching the reference data layout.
const (
	archetypesFile = "archetypes.json"
	tiersFile      = "tiers.json"
	solarFile      = "solar_generation.json"
)

var packFiles = map[model.PackGroup]string{
	model.GroupAC1P: "packs-AC1P.json",
	model.GroupAC3P: "packs-AC3P.json",
	model.GroupDC12: "packs-DC12V.json",
	model.GroupDC24: "packs-DC24V.json",
	model.GroupDC48: "packs-DC48V.json",
}

// Load reads all catalog files from dir, validates them, and assembles a
// snapshot. Any malformed entry aborts the load; a partially valid catalog is
// never published.
func Load(dir string) (*Snapshot, error) {
	var archetypes map[string]model.Archetype
	if err := readJSON(filepath.Join(dir, archetypesFile), &archetypes); err != nil {
		return nil, err
	}
	archList := make([]model.Archetype, 0, len(archetypes))
	for key, a := range archetypes {
		a.Key = key
		if err := validateBand("archetype "+key, a.BaseLoadKWh); err != nil {
			return nil, err
		}
		if err := validateBand("archetype "+key, a.BasePeakW); err != nil {
			return nil, err
		}
		archList = append(archList, a)
	}

	var packList []model.Pack
	for _, group := range model.PackGroups {
		var packs map[string]model.Pack
		if err := readJSON(filepath.Join(dir, packFiles[group]), &packs); err != nil {
			return nil, err
		}
		for key, p := range packs {
			p.Key = key
			p.Group = group
			if err := validateBand(fmt.Sprintf("pack %s/%s", group, key), p.KWhDay); err != nil {
				return nil, err
			}
			if err := validateBand(fmt.Sprintf("pack %s/%s", group, key), p.PeakW); err != nil {
				return nil, err
			}
			packList = append(packList, p)
		}
	}

	var solar map[string]model.SolarYield
	if err := readJSON(filepath.Join(dir, solarFile), &solar); err != nil {
		return nil, err
	}
	solarList := make([]model.SolarYield, 0, len(solar))
	for city, y := range solar {
		y.City = city
		if y.SummerKWhPerKWp < 0 || y.WinterKWhPerKWp < 0 {
			return nil, fmt.Errorf("solar yield for %s has negative figures", city)
		}
		solarList = append(solarList, y)
	}

	var tiers map[string]model.Tier
	if err := readJSON(filepath.Join(dir, tiersFile), &tiers); err != nil {
		return nil, err
	}
	tierList := make([]model.Tier, 0, len(tiers))
	for id, t := range tiers {
		t.TierID = id
		if t.CapacityWh <= 0 || t.InverterW <= 0 {
			return nil, fmt.Errorf("tier %s must have positive capacity and inverter rating", id)
		}
		tierList = append(tierList, t)
	}

	return NewSnapshot(archList, packList, solarList, tierList), nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog file: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

func validateBand(owner string, b model.Band) error {
	if !b.Ordered() {
		return fmt.Errorf("%s: band [%g, %g, %g] violates min <= typical <= max", owner, b.Min, b.Typical, b.Max)
	}
	if b.Min < 0 {
		return fmt.Errorf("%s: band values must be non-negative", owner)
	}
	return nil
}
