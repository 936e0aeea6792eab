package scenarios

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/omerfdk/sunsizer/core/model"
)

// PackDef selects one catalog pack in a scenario file.
type PackDef struct {
	Group      string `yaml:"group"`
	Key        string `yaml:"key"`
	UsageIndex int    `yaml:"usage_index"`
}

// RequestDef mirrors model.EstimateRequest in YAML form.
type RequestDef struct {
	ArchetypeID string    `yaml:"archetype_id,omitempty"`
	ExpertMode  bool      `yaml:"expert_mode,omitempty"`
	City        string    `yaml:"city,omitempty"`
	SolarWp     float64   `yaml:"solar_wp,omitempty"`
	Packs       []PackDef `yaml:"packs,omitempty"`
}

// ToModel converts the YAML definition to the engine's request type.
func (r RequestDef) ToModel() (model.EstimateRequest, error) {
	req := model.EstimateRequest{
		ArchetypeID: r.ArchetypeID,
		ExpertMode:  r.ExpertMode,
		City:        r.City,
		SolarWp:     r.SolarWp,
	}
	for _, p := range r.Packs {
		group, err := model.ParsePackGroup(p.Group)
		if err != nil {
			return model.EstimateRequest{}, err
		}
		req.Packs = append(req.Packs, model.SelectedPack{
			Group: group,
			Key:   p.Key,
			Usage: model.UsageLevel(p.UsageIndex),
		})
	}
	return req, nil
}

// Expected describes the scenario's acceptance values. Band expectations are
// 3-element arrays; a nil array is not checked.
type Expected struct {
	DailyKWhBand   []float64 `yaml:"daily_kwh_band,omitempty"`
	PeakPowerBandW []float64 `yaml:"peak_power_band_w,omitempty"`
	AvgSolarKWh    *float64  `yaml:"avg_solar_kwh,omitempty"`
	DailyOffsetKWh *float64  `yaml:"daily_offset_kwh,omitempty"`
	TierID         *string   `yaml:"tier_id,omitempty"`
	ErrorField     string    `yaml:"error_field,omitempty"`
}

// Scenario is one YAML-driven engine check.
type Scenario struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Request     RequestDef `yaml:"request"`
	Expected    Expected   `yaml:"expected"`
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}
