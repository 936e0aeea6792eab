package catalog

import (
	"sort"
	"sync/atomic"

	"github.com/omerfdk/sunsizer/core/model"
)

// Snapshot is one immutable view of all reference catalogs. Requests read a
// snapshot without coordination; a reload builds a fully new Snapshot and
// publishes it atomically so an in-flight request never observes a
// half-updated catalog.
type Snapshot struct {
	archetypes map[string]model.Archetype
	packs      map[model.PackGroup]map[string]model.Pack
	solar      map[string]model.SolarYield
	tiers      []model.Tier
}

// NewSnapshot assembles a snapshot from already-validated catalog data. Tiers
// are sorted by ascending capacity so the selector can scan first-fit.
func NewSnapshot(archetypes []model.Archetype, packs []model.Pack, solar []model.SolarYield, tiers []model.Tier) *Snapshot {
	s := &Snapshot{
		archetypes: make(map[string]model.Archetype, len(archetypes)),
		packs:      make(map[model.PackGroup]map[string]model.Pack),
		solar:      make(map[string]model.SolarYield, len(solar)),
		tiers:      make([]model.Tier, len(tiers)),
	}
	for _, a := range archetypes {
		s.archetypes[a.Key] = a
	}
	for _, p := range packs {
		group := s.packs[p.Group]
		if group == nil {
			group = make(map[string]model.Pack)
			s.packs[p.Group] = group
		}
		group[p.Key] = p
	}
	for _, y := range solar {
		s.solar[y.City] = y
	}
	copy(s.tiers, tiers)
	sort.SliceStable(s.tiers, func(i, j int) bool {
		if s.tiers[i].CapacityWh != s.tiers[j].CapacityWh {
			return s.tiers[i].CapacityWh < s.tiers[j].CapacityWh
		}
		return s.tiers[i].InverterW < s.tiers[j].InverterW
	})
	return s
}

// Archetype looks up a baseline by key.
func (s *Snapshot) Archetype(key string) (model.Archetype, bool) {
	a, ok := s.archetypes[key]
	return a, ok
}

// Pack looks up a pack by (group, key).
func (s *Snapshot) Pack(group model.PackGroup, key string) (model.Pack, bool) {
	g, ok := s.packs[group]
	if !ok {
		return model.Pack{}, false
	}
	p, ok := g[key]
	return p, ok
}

// SolarYield looks up a city's generation figures. Exact match only.
func (s *Snapshot) SolarYield(city string) (model.SolarYield, bool) {
	y, ok := s.solar[city]
	return y, ok
}

// Tiers returns the sizing catalog ordered by ascending capacity. Callers
// must not mutate the returned slice.
func (s *Snapshot) Tiers() []model.Tier { return s.tiers }

// Archetypes returns all baselines keyed by id, for the init API.
func (s *Snapshot) Archetypes() map[string]model.Archetype { return s.archetypes }

// Packs returns all packs grouped by electrical interface, for the init API.
func (s *Snapshot) Packs() map[model.PackGroup]map[string]model.Pack { return s.packs }

// SolarYields returns the full per-city table, for the init API.
func (s *Snapshot) SolarYields() map[string]model.SolarYield { return s.solar }

// Store publishes the current catalog snapshot. Reads are lock-free; Swap
// replaces the whole snapshot at once.
type Store struct {
	snap atomic.Pointer[Snapshot]
}

// NewStore creates a store holding the given snapshot.
func NewStore(s *Snapshot) *Store {
	st := &Store{}
	st.snap.Store(s)
	return st
}

// Snapshot returns the current catalog view.
func (st *Store) Snapshot() *Snapshot { return st.snap.Load() }

// Swap atomically replaces the published snapshot.
func (st *Store) Swap(s *Snapshot) { st.snap.Store(s) }
