// Package initdata exposes the reference catalogs via GET /api/init so a
// presentation layer can populate its forms.
package initdata

import (
	"encoding/json"
	"net/http"

	"github.com/omerfdk/sunsizer/core/catalog"
	"github.com/omerfdk/sunsizer/core/model"
)

type payload struct {
	Archetypes map[string]model.Archetype                `json:"archetypes"`
	Packs      map[model.PackGroup]map[string]model.Pack `json:"packs"`
	Tiers      []model.Tier                              `json:"tiers"`
	Solar      map[string]model.SolarYield               `json:"solar"`
}

// NewHandler returns an HTTP handler serving the current catalog snapshot.
func NewHandler(store *catalog.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		snap := store.Snapshot()
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload{
			Archetypes: snap.Archetypes(),
			Packs:      snap.Packs(),
			Tiers:      snap.Tiers(),
			Solar:      snap.SolarYields(),
		}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}
