// Package estimate exposes the sizing engine via POST /api/estimate.
package estimate

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/omerfdk/sunsizer/core/engine"
	"github.com/omerfdk/sunsizer/core/logger"
	"github.com/omerfdk/sunsizer/core/metrics"
	"github.com/omerfdk/sunsizer/core/model"
	"github.com/omerfdk/sunsizer/internal/eventbus"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// NewHandler returns an HTTP handler computing one estimate per request.
// Successful estimates and validation rejections are published on the bus so
// metrics recording stays off the request path.
func NewHandler(eng *engine.Engine, bus *eventbus.TypedBus[metrics.EstimateEvent], rejections *eventbus.TypedBus[metrics.RejectionEvent], log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		requestID := uuid.NewString()

		var req model.EstimateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body: " + err.Error()})
			return
		}

		start := time.Now()
		result, err := eng.Estimate(req)
		if err != nil {
			var fieldErr model.FieldError
			if errors.As(err, &fieldErr) {
				log.Debugw("request rejected", map[string]any{
					"request_id": requestID,
					"field":      fieldErr.Field(),
					"reason":     fieldErr.Error(),
				})
				if rejections != nil {
					rejections.Publish(metrics.RejectionEvent{
						RequestID: requestID,
						Field:     fieldErr.Field(),
						Time:      time.Now(),
					})
				}
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: fieldErr.Error(), Field: fieldErr.Field()})
				return
			}
			log.Errorf("estimate %s: %v", requestID, err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}

		if bus != nil {
			bus.Publish(newEvent(requestID, req, result, time.Since(start)))
		}
		writeJSON(w, http.StatusOK, result)
	})
}

func newEvent(requestID string, req model.EstimateRequest, res *model.EstimateResult, d time.Duration) metrics.EstimateEvent {
	ev := metrics.EstimateEvent{
		RequestID:       requestID,
		ArchetypeID:     req.ArchetypeID,
		ExpertMode:      req.ExpertMode,
		City:            req.City,
		SolarWp:         req.SolarWp,
		PackCount:       len(req.Packs),
		TypicalDailyKWh: res.Profile.DailyKWh.Typical,
		TypicalPeakW:    res.Profile.PeakW.Typical,
		Duration:        d,
		Time:            time.Now(),
	}
	if res.Profile.Savings != nil {
		ev.DailyOffsetKWh = res.Profile.Savings.DailyOffsetKWh
	}
	if len(res.Recommendations) > 0 {
		ev.TierID = res.Recommendations[0].TierID
	}
	return ev
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
