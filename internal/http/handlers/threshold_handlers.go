package handlers

import (
	"fmt"
	"net/http"

	"github.com/rogerio-castellano/smart-retail-ops/internal/inventory"
)

// SetThresholdHandler godoc
// @Summary Set min/max stock thresholds for an item name
// @Description Upsert by item name. The name does not have to exist in the inventory and min may exceed max.
// @Tags thresholds
// @Accept json
// @Produce json
// @Param threshold body ThresholdRequest true "Threshold"
// @Success 200 {object} ThresholdResponse
// @Failure 400 {array} inventory.FieldError
// @Failure 500 {object} ErrorResponse
// @Router /api/thresholds [put]
func (h *Handler) SetThresholdHandler(w http.ResponseWriter, r *http.Request) {
	var req ThresholdRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	errs := inventory.ValidationErrors{}
	if req.MinThreshold == nil {
		errs = append(errs, inventory.FieldError{Field: "min_threshold", Description: "Minimum threshold is required"})
	}
	if req.MaxThreshold == nil {
		errs = append(errs, inventory.FieldError{Field: "max_threshold", Description: "Maximum threshold is required"})
	}
	if len(errs) > 0 {
		writeError(w, r, errs)
		return
	}

	t, err := h.svc.SetThreshold(r.Context(), inventory.SetThresholdInput{
		ItemName: req.ItemName,
		Min:      *req.MinThreshold,
		Max:      *req.MaxThreshold,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ThresholdResponse{
		ItemName:     t.ItemName,
		MinThreshold: t.Min,
		MaxThreshold: t.Max,
		Message:      thresholdMessage(t.ItemName, t.Min, t.Max),
	})
}

// GetThresholdsHandler godoc
// @Summary List thresholds keyed by item name
// @Tags thresholds
// @Produce json
// @Success 200 {object} ThresholdsResult
// @Failure 500 {object} ErrorResponse
// @Router /api/thresholds [get]
func (h *Handler) GetThresholdsHandler(w http.ResponseWriter, r *http.Request) {
	thresholds, err := h.svc.ListThresholds(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ThresholdsResult(thresholds))
}

// GetThresholdStatusHandler godoc
// @Summary Thresholds compared with the quantity on hand
// @Tags thresholds
// @Produce json
// @Success 200 {object} ThresholdStatusResult
// @Failure 500 {object} ErrorResponse
// @Router /api/thresholds/status [get]
func (h *Handler) GetThresholdStatusHandler(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ThresholdStatus(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ThresholdStatusResult{Data: views})
}

func thresholdMessage(name string, lo, hi int) string {
	return fmt.Sprintf("Thresholds for '%s' saved: Min=%d, Max=%d", name, lo, hi)
}
