package handlers

import (
	"net/http"
)

// GetDashboardMetricsHandler godoc
// @Summary Dashboard metrics
// @Description Class counts, total value, stock alerts, recent items and chart series
// @Tags metrics
// @Produce json
// @Success 200 {object} inventory.Summary
// @Failure 500 {object} ErrorResponse
// @Router /api/metrics/dashboard [get]
func (h *Handler) GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Summary(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}
