package handlers

import (
	"net/http"
)

// GetReportHandler godoc
// @Summary Download the inventory report
// @Tags reports
// @Produce text/csv
// @Produce application/pdf
// @Param format query string true "csv or pdf"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/reports [get]
func (h *Handler) GetReportHandler(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, r.URL.Query().Get("format"))
}

// GetExportHandler godoc
// @Summary Download the inventory as CSV with totals and classes
// @Tags reports
// @Produce text/csv
// @Success 200 {file} file
// @Failure 500 {object} ErrorResponse
// @Router /api/export [get]
func (h *Handler) GetExportHandler(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.SimpleExport(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeArtifact(w, a)
}

// ExportFormHandler serves the dashboard's simple CSV export button.
func (h *Handler) ExportFormHandler(w http.ResponseWriter, r *http.Request) {
	h.GetExportHandler(w, r)
}

// ExportReportFormHandler reads the format from the submitted form and
// defaults to csv when the field is absent.
func (h *Handler) ExportReportFormHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	format := "csv"
	if _, ok := r.PostForm["format"]; ok {
		format = r.PostForm.Get("format")
	}
	h.report(w, r, format)
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request, format string) {
	a, err := h.svc.Report(r.Context(), format)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeArtifact(w, a)
}
