package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/smart-retail-ops/internal/classifier"
	"github.com/rogerio-castellano/smart-retail-ops/internal/inventory"
	"github.com/rogerio-castellano/smart-retail-ops/internal/logging"
	"github.com/rogerio-castellano/smart-retail-ops/internal/repo"
	"github.com/rogerio-castellano/smart-retail-ops/internal/report"
)

// errorKind maps a service error to its HTTP status and a stable code.
func errorKind(err error) (int, string, string) {
	var verr inventory.ValidationErrors
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, "validation_failed", "invalid input"
	case errors.Is(err, report.ErrUnsupportedFormat):
		return http.StatusBadRequest, "unsupported_format", "format must be csv or pdf"
	case errors.Is(err, classifier.ErrUnavailable):
		return http.StatusBadGateway, "classification_unavailable", "classification service is unavailable, try again later"
	case errors.Is(err, repo.ErrStorage):
		return http.StatusInternalServerError, "storage_error", "could not access inventory storage"
	}
	return http.StatusInternalServerError, "internal_error", "internal error"
}

// writeError renders err as JSON. Validation failures are returned as the
// list of field errors.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, message := errorKind(err)
	if status >= http.StatusInternalServerError || status == http.StatusBadGateway {
		logging.FromContext(r.Context()).Error("request failed", "error", err, "kind", code)
	}

	var verr inventory.ValidationErrors
	if errors.As(err, &verr) {
		writeJSON(w, status, verr)
		return
	}
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}
