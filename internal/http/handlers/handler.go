package handlers

import (
	"github.com/rogerio-castellano/smart-retail-ops/internal/inventory"
)

// Handler serves the JSON API and the HTML pages.
type Handler struct {
	svc   *inventory.Service
	pages pageSet
}

func NewHandler(svc *inventory.Service) *Handler {
	return &Handler{
		svc:   svc,
		pages: mustParsePages(),
	}
}
