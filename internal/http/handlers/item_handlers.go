package handlers

import (
	"net/http"
	"strconv"

	"github.com/rogerio-castellano/smart-retail-ops/internal/inventory"
)

// CreateItemHandler godoc
// @Summary Add an inventory item
// @Description Classifies the item (A/B/C) through the text-generation service, then stores it
// @Tags items
// @Accept json
// @Produce json
// @Param item body ItemRequest true "Item to add"
// @Success 201 {object} ItemResponse
// @Failure 400 {array} inventory.FieldError
// @Failure 429 {string} string "Too many requests"
// @Failure 500 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/items [post]
func (h *Handler) CreateItemHandler(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	in, verr := req.toInput()
	if verr != nil {
		writeError(w, r, verr)
		return
	}

	created, err := h.svc.AddItem(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toItemResponse(created))
}

func (req ItemRequest) toInput() (inventory.AddItemInput, error) {
	errs := inventory.ValidationErrors{}
	if req.Quantity == nil {
		errs = append(errs, inventory.FieldError{Field: "quantity", Description: "Quantity is required"})
	}
	if req.UnitCost == nil {
		errs = append(errs, inventory.FieldError{Field: "unit_cost", Description: "Unit cost is required"})
	}
	if len(errs) > 0 {
		return inventory.AddItemInput{}, errs
	}
	in := inventory.AddItemInput{Name: req.Name, Quantity: *req.Quantity, UnitCost: *req.UnitCost}
	if err := in.Validate(); err != nil {
		return inventory.AddItemInput{}, err
	}
	return in, nil
}

// GetItemsHandler godoc
// @Summary List inventory items
// @Description Items in the order they were added
// @Tags items
// @Produce json
// @Success 200 {array} ItemResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/items [get]
func (h *Handler) GetItemsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListItems(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := make([]ItemResponse, len(items))
	for i, it := range items {
		response[i] = toItemResponse(it)
	}
	writeJSON(w, http.StatusOK, response)
}

// GetRecentClassificationsHandler godoc
// @Summary Recent classification replies
// @Tags items
// @Produce json
// @Param limit query int false "Maximum entries (default 20)"
// @Success 200 {array} classlog.Entry
// @Failure 400 {string} string "Invalid limit"
// @Failure 500 {object} ErrorResponse
// @Router /api/classifications [get]
func (h *Handler) GetRecentClassificationsHandler(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			http.Error(w, "limit must be greater than zero", http.StatusBadRequest)
			return
		}
		limit = v
	}

	entries, err := h.svc.RecentClassifications(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
