package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/smart-retail-ops/internal/inventory"
)

const maxImportBytes = 5 << 20

type csvRow struct {
	Num      int
	Name     string
	Quantity string
	UnitCost string
}

var requiredColumns = []string{"name", "quantity", "unit_cost"}

func parseCSV(r io.Reader) ([]csvRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	headers, err := reader.Read()
	if err != nil {
		return nil, errors.New("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var rows []csvRow
	for line := 2; ; line++ { // header is row 1
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}
		rows = append(rows, csvRow{
			Num:      line,
			Name:     record[index["name"]],
			Quantity: record[index["quantity"]],
			UnitCost: record[index["unit_cost"]],
		})
	}
	return rows, nil
}

// ImportItemsHandler godoc
// @Summary Import items via CSV
// @Description Columns name, quantity and unit_cost. Every valid row is classified and stored; invalid rows are reported and skipped. Import stops at the first classifier or storage failure.
// @Tags items
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} ImportItemsResult
// @Failure 400 {string} string "Invalid file"
// @Failure 500 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/items/import [post]
func (h *Handler) ImportItemsHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := ImportItemsResult{Items: []ItemResponse{}, Errors: []inventory.FieldError{}}
	for _, row := range rows {
		in, err := inventory.ParseAddItem(row.Name, row.Quantity, row.UnitCost)
		if err != nil {
			result.Errors = append(result.Errors, rowErrors(row.Num, err)...)
			continue
		}

		created, err := h.svc.AddItem(r.Context(), in)
		if err != nil {
			writeError(w, r, err)
			return
		}
		result.Items = append(result.Items, toItemResponse(created))
		result.ImportedItemsCount++
	}

	writeJSON(w, http.StatusOK, result)
}

func rowErrors(row int, err error) []inventory.FieldError {
	var verr inventory.ValidationErrors
	if !errors.As(err, &verr) {
		return []inventory.FieldError{{Field: fmt.Sprintf("row %d", row), Description: err.Error()}}
	}
	out := make([]inventory.FieldError, len(verr))
	for i, fe := range verr {
		out[i] = inventory.FieldError{Field: fe.Field, Description: fmt.Sprintf("row %d: %s", row, fe.Description)}
	}
	return out
}
