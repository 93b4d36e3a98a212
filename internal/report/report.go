// Package report renders inventory snapshots as downloadable CSV or PDF files.
package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/smart-retail-ops/internal/models"
	"github.com/shopspring/decimal"
)

// Format is the export encoding requested by the caller.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// ErrUnsupportedFormat is returned for any format other than csv or pdf.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// ParseFormat accepts "csv" and "pdf" only. Matching is exact.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatPDF:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Artifact is a finished export ready to be streamed as a download.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

var (
	simpleHeader    = []string{"Item Name", "Quantity", "Unit Cost", "Total Value", "ABC Class"}
	formattedHeader = []string{"Item name", "Quantity", "Price", "Quantity"}
)

// Simple renders every item with its total value and class as inventory.csv.
func Simple(items []models.Item) (Artifact, error) {
	rows := make([][]string, len(items))
	for i, it := range items {
		rows[i] = []string{
			it.Name,
			strconv.Itoa(it.Quantity),
			amount(it.UnitCost),
			amount(it.TotalValue()),
			string(it.ABCClass),
		}
	}

	data, err := writeCSV(simpleHeader, rows)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{Filename: "inventory.csv", ContentType: "text/csv", Data: data}, nil
}

// Formatted renders the inventory report in the requested format. The
// quantity column is repeated under the last header to match the layout
// users already download.
func Formatted(items []models.Item, format Format) (Artifact, error) {
	rows := make([][]string, len(items))
	for i, it := range items {
		qty := strconv.Itoa(it.Quantity)
		rows[i] = []string{it.Name, qty, amount(it.UnitCost), qty}
	}

	switch format {
	case FormatCSV:
		data, err := writeCSV(formattedHeader, rows)
		if err != nil {
			return Artifact{}, err
		}
		return Artifact{Filename: "inventory_report.csv", ContentType: "text/csv", Data: data}, nil
	case FormatPDF:
		data, err := writePDF(formattedHeader, rows)
		if err != nil {
			return Artifact{}, err
		}
		return Artifact{Filename: "inventory_report.pdf", ContentType: "application/pdf", Data: data}, nil
	}
	return Artifact{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, strings.TrimSpace(string(format)))
}

// amount writes at least two decimals and never rounds away precision, so
// 0.005 stays 0.005 and 25 becomes 25.00.
func amount(d decimal.Decimal) string {
	places := int32(2)
	// String drops trailing zeros, which gives the significant scale.
	if trimmed, err := decimal.NewFromString(d.String()); err == nil && -trimmed.Exponent() > places {
		places = -trimmed.Exponent()
	}
	return d.StringFixed(places)
}
