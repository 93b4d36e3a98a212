package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	rowHeight    = 20.0
	headerHeight = 24.0
	pageMargin   = 72.0
)

var columnWidths = []float64{120, 80, 80, 80}

// compressPDF is switched off in tests so the content stream stays readable.
var compressPDF = true

type rgb struct{ r, g, b int }

var (
	headerFill = rgb{0x25, 0x63, 0xeb}
	rowFills   = []rgb{{245, 245, 245}, {211, 211, 211}}
)

// writePDF draws a centered table on US Letter pages. The header row is
// repeated on every page.
func writePDF(header []string, rows [][]string) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetCompression(compressPDF)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()
	tableW := 0.0
	for _, w := range columnWidths {
		tableW += w
	}
	left := (pageW - tableW) / 2

	drawHeader := func() {
		pdf.SetFillColor(headerFill.r, headerFill.g, headerFill.b)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetX(left)
		for i, h := range header {
			pdf.CellFormat(columnWidths[i], headerHeight, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.AddPage()
	drawHeader()
	for n, row := range rows {
		if pdf.GetY()+rowHeight > pageH-pageMargin {
			pdf.AddPage()
			drawHeader()
		}
		fill := rowFills[n%len(rowFills)]
		pdf.SetFillColor(fill.r, fill.g, fill.b)
		pdf.SetX(left)
		for i, cell := range row {
			pdf.CellFormat(columnWidths[i], rowHeight, fitText(pdf, tr, cell, columnWidths[i]), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// fitText shortens s with a trailing ellipsis until it fits inside a cell of
// the given width using the current font.
func fitText(pdf *fpdf.Fpdf, tr func(string) string, s string, width float64) string {
	avail := width - 2*pdf.GetCellMargin()
	if text := tr(s); pdf.GetStringWidth(text) <= avail {
		return text
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if text := tr(string(runes) + "..."); pdf.GetStringWidth(text) <= avail {
			return text
		}
	}
	return ""
}
