package export

import (
	"fmt"
	"io"

	"github.com/dgallion1/docdiff/internal/compare"
	"github.com/jung-kurt/gofpdf"
)

var pdfColumnWidths = []float64{25, 70, 25, 70}

// WritePDF renders a printable A4 report: title, summary counts, then the table.
func WritePDF(w io.Writer, rows []compare.Row, summary compare.Summary) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr("Comparação de orçamentos (Serviços)"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range summaryLines(summary) {
		pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range compare.Header {
		pdf.CellFormat(pdfColumnWidths[i], 7, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, r := range rows {
		for i, c := range r.Cells() {
			text := fitText(pdf, tr(c), pdfColumnWidths[i]-2)
			pdf.CellFormat(pdfColumnWidths[i], 6, text, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func summaryLines(s compare.Summary) []string {
	return []string{
		fmt.Sprintf("Serviços no documento 1: %d", s.ItemsA),
		fmt.Sprintf("Serviços no documento 2: %d", s.ItemsB),
		fmt.Sprintf("Mantidos: %d", s.Kept),
		fmt.Sprintf("Removidos: %d", s.Removed),
		fmt.Sprintf("Incluídos: %d", s.Added),
	}
}

// fitText cuts s so it fits in width, marking the cut with "...".
func fitText(pdf *gofpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	b := []byte(s)
	for len(b) > 0 && pdf.GetStringWidth(string(b)+"...") > width {
		b = b[:len(b)-1]
	}
	return string(b) + "..."
}
