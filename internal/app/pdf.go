package app

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/epaperscan/baugesuch/internal/notice"
)

// writeReportPDF renders the extracted entries as a minimal PDF, one block
// per notice. Core fonts are cp1252, so text runs through the unicode
// translator to keep umlauts intact.
func writeReportPDF(entries []notice.Entry, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr("Baugesuchspublikationen"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.Ln(2)

	rows := []struct {
		label string
		value func(notice.Entry) string
	}{
		{"Bauherrschaft", func(e notice.Entry) string { return e.Bauherrschaft }},
		{"Bauvorhaben", func(e notice.Entry) string { return e.Bauvorhaben }},
		{"Lage", func(e notice.Entry) string { return e.Lage }},
		{"Zone", func(e notice.Entry) string { return e.Zone }},
		{"Zusatzgesuch", func(e notice.Entry) string { return e.Zusatzgesuch }},
	}

	for i, e := range entries {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 7, tr(fmt.Sprintf("Baugesuch %d", i+1)), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, row := range rows {
			v := row.value(e)
			if v == "" {
				continue
			}
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(34, 5, tr(row.label), "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(0, 5, tr(v), "", "L", false)
		}
		if e.Others != "" {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.MultiCell(0, 4, tr(e.Others), "", "L", false)
			pdf.SetFont("Helvetica", "", 11)
		}
		pdf.Ln(4)
	}

	return pdf.OutputFileAndClose(outPath)
}
