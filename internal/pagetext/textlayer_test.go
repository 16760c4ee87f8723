package pagetext

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

// writeFixturePDF renders a single-page PDF with a native text layer. The
// body is plain ASCII so extraction does not depend on font encoding.
func writeFixturePDF(t *testing.T, lines []string) string {
	t.Helper()
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()
	for _, line := range lines {
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
	path := filepath.Join(t.TempDir(), "issue.pdf")
	if err := pdf.OutputFileAndClose(path); err != nil {
		t.Fatalf("write fixture pdf: %v", err)
	}
	return path
}

func TestTextLayer_ExtractsNativeText(t *testing.T) {
	path := writeFixturePDF(t, []string{
		"Baugesuchspublikation",
		"Bauherrschaft Keller Andreas",
	})

	var tl TextLayer
	got, err := tl.PageText(context.Background(), path, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Baugesuchspublikation") {
		t.Fatalf("expected header in text layer, got %q", got)
	}
	if !strings.Contains(got, "Keller") {
		t.Fatalf("expected applicant in text layer, got %q", got)
	}
}

func TestTextLayer_PageOutOfRange(t *testing.T) {
	path := writeFixturePDF(t, []string{"single page"})

	var tl TextLayer
	if _, err := tl.PageText(context.Background(), path, 9); err == nil {
		t.Fatalf("expected out-of-range error")
	}
	if _, err := tl.PageText(context.Background(), path, 0); err == nil {
		t.Fatalf("expected out-of-range error for page 0")
	}
}

func TestTextLayer_MissingFile(t *testing.T) {
	var tl TextLayer
	if _, err := tl.PageText(context.Background(), filepath.Join(t.TempDir(), "absent.pdf"), 1); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestPageCount_Fixture(t *testing.T) {
	path := writeFixturePDF(t, []string{"single page"})
	n, err := PageCount(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 page, got %d", n)
	}
}
