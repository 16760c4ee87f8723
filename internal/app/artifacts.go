package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/epaperscan/baugesuch/internal/notice"
)

// writeEntriesJSON writes the entries as an indented UTF-8 JSON array and
// returns the document. A run with no entries still writes `[]` so
// downstream consumers see a valid document.
func writeEntriesJSON(path string, entries []notice.Entry) (string, error) {
	if entries == nil {
		entries = []notice.Entry{}
	}
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal entries: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("write output: %w", err)
	}
	return string(b), nil
}

// writeDebugText stores the normalized page text next to the JSON output
// so misparses can be diagnosed against the exact parser input.
func writeDebugText(outputPath, text string) error {
	p := filepath.Join(filepath.Dir(outputPath), "page_text_debug.txt")
	return os.WriteFile(p, []byte(text), 0o644)
}

// reportPDFPath derives the PDF report path from the JSON output path.
func reportPDFPath(outputPath string) string {
	return strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".pdf"
}
