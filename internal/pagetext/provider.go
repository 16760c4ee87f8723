package pagetext

import (
	"context"
	"strings"
)

// Provider yields the text of a single 1-indexed PDF page.
type Provider interface {
	PageText(ctx context.Context, path string, page int) (string, error)
}

// Layered consults Primary first and falls back to Fallback when the
// primary yields no usable text. Used to chain the native text layer in
// front of OCR: digitally produced issues never touch Tesseract, scanned
// issues fall through.
type Layered struct {
	Primary  Provider
	Fallback Provider
}

func (l *Layered) PageText(ctx context.Context, path string, page int) (string, error) {
	var firstErr error
	if l.Primary != nil {
		txt, err := l.Primary.PageText(ctx, path, page)
		if err == nil && strings.TrimSpace(txt) != "" {
			return txt, nil
		}
		firstErr = err
	}
	if l.Fallback != nil {
		txt, err := l.Fallback.PageText(ctx, path, page)
		if err == nil {
			return txt, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	// No provider produced text. An empty page is a legitimate outcome
	// (downstream parsing yields zero entries), so the error is advisory.
	return "", firstErr
}
