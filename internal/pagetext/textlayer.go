package pagetext

import (
	"context"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// TextLayer reads the native text layer of a PDF page. Scanned issues have
// no text layer; the extracted string is then empty and the caller falls
// back to OCR.
type TextLayer struct{}

func (TextLayer) PageText(ctx context.Context, path string, page int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	total := r.NumPage()
	if page < 1 || page > total {
		return "", fmt.Errorf("page %d out of range, document has %d pages", page, total)
	}

	p := r.Page(page)
	if p.V.IsNull() {
		return "", nil
	}
	text, err := p.GetPlainText(nil)
	if err != nil {
		// A malformed content stream is treated as an absent text layer,
		// not a fatal error.
		return "", nil
	}
	return Flatten(Keyed{"text": Plain(text)}), nil
}
