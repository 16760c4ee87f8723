// Package ocr turns scanned page images into text. Two engines are
// available: a local Tesseract install via gosseract, and an
// OpenAI-compatible vision model for issues whose scans are too poor for
// Tesseract. Both satisfy pagetext.Recognizer.
package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// DefaultLanguages covers the German notices plus the occasional English
// advert sharing the page.
const DefaultLanguages = "deu+eng"

// Tesseract wraps a gosseract client. Not safe for concurrent use; Close
// releases the underlying Tesseract handle.
type Tesseract struct {
	client *gosseract.Client
}

// NewTesseract configures a Tesseract client for newspaper columns. Page
// segmentation mode 6 treats the input as one uniform block, which suits
// the pre-cropped single-column scans these pages produce.
func NewTesseract(languages string) (*Tesseract, error) {
	c := gosseract.NewClient()
	if languages == "" {
		languages = DefaultLanguages
	}
	if err := c.SetLanguage(languages); err != nil {
		c.Close()
		return nil, fmt.Errorf("set ocr languages %q: %w", languages, err)
	}
	if err := c.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		c.Close()
		return nil, fmt.Errorf("set page segmentation mode: %w", err)
	}
	return &Tesseract{client: c}, nil
}

func (t *Tesseract) Close() error {
	if t.client != nil {
		return t.client.Close()
	}
	return nil
}

// Recognize runs OCR over one image and returns the trimmed text.
func (t *Tesseract) Recognize(ctx context.Context, image []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := t.client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := t.client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}
	return strings.TrimSpace(text), nil
}
