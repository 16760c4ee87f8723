package pagetext

import (
	"context"
	"errors"
	"testing"
)

type stubRecognizer struct {
	text string
	err  error
}

func (s stubRecognizer) Recognize(ctx context.Context, image []byte) (string, error) {
	return s.text, s.err
}

func TestExtractPageImages_TextOnlyPageHasNone(t *testing.T) {
	path := writeFixturePDF(t, []string{"no raster content here"})
	images, err := ExtractPageImages(path, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(images) != 0 {
		t.Fatalf("expected no images on a text-only page, got %d", len(images))
	}
}

func TestOCRText_EmptyWhenNoImages(t *testing.T) {
	path := writeFixturePDF(t, []string{"no raster content here"})
	o := &OCRText{Recognizer: stubRecognizer{err: errors.New("must not be called")}}
	got, err := o.PageText(context.Background(), path, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
}

func TestOCRText_MissingFile(t *testing.T) {
	o := &OCRText{Recognizer: stubRecognizer{}}
	if _, err := o.PageText(context.Background(), "absent.pdf", 1); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
