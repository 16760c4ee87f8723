package pagetext

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PageCount returns the number of pages in the PDF at path.
func PageCount(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()
	n, err := api.PageCount(f, model.NewDefaultConfiguration())
	if err != nil {
		return 0, fmt.Errorf("page count %s: %w", path, err)
	}
	return n, nil
}

// ExtractPageImages pulls the embedded raster images of one page out of the
// PDF and returns their bytes. Scanned newspaper pages carry exactly one
// full-page scan; ad-heavy pages may carry several, so the result is a
// slice ordered by extracted file name for determinism.
func ExtractPageImages(path string, page int) ([][]byte, error) {
	outDir, err := os.MkdirTemp("", "pageimg-*")
	if err != nil {
		return nil, fmt.Errorf("temp dir: %w", err)
	}
	defer os.RemoveAll(outDir)

	sel := []string{strconv.Itoa(page)}
	if err := api.ExtractImagesFile(path, outDir, sel, model.NewDefaultConfiguration()); err != nil {
		return nil, fmt.Errorf("extract images from %s page %d: %w", path, page, err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		return nil, fmt.Errorf("read image dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	images := make([][]byte, 0, len(names))
	for _, name := range names {
		b, err := os.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			return nil, fmt.Errorf("read extracted image %s: %w", name, err)
		}
		images = append(images, b)
	}
	return images, nil
}

// Recognizer turns one raster image into text.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}

// OCRText extracts a page's embedded images and runs each through the
// configured recognizer. Per-image failures degrade to skipped fragments
// rather than failing the page; an error is returned only when no image
// produced any text.
type OCRText struct {
	Recognizer Recognizer
}

func (o *OCRText) PageText(ctx context.Context, path string, page int) (string, error) {
	images, err := ExtractPageImages(path, page)
	if err != nil {
		return "", err
	}

	var parts Listed
	var lastErr error
	for _, img := range images {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		txt, err := o.Recognizer.Recognize(ctx, img)
		if err != nil {
			lastErr = err
			continue
		}
		parts = append(parts, Plain(txt))
	}
	out := Flatten(parts)
	if out == "" && lastErr != nil {
		return "", fmt.Errorf("ocr page %d of %s: %w", page, path, lastErr)
	}
	return out, nil
}
