package epaper

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// minIssueSize rejects error pages served with a PDF name. A real issue is
// megabytes; anything under 1 KiB is noise.
const minIssueSize = 1024

// Downloader fetches the archive index, locates the current issue link,
// and stores the issue PDF.
type Downloader struct {
	Client   *Client
	IndexURL string
	// Targets are the phrases the issue anchor text must contain, e.g.
	// the publication name and an issue date.
	Targets []string
}

// Download stores the located issue at outPath and returns the resolved
// issue URL.
func (d *Downloader) Download(ctx context.Context, outPath string) (string, error) {
	base, err := url.Parse(d.IndexURL)
	if err != nil {
		return "", fmt.Errorf("parse index url: %w", err)
	}

	page, _, err := d.Client.Get(ctx, d.IndexURL)
	if err != nil {
		return "", fmt.Errorf("fetch archive index: %w", err)
	}

	issueURL, err := FindIssueLink(page, base, d.Targets)
	if err != nil {
		return "", err
	}

	body, ct, err := d.Client.Get(ctx, issueURL)
	if err != nil {
		return "", fmt.Errorf("fetch issue %s: %w", issueURL, err)
	}
	if len(body) < minIssueSize {
		return "", fmt.Errorf("issue %s is %d bytes (content type %s), refusing to store", issueURL, len(body), ct)
	}
	if !looksLikePDF(body) {
		return "", fmt.Errorf("issue %s does not look like a PDF (content type %s)", issueURL, ct)
	}

	if dir := filepath.Dir(outPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(outPath, body, 0o644); err != nil {
		return "", fmt.Errorf("write issue: %w", err)
	}
	return issueURL, nil
}

func looksLikePDF(body []byte) bool {
	return strings.HasPrefix(string(body[:min(len(body), 8)]), "%PDF-")
}
