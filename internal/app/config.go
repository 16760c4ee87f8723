package app

import (
	"errors"
	"strings"
)

// Config carries all settings for one extraction run.
type Config struct {
	// InputPath is the issue PDF on disk. When DownloadIssue is set the
	// current issue is fetched to this path first.
	InputPath string
	// Page is the 1-indexed page carrying the official publications.
	Page int
	// OutputPath receives the JSON array of extracted entries.
	OutputPath string
	// ProfilePath optionally overrides the built-in municipality profile
	// with a YAML file.
	ProfilePath string

	// Issue download settings.
	DownloadIssue  bool
	EpaperIndexURL string
	// IssueTargets are the phrases the issue anchor text must contain,
	// typically the publication name and the issue date.
	IssueTargets []string
	UserAgent    string

	// OCR settings. When VisionModel is set the OpenAI-compatible vision
	// endpoint replaces the local Tesseract install.
	OCRLanguages  string
	VisionBaseURL string
	VisionModel   string
	VisionAPIKey  string

	// EnablePDF additionally renders the extracted entries as a simple
	// PDF report next to the JSON output.
	EnablePDF bool

	Verbose bool
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.InputPath) == "" {
		return errors.New("config: input path is required")
	}
	if strings.TrimSpace(cfg.OutputPath) == "" {
		return errors.New("config: output path is required")
	}
	if cfg.Page < 1 {
		return errors.New("config: page must be 1 or greater")
	}
	if cfg.DownloadIssue {
		if strings.TrimSpace(cfg.EpaperIndexURL) == "" {
			return errors.New("config: epaper.url is required when download is enabled")
		}
		if len(cfg.IssueTargets) == 0 {
			return errors.New("config: epaper.targets is required when download is enabled")
		}
	}
	return nil
}
