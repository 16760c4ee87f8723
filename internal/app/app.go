// Package app wires the page-text providers, the notice parser, and the
// output artifacts into a single extraction run.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/epaperscan/baugesuch/internal/epaper"
	"github.com/epaperscan/baugesuch/internal/notice"
	"github.com/epaperscan/baugesuch/internal/ocr"
	"github.com/epaperscan/baugesuch/internal/pagetext"
)

// ErrPDFNotFound distinguishes a missing issue document from parse-stage
// failures. Per the exit code policy this condition is fatal.
var ErrPDFNotFound = fmt.Errorf("issue pdf not found")

// App owns the parser and the page-text provider for one run.
type App struct {
	cfg      Config
	parser   *notice.Parser
	provider pagetext.Provider
	closers  []func() error
}

func New(cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	profile := notice.DefaultProfile()
	if cfg.ProfilePath != "" {
		var err error
		profile, err = notice.LoadProfile(cfg.ProfilePath)
		if err != nil {
			return nil, fmt.Errorf("load profile: %w", err)
		}
	}
	parser, err := notice.NewParser(profile)
	if err != nil {
		return nil, fmt.Errorf("build parser: %w", err)
	}

	a := &App{cfg: cfg, parser: parser}
	a.provider = &pagetext.Layered{
		Primary:  pagetext.TextLayer{},
		Fallback: a.buildOCRProvider(),
	}
	return a, nil
}

// buildOCRProvider picks the OCR engine. A vision model takes precedence;
// otherwise a local Tesseract install is used. A host without either still
// runs, with the text layer as the only source.
func (a *App) buildOCRProvider() pagetext.Provider {
	if a.cfg.VisionModel != "" {
		rec := ocr.NewVision(a.cfg.VisionBaseURL, a.cfg.VisionAPIKey, a.cfg.VisionModel)
		return &pagetext.OCRText{Recognizer: rec}
	}
	tess, err := ocr.NewTesseract(a.cfg.OCRLanguages)
	if err != nil {
		log.Warn().Err(err).Msg("tesseract unavailable, ocr fallback disabled")
		return nil
	}
	a.closers = append(a.closers, tess.Close)
	return &pagetext.OCRText{Recognizer: tess}
}

func (a *App) Close() {
	for _, c := range a.closers {
		_ = c()
	}
}

// Run executes the pipeline and returns the JSON document that was written
// to the output path.
func (a *App) Run(ctx context.Context) (string, error) {
	path := a.cfg.InputPath
	if a.cfg.DownloadIssue {
		d := &epaper.Downloader{
			Client: &epaper.Client{
				UserAgent:         a.cfg.UserAgent,
				MaxAttempts:       3,
				PerRequestTimeout: 60 * time.Second,
			},
			IndexURL: a.cfg.EpaperIndexURL,
			Targets:  a.cfg.IssueTargets,
		}
		issueURL, err := d.Download(ctx, path)
		if err != nil {
			return "", fmt.Errorf("download issue: %w", err)
		}
		log.Info().Str("url", issueURL).Str("path", path).Msg("issue downloaded")
	}

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrPDFNotFound, path)
	}

	text, err := a.provider.PageText(ctx, path, a.cfg.Page)
	if err != nil {
		// Absent text is a legitimate outcome: the run continues and
		// yields an empty entry list.
		log.Warn().Err(err).Int("page", a.cfg.Page).Msg("page text degraded to empty")
	}
	log.Debug().Int("page", a.cfg.Page).Int("chars", len(text)).Msg("page text acquired")

	if err := writeDebugText(a.cfg.OutputPath, notice.Normalize(text)); err != nil {
		log.Warn().Err(err).Msg("debug artifact not written")
	}

	entries := a.parser.ParsePage(text)
	log.Info().Int("entries", len(entries)).Msg("page parsed")

	out, err := writeEntriesJSON(a.cfg.OutputPath, entries)
	if err != nil {
		return "", err
	}

	if a.cfg.EnablePDF {
		reportPath := reportPDFPath(a.cfg.OutputPath)
		if err := writeReportPDF(entries, reportPath); err != nil {
			log.Warn().Err(err).Str("path", reportPath).Msg("pdf report not written")
		} else {
			log.Info().Str("path", reportPath).Msg("pdf report written")
		}
	}
	return out, nil
}
