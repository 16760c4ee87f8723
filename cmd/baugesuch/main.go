package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/epaperscan/baugesuch/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Optional dotenv so credentials stay out of shell history
	_ = app.LoadEnvFiles(".env")

	var (
		inputPath    string
		page         int
		outputPath   string
		profilePath  string
		configPath   string
		epaperURL    string
		issueTargets string
		download     bool
		userAgent    string
		ocrLangs     string
		visionBase   string
		visionModel  string
		visionKey    string
		enablePDF    bool
		verbose      bool
	)

	flag.StringVar(&inputPath, "input", app.InputDefault, "Path to the issue PDF (download target when -download is set)")
	flag.IntVar(&page, "page", app.PageDefault, "1-indexed page carrying the official publications")
	flag.StringVar(&outputPath, "output", app.OutputDefault, "Path to write the JSON array of extracted notices")
	flag.StringVar(&profilePath, "profile", "", "Optional YAML municipality profile overriding the built-in Würenlos profile")
	flag.StringVar(&configPath, "config", os.Getenv("BAUGESUCH_CONFIG"), "Optional YAML/JSON config file; flags take precedence")
	flag.StringVar(&epaperURL, "epaper.url", os.Getenv("EPAPER_URL"), "Archive index URL of the e-paper")
	flag.StringVar(&issueTargets, "epaper.targets", os.Getenv("EPAPER_TARGETS"), "Comma-separated phrases the issue link text must contain")
	flag.BoolVar(&download, "download", false, "Download the current issue before parsing")
	flag.StringVar(&userAgent, "epaper.ua", app.UserAgentDefault, "User-Agent for archive requests")
	flag.StringVar(&ocrLangs, "ocr.langs", os.Getenv("OCR_LANGS"), "Tesseract languages, e.g. deu+eng")
	flag.StringVar(&visionBase, "vision.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL for vision OCR")
	flag.StringVar(&visionModel, "vision.model", os.Getenv("LLM_MODEL"), "Vision model name; when set, replaces Tesseract")
	flag.StringVar(&visionKey, "vision.key", os.Getenv("LLM_API_KEY"), "API key for the vision endpoint")
	flag.BoolVar(&enablePDF, "enable.pdf", false, "Also render the extracted notices as a PDF report")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		InputPath:      inputPath,
		Page:           page,
		OutputPath:     outputPath,
		ProfilePath:    profilePath,
		DownloadIssue:  download,
		EpaperIndexURL: epaperURL,
		UserAgent:      userAgent,
		OCRLanguages:   ocrLangs,
		VisionBaseURL:  visionBase,
		VisionModel:    visionModel,
		VisionAPIKey:   visionKey,
		EnablePDF:      enablePDF,
		Verbose:        verbose,
	}
	cfg.IssueTargets = splitList(issueTargets)

	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("config file")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: a missing issue document is the distinct
		// failure mode callers schedule around.
		if errors.Is(err, app.ErrPDFNotFound) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	out, err := a.Run(ctx)
	if err != nil {
		return err
	}
	// The JSON document also goes to stdout so the tool composes in
	// pipelines without reading the output file.
	fmt.Println(out)
	return nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			list = append(list, v)
		}
	}
	return list
}
