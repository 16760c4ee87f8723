package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested
// sections map naturally to flags/env.
type FileConfig struct {
	Input   string `yaml:"input" json:"input"`
	Page    int    `yaml:"page" json:"page"`
	Output  string `yaml:"output" json:"output"`
	Profile string `yaml:"profile" json:"profile"`

	Epaper struct {
		URL      string   `yaml:"url" json:"url"`
		Targets  []string `yaml:"targets" json:"targets"`
		Download bool     `yaml:"download" json:"download"`
		UA       string   `yaml:"ua" json:"ua"`
	} `yaml:"epaper" json:"epaper"`

	OCR struct {
		Languages string `yaml:"languages" json:"languages"`
	} `yaml:"ocr" json:"ocr"`

	Vision struct {
		BaseURL string `yaml:"base" json:"base"`
		Model   string `yaml:"model" json:"model"`
		APIKey  string `yaml:"key" json:"key"`
	} `yaml:"vision" json:"vision"`

	EnablePDF bool `yaml:"enablePDF" json:"enablePDF"`
	Verbose   bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// Defaults shared between flag registration and the file-config overlay.
const (
	InputDefault     = "limmatwelle.pdf"
	PageDefault      = 1
	OutputDefault    = "baugesuche.json"
	UserAgentDefault = "baugesuch/1.0 (+https://github.com/epaperscan/baugesuch)"
)

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// that are currently unset or still at their flag default. Flags should
// already have been parsed; this lets file config supply defaults while
// preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}

	if (cfg.InputPath == "" || cfg.InputPath == InputDefault) && fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if (cfg.Page == 0 || cfg.Page == PageDefault) && fc.Page > 0 {
		cfg.Page = fc.Page
	}
	if (cfg.OutputPath == "" || cfg.OutputPath == OutputDefault) && fc.Output != "" {
		cfg.OutputPath = fc.Output
	}
	if cfg.ProfilePath == "" && fc.Profile != "" {
		cfg.ProfilePath = fc.Profile
	}

	if cfg.EpaperIndexURL == "" && fc.Epaper.URL != "" {
		cfg.EpaperIndexURL = fc.Epaper.URL
	}
	if len(cfg.IssueTargets) == 0 && len(fc.Epaper.Targets) > 0 {
		cfg.IssueTargets = append([]string{}, fc.Epaper.Targets...)
	}
	if !cfg.DownloadIssue && fc.Epaper.Download {
		cfg.DownloadIssue = true
	}
	if (cfg.UserAgent == "" || cfg.UserAgent == UserAgentDefault) && fc.Epaper.UA != "" {
		cfg.UserAgent = fc.Epaper.UA
	}

	if cfg.OCRLanguages == "" && fc.OCR.Languages != "" {
		cfg.OCRLanguages = fc.OCR.Languages
	}
	if cfg.VisionBaseURL == "" && fc.Vision.BaseURL != "" {
		cfg.VisionBaseURL = fc.Vision.BaseURL
	}
	if cfg.VisionModel == "" && fc.Vision.Model != "" {
		cfg.VisionModel = fc.Vision.Model
	}
	if cfg.VisionAPIKey == "" && fc.Vision.APIKey != "" {
		cfg.VisionAPIKey = fc.Vision.APIKey
	}

	if !cfg.EnablePDF && fc.EnablePDF {
		cfg.EnablePDF = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
