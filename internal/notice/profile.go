package notice

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// Misread is a documented literal substitution applied to one field after
// slicing and rescue. These are known OCR misreadings, not spell checking.
type Misread struct {
	Field string `yaml:"field"`
	Old   string `yaml:"old"`
	New   string `yaml:"new"`
}

// ZoneFixture maps a set of co-occurring zoning phrases in a block to one
// canonical zone string.
type ZoneFixture struct {
	Phrases   []string `yaml:"phrases"`
	Canonical string   `yaml:"canonical"`
}

// Profile is the immutable extraction configuration for one municipality:
// the header/footer patterns delimiting a notice box, the field label set,
// municipality aliases, and the fixture tables used by the rescue pass.
// All pattern fields hold RE2 syntax. Compile happens once in NewParser.
type Profile struct {
	// Header matches strict and lightly garbled spellings of the box header.
	Header string `yaml:"header"`
	// Footer matches the box footer; applied case-insensitively.
	Footer          string `yaml:"footer"`
	CanonicalFooter string `yaml:"canonicalFooter"`

	// Labels is the fixed, ordered set of field names printed in a box.
	Labels []string `yaml:"labels"`
	// AnchorLabel starts a segment in the fallback segmenter. It must be a
	// member of Labels.
	AnchorLabel string `yaml:"anchorLabel"`

	// Municipality matches the target municipality in folded text
	// (lowercased, diacritics stripped).
	Municipality string `yaml:"municipality"`
	// MunicipalityForms matches surface spellings, used by rescue patterns.
	MunicipalityForms string `yaml:"municipalityForms"`
	PostalCode        string `yaml:"postalCode"`

	// OthersMarker starts the trailing publication boilerplate.
	OthersMarker string `yaml:"othersMarker"`

	// Rescue fixtures.
	StreetSuffixes   []string      `yaml:"streetSuffixes"`
	StreetHints      []string      `yaml:"streetHints"`
	CorruptFragments []string      `yaml:"corruptFragments"`
	ProjectVerbs     []string      `yaml:"projectVerbs"`
	Zones            []ZoneFixture `yaml:"zones"`
	Department       string        `yaml:"department"`

	Misreads []Misread `yaml:"misreads"`
}

// DefaultProfile returns the Würenlos profile. Header and footer tolerances
// cover the corrupted spellings observed in OCR output of the source pages.
func DefaultProfile() Profile {
	return Profile{
		Header:          `(?:Baugesuch\s*spublikation|Baugesuchspublikation|Baugesuchspubli[kc]ation)`,
		Footer:          `BAUVERWALTUNG\s+W[ÜU]RENLOS`,
		CanonicalFooter: "BAUVERWALTUNG WÜRENLOS",

		Labels:      []string{"Bauherrschaft", "Bauvorhaben", "Lage", "Zone", "Zusatzgesuch"},
		AnchorLabel: "Bauherrschaft",

		Municipality:      `\bw(?:ue)?r(?:en)?los\b`,
		MunicipalityForms: `W[üu]renlos`,
		PostalCode:        "5436",

		OthersMarker: `Gesuchsauflage\s+vom`,

		StreetSuffixes:   []string{"strasse", "straße", "weg", "gasse", "platz", "halde", "rain", "matte"},
		StreetHints:      []string{"Tägerhard", "Landstrasse", "Dorfstrasse", "Schulstrasse", "Buechzelgli"},
		CorruptFragments: []string{"�", "¬", "|"},
		ProjectVerbs:     []string{"Neubau", "Umbau", "Anbau", "Abbruch", "Ersatzneubau", "Erstellung", "Errichtung", "Sanierung", "Erweiterung"},
		Zones: []ZoneFixture{
			{Phrases: []string{"Ausserhalb Bauzone", "Landschaftsschutzzone"}, Canonical: "Ausserhalb Bauzone – Landschaftsschutzzone"},
			{Phrases: []string{"Ausserhalb Bauzone", "Wald"}, Canonical: "Ausserhalb Bauzone – Wald"},
		},
		Department: "Departement Bau, Verkehr und Umwelt",

		Misreads: []Misread{
			{Field: "Bauvorhaben", Old: "Siloanlage", New: "Silolanlage"},
			{Field: "Lage", Old: "TÃ¤gerhard", New: "Tägerhard"},
		},
	}
}

// LoadProfile reads a YAML profile from path, overlaying the defaults so a
// file only needs to state what differs from the Würenlos configuration.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()
	b, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	if err := yaml.Unmarshal(b, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if err := p.validate(); err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

func (p Profile) validate() error {
	if p.Header == "" || p.Footer == "" {
		return fmt.Errorf("header and footer patterns are required")
	}
	if len(p.Labels) == 0 {
		return fmt.Errorf("label set is empty")
	}
	anchored := false
	for _, l := range p.Labels {
		if l == p.AnchorLabel {
			anchored = true
			break
		}
	}
	if !anchored {
		return fmt.Errorf("anchor label %q is not in the label set", p.AnchorLabel)
	}
	return nil
}
