package notice

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Heuristic thresholds for judging a sliced field unreliable, and the
// per-field length margins a rescue candidate must clear before it replaces
// the sliced value. The margins are hand-tuned; there is no labeled corpus
// behind them yet.
const (
	minApplicantRunes = 20
	minProjectRunes   = 25
	minLocationRunes  = 12

	marginApplicant = 8
	marginProject   = 5
	marginLocation  = 4
)

func (ps *Parser) compileRescue() error {
	p := ps.profile

	suffixAlt := strings.Join(p.StreetSuffixes, "|")
	street := `[\p{L}.\- ]+(?:` + suffixAlt + `)`
	verbAlt := strings.Join(p.ProjectVerbs, "|")

	steps := []struct {
		dst  **regexp.Regexp
		expr string
	}{
		// Name, comma, street ending in a recognized suffix, house number,
		// comma, postal code, municipality.
		{&ps.reRescueApplicant,
			`(?i)([\p{L}][\p{L}&+.\- ]*(?:,\s*[\p{L}&+.\- ]+)*?,\s*` + street +
				`\s*\d+[a-z]?,\s*` + p.PostalCode + `\s+` + p.MunicipalityForms + `)`},
		// Verb-anchored project phrase, bounded so text belonging to the
		// location field is not absorbed past the parcel marker.
		{&ps.reRescueProject,
			`(?is)\b((?:` + verbAlt + `)\b.{5,300}?)\s*(?:Lage\s*:?\s*)?Parzelle`},
		// Parzelle <nr> (Plan <nr>), <street> <nr>
		{&ps.reRescueLocation,
			`(?i)(Parzelle\s*\d+\s*\(\s*Plan\s*\d+\s*\)\s*,\s*[\p{L}][\p{L}.\- ]*\d+[a-z]?)`},
		{&ps.reDepartment, `(?i)` + strings.ReplaceAll(regexp.QuoteMeta(p.Department), " ", `\s+`)},
		{&ps.reLeadingLabel, `(?i)^(?:` + strings.Join(p.Labels, "|") + `)\s*:?\s*`},
	}
	for _, s := range steps {
		re, err := regexp.Compile(s.expr)
		if err != nil {
			return fmt.Errorf("compile rescue %q: %w", s.expr, err)
		}
		*s.dst = re
	}
	return nil
}

// needsRescue reports whether the sliced fields look too short or garbled
// to trust, which is common for machine-read boxes.
func (p *Parser) needsRescue(block string, fs FieldSet) bool {
	if utf8.RuneCountInString(fs[labelApplicant]) < minApplicantRunes {
		return true
	}
	project := fs[labelProject]
	if utf8.RuneCountInString(project) < minProjectRunes || containsAny(project, p.profile.CorruptFragments) {
		return true
	}
	// Strong positional cues in the block with a weak location field.
	if p.reParcelCue.MatchString(block) && containsAny(block, p.profile.StreetHints) {
		location := fs[labelLocation]
		if utf8.RuneCountInString(location) < minLocationRunes || !strings.HasPrefix(location, "Parzelle") {
			return true
		}
	}
	return false
}

// Rescue re-derives fields from the whole block with anchored patterns and
// keeps a candidate only when it clears the field's length margin over the
// sliced value. Zone and supplementary application are fixture lookups and
// replace outright; the location field additionally prefers the canonical
// "Parzelle…" form over a non-canonical value even when shorter. Rescue
// only runs on entries the slicer already failed, so a weak match can only
// improve on a broken field.
func (p *Parser) Rescue(block string, fs FieldSet) FieldSet {
	out := make(FieldSet, len(fs))
	for k, v := range fs {
		out[k] = v
	}

	if m := p.reRescueApplicant.FindStringSubmatch(block); m != nil {
		cand := p.cleanValue(p.reLeadingLabel.ReplaceAllString(m[1], ""))
		if runeLen(cand) > runeLen(out[labelApplicant])+marginApplicant {
			out[labelApplicant] = cand
		}
	}

	if m := p.reRescueProject.FindStringSubmatch(block); m != nil {
		cand := p.cleanValue(p.reLeadingLabel.ReplaceAllString(m[1], ""))
		if runeLen(cand) > runeLen(out[labelProject])+marginProject {
			out[labelProject] = cand
		}
	}

	if m := p.reRescueLocation.FindStringSubmatch(block); m != nil {
		cand := p.cleanValue(m[1])
		cur := out[labelLocation]
		canonicalGain := strings.HasPrefix(cand, "Parzelle") && !strings.HasPrefix(cur, "Parzelle")
		if canonicalGain || runeLen(cand) > runeLen(cur)+marginLocation {
			out[labelLocation] = cand
		}
	}

	for _, z := range p.profile.Zones {
		if containsAll(block, z.Phrases) {
			out[labelZone] = z.Canonical
			break
		}
	}

	if p.profile.Department != "" && p.reDepartment.MatchString(block) {
		out[labelSupplemental] = p.profile.Department
	}
	return out
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func containsAll(s string, needles []string) bool {
	for _, n := range needles {
		if !strings.Contains(s, n) {
			return false
		}
	}
	return len(needles) > 0
}
