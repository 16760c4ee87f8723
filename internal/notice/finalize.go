package notice

import (
	"strings"
)

// quoteStripper removes typographic quote marks OCR sprinkles into the
// location field.
var quoteStripper = strings.NewReplacer("‚", "", "’", "", "‘", "")

// finalizeEntry applies the last per-entry corrections after slicing and
// rescue and canonicalizes the publication boilerplate.
func (p *Parser) finalizeEntry(fs FieldSet, rawOthers string) Entry {
	e := Entry{
		Bauherrschaft: fs[labelApplicant],
		Bauvorhaben:   fs[labelProject],
		Lage:          fs[labelLocation],
		Zone:          fs[labelZone],
		Zusatzgesuch:  fs[labelSupplemental],
	}

	for _, m := range p.profile.Misreads {
		switch m.Field {
		case labelApplicant:
			e.Bauherrschaft = strings.ReplaceAll(e.Bauherrschaft, m.Old, m.New)
		case labelProject:
			e.Bauvorhaben = strings.ReplaceAll(e.Bauvorhaben, m.Old, m.New)
		case labelLocation:
			e.Lage = strings.ReplaceAll(e.Lage, m.Old, m.New)
		case labelZone:
			e.Zone = strings.ReplaceAll(e.Zone, m.Old, m.New)
		case labelSupplemental:
			e.Zusatzgesuch = strings.ReplaceAll(e.Zusatzgesuch, m.Old, m.New)
		}
	}

	e.Lage = quoteStripper.Replace(e.Lage)
	e.Lage = strings.ReplaceAll(e.Lage, " - ", " – ")

	// OCR sometimes fuses "Gemeinde" with the municipality name.
	e.Bauherrschaft = p.reFusedMuni.ReplaceAllString(e.Bauherrschaft, "$1 $2")

	// When the project description ran into the location field's marker,
	// cut it off there.
	if loc := p.reTruncMarker.FindStringIndex(e.Bauvorhaben); loc != nil && loc[0] > 0 {
		e.Bauvorhaben = strings.TrimRight(e.Bauvorhaben[:loc[0]], " ,;:·")
	}

	e.Others = p.normalizeOthers(rawOthers)
	return e
}

// normalizeOthers flattens the boilerplate to one line and collapses any
// run of footer-phrase repeats to exactly one canonical footer, appending
// it when absent entirely.
func (p *Parser) normalizeOthers(others string) string {
	if others == "" {
		return ""
	}
	others = strings.ReplaceAll(others, "\u00ad", "")
	others = strings.ReplaceAll(others, "-\n", "")
	others = p.reLineJoin.ReplaceAllString(others, " ")
	others = reHorizontalWS.ReplaceAllString(others, " ")
	others = strings.TrimSpace(others)

	others = p.reFooterRun.ReplaceAllString(others, p.profile.CanonicalFooter)
	if !strings.Contains(others, p.profile.CanonicalFooter) {
		others += " " + p.profile.CanonicalFooter
	}
	return others
}
