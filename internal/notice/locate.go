package notice

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FindBoxes returns every non-overlapping, shortest-possible header..footer
// span in the text, in document order, with the header text stripped from
// the front of each match. The matcher spans newlines so a box is found
// even when its fields are multi-line. No match yields an empty slice.
func (p *Parser) FindBoxes(text string) []string {
	t := Normalize(text)
	raw := p.reBox.FindAllString(t, -1)
	boxes := make([]string, 0, len(raw))
	for _, b := range raw {
		boxes = append(boxes, strings.TrimSpace(p.reHeaderPrefix.ReplaceAllString(b, "")))
	}
	return boxes
}

// SegmentByLabel is the fallback used when the header or footer was lost to
// OCR. Paragraph breaks are re-inserted after sentence-ending punctuation
// followed by a capital, then every occurrence of the anchor label starts a
// segment running to the next occurrence or end of text. A segment is kept
// only when at least minLabelHits of the field labels occur in it.
func (p *Parser) SegmentByLabel(text string) []string {
	page := Normalize(text)
	page = p.reSentence.ReplaceAllString(page, "$1\n\n$2")

	starts := p.reAnchor.FindAllStringIndex(page, -1)
	segments := make([]string, 0, len(starts))
	for i, loc := range starts {
		end := len(page)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		block := strings.TrimSpace(page[loc[0]:end])
		hits := 0
		for _, lab := range p.profile.Labels {
			if p.reLabelWords[lab].MatchString(block) {
				hits++
			}
		}
		if hits >= minLabelHits {
			segments = append(segments, block)
		}
	}
	return segments
}

// minLabelHits is the confidence threshold for fallback segments: a block
// mentioning fewer field labels is stray page text, not a notice.
const minLabelHits = 3

// MatchesTarget reports whether the text references the target municipality
// by a name variant (diacritics and dropped letters tolerated) or by its
// postal code.
func (p *Parser) MatchesTarget(text string) bool {
	folded := foldText(text)
	if p.reMunicipality.MatchString(folded) {
		return true
	}
	return p.profile.PostalCode != "" && strings.Contains(folded, p.profile.PostalCode)
}

var foldTransformer = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldText lowercases and strips combining marks so that Würenlos,
// Wuerenlos and Wurenlos compare equal after the alias pattern's optional
// groups are applied.
func foldText(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
