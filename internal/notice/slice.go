package notice

import (
	"strings"
)

// SliceByLabelPositions splits a box core into fields by locating every
// label token (optionally followed by a colon) and taking the text strictly
// between one label's match and the next as the earlier label's value. The
// positional order is authoritative: when a label token appears inside
// another field's value by coincidence, whichever match comes later simply
// closes the earlier field there. Every profile label is present in the
// result, defaulting to empty.
func (p *Parser) SliceByLabelPositions(core string) FieldSet {
	fs := make(FieldSet, len(p.profile.Labels))
	for _, lab := range p.profile.Labels {
		fs[lab] = ""
	}

	matches := p.reLabel.FindAllStringSubmatchIndex(core, -1)
	for i, m := range matches {
		lab := p.canonicalLabel(core[m[2]:m[3]])
		if lab == "" {
			continue
		}
		end := len(core)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		fs[lab] = p.cleanValue(core[m[1]:end])
	}
	return fs
}

// canonicalLabel maps a case-garbled label match back to its profile form.
func (p *Parser) canonicalLabel(tok string) string {
	for _, lab := range p.profile.Labels {
		if strings.EqualFold(lab, tok) {
			return lab
		}
	}
	return ""
}

// cleanValue repairs OCR damage inside one field value: soft hyphens and
// hyphen line-wraps removed, internal line breaks flattened, whitespace
// runs collapsed, and a space restored at a lowercase-to-uppercase letter
// boundary where OCR fused two words.
func (p *Parser) cleanValue(val string) string {
	val = strings.ReplaceAll(val, "\u00ad", "")
	val = strings.ReplaceAll(val, "-\n", "")
	val = p.reLineJoin.ReplaceAllString(val, " ")
	val = reHorizontalWS.ReplaceAllString(val, " ")
	val = p.reFusedWord.ReplaceAllString(val, "$1 $2")
	return strings.Trim(val, " ·;:,")
}
