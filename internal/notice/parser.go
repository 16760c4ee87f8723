// Package notice implements the construction-permit notice extraction
// engine: locating notice boxes in noisy page text, slicing a box into its
// labeled fields, and the tolerant rescue heuristics that keep OCR damage
// out of the output. Everything here is pure string processing; the package
// does no I/O.
package notice

import (
	"fmt"
	"regexp"
	"strings"
)

// Parser is the extraction engine for one municipality profile. All methods
// are pure functions over their input text; a Parser is safe for concurrent
// use after construction.
type Parser struct {
	profile Profile

	reBox          *regexp.Regexp
	reHeaderPrefix *regexp.Regexp
	reHeader       *regexp.Regexp
	reFooter       *regexp.Regexp
	reFooterRun    *regexp.Regexp
	reLabel        *regexp.Regexp
	reAnchor       *regexp.Regexp
	reLabelWords   map[string]*regexp.Regexp
	reSentence     *regexp.Regexp
	reMunicipality *regexp.Regexp
	reOthersStart  *regexp.Regexp
	reLineJoin     *regexp.Regexp
	reFusedWord    *regexp.Regexp
	reFusedMuni    *regexp.Regexp
	reTruncMarker  *regexp.Regexp

	reParcelCue       *regexp.Regexp
	reLeadingLabel    *regexp.Regexp
	reRescueApplicant *regexp.Regexp
	reRescueProject   *regexp.Regexp
	reRescueLocation  *regexp.Regexp
	reDepartment      *regexp.Regexp
}

// NewParser compiles the profile's patterns once. An invalid profile is the
// only error source; parsing itself never fails.
func NewParser(p Profile) (*Parser, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	ps := &Parser{profile: p}

	compile := func(dst **regexp.Regexp, expr string) error {
		re, err := regexp.Compile(expr)
		if err != nil {
			return fmt.Errorf("compile %q: %w", expr, err)
		}
		*dst = re
		return nil
	}

	labelAlt := strings.Join(p.Labels, "|")
	steps := []struct {
		dst  **regexp.Regexp
		expr string
	}{
		{&ps.reBox, `(?is)` + p.Header + `\b.*?` + p.Footer},
		{&ps.reHeaderPrefix, `(?i)^` + p.Header + `\b\s*`},
		{&ps.reHeader, `(?i)` + p.Header},
		{&ps.reFooter, `(?i)` + p.Footer},
		{&ps.reFooterRun, `(?i)(?:` + p.Footer + `)(?:\s*(?:` + p.Footer + `))*`},
		{&ps.reLabel, `(?i)(` + labelAlt + `)\s*:?`},
		{&ps.reAnchor, `\b` + p.AnchorLabel + `\b`},
		{&ps.reSentence, `([.:;])\s+([A-ZÄÖÜ])`},
		{&ps.reMunicipality, p.Municipality},
		{&ps.reOthersStart, `(?i)` + p.OthersMarker},
		{&ps.reLineJoin, `\s*\n\s*`},
		{&ps.reFusedWord, `([a-zäöüß])([A-ZÄÖÜ])`},
		{&ps.reFusedMuni, `(?i)(Gemeinde)(` + p.MunicipalityForms + `)`},
		{&ps.reTruncMarker, `\bParzelle\b`},
		{&ps.reParcelCue, `(?i)Parzelle\s*\d+`},
	}
	for _, s := range steps {
		if err := compile(s.dst, s.expr); err != nil {
			return nil, err
		}
	}

	ps.reLabelWords = make(map[string]*regexp.Regexp, len(p.Labels))
	for _, lab := range p.Labels {
		re, err := regexp.Compile(`\b` + lab + `\b`)
		if err != nil {
			return nil, fmt.Errorf("compile label %q: %w", lab, err)
		}
		ps.reLabelWords[lab] = re
	}

	if err := ps.compileRescue(); err != nil {
		return nil, err
	}
	return ps, nil
}

// Profile returns the profile the parser was built with.
func (p *Parser) Profile() Profile { return p.profile }

// ParsePage extracts at most two entries from the full text of one page.
// Boxes delimited by header and footer are the primary path; when fewer
// than two municipality-matching boxes exist, segmentation by the anchor
// label is the fallback. The last two candidates in document order are the
// bottom-of-page notices.
func (p *Parser) ParsePage(text string) []Entry {
	norm := Normalize(text)

	boxes := p.FindBoxes(norm)
	kept := boxes[:0:0]
	for _, b := range boxes {
		if p.MatchesTarget(b) {
			kept = append(kept, b)
		}
	}

	var candidates []string
	if len(kept) >= 2 {
		candidates = kept[len(kept)-2:]
	} else {
		for _, seg := range p.SegmentByLabel(norm) {
			if p.MatchesTarget(seg) {
				candidates = append(candidates, seg)
			}
		}
		if len(candidates) > 2 {
			candidates = candidates[len(candidates)-2:]
		}
	}

	entries := make([]Entry, 0, len(candidates))
	for _, block := range candidates {
		entries = append(entries, p.parseEntry(block))
	}
	// Defensive cap even if a prior stage over-produced.
	if len(entries) > 2 {
		entries = entries[len(entries)-2:]
	}
	return entries
}

// parseEntry parses a single box or segment: carve the trailing boilerplate,
// slice the core by label positions, rescue weak fields from the whole
// block, then apply the final per-field corrections.
func (p *Parser) parseEntry(block string) Entry {
	core, rawOthers := p.carveOthers(block)
	fs := p.SliceByLabelPositions(core)
	if p.needsRescue(block, fs) {
		fs = p.Rescue(block, fs)
	}
	return p.finalizeEntry(fs, rawOthers)
}

// carveOthers splits a block into the labeled core and the publication
// boilerplate starting at the others marker. The boilerplate runs to the
// end of the first footer match, or to the next header when the footer was
// lost, or to the end of the block.
func (p *Parser) carveOthers(block string) (core, others string) {
	m := p.reOthersStart.FindStringIndex(block)
	if m == nil {
		return block, ""
	}
	start := m[0]
	end := len(block)
	if f := p.reFooter.FindStringIndex(block); f != nil {
		end = f[1]
	} else if h := p.reHeader.FindStringIndex(block[start:]); h != nil {
		end = start + h[0]
	}
	if end <= start {
		return block[:start], ""
	}
	return block[:start], block[start:end]
}
