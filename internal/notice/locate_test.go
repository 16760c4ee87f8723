package notice

import (
	"strings"
	"testing"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser(DefaultProfile())
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return p
}

const cleanBox = `Baugesuchspublikation
Bauherrschaft: Keller Andreas, Tägerhardstrasse 12, 5436 Würenlos
Bauvorhaben: Neubau Einfamilienhaus mit Garage und Pergola
Lage: Parzelle 2744 (Plan 57), Tägerhardstrasse 12
Zone: Wohnzone W2
Zusatzgesuch: keine
Gesuchsauflage vom 23. Mai bis 23. Juni 2025 bei der Bauverwaltung
BAUVERWALTUNG WÜRENLOS`

func TestFindBoxes_TwoBoxesWithNoise(t *testing.T) {
	p := newTestParser(t)
	page := "Gemeinde Wettingen\nBaubewilligungen der Woche\n\n" + cleanBox +
		"\n\nVereinsnachrichten und Inserate\n\n" + cleanBox + "\n"

	boxes := p.FindBoxes(page)
	if len(boxes) != 2 {
		t.Fatalf("expected 2 boxes, got %d", len(boxes))
	}
	for i, b := range boxes {
		if strings.Contains(b, "Baugesuchspublikation") {
			t.Fatalf("box %d still carries the header: %q", i, b)
		}
		if !strings.HasPrefix(b, "Bauherrschaft") {
			t.Fatalf("box %d should start at the first label, got %q", i, b[:40])
		}
		if !strings.Contains(b, "BAUVERWALTUNG WÜRENLOS") {
			t.Fatalf("box %d lost its footer", i)
		}
	}
}

func TestFindBoxes_GarbledHeaderAndFooterCase(t *testing.T) {
	p := newTestParser(t)
	page := "Baugesuch spublikation\nBauherrschaft: Frei Martin\nLage: Parzelle 1\nbauverwaltung würenlos\n"
	boxes := p.FindBoxes(page)
	if len(boxes) != 1 {
		t.Fatalf("expected garbled header box to be found, got %d", len(boxes))
	}

	page = "Baugesuchspublication\nBauherrschaft: Frei Martin\nBAUVERWALTUNG WURENLOS\n"
	boxes = p.FindBoxes(page)
	if len(boxes) != 1 {
		t.Fatalf("expected c-spelling header and U-footer box, got %d", len(boxes))
	}
}

func TestFindBoxes_NoMatch(t *testing.T) {
	p := newTestParser(t)
	if boxes := p.FindBoxes("nothing of interest on this page"); len(boxes) != 0 {
		t.Fatalf("expected no boxes, got %d", len(boxes))
	}
}

func TestSegmentByLabel_KeepsConfidentSegmentsOnly(t *testing.T) {
	p := newTestParser(t)
	text := `Bauherrschaft Keller Andreas, 5436 Würenlos. Bauvorhaben Neubau Gartenhaus. Lage Parzelle 2744. Zone Wohnzone W2.
Bauherrschaft wird noch bekannt gegeben.
Bauherrschaft Frei Martin, 5436 Würenlos. Bauvorhaben Umbau Scheune. Lage Parzelle 3101. Zone Landwirtschaftszone.`

	segs := p.SegmentByLabel(text)
	if len(segs) != 2 {
		t.Fatalf("expected 2 confident segments, got %d: %q", len(segs), segs)
	}
	if !strings.Contains(segs[0], "Keller") || !strings.Contains(segs[1], "Frei") {
		t.Fatalf("segments out of order: %q", segs)
	}
}

func TestMatchesTarget_NameVariantsAndPostalCode(t *testing.T) {
	p := newTestParser(t)
	for _, text := range []string{
		"Gemeinde Würenlos",
		"gemeinde wuerenlos",
		"5430 Wettingen, 5436",
		"Bauverwaltung Wurenlos", // OCR dropped the umlaut entirely
	} {
		if !p.MatchesTarget(text) {
			t.Fatalf("expected %q to match target municipality", text)
		}
	}
	for _, text := range []string{
		"Gemeinde Wettingen",
		"Stadt Baden, 5400",
		"",
	} {
		if p.MatchesTarget(text) {
			t.Fatalf("expected %q not to match", text)
		}
	}
}
