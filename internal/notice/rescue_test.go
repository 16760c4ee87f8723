package notice

import (
	"strings"
	"testing"
)

func baseFields(p *Parser) FieldSet {
	fs := make(FieldSet)
	for _, lab := range p.Profile().Labels {
		fs[lab] = ""
	}
	return fs
}

func TestNeedsRescue_Triggers(t *testing.T) {
	p := newTestParser(t)

	fs := baseFields(p)
	fs["Bauherrschaft"] = "Keller Andreas, Tägerhardstrasse 12, 5436 Würenlos"
	fs["Bauvorhaben"] = "Neubau Einfamilienhaus mit Garage"
	fs["Lage"] = "Parzelle 2744 (Plan 57), Tägerhardstrasse 12"
	if p.needsRescue("Parzelle 2744 Tägerhardstrasse", fs) {
		t.Fatalf("healthy fields should not trigger rescue")
	}

	short := baseFields(p)
	short["Bauherrschaft"] = "Muster AG"
	short["Bauvorhaben"] = fs["Bauvorhaben"]
	short["Lage"] = fs["Lage"]
	if !p.needsRescue("", short) {
		t.Fatalf("short applicant should trigger rescue")
	}

	garbled := baseFields(p)
	garbled["Bauherrschaft"] = fs["Bauherrschaft"]
	garbled["Bauvorhaben"] = "Neubau eines gedeckten Sitzplatzes mit Pe�gola"
	garbled["Lage"] = fs["Lage"]
	if !p.needsRescue("", garbled) {
		t.Fatalf("corrupt fragment in project should trigger rescue")
	}

	badLoc := baseFields(p)
	badLoc["Bauherrschaft"] = fs["Bauherrschaft"]
	badLoc["Bauvorhaben"] = fs["Bauvorhaben"]
	badLoc["Lage"] = "an der Strasse"
	block := "Lage Parzelle 2744 (Plan 57), Tägerhardstrasse 12"
	if !p.needsRescue(block, badLoc) {
		t.Fatalf("parcel cue with non-canonical location should trigger rescue")
	}
}

func TestRescue_ReplacesShortApplicant(t *testing.T) {
	p := newTestParser(t)
	block := "Bauherrschaft Keller Andreas, Tägerhardstrasse 12, 5436 Würenlos Bauvorhaben Neubau Gartenhaus"

	fs := baseFields(p)
	fs["Bauherrschaft"] = "Keller A."
	if !p.needsRescue(block, fs) {
		t.Fatalf("10-character applicant must trigger rescue")
	}
	out := p.Rescue(block, fs)
	if out["Bauherrschaft"] != "Keller Andreas, Tägerhardstrasse 12, 5436 Würenlos" {
		t.Fatalf("expected rescued applicant, got %q", out["Bauherrschaft"])
	}
}

func TestRescue_MarginBlocksWeakCandidate(t *testing.T) {
	p := newTestParser(t)
	// The anchored match is barely longer than the current value, within
	// the margin, so the sliced value stands.
	block := "Huber Anna, Dorfstrasse 3, 5436 Würenlos"
	fs := baseFields(p)
	fs["Bauherrschaft"] = "Huber Anna und Peter, Dorfstrasse 3" // 35 runes vs 40-rune candidate

	out := p.Rescue(block, fs)
	if out["Bauherrschaft"] != fs["Bauherrschaft"] {
		t.Fatalf("candidate within margin must not replace, got %q", out["Bauherrschaft"])
	}
}

func TestRescue_LocationPrefersCanonicalForm(t *testing.T) {
	p := newTestParser(t)
	block := "Lage Parzelle 100 (Plan 5), Dorfstrasse 3"
	fs := baseFields(p)
	fs["Lage"] = "beim alten Schulhaus an der Dorfstrasse" // longer but not canonical

	out := p.Rescue(block, fs)
	if out["Lage"] != "Parzelle 100 (Plan 5), Dorfstrasse 3" {
		t.Fatalf("expected canonical parcel form, got %q", out["Lage"])
	}
}

func TestRescue_ZoneFixtures(t *testing.T) {
	p := newTestParser(t)

	out := p.Rescue("Zone Ausserhalb Bauzone Landschaftsschutzzone", baseFields(p))
	if out["Zone"] != "Ausserhalb Bauzone – Landschaftsschutzzone" {
		t.Fatalf("expected landscape protection zone, got %q", out["Zone"])
	}

	out = p.Rescue("Zone Ausserhalb Bauzone Wald", baseFields(p))
	if out["Zone"] != "Ausserhalb Bauzone – Wald" {
		t.Fatalf("expected forest zone, got %q", out["Zone"])
	}

	fs := baseFields(p)
	fs["Zone"] = "Wohnzone W2"
	out = p.Rescue("no zoning keywords here", fs)
	if out["Zone"] != "Wohnzone W2" {
		t.Fatalf("absent fixtures must leave zone untouched, got %q", out["Zone"])
	}
}

func TestRescue_DepartmentSetsSupplementalField(t *testing.T) {
	p := newTestParser(t)
	block := "Zusatzgesuch Zustimmung des Departement Bau, Verkehr und Umwelt erforderlich"
	out := p.Rescue(block, baseFields(p))
	if out["Zusatzgesuch"] != p.Profile().Department {
		t.Fatalf("expected canonical department string, got %q", out["Zusatzgesuch"])
	}
}

func TestRescue_ProjectBoundedByParcelMarker(t *testing.T) {
	p := newTestParser(t)
	block := "Bauvorhaben Neubau Siloanlage mit Vordach und RemiseLage Parzelle 3101 (Plan 88), Buechzelglistrasse 7"
	fs := baseFields(p)
	fs["Bauvorhaben"] = "Siloan"

	out := p.Rescue(block, fs)
	if strings.Contains(out["Bauvorhaben"], "Parzelle") {
		t.Fatalf("project must not absorb the location field: %q", out["Bauvorhaben"])
	}
	if !strings.HasPrefix(out["Bauvorhaben"], "Neubau Siloanlage") {
		t.Fatalf("expected verb-anchored project phrase, got %q", out["Bauvorhaben"])
	}
}
