package epaper

import (
	"errors"
	"net/url"
	"testing"
)

const archivePage = `<html><body>
<nav><a href="/">Start</a><a href="/archiv">Archiv</a></nav>
<ul>
<li><a href="/ausgaben/2025-08-14.pdf">Limmatwelle vom 14. August 2025</a></li>
<li><a href="/ausgaben/2025-08-21.pdf"><span>Limmatwelle</span> vom <b>21. August 2025</b></a></li>
</ul>
</body></html>`

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	return u
}

func TestFindIssueLink_MatchesAllTargets(t *testing.T) {
	base := mustParse(t, "https://www.epaper.example/archiv")
	got, err := FindIssueLink([]byte(archivePage), base, []string{"Limmatwelle", "21. August 2025"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "https://www.epaper.example/ausgaben/2025-08-21.pdf"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFindIssueLink_TextSpansNestedElements(t *testing.T) {
	// The 21 August anchor splits its text across span and b children.
	base := mustParse(t, "https://www.epaper.example/")
	got, err := FindIssueLink([]byte(archivePage), base, []string{"limmatwelle vom 21."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://www.epaper.example/ausgaben/2025-08-21.pdf" {
		t.Fatalf("expected nested anchor resolved, got %q", got)
	}
}

func TestFindIssueLink_FirstMatchWins(t *testing.T) {
	base := mustParse(t, "https://www.epaper.example/")
	got, err := FindIssueLink([]byte(archivePage), base, []string{"Limmatwelle"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://www.epaper.example/ausgaben/2025-08-14.pdf" {
		t.Fatalf("expected first matching anchor, got %q", got)
	}
}

func TestFindIssueLink_NoMatch(t *testing.T) {
	base := mustParse(t, "https://www.epaper.example/")
	_, err := FindIssueLink([]byte(archivePage), base, []string{"Limmatwelle", "28. August 2025"})
	if !errors.Is(err, ErrNoIssueLink) {
		t.Fatalf("expected ErrNoIssueLink, got %v", err)
	}
}
