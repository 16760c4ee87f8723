package pagetext

import "testing"

func TestFlatten_Plain(t *testing.T) {
	if got := Flatten(Plain("Baugesuchspublikation")); got != "Baugesuchspublikation" {
		t.Fatalf("plain: got %q", got)
	}
	if got := Flatten(nil); got != "" {
		t.Fatalf("nil source: got %q", got)
	}
}

func TestFlatten_KeyedPrefersTextKey(t *testing.T) {
	src := Keyed{
		"blocks": Plain("ignored when text is present"),
		"text":   Plain("page body"),
	}
	if got := Flatten(src); got != "page body" {
		t.Fatalf("keyed with text: got %q", got)
	}
}

func TestFlatten_KeyedSortedAndSkipsEmpty(t *testing.T) {
	src := Keyed{
		"b_footer": Plain("BAUVERWALTUNG"),
		"a_header": Plain("Baugesuchspublikation"),
		"c_empty":  Plain(""),
	}
	want := "Baugesuchspublikation\nBAUVERWALTUNG"
	if got := Flatten(src); got != want {
		t.Fatalf("keyed: expected %q, got %q", want, got)
	}
}

func TestFlatten_NestedListed(t *testing.T) {
	src := Listed{
		Plain("first column"),
		Keyed{"text": Plain("second column")},
		Listed{Plain(""), Plain("third column")},
	}
	want := "first column\nsecond column\nthird column"
	if got := Flatten(src); got != want {
		t.Fatalf("nested: expected %q, got %q", want, got)
	}
}
