// Package pagetext acquires the full text of one PDF page, preferring the
// native text layer and falling back to OCR of the page's embedded images.
package pagetext

import (
	"sort"
	"strings"
)

// Source is the shape of text coming back from a page-text backend: a plain
// string, a keyed mapping (as returned by per-page extractors), or a list of
// fragments. Flatten reduces any nesting to a single string.
type Source interface {
	isSource()
}

// Plain is a leaf string.
type Plain string

// Keyed maps names to nested sources. A "text" key takes precedence over
// all siblings.
type Keyed map[string]Source

// Listed is an ordered sequence of nested sources.
type Listed []Source

func (Plain) isSource()  {}
func (Keyed) isSource()  {}
func (Listed) isSource() {}

// Flatten reduces a source tree to one string. Keyed nodes short-circuit on
// a plain "text" child; otherwise children are joined with newlines in
// sorted key order so the result is deterministic. Empty children are
// skipped.
func Flatten(src Source) string {
	switch s := src.(type) {
	case nil:
		return ""
	case Plain:
		return string(s)
	case Keyed:
		if t, ok := s["text"]; ok {
			if p, ok := t.(Plain); ok {
				return string(p)
			}
		}
		keys := make([]string, 0, len(s))
		for k := range s {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			if t := Flatten(s[k]); t != "" {
				parts = append(parts, t)
			}
		}
		return strings.Join(parts, "\n")
	case Listed:
		parts := make([]string, 0, len(s))
		for _, child := range s {
			if t := Flatten(child); t != "" {
				parts = append(parts, t)
			}
		}
		return strings.Join(parts, "\n")
	}
	return ""
}
