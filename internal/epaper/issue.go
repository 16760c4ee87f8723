package epaper

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// ErrNoIssueLink indicates the archive page contained no anchor whose
// visible text matched all target phrases.
var ErrNoIssueLink = errors.New("no matching issue link found")

// FindIssueLink parses the archive index page and returns the absolute URL
// of the first anchor whose visible text contains every target phrase,
// compared case-insensitively. Relative hrefs are resolved against base.
func FindIssueLink(page []byte, base *url.URL, targets []string) (string, error) {
	if len(targets) == 0 {
		return "", fmt.Errorf("no target phrases given")
	}
	node, err := html.Parse(bytes.NewReader(page))
	if err != nil || node == nil {
		return "", fmt.Errorf("parse archive page: %w", err)
	}

	var found string
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if found != "" {
			return
		}
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, "a") {
			if href := anchorHref(cur); href != "" && anchorMatches(cur, targets) {
				if u, err := base.Parse(href); err == nil && isHTTPScheme(u) {
					found = u.String()
					return
				}
			}
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if found != "" {
				return
			}
		}
	}
	dfs(node)

	if found == "" {
		return "", ErrNoIssueLink
	}
	return found, nil
}

func anchorMatches(a *html.Node, targets []string) bool {
	var b strings.Builder
	collectText(&b, a)
	// Collapse whitespace so text split across child elements still
	// matches multi-word targets.
	text := strings.ToLower(strings.Join(strings.Fields(b.String()), " "))
	for _, tgt := range targets {
		if !strings.Contains(text, strings.ToLower(tgt)) {
			return false
		}
	}
	return true
}

func anchorHref(a *html.Node) string {
	for _, attr := range a.Attr {
		if strings.EqualFold(attr.Key, "href") {
			return strings.TrimSpace(attr.Val)
		}
	}
	return ""
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}
