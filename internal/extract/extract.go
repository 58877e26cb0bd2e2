// Package extract pulls readable text out of HTML documents.
package extract

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTML returns the visible text of an HTML document with whitespace collapsed.
func HTML(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse html: %w", err)
	}

	doc.Find("script, style, noscript, template").Remove()

	title := strings.TrimSpace(doc.Find("head title").First().Text())
	body := doc.Find("body")
	var text string
	if body.Length() > 0 {
		text = body.Text()
	} else {
		text = doc.Text()
	}

	clean := strings.Join(strings.Fields(text), " ")
	if title != "" && !strings.HasPrefix(clean, title) {
		clean = strings.TrimSpace(title + " " + clean)
	}
	return clean, nil
}

// HTMLString is HTML for in-memory content such as feed items. Plain text
// passes through with whitespace collapsed.
func HTMLString(s string) string {
	if !strings.Contains(s, "<") {
		return strings.Join(strings.Fields(s), " ")
	}
	text, err := HTML(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	return text
}

// IsHTML reports whether path has an HTML extension.
func IsHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}
