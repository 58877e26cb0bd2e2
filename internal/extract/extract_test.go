package extract

import (
	"strings"
	"testing"
)

func TestHTML(t *testing.T) {
	page := `<html><head><title>Release notes</title><style>p { color: red }</style></head>
<body>
  <h1>Go 1.25</h1>
  <script>var tracking = true;</script>
  <p>Faster   goroutines
  and <b>smaller</b> binaries.</p>
</body></html>`

	got, err := HTML(strings.NewReader(page))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Release notes Go 1.25 Faster goroutines and smaller binaries."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if strings.Contains(got, "tracking") || strings.Contains(got, "color") {
		t.Errorf("expected script and style content removed, got %q", got)
	}
}

func TestHTMLString(t *testing.T) {
	if got := HTMLString("plain   text\nhere"); got != "plain text here" {
		t.Errorf("expected collapsed plain text, got %q", got)
	}
	if got := HTMLString("<p>Hello <em>world</em></p>"); got != "Hello world" {
		t.Errorf("expected tags stripped, got %q", got)
	}
}

func TestIsHTML(t *testing.T) {
	tests := map[string]bool{
		"page.html": true,
		"PAGE.HTM":  true,
		"notes.txt": false,
		"readme.md": false,
		"noext":     false,
		"x.xhtml":   true,
	}
	for path, want := range tests {
		if got := IsHTML(path); got != want {
			t.Errorf("IsHTML(%q): expected %v, got %v", path, want, got)
		}
	}
}
