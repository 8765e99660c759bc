package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func render(t *testing.T, src string) string {
	t.Helper()
	out, err := New().Render([]byte(src))
	if err != nil {
		t.Fatalf("Render(%q): %v", src, err)
	}
	return out
}

func TestRenderInline(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"__bold__", "<strong>bold</strong>"},
		{"*italic*", "<em>italic</em>"},
		{"_italic_", "<em>italic</em>"},
		{"text `code` more", "<code>code</code>"},
		{"~~gone~~", "<del>gone</del>"},
	}
	for _, tt := range tests {
		got := render(t, tt.input)
		if !strings.Contains(got, tt.expected) {
			t.Errorf("Render(%q) = %q, want it to contain %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderCodeBlockWithLanguage(t *testing.T) {
	got := render(t, "```go\nfmt.Println(\"hello\")\n```")
	if !strings.Contains(got, `<pre><code class="language-go">`) {
		t.Errorf("code block should keep language-go class: %q", got)
	}
}

func TestRenderCodeBlockWithoutLanguage(t *testing.T) {
	got := render(t, "```\nplain code\n```")
	if !strings.Contains(got, "<pre><code>plain code") {
		t.Errorf("unexpected code block: %q", got)
	}
}

func TestRenderHeadingsGetIDs(t *testing.T) {
	got := render(t, "# Hello World\n\n## Second Part")
	if !strings.Contains(got, `<h1 id="hello-world">Hello World</h1>`) {
		t.Errorf("h1 missing id: %q", got)
	}
	if !strings.Contains(got, `<h2 id="second-part">`) {
		t.Errorf("h2 missing id: %q", got)
	}
}

func TestRenderStripsScripts(t *testing.T) {
	got := render(t, "hello\n\n<script>alert(1)</script>\n\n<a href=\"javascript:alert(1)\">x</a>")
	if strings.Contains(got, "<script") {
		t.Errorf("script survived sanitizing: %q", got)
	}
	if strings.Contains(got, "javascript:") {
		t.Errorf("javascript URL survived sanitizing: %q", got)
	}
}

func TestRenderTable(t *testing.T) {
	got := render(t, "| a | b |\n|---|---|\n| 1 | 2 |")
	if !strings.Contains(got, "<table>") || !strings.Contains(got, "<td>1</td>") {
		t.Errorf("table not rendered: %q", got)
	}
}

func TestPlainText(t *testing.T) {
	r := New()
	got := r.PlainText("<h1>Title</h1>\n<p>Fish &amp; chips\nare <em>good</em>.</p>\n")
	if got != "Title Fish & chips are good." {
		t.Errorf("PlainText = %q", got)
	}
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		text string
		n    int
		want string
	}{
		{"short", 140, "short"},
		{"one two three four", 10, "one two…"},
		{"alpha, beta gamma", 12, "alpha, beta…"},
		{"abcdefghij", 5, "abcde…"},
	}
	for _, tt := range tests {
		if got := Excerpt(tt.text, tt.n); got != tt.want {
			t.Errorf("Excerpt(%q, %d) = %q, want %q", tt.text, tt.n, got, tt.want)
		}
	}
}

func TestReadTime(t *testing.T) {
	tests := []struct {
		words int
		want  int
	}{
		{0, 1},
		{100, 1},
		{265, 1},
		{400, 2},
		{1325, 5},
	}
	for _, tt := range tests {
		if got := ReadTime(tt.words); got != tt.want {
			t.Errorf("ReadTime(%d) = %d, want %d", tt.words, got, tt.want)
		}
	}
}

func TestMarkdownComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := Markdown("**hi**").Render(context.Background(), &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<strong>hi</strong>") {
		t.Errorf("component output = %q", buf.String())
	}
}
