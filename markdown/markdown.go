// Package markdown turns post sources into sanitized HTML and the derived
// text facts (excerpt, word count, read time) listings display.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

const (
	// WordsPerMinute is the reading speed used for read-time estimates.
	WordsPerMinute = 265
	// ExcerptLength is the default excerpt size in characters.
	ExcerptLength = 140
)

var reCodeLang = regexp.MustCompile(`^language-[a-zA-Z0-9_+\-]+$`)

// Renderer converts markdown to HTML. It is safe for concurrent use.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	strict *bluemonday.Policy
}

// New returns a Renderer with GitHub-flavoured markdown, heading IDs and a
// user-generated-content sanitizing policy.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Footnote),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(),
		),
	)
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(reCodeLang).OnElements("code")
	return &Renderer{md: md, policy: policy, strict: bluemonday.StrictPolicy()}
}

// Render converts src to sanitized HTML.
func (r *Renderer) Render(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("markdown: convert: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}

// PlainText strips every tag from rendered HTML and collapses whitespace.
func (r *Renderer) PlainText(rendered string) string {
	text := html.UnescapeString(r.strict.Sanitize(rendered))
	return strings.Join(strings.Fields(text), " ")
}

// Excerpt cuts text to at most n characters on a word boundary, appending
// an ellipsis when anything was dropped.
func Excerpt(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	cut := string(runes[:n])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// ReadTime estimates minutes of reading; never less than one.
func ReadTime(words int) int {
	m := int(math.Round(float64(words) / WordsPerMinute))
	if m < 1 {
		return 1
	}
	return m
}

// HTML returns a templ.Component writing already-sanitized HTML verbatim.
func HTML(rendered string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, rendered)
		return err
	})
}

var defaultRenderer = New()

// Markdown returns a templ.Component that renders md as sanitized HTML.
func Markdown(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out, err := defaultRenderer.Render([]byte(content))
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	})
}
