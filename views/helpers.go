package views

import (
	"context"
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/arbazsiddiqui/folio/markdown"
)

var funcs = template.FuncMap{
	"body":       Body,
	"markdown":   Markdown,
	"jsonld":     JSONLD,
	"pathEscape": url.PathEscape,
	"tagClass":   TagClass,
	"joinTags":   JoinTags,
	"year":       func() int { return time.Now().Year() },
	"isoDate":    func(t time.Time) string { return t.Format("2006-01-02") },
}

// Body embeds an already-sanitized post body.
func Body(rendered string) (template.HTML, error) {
	return templ.ToGoHTML(context.Background(), markdown.HTML(rendered))
}

// Markdown renders site-authored markdown such as the home page intro.
func Markdown(md string) (template.HTML, error) {
	return templ.ToGoHTML(context.Background(), markdown.Markdown(md))
}

// JSONLD marks a marshalled JSON-LD document as safe script content.
func JSONLD(doc string) template.JS {
	return template.JS(doc)
}

// TagClass returns CSS classes for a tag pill, with active variant.
func TagClass(active bool) string {
	if active {
		return "tag active"
	}
	return "tag"
}

// JoinTags formats a tag slice as a comma-separated string.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
