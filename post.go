package folio

import (
	"fmt"
	"net/url"
	"strings"
)

// AboutPath is the bio page route. It is never offered as a "next article".
const AboutPath = "/me/"

const shareURLTemplate = "http://twitter.com/share?text=%s&url=%s/%s/&via=%s"

// PostView is everything the post template needs.
type PostView struct {
	Post       Post
	Title      string // document title
	Date       string
	CategoryID string
	ShareURL   string
	Prev       *NavLink
	Next       *NavLink
	JSONLD     string
}

// NavLink is a resolved previous/next link.
type NavLink struct {
	Title string
	Href  string
}

// AssemblePost builds the detail view model for p. Neighbor pointers are
// checked for existence before they are read.
func AssemblePost(p Post, n Neighbors, cfg SiteConfig) PostView {
	v := PostView{
		Post:       p,
		Title:      p.Title + " – " + cfg.Title,
		Date:       FormatDate(p.Date, cfg.DateFormat),
		CategoryID: p.CategoryID,
		ShareURL:   ShareURL(p.Title, cfg.URL, p.Slug, cfg.Twitter),
		JSONLD:     BlogPostingJsonLD(p, cfg),
	}
	if v.CategoryID == "" {
		v.CategoryID = cfg.DefaultCategory
	}
	if n.Prev != nil {
		v.Prev = &NavLink{Title: n.Prev.Title, Href: cfg.Href(n.Prev.Path)}
	}
	if n.Next != nil && n.Next.Path != AboutPath {
		v.Next = &NavLink{Title: n.Next.Title, Href: cfg.Href(n.Next.Path)}
	}
	return v
}

// ShareURL builds the Twitter share link for a post.
func ShareURL(title, siteURL, slug, handle string) string {
	return fmt.Sprintf(shareURLTemplate, EncodeURIComponent(title), siteURL, slug, handle)
}

// EncodeURIComponent escapes s the way browsers' encodeURIComponent does:
// spaces become %20 and the marks !'()* are left alone.
func EncodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)
	return componentFixer.Replace(escaped)
}

var componentFixer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)
