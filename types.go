package folio

import "time"

// Content templates recognised by the indexer. Only TemplatePost entries are
// listed on the home and blog pages; pages are reachable by slug.
const (
	TemplatePost = "post"
	TemplatePage = "page"
)

// Post is one indexed markdown entry. It is produced by the Indexer and is
// read-only for everything downstream.
type Post struct {
	Slug       string
	Title      string
	Date       time.Time
	Tags       []string
	Categories []string
	CategoryID string
	Thumbnail  string // public URL of the generated thumbnail, if any
	HTML       string // sanitized rendered body
	Excerpt    string
	ReadTime   int // minutes
	Template   string
}

// Path is the site-relative route of the post, e.g. "/hello-world/".
func (p Post) Path() string {
	return "/" + p.Slug + "/"
}

// PostLink is a post reduced to what a navigation link needs.
type PostLink struct {
	Slug  string
	Title string
	Path  string
}

// LinkTo reduces p to a PostLink.
func LinkTo(p Post) *PostLink {
	return &PostLink{Slug: p.Slug, Title: p.Title, Path: p.Path()}
}

// Neighbors holds the chronologically adjacent entries of a post.
// Prev is the next older entry, Next the next newer one; either may be nil.
type Neighbors struct {
	Prev *PostLink
	Next *PostLink
}

// Project is one hand-authored portfolio entry. Title doubles as display key.
type Project struct {
	Title       string `yaml:"title"`
	Demo        string `yaml:"demo"`
	Source      string `yaml:"source"`
	Description string `yaml:"description"`
	Language    string `yaml:"language"`
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	JSONLD      string
}

// NavItem is a menu link resolved against the current request path.
type NavItem struct {
	Name   string
	Href   string
	Active bool
}

// Page is the layout chrome shared by every rendered view.
type Page struct {
	Site      SiteConfig
	Meta      PageMeta
	Nav       []NavItem
	Dark      bool
	NotFound  bool
	CSRFToken string
	Path      string
}
