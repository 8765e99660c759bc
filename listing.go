package folio

import "strings"

var languageColors = map[string]string{
	"javascript": "#f1e05a",
	"golang":     "#00ADD8",
	"python":     "#3572A5",
}

// LanguageColor returns the display color for a project language tag.
// Unknown tags report false and should inherit the default link color.
func LanguageColor(tag string) (string, bool) {
	c, ok := languageColors[tag]
	return c, ok
}

// ProjectItem is the display form of a Project.
type ProjectItem struct {
	Key         string
	Title       string
	Href        string // source repository
	Description string
	Language    string
	Color       string // empty when the language has no mapping
	StarButton  string // GitHub star button target
	Demo        string // empty suppresses the "View" link
}

// ProjectListing projects ps into display items, keeping their order.
func ProjectListing(ps []Project) []ProjectItem {
	items := make([]ProjectItem, 0, len(ps))
	for _, p := range ps {
		color, _ := LanguageColor(p.Language)
		items = append(items, ProjectItem{
			Key:         p.Title,
			Title:       strings.TrimSpace(p.Title),
			Href:        p.Source,
			Description: p.Description,
			Language:    p.Language,
			Color:       color,
			StarButton:  p.Source,
			Demo:        p.Demo,
		})
	}
	return items
}

// PostItem is the display form of a Post in a listing.
type PostItem struct {
	Title     string
	Href      string
	Date      string
	ISODate   string
	ReadTime  int
	Excerpt   string
	Tags      []string
	Thumbnail string
}

// PostListing projects posts into display items, keeping their order.
// Sorting is the caller's job.
func PostListing(posts []Post, cfg SiteConfig) []PostItem {
	items := make([]PostItem, 0, len(posts))
	for _, p := range posts {
		thumb := p.Thumbnail
		if thumb != "" {
			thumb = cfg.Href(thumb)
		}
		items = append(items, PostItem{
			Title:     p.Title,
			Href:      cfg.Href(p.Path()),
			Date:      FormatDate(p.Date, cfg.DateFormat),
			ISODate:   p.Date.Format("2006-01-02"),
			ReadTime:  p.ReadTime,
			Excerpt:   p.Excerpt,
			Tags:      p.Tags,
			Thumbnail: thumb,
		})
	}
	return items
}
