package folio

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
)

// Slugify converts a title or file name to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// BuildNav resolves the configured menu against the current request path.
// A link is active on an exact match or when path sits below it.
func BuildNav(cfg SiteConfig, current string) []NavItem {
	items := make([]NavItem, 0, len(cfg.MenuLinks))
	for _, l := range cfg.MenuLinks {
		href := cfg.Href(l.Link)
		active := current == href ||
			(l.Link != "/" && strings.HasPrefix(current, strings.TrimSuffix(href, "/")+"/"))
		items = append(items, NavItem{Name: l.Name, Href: href, Active: active})
	}
	return items
}

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "WebSite",
		"name":          cfg.Title,
		"alternateName": cfg.TitleAlt,
		"url":           BuildURL(cfg.URL, cfg.PathPrefix),
		"description":   cfg.Description,
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD returns a JSON-LD string for a BlogPosting schema.
func BlogPostingJsonLD(p Post, cfg SiteConfig) string {
	postURL := BuildURL(cfg.URL, cfg.PathPrefix, p.Slug)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      p.Title,
		"description":   p.Excerpt,
		"datePublished": p.Date.Format("2006-01-02"),
		"url":           postURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
		"author": map[string]string{
			"@type": "Person",
			"name":  cfg.Title,
		},
	}
	if p.Thumbnail != "" {
		data["image"] = cfg.URL + cfg.Href(p.Thumbnail)
	}
	if len(p.Tags) > 0 {
		data["keywords"] = strings.Join(p.Tags, ", ")
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
