package folio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/arbazsiddiqui/folio/markdown"
)

type frontMatter struct {
	Title      string   `yaml:"title"`
	Slug       string   `yaml:"slug"`
	Date       string   `yaml:"date"`
	Tags       []string `yaml:"tags"`
	Categories []string `yaml:"categories"`
	CategoryID string   `yaml:"category_id"`
	Thumbnail  string   `yaml:"thumbnail"`
	Template   string   `yaml:"template"`
	Draft      bool     `yaml:"draft"`
}

// Source is a parsed markdown file before thumbnails are resolved.
type Source struct {
	Post
	File          string // path of the markdown file
	ThumbnailFile string // thumbnail path relative to File, as declared
	Draft         bool
}

var titleCaser = cases.Title(language.English)

// ParseSource reads one markdown file with optional YAML front matter and
// renders its body.
func ParseSource(file string, r *markdown.Renderer, dateLayout string) (Source, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return Source{}, fmt.Errorf("folio: read %s: %w", file, err)
	}
	fm, body := splitFrontMatter(string(data))
	var front frontMatter
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Source{}, fmt.Errorf("folio: parse front matter %s: %w", file, err)
		}
	}

	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	slug := Slugify(strings.Trim(front.Slug, "/"))
	if slug == "" {
		slug = Slugify(base)
	}
	if slug == "" {
		return Source{}, fmt.Errorf("folio: %s: no usable slug, set slug in front matter", file)
	}
	title := strings.TrimSpace(front.Title)
	if title == "" {
		title = titleCaser.String(strings.ReplaceAll(slug, "-", " "))
	}
	tmpl := strings.ToLower(strings.TrimSpace(front.Template))
	if tmpl == "" {
		tmpl = TemplatePost
	}

	rendered, err := r.Render([]byte(body))
	if err != nil {
		return Source{}, fmt.Errorf("folio: render %s: %w", file, err)
	}
	text := r.PlainText(rendered)

	date := ParseDate(front.Date, dateLayout)
	if date.IsZero() {
		if info, err := os.Stat(file); err == nil {
			date = info.ModTime().UTC()
		}
	}

	return Source{
		Post: Post{
			Slug:       slug,
			Title:      title,
			Date:       date,
			Tags:       normalizeList(front.Tags),
			Categories: FilterEmpty(front.Categories),
			CategoryID: strings.TrimSpace(front.CategoryID),
			HTML:       rendered,
			Excerpt:    markdown.Excerpt(text, markdown.ExcerptLength),
			ReadTime:   markdown.ReadTime(markdown.WordCount(text)),
			Template:   tmpl,
		},
		File:          file,
		ThumbnailFile: strings.TrimSpace(front.Thumbnail),
		Draft:         front.Draft,
	}, nil
}

func normalizeList(vals []string) []string {
	out := FilterEmpty(vals)
	for i := range out {
		out[i] = strings.ToLower(out[i])
	}
	return out
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(strings.TrimRight(lines[0], "\r")) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}
