package folio

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// ordinalMark stands in for the "Do" token while time.Format runs; it is not
// a layout token so Format copies it through untouched.
const ordinalMark = "\x00"

// FormatDate formats t with a Go layout that may also contain "Do", the
// day of month with an English ordinal suffix ("18th").
func FormatDate(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	if !strings.Contains(layout, "Do") {
		return t.Format(layout)
	}
	out := t.Format(strings.ReplaceAll(layout, "Do", ordinalMark))
	return strings.ReplaceAll(out, ordinalMark, humanize.Ordinal(t.Day()))
}

// ParseDate accepts the date shapes found in front matter.
func ParseDate(v, layout string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	layouts := []string{
		layout,
		time.RFC3339,
		"2006-01-02",
		"2006/01/02",
		"2006-1-2",
		"2006-01-02 15:04",
	}
	for _, l := range layouts {
		if l == "" {
			continue
		}
		if t, err := time.Parse(l, v); err == nil {
			return t
		}
	}
	return time.Time{}
}
