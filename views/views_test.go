package views

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"github.com/arbazsiddiqui/folio"
)

func testPage() folio.Page {
	cfg := folio.SiteConfig{
		Title:      "Arbaz Siddiqui",
		TitleShort: "Arbaz",
		URL:        "https://arbazsiddiqui.me",
		RSS:        "/rss.xml",
		Twitter:    "arbazsiddiqui_",
		GitHub:     "arbazsiddiqui",
		Newsletter: "https://tinyletter.com/arbaz",
		ThemeColor: "#1f1f1f",
		MenuLinks: []folio.MenuLink{
			{Name: "Blog", Link: "/blog/"},
			{Name: "Projects", Link: "/projects/"},
		},
	}
	return folio.Page{
		Site:      cfg,
		Meta:      folio.PageMeta{Title: "Test – Arbaz", OGType: "website"},
		Nav:       folio.BuildNav(cfg, "/blog/"),
		Dark:      true,
		CSRFToken: "tok123",
		Path:      "/blog/",
	}
}

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func assertContains(t *testing.T, html string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestLayoutChrome(t *testing.T) {
	html := render(t, Home(testPage(), nil, nil))
	assertContains(t, html,
		`<title>Test – Arbaz</title>`,
		`<body class="dark">`,
		`href="/public/site.css"`,
		`name="_csrf" value="tok123"`,
		`name="return" value="/blog/"`,
		`class="active" aria-current="page">Blog</a>`,
		`href="https://github.com/arbazsiddiqui"`,
		`href="https://tinyletter.com/arbaz"`,
		`>RSS</a>`,
		`No posts yet.`,
	)
}

func TestLayoutLightTheme(t *testing.T) {
	p := testPage()
	p.Dark = false
	html := render(t, Home(p, nil, nil))
	assertContains(t, html, `<body class="light">`)
}

func TestLayoutPathPrefix(t *testing.T) {
	p := testPage()
	p.Site.PathPrefix = "/blog-root"
	html := render(t, Home(p, nil, nil))
	assertContains(t, html,
		`href="/blog-root/public/site.css"`,
		`action="/blog-root/theme/toggle/"`,
		`href="/blog-root/rss.xml"`,
	)
}

func TestHomeListsPosts(t *testing.T) {
	latest := []folio.PostItem{{
		Title:     "Hello World",
		Href:      "/hello-world/",
		Date:      "October 18th, 2026",
		ISODate:   "2026-10-18",
		ReadTime:  3,
		Excerpt:   "First post.",
		Thumbnail: "/public/thumbnails/hello-world.jpg",
	}}
	html := render(t, Home(testPage(), latest, nil))
	assertContains(t, html,
		`href="/hello-world/"`,
		`<time datetime="2026-10-18">October 18th, 2026</time>`,
		`3 min read`,
		`src="/public/thumbnails/hello-world.jpg"`,
	)
	if strings.Contains(html, "Popular Articles") {
		t.Error("popular section rendered without popular posts")
	}
}

func TestHomeDescriptionMarkdown(t *testing.T) {
	p := testPage()
	p.Site.Description = "I write about **Go** and <script>alert(1)</script>the web."
	html := render(t, Home(p, nil, nil))
	assertContains(t, html, `<div class="about">`, `<strong>Go</strong>`)
	if strings.Contains(html, "<script>alert") {
		t.Error("description markup was not sanitized")
	}
}

func TestBlogTags(t *testing.T) {
	html := render(t, Blog(testPage(), nil, "go", []string{"go", "js"}))
	assertContains(t, html,
		`Posts tagged &ldquo;go&rdquo;`,
		`class="tag active" href="/blog/?tag=go"`,
		`class="tag" href="/blog/?tag=js"`,
	)
}

func TestProjectsColorsAndDemo(t *testing.T) {
	items := folio.ProjectListing([]folio.Project{
		{Title: "Go thing", Source: "https://github.com/a/b", Description: "d", Language: "golang", Demo: "https://demo.example"},
		{Title: "Rust thing", Source: "https://github.com/a/c", Description: "d", Language: "rust"},
	})
	html := render(t, Projects(testPage(), items))
	assertContains(t, html,
		`<a href="https://github.com/a/b" style="color: #00ADD8"`,
		`href="https://demo.example"`,
		`class="github-button" href="https://github.com/a/c"`,
	)
	if strings.Count(html, ">View</a>") != 1 {
		t.Errorf("expected exactly one View link")
	}
	if strings.Count(html, "style=") != 1 {
		t.Errorf("unknown language should not get an explicit color")
	}
}

func TestPostPage(t *testing.T) {
	cfg := testPage().Site
	post := folio.Post{
		Slug:     "hello-world",
		Title:    "Hello, World",
		Date:     time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC),
		HTML:     `<p>Body <strong>text</strong></p>`,
		ReadTime: 1,
		Template: folio.TemplatePost,
	}
	n := folio.Neighbors{
		Prev: &folio.PostLink{Slug: "older", Title: "Older", Path: "/older/"},
		Next: &folio.PostLink{Slug: "me", Title: "About", Path: folio.AboutPath},
	}
	v := folio.AssemblePost(post, n, cfg)
	html := render(t, Post(testPage(), v))
	assertContains(t, html,
		`<p>Body <strong>text</strong></p>`,
		`href="/older/" rel="prev"`,
		`http://twitter.com/share?text=Hello%2C%20World`,
	)
	if strings.Contains(html, `rel="next"`) {
		t.Error("about page offered as next article")
	}
}

func TestNotFoundHidesFooter(t *testing.T) {
	p := testPage()
	p.NotFound = true
	html := render(t, NotFound(p))
	assertContains(t, html, `<main class="not-found">`, `Page not found`)
	if strings.Contains(html, "<footer>") {
		t.Error("footer rendered on not-found page")
	}
}

func TestAdminViews(t *testing.T) {
	html := render(t, AdminLogin(testPage(), true))
	assertContains(t, html, `Wrong password.`, `action="/admin/login/"`)

	entries := []folio.Post{{Slug: "me", Title: "About", Template: folio.TemplatePage}}
	html = render(t, AdminDashboard(testPage(), entries, "Indexed 1 posts"))
	assertContains(t, html, `Indexed 1 posts`, `href="/me/"`, `action="/admin/reindex/"`)
}

func TestFuncsComplete(t *testing.T) {
	f := Funcs()
	if f.Home == nil || f.Blog == nil || f.Projects == nil || f.Post == nil ||
		f.AdminLogin == nil || f.AdminDashboard == nil || f.NotFound == nil || f.ServerError == nil {
		t.Fatal("Funcs left a view unset")
	}
}
