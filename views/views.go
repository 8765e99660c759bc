// Package views renders folio's pages. Templates are embedded html/template
// sets that share one layout and are exposed as templ components, so they
// plug straight into folio.ViewFuncs.
package views

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/a-h/templ"

	"github.com/arbazsiddiqui/folio"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutName = "layout"

var pages = mustParsePages("home", "blog", "projects", "post", "admin_login", "admin_dashboard", "not_found", "server_error")

func mustParsePages(names ...string) map[string]*template.Template {
	base := template.Must(template.New(layoutName).Funcs(funcs).ParseFS(templateFS,
		"templates/layout.html",
		"templates/partials.html",
	))
	out := make(map[string]*template.Template, len(names))
	for _, name := range names {
		t := template.Must(template.Must(base.Clone()).ParseFS(templateFS, "templates/"+name+".html"))
		out[name] = t.Lookup(layoutName)
	}
	return out
}

func page(name string, data any) templ.Component {
	t, ok := pages[name]
	if !ok {
		panic(fmt.Sprintf("views: unknown page %q", name))
	}
	return templ.FromGoHTML(t, data)
}

// Funcs returns the view set folio renders with.
func Funcs() folio.ViewFuncs {
	return folio.ViewFuncs{
		Home:           Home,
		Blog:           Blog,
		Projects:       Projects,
		Post:           Post,
		AdminLogin:     AdminLogin,
		AdminDashboard: AdminDashboard,
		NotFound:       NotFound,
		ServerError:    ServerError,
	}
}

type homeData struct {
	folio.Page
	Latest  []folio.PostItem
	Popular []folio.PostItem
}

// Home renders the landing page with the latest and popular posts.
func Home(p folio.Page, latest, popular []folio.PostItem) templ.Component {
	return page("home", homeData{Page: p, Latest: latest, Popular: popular})
}

type blogData struct {
	folio.Page
	Posts     []folio.PostItem
	ActiveTag string
	Tags      []string
}

// Blog renders the full post listing, optionally filtered by tag.
func Blog(p folio.Page, posts []folio.PostItem, activeTag string, tags []string) templ.Component {
	return page("blog", blogData{Page: p, Posts: posts, ActiveTag: activeTag, Tags: tags})
}

type projectsData struct {
	folio.Page
	Projects []folio.ProjectItem
}

// Projects renders the portfolio.
func Projects(p folio.Page, projects []folio.ProjectItem) templ.Component {
	return page("projects", projectsData{Page: p, Projects: projects})
}

type postData struct {
	folio.Page
	View folio.PostView
}

// Post renders a single post or page.
func Post(p folio.Page, v folio.PostView) templ.Component {
	return page("post", postData{Page: p, View: v})
}

type adminLoginData struct {
	folio.Page
	ShowError bool
}

func AdminLogin(p folio.Page, showError bool) templ.Component {
	return page("admin_login", adminLoginData{Page: p, ShowError: showError})
}

type adminDashboardData struct {
	folio.Page
	Entries []folio.Post
	Message string
}

func AdminDashboard(p folio.Page, entries []folio.Post, message string) templ.Component {
	return page("admin_dashboard", adminDashboardData{Page: p, Entries: entries, Message: message})
}

func NotFound(p folio.Page) templ.Component {
	return page("not_found", p)
}

func ServerError(p folio.Page) templ.Component {
	return page("server_error", p)
}
