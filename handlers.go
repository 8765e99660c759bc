package folio

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/arbazsiddiqui/folio/theme"
)

const (
	homeLatest   = 6
	homePopular  = 9
	popularLabel = "Popular"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// page builds the layout chrome for the current request.
func (a *App) page(c echo.Context, meta PageMeta) Page {
	if meta.OGType == "" {
		meta.OGType = "website"
	}
	if meta.Description == "" {
		meta.Description = a.Config.Description
	}
	current := c.Request().URL.Path
	return Page{
		Site:      a.Config,
		Meta:      meta,
		Nav:       BuildNav(a.Config, current),
		Dark:      a.themeState(c).Dark(),
		CSRFToken: CsrfToken(c),
		Path:      current,
	}
}

func (a *App) siteURL(segments ...string) string {
	return BuildURL(a.Config.URL, append([]string{a.Config.PathPrefix}, segments...)...)
}

func (a *App) handleHome(c echo.Context) error {
	latest, err := a.Cache.ListPosts(Query{Template: TemplatePost, Limit: homeLatest})
	if err != nil {
		return err
	}
	popular, err := a.Cache.ListPosts(Query{Template: TemplatePost, Category: popularLabel, Limit: homePopular})
	if err != nil {
		return err
	}
	title := a.Config.Title
	if a.Config.Tagline != "" {
		title += " – " + a.Config.Tagline
	}
	p := a.page(c, PageMeta{
		Title:  title,
		URL:    a.siteURL(),
		JSONLD: WebsiteJsonLD(a.Config),
	})
	return Render(c, a.Views.Home(p, PostListing(latest, a.Config), PostListing(popular, a.Config)))
}

func (a *App) handleBlog(c echo.Context) error {
	tag := strings.ToLower(strings.TrimSpace(c.QueryParam("tag")))
	posts, err := a.Cache.ListPosts(Query{Template: TemplatePost, Tag: tag})
	if err != nil {
		return err
	}
	tags, err := a.Cache.ListTags()
	if err != nil {
		return err
	}
	title := "Blog – " + a.Config.Title
	if tag != "" {
		title = fmt.Sprintf("Posts tagged %q – %s", tag, a.Config.Title)
	}
	p := a.page(c, PageMeta{Title: title, URL: a.siteURL("blog")})
	return Render(c, a.Views.Blog(p, PostListing(posts, a.Config), tag, tags))
}

func (a *App) handleProjects(c echo.Context) error {
	p := a.page(c, PageMeta{
		Title: "Projects – " + a.Config.Title,
		URL:   a.siteURL("projects"),
	})
	return Render(c, a.Views.Projects(p, ProjectListing(a.Projects)))
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	post, err := a.Cache.GetPost(slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	n, err := a.Cache.Neighbors(slug)
	if err != nil {
		return err
	}
	v := AssemblePost(post, n, a.Config)
	p := a.page(c, PageMeta{
		Title:       v.Title,
		Description: post.Excerpt,
		URL:         a.siteURL(post.Slug),
		OGType:      "article",
		JSONLD:      v.JSONLD,
	})
	return Render(c, a.Views.Post(p, v))
}

func (a *App) handleThemeToggle(c echo.Context) error {
	st := a.themeState(c)
	cancel := st.Subscribe(func(m theme.Mode) {
		c.Response().Header().Set("X-Theme", string(m))
	})
	defer cancel()
	if err := st.Toggle(); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, a.returnPath(c.FormValue("return")))
}

// returnPath accepts only same-site absolute paths below the prefix.
func (a *App) returnPath(p string) string {
	home := a.Config.Href("/")
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.Contains(p, "\\") {
		return home
	}
	if a.Config.PathPrefix != "" && !strings.HasPrefix(p, a.Config.PathPrefix+"/") {
		return home
	}
	return p
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.ListPosts(Query{})
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListPosts(Query{Template: TemplatePost})
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func (a *App) handleRobots(c echo.Context) error {
	custom := filepath.Join(a.Config.StaticDir, "robots.txt")
	if _, err := os.Stat(custom); err == nil {
		return c.File(custom)
	}
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: " + a.Config.Href("/") + "\n")
	b.WriteString("Disallow: " + a.Config.Href("/admin/") + "\n")
	b.WriteString("\nSitemap: " + a.Config.URL + a.Config.Href("/sitemap.xml") + "\n")
	return c.String(http.StatusOK, b.String())
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		p := a.page(c, PageMeta{Title: "Not found – " + a.Config.Title})
		p.NotFound = true
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(p))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		p := a.page(c, PageMeta{Title: "Something went wrong – " + a.Config.Title})
		_ = RenderStatus(c, code, a.Views.ServerError(p))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
