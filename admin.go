package folio

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

func (a *App) adminPage(c echo.Context) Page {
	return a.page(c, PageMeta{Title: "Admin – " + a.Config.Title})
}

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(a.adminPage(c), false))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, a.Config.Href("/admin/"))
	}
	a.loginLimiter.Record(ip)
	c.Logger().Warnf("failed admin login from %s", ip)
	return RenderStatus(c, http.StatusUnauthorized, a.Views.AdminLogin(a.adminPage(c), true))
}

func (a *App) handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, a.Config.Href("/admin/"))
}

func (a *App) handleAdminReindex(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, a.Config.Href("/admin/"))
	}
	stats, err := a.Indexer.Run(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("reindex: %v", err)
		msg := "Re-index failed: " + err.Error()
		return c.Redirect(http.StatusSeeOther, a.Config.Href("/admin/")+"?msg="+url.QueryEscape(msg))
	}
	a.Cache.Invalidate()
	msg := fmt.Sprintf("Indexed %d posts, %d pages, %d thumbnails.", stats.Posts, stats.Pages, stats.Thumbnails)
	return c.Redirect(http.StatusSeeOther, a.Config.Href("/admin/")+"?msg="+url.QueryEscape(msg))
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	entries, err := a.Store.ListPosts(Query{})
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminDashboard(a.adminPage(c), entries, msg))
}
