package folio

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gopkg.in/yaml.v3"
)

// MenuLink is one entry of the site navigation.
type MenuLink struct {
	Name string `yaml:"name"`
	Link string `yaml:"link"`
}

// SiteConfig holds all configuration for a folio site. It is built once at
// startup by LoadConfig and treated as read-only afterwards.
type SiteConfig struct {
	Title           string     `yaml:"title"`
	TitleShort      string     `yaml:"title_short"`
	TitleAlt        string     `yaml:"title_alt"`
	Tagline         string     `yaml:"tagline"`
	Logo            string     `yaml:"logo"`
	URL             string     `yaml:"url"` // Canonical URL, no trailing slash after Normalize
	Repo            string     `yaml:"repo"`
	PathPrefix      string     `yaml:"path_prefix"` // "" or "/x"
	DateFromFormat  string     `yaml:"date_from_format"`
	DateFormat      string     `yaml:"date_format"` // Go layout; "Do" is the ordinal day
	Description     string     `yaml:"description"`
	RSS             string     `yaml:"rss"`
	AnalyticsID     string     `yaml:"analytics_id"`
	DefaultCategory string     `yaml:"default_category"`
	Email           string     `yaml:"email"`
	Twitter         string     `yaml:"twitter"`
	GitHub          string     `yaml:"github"`
	Newsletter      string     `yaml:"newsletter"`
	MenuLinks       []MenuLink `yaml:"menu_links"`
	ThemeColor      string     `yaml:"theme_color"`
	BackgroundColor string     `yaml:"background_color"`

	Addr          string `yaml:"addr"`           // Listen address (default ":3000")
	DatabasePath  string `yaml:"database_path"`  // SQLite path (default "data/folio.db")
	ContentDir    string `yaml:"content_dir"`    // Markdown root (default "content")
	ProjectsFile  string `yaml:"projects_file"`  // Optional YAML project list
	StaticDir     string `yaml:"static_dir"`     // User static assets (default "public")
	ThumbnailsDir string `yaml:"thumbnails_dir"` // Generated thumbnails (default "<static_dir>/thumbnails")

	AdminPassword string `yaml:"admin_password"` // Admin routes are disabled when empty
	SessionSecret string `yaml:"session_secret"` // Required: cookie signing secret
	CookieSecure  bool   `yaml:"cookie_secure"`  // Set true for HTTPS

	PostCacheTTL time.Duration `yaml:"post_cache_ttl"` // Post cache TTL (default 5min)
	Watch        bool          `yaml:"watch"`          // Re-index when content changes
}

// Normalize applies the path and URL rules every other component relies on.
// It never fails; malformed values are only reshaped.
func (c *SiteConfig) Normalize() {
	c.PathPrefix = NormalizePathPrefix(c.PathPrefix)
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.RSS != "" && !strings.HasPrefix(c.RSS, "/") {
		c.RSS = "/" + c.RSS
	}
}

// NormalizePathPrefix returns "" or a prefix with exactly one leading slash
// and no trailing slash.
func NormalizePathPrefix(p string) string {
	if p == "/" {
		return ""
	}
	p = strings.Trim(p, "/")
	if p == "" {
		return ""
	}
	return "/" + p
}

func (c *SiteConfig) setDefaults() {
	if c.TitleShort == "" {
		c.TitleShort = c.Title
	}
	if c.TitleAlt == "" {
		c.TitleAlt = c.Title
	}
	if c.DateFromFormat == "" {
		c.DateFromFormat = "2006-01-02"
	}
	if c.DateFormat == "" {
		c.DateFormat = "January Do, 2006"
	}
	if c.RSS == "" {
		c.RSS = "/rss.xml"
	}
	if c.DefaultCategory == "" {
		c.DefaultCategory = "Tech"
	}
	if c.ThemeColor == "" {
		c.ThemeColor = "#1f1f1f"
	}
	if c.BackgroundColor == "" {
		c.BackgroundColor = "#ffffff"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/folio.db"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.ThumbnailsDir == "" {
		c.ThumbnailsDir = c.StaticDir + "/thumbnails"
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
}

// Validate reports configuration that would leave the site unusable.
func (c *SiteConfig) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if strings.TrimSpace(c.URL) == "" {
		errs = append(errs, errors.New("url is required"))
	}
	if c.SessionSecret == "" {
		errs = append(errs, errors.New("session_secret is required"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("folio: invalid config: %w", err)
	}
	return nil
}

// Href prefixes an absolute site path with the configured path prefix.
func (c SiteConfig) Href(path string) string {
	return c.PathPrefix + path
}

// LoadConfig reads the YAML file at path, applies FOLIO_* environment
// overrides and defaults, normalizes and validates the result. An empty path
// skips the file and relies on the environment alone.
func LoadConfig(path string) (SiteConfig, error) {
	var cfg SiteConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return SiteConfig{}, fmt.Errorf("folio: read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return SiteConfig{}, fmt.Errorf("folio: parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return SiteConfig{}, err
	}
	cfg.setDefaults()
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return SiteConfig{}, err
	}
	return cfg, nil
}

func (c *SiteConfig) applyEnv() error {
	strs := map[string]*string{
		"FOLIO_TITLE":          &c.Title,
		"FOLIO_URL":            &c.URL,
		"FOLIO_PATH_PREFIX":    &c.PathPrefix,
		"FOLIO_ADDR":           &c.Addr,
		"FOLIO_DATABASE_PATH":  &c.DatabasePath,
		"FOLIO_CONTENT_DIR":    &c.ContentDir,
		"FOLIO_PROJECTS_FILE":  &c.ProjectsFile,
		"FOLIO_STATIC_DIR":     &c.StaticDir,
		"FOLIO_ADMIN_PASSWORD": &c.AdminPassword,
		"FOLIO_SESSION_SECRET": &c.SessionSecret,
	}
	for key, dst := range strs {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	bools := map[string]*bool{
		"FOLIO_COOKIE_SECURE": &c.CookieSecure,
		"FOLIO_WATCH":         &c.Watch,
	}
	for key, dst := range bools {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("folio: %s: %w", key, err)
		}
		*dst = b
	}
	if v := os.Getenv("FOLIO_POST_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("folio: FOLIO_POST_CACHE_TTL: %w", err)
		}
		c.PostCacheTTL = d
	}
	return nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir overrides the directory for user-owned static assets.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}

// WithLogger replaces the default application logger.
func WithLogger(l echo.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithProjects replaces the project registry.
func WithProjects(projects []Project) Option {
	return func(a *App) {
		a.Projects = projects
	}
}
