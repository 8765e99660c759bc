package folio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNormalizePathPrefix(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"/", ""},
		{"//", ""},
		{"blog", "/blog"},
		{"/blog", "/blog"},
		{"/blog/", "/blog"},
		{"blog/", "/blog"},
		{"//blog//", "/blog"},
		{"/a/b/", "/a/b"},
	}
	for _, tt := range tests {
		if got := NormalizePathPrefix(tt.in); got != tt.want {
			t.Errorf("NormalizePathPrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name             string
		in               SiteConfig
		url, rss, prefix string
	}{
		{
			name:   "trailing slash on url",
			in:     SiteConfig{URL: "https://arbazsiddiqui.me/", RSS: "/rss.xml", PathPrefix: "/"},
			url:    "https://arbazsiddiqui.me",
			rss:    "/rss.xml",
			prefix: "",
		},
		{
			name:   "rss without leading slash",
			in:     SiteConfig{URL: "https://arbazsiddiqui.me", RSS: "rss.xml", PathPrefix: "blog/"},
			url:    "https://arbazsiddiqui.me",
			rss:    "/rss.xml",
			prefix: "/blog",
		},
		{
			name: "empty rss stays empty",
			in:   SiteConfig{URL: "https://x.me"},
			url:  "https://x.me",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.in
			cfg.Normalize()
			if cfg.URL != tt.url {
				t.Errorf("URL = %q, want %q", cfg.URL, tt.url)
			}
			if cfg.RSS != tt.rss {
				t.Errorf("RSS = %q, want %q", cfg.RSS, tt.rss)
			}
			if cfg.PathPrefix != tt.prefix {
				t.Errorf("PathPrefix = %q, want %q", cfg.PathPrefix, tt.prefix)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	cfg := SiteConfig{URL: "https://x.me/", RSS: "feed.xml", PathPrefix: "/x/"}
	cfg.Normalize()
	once := cfg
	cfg.Normalize()
	if cfg.URL != once.URL || cfg.RSS != once.RSS || cfg.PathPrefix != once.PathPrefix {
		t.Errorf("second Normalize changed config: %+v -> %+v", once, cfg)
	}
}

func TestValidate(t *testing.T) {
	cfg := SiteConfig{}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for empty config")
	}
	for _, field := range []string{"title", "url", "session_secret"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}

	cfg = SiteConfig{Title: "T", URL: "https://x.me", SessionSecret: "s"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

func TestHref(t *testing.T) {
	cfg := SiteConfig{PathPrefix: "/blog"}
	if got := cfg.Href("/me/"); got != "/blog/me/" {
		t.Errorf("Href = %q, want /blog/me/", got)
	}
	cfg.PathPrefix = ""
	if got := cfg.Href("/me/"); got != "/me/" {
		t.Errorf("Href = %q, want /me/", got)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	data := `
title: "Arbaz Siddiqui"
url: "https://arbazsiddiqui.me/"
path_prefix: "/"
rss: "rss.xml"
twitter: "arbazsiddiqui_"
session_secret: "file-secret"
menu_links:
  - name: Blog
    link: /blog/
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FOLIO_SESSION_SECRET", "env-secret")
	t.Setenv("FOLIO_POST_CACHE_TTL", "30s")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.URL != "https://arbazsiddiqui.me" || cfg.RSS != "/rss.xml" || cfg.PathPrefix != "" {
		t.Errorf("not normalized: %+v", cfg)
	}
	if cfg.SessionSecret != "env-secret" {
		t.Errorf("SessionSecret = %q, want env override", cfg.SessionSecret)
	}
	if cfg.PostCacheTTL != 30*time.Second {
		t.Errorf("PostCacheTTL = %v, want 30s", cfg.PostCacheTTL)
	}
	if cfg.DefaultCategory != "Tech" || cfg.Addr != ":3000" || cfg.TitleShort != "Arbaz Siddiqui" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if len(cfg.MenuLinks) != 1 || cfg.MenuLinks[0].Link != "/blog/" {
		t.Errorf("MenuLinks = %+v", cfg.MenuLinks)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte("title: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for malformed yaml")
	}

	t.Setenv("FOLIO_WATCH", "sometimes")
	if _, err := LoadConfig(""); err == nil {
		t.Error("expected error for bad boolean env value")
	}
}
