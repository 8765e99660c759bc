package folio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/arbazsiddiqui/folio/markdown"
)

// IndexStats summarises one indexing run.
type IndexStats struct {
	Posts      int
	Pages      int
	Drafts     int
	Thumbnails int
}

// reservedSlugs are first path segments owned by built-in routes.
var reservedSlugs = map[string]bool{
	"blog":     true,
	"projects": true,
	"admin":    true,
	"theme":    true,
	"public":   true,
}

// Indexer loads the content directory into the Store.
type Indexer struct {
	ContentDir    string
	ThumbnailsDir string
	DateLayout    string
	Store         *Store
	Renderer      *markdown.Renderer
	Logger        echo.Logger

	mu sync.Mutex
}

// NewIndexer returns an Indexer configured from cfg.
func NewIndexer(cfg SiteConfig, store *Store, logger echo.Logger) *Indexer {
	return &Indexer{
		ContentDir:    cfg.ContentDir,
		ThumbnailsDir: cfg.ThumbnailsDir,
		DateLayout:    cfg.DateFromFormat,
		Store:         store,
		Renderer:      markdown.New(),
		Logger:        logger,
	}
}

// Run parses every markdown file below ContentDir and replaces the index.
// Runs are serialised; a failed run leaves the previous index in place.
func (ix *Indexer) Run(ctx context.Context) (IndexStats, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	var (
		stats IndexStats
		posts []Post
	)
	if _, err := os.Stat(ix.ContentDir); errors.Is(err, fs.ErrNotExist) {
		ix.logf("content directory %s does not exist; index is empty", ix.ContentDir)
		return stats, ix.Store.ReplaceAll(nil)
	}
	seen := make(map[string]string)
	err := filepath.WalkDir(ix.ContentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}
		src, err := ParseSource(path, ix.Renderer, ix.DateLayout)
		if err != nil {
			return err
		}
		if src.Draft {
			stats.Drafts++
			return nil
		}
		if prev, dup := seen[src.Slug]; dup {
			return fmt.Errorf("folio: slug %q used by both %s and %s", src.Slug, prev, path)
		}
		if reservedSlugs[src.Slug] {
			return fmt.Errorf("folio: %s: slug %q is reserved for a built-in route", path, src.Slug)
		}
		seen[src.Slug] = path

		if src.ThumbnailFile != "" {
			thumbPath := filepath.Join(filepath.Dir(path), src.ThumbnailFile)
			url, err := writeThumbnail(thumbPath, ix.ThumbnailsDir, src.Slug)
			if err != nil {
				ix.logf("thumbnail for %s skipped: %v", src.Slug, err)
			} else {
				src.Thumbnail = url
				stats.Thumbnails++
			}
		}

		if src.Template == TemplatePost {
			stats.Posts++
		} else {
			stats.Pages++
		}
		posts = append(posts, src.Post)
		return nil
	})
	if err != nil {
		return IndexStats{}, fmt.Errorf("folio: index %s: %w", ix.ContentDir, err)
	}
	if err := ix.Store.ReplaceAll(posts); err != nil {
		return IndexStats{}, fmt.Errorf("folio: store index: %w", err)
	}
	return stats, nil
}

func (ix *Indexer) logf(format string, args ...any) {
	if ix.Logger != nil {
		ix.Logger.Warnf(format, args...)
	}
}
