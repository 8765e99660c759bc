package folio

import (
	"strings"
	"sync"
	"time"
)

// PostCache is an in-memory, TTL-bound copy of the whole index in
// chronological (newest-first) order.
type PostCache struct {
	mu      sync.RWMutex
	posts   []Post
	tags    []string
	fetched time.Time
	ttl     time.Duration
	store   *Store
}

// NewPostCache creates a PostCache backed by the given Store.
func NewPostCache(s *Store, ttl time.Duration) *PostCache {
	return &PostCache{store: s, ttl: ttl}
}

func (c *PostCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.tags = nil
	c.mu.Unlock()
}

func (c *PostCache) load() error {
	if c.valid() {
		return nil
	}
	posts, err := c.store.ListPosts(Query{})
	if err != nil {
		return err
	}
	tags, err := c.store.ListTags()
	if err != nil {
		return err
	}
	if posts == nil {
		posts = []Post{}
	}
	c.posts = posts
	c.tags = tags
	c.fetched = time.Now()
	return nil
}

// ensureLoaded returns cached posts and tags after ensuring the cache is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *PostCache) ensureLoaded() ([]Post, []string, error) {
	c.mu.RLock()
	if c.valid() {
		posts, tags := c.posts, c.tags
		c.mu.RUnlock()
		return posts, tags, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, nil, err
	}
	return c.posts, c.tags, nil
}

// ListPosts returns cached entries matching q, newest first.
func (c *PostCache) ListPosts(q Query) ([]Post, error) {
	posts, _, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	var out []Post
	for _, p := range posts {
		if !matches(p, q) {
			continue
		}
		out = append(out, p)
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
	}
	return out, nil
}

func matches(p Post, q Query) bool {
	if q.Template != "" && p.Template != q.Template {
		return false
	}
	if q.Category != "" && !containsFold(p.Categories, q.Category) {
		return false
	}
	if q.Tag != "" && !containsFold(p.Tags, q.Tag) {
		return false
	}
	return true
}

func containsFold(vals []string, want string) bool {
	want = strings.TrimSpace(want)
	for _, v := range vals {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

// ListTags returns all unique tags from posts.
func (c *PostCache) ListTags() ([]string, error) {
	_, tags, err := c.ensureLoaded()
	return tags, err
}

// GetPost returns a single entry by slug from the cache.
func (c *PostCache) GetPost(slug string) (Post, error) {
	posts, _, err := c.ensureLoaded()
	if err != nil {
		return Post{}, err
	}
	for _, p := range posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Post{}, ErrNotFound
}

// Neighbors returns the entries adjacent to slug in the full chronological
// sequence of every indexed entry.
func (c *PostCache) Neighbors(slug string) (Neighbors, error) {
	posts, _, err := c.ensureLoaded()
	if err != nil {
		return Neighbors{}, err
	}
	return NeighborsOf(posts, slug), nil
}

// NeighborsOf locates slug in posts (newest first). Next is the entry before
// it in that order, Prev the one after; both are nil at the ends or when the
// slug is absent.
func NeighborsOf(posts []Post, slug string) Neighbors {
	for i, p := range posts {
		if p.Slug != slug {
			continue
		}
		var n Neighbors
		if i > 0 {
			n.Next = LinkTo(posts[i-1])
		}
		if i < len(posts)-1 {
			n.Prev = LinkTo(posts[i+1])
		}
		return n
	}
	return Neighbors{}
}
