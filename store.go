package folio

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested entry does not exist.
var ErrNotFound = sql.ErrNoRows

// Query selects entries from the index. Zero fields do not filter.
type Query struct {
	Template string
	Category string
	Tag      string
	Limit    int
}

// Store wraps the SQLite content index. Entries are written in bulk by the
// Indexer and read newest-first by everything else.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets readers continue while a re-index transaction is open; the
	// busy timeout makes writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS entries (
    slug TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    date TEXT NOT NULL,
    template TEXT NOT NULL DEFAULT 'post',
    tags TEXT NOT NULL,
    categories TEXT NOT NULL,
    category_id TEXT NOT NULL DEFAULT '',
    thumbnail TEXT NOT NULL DEFAULT '',
    html TEXT NOT NULL,
    excerpt TEXT NOT NULL,
    read_time INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS entries_date ON entries (date DESC, slug);
`)
	return err
}

const entryColumns = `slug, title, date, template, tags, categories, category_id, thumbnail, html, excerpt, read_time`

// ReplaceAll swaps the whole index for posts in a single transaction.
func (s *Store) ReplaceAll(posts []Post) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO entries (` + entryColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, p := range posts {
		if _, err := stmt.Exec(
			p.Slug, p.Title, p.Date.UTC().Format(time.RFC3339), p.Template,
			joinList(normalizeTags(p.Tags)), joinList(p.Categories), p.CategoryID, p.Thumbnail,
			p.HTML, p.Excerpt, p.ReadTime,
		); err != nil {
			return fmt.Errorf("insert %s: %w", p.Slug, err)
		}
	}
	return tx.Commit()
}

// ListPosts returns entries matching q, newest first. Entries sharing a date
// are ordered by slug so the sequence is stable.
func (s *Store) ListPosts(q Query) ([]Post, error) {
	var (
		where []string
		args  []any
	)
	if q.Template != "" {
		where = append(where, "template = ?")
		args = append(args, q.Template)
	}
	if q.Category != "" {
		where = append(where, "instr(lower(categories), ',' || ? || ',') > 0")
		args = append(args, strings.ToLower(strings.TrimSpace(q.Category)))
	}
	if q.Tag != "" {
		where = append(where, "instr(tags, ',' || ? || ',') > 0")
		args = append(args, normalizeTag(q.Tag))
	}
	query := `SELECT ` + entryColumns + ` FROM entries`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY date DESC, slug ASC`
	if q.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, q.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// GetPost returns a single entry by slug.
func (s *Store) GetPost(slug string) (Post, error) {
	row := s.db.QueryRow(`SELECT `+entryColumns+` FROM entries WHERE slug = ?`, slug)
	return scanPost(row)
}

// ListTags returns a sorted, deduplicated slice of all tags on posts.
func (s *Store) ListTags() ([]string, error) {
	rows, err := s.db.Query(`SELECT tags FROM entries WHERE template = ?`, TemplatePost)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := make(map[string]struct{})
	for rows.Next() {
		var tags string
		if err := rows.Scan(&tags); err != nil {
			return nil, err
		}
		for _, t := range splitList(tags) {
			set[t] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	result := make([]string, 0, len(set))
	for t := range set {
		result = append(result, t)
	}
	sort.Strings(result)
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPost(sc scanner) (Post, error) {
	var (
		p                      Post
		date, tags, categories string
	)
	if err := sc.Scan(&p.Slug, &p.Title, &date, &p.Template, &tags, &categories,
		&p.CategoryID, &p.Thumbnail, &p.HTML, &p.Excerpt, &p.ReadTime); err != nil {
		return Post{}, err
	}
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return Post{}, fmt.Errorf("entry %s: bad date %q: %w", p.Slug, date, err)
	}
	p.Date = t
	p.Tags = splitList(tags)
	p.Categories = splitList(categories)
	return p, nil
}

// joinList stores a list as ",a,b," so membership is a substring test.
func joinList(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return "," + strings.Join(vals, ",") + ","
}

func splitList(s string) []string {
	s = strings.Trim(s, ",")
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = normalizeTag(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
