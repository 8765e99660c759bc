// Package scaffold creates a new folio site directory from embedded
// templates.
package scaffold

import (
	"crypto/rand"
	"embed"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Templates contains all scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS

const root = "templates"

// Data holds the template variables passed to every scaffold template.
type Data struct {
	SiteName      string
	SessionSecret string
	Date          string
}

// NewData derives template data for a site created in dir.
func NewData(dir string) (Data, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return Data{}, fmt.Errorf("generate session secret: %w", err)
	}
	return Data{
		SiteName:      toTitle(filepath.Base(dir)),
		SessionSecret: hex.EncodeToString(secret),
		Date:          time.Now().Format("2006-01-02"),
	}, nil
}

// Generate writes the site skeleton into dir, which must not exist yet.
// Each created file is reported on out.
func Generate(dir string, data Data, out io.Writer) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %q already exists", dir)
	}

	return fs.WalkDir(Templates, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		outPath := strings.TrimSuffix(filepath.Join(dir, relPath), ".tmpl")

		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		content, err := Templates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()

		if err := tmpl.Execute(f, data); err != nil {
			return fmt.Errorf("execute template %s: %w", path, err)
		}
		fmt.Fprintf(out, "  created %s\n", outPath)
		return nil
	})
}

// toTitle converts a hyphenated or lowercase name to a title-case string.
// e.g. "my-blog" -> "My Blog", "myblog" -> "Myblog"
func toTitle(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "-", " "))
}

var titleCaser = cases.Title(language.English)
