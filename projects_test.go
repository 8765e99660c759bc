package folio

import (
	"path/filepath"
	"testing"
)

func TestLoadProjectsDefault(t *testing.T) {
	got, err := LoadProjects("")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(DefaultProjects) || got[0].Title != "LRU Cache for Node" {
		t.Errorf("LoadProjects(\"\") = %v", got)
	}
}

func TestLoadProjectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")
	writeFile(t, path, `projects:
  - title: " Second "
    source: https://github.com/a/second
    language: GoLang
  - title: First
    source: https://github.com/a/first
    demo: https://first.example
    description: Shown after Second.
`)
	got, err := LoadProjects(path)
	if err != nil {
		t.Fatalf("LoadProjects: %v", err)
	}
	if len(got) != 2 || got[0].Title != "Second" || got[1].Title != "First" {
		t.Fatalf("file order not kept: %+v", got)
	}
	if got[0].Language != "golang" {
		t.Errorf("Language = %q, want lowercased", got[0].Language)
	}
	if got[1].Demo != "https://first.example" {
		t.Errorf("Demo = %q", got[1].Demo)
	}
}

func TestLoadProjectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")
	writeFile(t, path, "projects:\n  - title: No source\n")
	if _, err := LoadProjects(path); err == nil {
		t.Error("expected error for project without source")
	}
	if _, err := LoadProjects(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
