package folio

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultProjects is the built-in portfolio, in display order.
var DefaultProjects = []Project{
	{
		Title:       "LRU Cache for Node",
		Demo:        "https://www.npmjs.com/package/lru-cache-node",
		Source:      "https://github.com/arbazsiddiqui/lru-cache-node",
		Description: "A lighting fast cache manager for node with least-recently-used policy.",
		Language:    "javascript",
	},
	{
		Title:       "Anabranch",
		Source:      "https://github.com/arbazsiddiqui/anabranch",
		Description: "A HTTP load balancer and reverse proxy written in Go.",
		Language:    "golang",
	},
	{
		Title:       "rSlashVideos",
		Demo:        "http://arbazsiddiqui.github.io/rSlashVideos",
		Source:      "https://github.com/arbazsiddiqui/rSlashVideos",
		Description: `"Watch" any subreddit.`,
		Language:    "javascript",
	},
	{
		Title:       "MEAN Skeleton",
		Source:      "https://github.com/arbazsiddiqui/MEAN-skeleton/",
		Description: "A MVC skeleton for quick starting neat MEAN web apps.",
		Language:    "javascript",
	},
	{
		Title:       "IMDb details lookup",
		Source:      "https://github.com/arbazsiddiqui/IMDb-Rating-Lookup/",
		Description: "A python script that lets you check the IMDb rating, genre, cast etc of a movie with one click, without opening the browser.",
		Language:    "python",
	},
	{
		Title:       "Messenger Yoda Bot",
		Source:      "https://github.com/arbazsiddiqui/Facebook-Messenger-Yoda-Bot/",
		Description: "A Facebook messenger bot which echoes your message, BUT in YODA style.",
		Language:    "javascript",
	},
	{
		Title:       "A song of ice and fire API",
		Demo:        "https://www.npmjs.com/package/asoiaf-api",
		Source:      "https://github.com/arbazsiddiqui/A-song-of-ice-and-fire-API/",
		Description: "Javascript wrapper for the A song of ice and fire API",
		Language:    "javascript",
	},
}

type projectsFile struct {
	Projects []Project `yaml:"projects"`
}

// LoadProjects reads a YAML project list. An empty path returns DefaultProjects.
// File order is kept as display order.
func LoadProjects(path string) ([]Project, error) {
	if path == "" {
		return DefaultProjects, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("folio: read projects %s: %w", path, err)
	}
	var f projectsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("folio: parse projects %s: %w", path, err)
	}
	for i, p := range f.Projects {
		if strings.TrimSpace(p.Title) == "" || strings.TrimSpace(p.Source) == "" {
			return nil, fmt.Errorf("folio: project %d in %s needs a title and a source", i+1, path)
		}
		f.Projects[i].Title = strings.TrimSpace(p.Title)
		f.Projects[i].Language = strings.ToLower(strings.TrimSpace(p.Language))
	}
	return f.Projects, nil
}
