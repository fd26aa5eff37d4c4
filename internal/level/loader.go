package level

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed levels/*.yaml
var embeddedLevels embed.FS

// Loader loads a campaign from a directory, falling back to the embedded
// levels when Root is empty.
type Loader struct {
	Root string
}

// NewLoader creates a loader for the given directory. An empty root selects
// the built-in campaign.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll loads every level file and returns them sorted by ID for
// deterministic campaign order.
func (l *Loader) LoadAll() ([]Level, error) {
	if l.Root == "" {
		return loadEmbedded()
	}

	var levels []Level
	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isLevelFile(path) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		lvl, err := Parse(data)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		lvl.FilePath = path
		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("no level files under %s", l.Root)
	}

	sortByID(levels)
	return levels, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}

// loadEmbedded parses the built-in campaign. The embedded files are validated
// by tests, so a parse failure here is a packaging bug.
func loadEmbedded() ([]Level, error) {
	entries, err := fs.Glob(embeddedLevels, "levels/*.yaml")
	if err != nil {
		return nil, err
	}

	levels := make([]Level, 0, len(entries))
	for _, name := range entries {
		data, err := embeddedLevels.ReadFile(name)
		if err != nil {
			return nil, err
		}
		lvl, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("embedded %s: %w", name, err)
		}
		levels = append(levels, lvl)
	}

	sortByID(levels)
	return levels, nil
}

func sortByID(levels []Level) {
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
}

func isLevelFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
