// Package level loads puzzle definitions from YAML files. A built-in campaign
// ships embedded in the binary; an external directory can replace it.
// This package depends on board but board does not depend on level.
package level

import (
	"fmt"

	"blockroll/internal/board"
	"gopkg.in/yaml.v3"
)

// Level is a parsed, validated puzzle ready to play.
type Level struct {
	ID       string
	Name     string
	Board    *board.Board
	Start    board.Cell
	FilePath string // empty for embedded levels
}

// yamlLevel is the on-disk structure of a level file.
type yamlLevel struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Layout []string `yaml:"layout"`
}

// Parse decodes a YAML level file and validates its layout.
func Parse(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("level has no id")
	}
	if len(yl.Layout) == 0 {
		return Level{}, fmt.Errorf("level %s has no layout", yl.ID)
	}

	b, start, err := board.ParseLayout(yl.Layout)
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", yl.ID, err)
	}

	return Level{
		ID:    yl.ID,
		Name:  yl.Name,
		Board: b,
		Start: start,
	}, nil
}
