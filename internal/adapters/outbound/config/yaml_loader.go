package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tsfix/tsfix/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the fix table document looked up in the project root.
const FileName = ".tsfix.yaml"

// YAMLLoader implements domain.TableLoader by reading .tsfix.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads the fix table. With an explicit path that file must exist;
// otherwise .tsfix.yaml is read from projectPath and DefaultTable is
// returned when it is absent.
func (l *YAMLLoader) Load(projectPath, explicitPath string) (domain.FixTable, error) {
	path := explicitPath
	if path == "" {
		path = filepath.Join(projectPath, FileName)
	}
	name := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && explicitPath == "" {
			return domain.DefaultTable(), nil
		}
		return domain.FixTable{}, fmt.Errorf("reading %s: %w", name, err)
	}

	var table domain.FixTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return domain.FixTable{}, fmt.Errorf("parsing %s: %w", name, err)
	}

	if err := table.Validate(); err != nil {
		return domain.FixTable{}, fmt.Errorf("invalid %s: %w", name, err)
	}

	return table, nil
}

// Marshal renders a table as a .tsfix.yaml document.
func Marshal(table domain.FixTable) ([]byte, error) {
	return yaml.Marshal(table)
}
