package language

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/folio/internal/log"
)

// LoadFile parses a single YAML language definition.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is a user-supplied language file
	if err != nil {
		return nil, fmt.Errorf("reading language file: %w", err)
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing language file %s: %w", path, err)
	}
	if def.Name == "" {
		def.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	def.Validate()

	return &def, nil
}

// LoadDir loads every .yaml/.yml definition in dir into the registry.
// Files that fail to parse are logged and skipped; a missing directory is
// not an error.
func LoadDir(r *Registry, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading language dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		def, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			log.ErrorErr(log.CatLang, "skipping language file", err, "file", entry.Name())
			continue
		}
		r.Register(def)
		log.Debug(log.CatLang, "loaded language", "name", def.Name, "file", entry.Name())
	}

	return nil
}
