package language

import (
	"path/filepath"
	"sort"
	"strings"
)

// Registry holds known language definitions keyed by name, with a file
// extension index for lookup by path.
type Registry struct {
	byName map[string]*Definition
	byExt  map[string]*Definition
}

// NewRegistry creates a registry pre-populated with the builtin languages.
func NewRegistry() *Registry {
	r := &Registry{
		byName: make(map[string]*Definition),
		byExt:  make(map[string]*Definition),
	}
	for _, def := range Builtins() {
		r.Register(def)
	}
	return r
}

// Register adds or replaces a definition. Later registrations win on both
// name and extension collisions.
func (r *Registry) Register(def *Definition) {
	if def == nil || def.Name == "" {
		return
	}
	def.Validate()
	r.byName[strings.ToLower(def.Name)] = def
	for _, ext := range def.Extensions {
		r.byExt[strings.ToLower(ext)] = def
	}
}

// Get returns the definition registered under name, or nil.
func (r *Registry) Get(name string) *Definition {
	return r.byName[strings.ToLower(name)]
}

// ForFile returns the definition matching the file's extension, or nil.
func (r *Registry) ForFile(path string) *Definition {
	return r.byExt[strings.ToLower(filepath.Ext(path))]
}

// Names returns all registered language names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
