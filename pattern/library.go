package pattern

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "pattern")

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Library is the set of patterns offered in the UI, keyed by name.
type Library struct {
	patterns map[string]*Pattern
}

// NewLibrary compiles the embedded scripts.
func NewLibrary() (*Library, error) {
	lib := &Library{patterns: map[string]*Pattern{}}
	entries, err := fs.ReadDir(ScriptsFS, "scripts")
	if err != nil {
		return nil, fmt.Errorf("pattern: read embedded scripts: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !IsScriptFile(e.Name()) {
			continue
		}
		src, err := ScriptsFS.ReadFile("scripts/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("pattern: read %s: %w", e.Name(), err)
		}
		if err := lib.add(scriptName(e.Name()), src); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

// LoadDir compiles every .tengo file in dir, replacing same-named patterns.
// Broken scripts are skipped and reported in the returned error; the rest
// still load.
func (l *Library) LoadDir(dir string) error {
	if dir == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("pattern: read dir %s: %w", dir, err)
	}
	var failed []string
	for _, e := range entries {
		if e.IsDir() || !IsScriptFile(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		src, err := os.ReadFile(path)
		if err != nil {
			failed = append(failed, e.Name())
			continue
		}
		if err := l.add(scriptName(e.Name()), src); err != nil {
			log.WithError(err).WithField("path", path).Warn("skipping pattern")
			failed = append(failed, e.Name())
			continue
		}
		log.WithField("path", path).Info("loaded pattern")
	}
	if len(failed) > 0 {
		return fmt.Errorf("pattern: %d script(s) failed in %s: %s", len(failed), dir, strings.Join(failed, ", "))
	}
	return nil
}

func (l *Library) add(name string, src []byte) error {
	p, err := Compile(name, src)
	if err != nil {
		return err
	}
	l.patterns[name] = p
	return nil
}

// Get returns the pattern with the given name.
func (l *Library) Get(name string) (*Pattern, bool) {
	p, ok := l.patterns[name]
	return p, ok
}

// List returns pattern names in sorted order.
func (l *Library) List() []string {
	names := make([]string, 0, len(l.patterns))
	for name := range l.patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsScriptFile reports whether path names a pattern script.
func IsScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}

func scriptName(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
