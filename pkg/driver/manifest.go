package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is the file the CLI discovers by walking parent
// directories.
const ManifestFileName = "package.yml"

// Manifest represents the parsed contents of package.yml.
type Manifest struct {
	Path    string
	Name    string
	Version string
	Main    string
}

type manifestYAML struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Main    string `yaml:"main"`
}

// ValidationError aggregates manifest validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("manifest validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n  - ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadManifest parses and validates package.yml at path.
func LoadManifest(path string) (*Manifest, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	var raw manifestYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", abs, err)
	}
	manifest := &Manifest{
		Path:    abs,
		Name:    strings.TrimSpace(raw.Name),
		Version: strings.TrimSpace(raw.Version),
		Main:    strings.TrimSpace(raw.Main),
	}
	if err := manifest.validate(); err != nil {
		return nil, err
	}
	return manifest, nil
}

func (m *Manifest) validate() error {
	var issues []string
	if m.Name == "" {
		issues = append(issues, "name is required")
	}
	if m.Main == "" {
		issues = append(issues, "main entrypoint is required")
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// MainScript resolves the manifest's entrypoint relative to the manifest
// location.
func (m *Manifest) MainScript() string {
	if filepath.IsAbs(m.Main) {
		return filepath.Clean(m.Main)
	}
	return filepath.Join(filepath.Dir(m.Path), filepath.FromSlash(m.Main))
}

// FindManifest walks from start upward looking for package.yml. It
// returns os.ErrNotExist when no manifest is found.
func FindManifest(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("manifest: resolve search path %q: %w", start, err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		candidate := filepath.Join(dir, ManifestFileName)
		if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
