package driver

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestFileName)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "name: demo\nversion: 0.1.0\nmain: scripts/main.sjs\n")

	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if manifest.Name != "demo" || manifest.Version != "0.1.0" {
		t.Fatalf("unexpected manifest %+v", manifest)
	}
	want := filepath.Join(dir, "scripts", "main.sjs")
	if got := manifest.MainScript(); got != want {
		t.Fatalf("main script = %q, want %q", got, want)
	}
}

func TestLoadManifestValidation(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "version: 0.1.0\n")

	_, err := LoadManifest(path)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(validationErr.Issues) != 2 {
		t.Fatalf("expected name and main issues, got %v", validationErr.Issues)
	}
}

func TestFindManifestWalksUpward(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "name: demo\nmain: main.sjs\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	found, err := FindManifest(nested)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found != filepath.Join(root, ManifestFileName) {
		t.Fatalf("unexpected manifest path %q", found)
	}
}

func TestFindManifestMissing(t *testing.T) {
	_, err := FindManifest(t.TempDir())
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestLoadScriptParses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.sjs")
	if err := os.WriteFile(path, []byte("var x = 1\nprint(x)\n"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}

	block, err := LoadScript(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(block.Body) != 2 {
		t.Fatalf("unexpected statement count %d", len(block.Body))
	}
}
