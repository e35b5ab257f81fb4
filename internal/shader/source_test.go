package shader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/braticpetar/gloom/internal/shader"
)

func TestLoadSource_AddsTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vert.glsl")
	if err := os.WriteFile(path, []byte("#version 410 core\nvoid main() {}"), 0o644); err != nil {
		t.Fatal(err)
	}

	source, err := shader.LoadSource(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(source, "}\n") {
		t.Errorf("source should end in a newline, got %q", source[len(source)-2:])
	}
}

func TestLoadSource_MissingFile(t *testing.T) {
	_, err := shader.LoadSource(filepath.Join(t.TempDir(), "missing.glsl"))
	if err == nil {
		t.Fatal("want error for missing file")
	}
	if !strings.Contains(err.Error(), "missing.glsl") {
		t.Errorf("error should name the file, got %v", err)
	}
}

func TestLoadPair(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "vert.glsl"), []byte("vertex\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "frag.glsl"), []byte("fragment\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	vert, frag, err := shader.LoadPair(dir)
	if err != nil {
		t.Fatal(err)
	}
	if vert != "vertex\n" || frag != "fragment\n" {
		t.Errorf("unexpected pair: %q, %q", vert, frag)
	}
}

func TestLoadPair_MissingFragment(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "vert.glsl"), []byte("vertex\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := shader.LoadPair(dir); err == nil {
		t.Fatal("want error when frag.glsl is missing")
	}
}

func TestDefaultPair(t *testing.T) {
	for name, source := range map[string]string{
		"vertex":   shader.DefaultVertex,
		"fragment": shader.DefaultFragment,
	} {
		if !strings.HasPrefix(source, "#version 410 core\n") {
			t.Errorf("%s shader should target GLSL 410 core", name)
		}
		if !strings.HasSuffix(source, "\n") {
			t.Errorf("%s shader should end in a newline", name)
		}
	}
}
