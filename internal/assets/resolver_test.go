package assets

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewResolver(t *testing.T) {
	t.Parallel()

	r, err := NewResolver("")
	if err != nil {
		t.Fatalf("NewResolver(\"\") error = %v", err)
	}
	if r.Custom() {
		t.Error("Custom() = true without a base path")
	}

	r, err = NewResolver(t.TempDir())
	if err != nil {
		t.Fatalf("NewResolver(dir) error = %v", err)
	}
	if !r.Custom() {
		t.Error("Custom() = false with a base path")
	}

	if _, err := NewResolver(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, ErrInvalidBasePath) {
		t.Errorf("NewResolver(missing) error = %v, want ErrInvalidBasePath", err)
	}
}

func TestResolver_CustomOverridesEmbedded(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAsset(t, dir, "styles", DefaultStyleName+".css", "/* custom */")

	r, err := NewResolver(dir)
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	style, err := r.Load(Style, DefaultStyleName)
	if err != nil || style != "/* custom */" {
		t.Errorf("Load(style) = %q, %v; want custom stylesheet", style, err)
	}

	// No custom template: the embedded one is used.
	tmpl, err := r.Load(Template, DefaultTemplateName)
	if err != nil {
		t.Fatalf("Load(template) error = %v", err)
	}
	if !strings.Contains(tmpl, `class="page"`) {
		t.Error("template should fall back to the embedded report")
	}

	if _, err := r.Load(Style, "nowhere"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load(missing) error = %v, want ErrNotFound", err)
	}
}

func TestResolver_InvalidNameNotFallenBack(t *testing.T) {
	t.Parallel()

	r, err := NewResolver(t.TempDir())
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	if _, err := r.Load(Style, "../executive"); !errors.Is(err, ErrInvalidName) {
		t.Errorf("Load(traversal) error = %v, want ErrInvalidName", err)
	}
}

func TestValidName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"executive", "report", "board-2025", "Q1_deck"} {
		if err := validName(name); err != nil {
			t.Errorf("validName(%q) = %v, want nil", name, err)
		}
	}
	for _, name := range []string{"", "a/b", `a\b`, "a.css", ".."} {
		if err := validName(name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("validName(%q) = %v, want ErrInvalidName", name, err)
		}
	}
}
