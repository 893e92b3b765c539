package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

//go:embed styles templates
var embedded embed.FS

// Names of the built-in assets.
const (
	DefaultStyleName    = "executive"
	DefaultTemplateName = "report"
)

// Kind is a class of asset with its own directory and extension.
type Kind struct {
	name string
	dir  string
	ext  string
}

// Asset kinds.
var (
	Style    = Kind{name: "style", dir: "styles", ext: ".css"}
	Template = Kind{name: "template", dir: "templates", ext: ".html"}
)

func (k Kind) String() string { return k.name }

// file returns the slash-separated path of the named asset.
func (k Kind) file(name string) string {
	return path.Join(k.dir, name+k.ext)
}

// Loader loads assets by kind and name (without extension).
type Loader interface {
	Load(kind Kind, name string) (string, error)
}

// EmbeddedLoader serves the assets compiled into the binary.
type EmbeddedLoader struct{}

// Load implements Loader.
func (EmbeddedLoader) Load(kind Kind, name string) (string, error) {
	return readAsset(embedded, kind, name)
}

// DirLoader serves assets from a directory on disk.
type DirLoader struct {
	base string
}

// NewDirLoader checks that base is an openable directory.
func NewDirLoader(base string) (*DirLoader, error) {
	if base == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}
	root, err := os.OpenRoot(base)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	_ = root.Close()
	return &DirLoader{base: base}, nil
}

// Load implements Loader. Each call opens the directory afresh, so the
// loader holds no file descriptors.
func (d *DirLoader) Load(kind Kind, name string) (string, error) {
	root, err := os.OpenRoot(d.base)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	defer func() { _ = root.Close() }()

	return readAsset(root.FS(), kind, name)
}

// readAsset reads kind/name from fsys, mapping a missing file to ErrNotFound.
func readAsset(fsys fs.FS, kind Kind, name string) (string, error) {
	if err := validName(name); err != nil {
		return "", err
	}

	data, err := fs.ReadFile(fsys, kind.file(name))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %s %q", ErrNotFound, kind, name)
	case err != nil:
		return "", fmt.Errorf("%w: %s %q: %v", ErrAssetRead, kind, name, err)
	}
	return string(data), nil
}

// validName rejects empty names and names that could select another
// directory or extension.
func validName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if strings.ContainsAny(name, `/\.`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Compile-time interface checks.
var (
	_ Loader = EmbeddedLoader{}
	_ Loader = (*DirLoader)(nil)
)
