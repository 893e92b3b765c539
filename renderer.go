package execreport

import (
	"context"
	"fmt"
	"strings"
)

// Renderer names.
const (
	RendererMarkup = "markup"
	RendererCanvas = "canvas"
)

// Output extensions reported by Renderer.Extension.
const (
	ExtensionHTML = "html"
	ExtensionPDF  = "pdf"
)

// Renderer turns report data into a document.
type Renderer interface {
	// Name returns the renderer name, e.g. "markup".
	Name() string
	// Extension returns the output format: "html" or "pdf".
	Extension() string
	// Render produces the document bytes.
	Render(ctx context.Context, data *ReportData) ([]byte, error)
}

// Compile-time interface checks.
var (
	_ Renderer = (*MarkupRenderer)(nil)
	_ Renderer = (*CanvasRenderer)(nil)
)

// RendererNames lists the names accepted by NewRenderer.
func RendererNames() []string {
	return []string{RendererMarkup, RendererCanvas}
}

// NewRenderer returns the renderer registered under kind (case-insensitive).
// An empty kind selects the markup renderer.
func NewRenderer(kind string, opts ...Option) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", RendererMarkup:
		return NewMarkupRenderer(opts...)
	case RendererCanvas:
		return NewCanvasRenderer(opts...)
	default:
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownRenderer, kind, strings.Join(RendererNames(), ", "))
	}
}
