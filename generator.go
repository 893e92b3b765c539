package execreport

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/alnah/go-execreport/internal/fileutil"
)

// Request describes one generation run.
type Request struct {
	Data *ReportData

	// HTMLPath receives the markup renderer's HTML. When empty, the markup
	// pipeline prints from memory and keeps no HTML file. Ignored by the
	// canvas renderer.
	HTMLPath string
	// PDFPath receives the PDF. Not written when HTMLOnly is set.
	PDFPath string
	// ManifestPath, if set, receives a JSON list of the produced files.
	ManifestPath string
	// HTMLOnly stops the markup pipeline after the HTML file.
	HTMLOnly bool
}

// Generator runs a renderer and writes its outputs.
type Generator struct {
	renderer  Renderer
	converter PDFConverter
	logger    *zerolog.Logger
}

// NewGenerator creates a Generator. Defaults to the markup renderer and a
// BrowserConverter built from the same options.
func NewGenerator(opts ...Option) (*Generator, error) {
	o := applyOptions(opts)

	g := &Generator{
		renderer:  o.renderer,
		converter: o.converter,
		logger:    o.logger,
	}

	if g.renderer == nil {
		r, err := NewMarkupRenderer(opts...)
		if err != nil {
			return nil, err
		}
		g.renderer = r
	}

	// The browser is only launched on conversion, so building it is free.
	if g.converter == nil {
		g.converter = NewBrowserConverter(opts...)
	}

	return g, nil
}

// Renderer returns the renderer in use.
func (g *Generator) Renderer() Renderer {
	return g.renderer
}

// Generate renders req.Data and writes the requested files.
// Files written before a failure are left in place.
func (g *Generator) Generate(ctx context.Context, req Request) (*Manifest, error) {
	if err := g.validateRequest(req); err != nil {
		return nil, err
	}

	base := zerolog.Ctx(ctx)
	if g.logger != nil {
		base = g.logger
	}
	log := base.With().Str("renderer", g.renderer.Name()).Logger()

	var (
		manifest *Manifest
		err      error
	)
	switch g.renderer.Extension() {
	case ExtensionHTML:
		manifest, err = g.generateMarkup(ctx, req, log)
	default:
		manifest, err = g.generateDirect(ctx, req, log)
	}
	if err != nil {
		return nil, err
	}

	if req.ManifestPath != "" {
		if err := WriteManifest(req.ManifestPath, manifest); err != nil {
			return nil, err
		}
		log.Debug().Str("path", req.ManifestPath).Msg("wrote manifest")
	}

	return manifest, nil
}

// validateRequest checks that the request matches the renderer.
func (g *Generator) validateRequest(req Request) error {
	if req.Data == nil {
		return fmt.Errorf("%w: no report data", ErrInvalidRequest)
	}
	switch g.renderer.Extension() {
	case ExtensionHTML:
		if req.HTMLOnly && req.HTMLPath == "" {
			return fmt.Errorf("%w: HTML path is required for HTML only", ErrInvalidRequest)
		}
		if !req.HTMLOnly && req.PDFPath == "" {
			return fmt.Errorf("%w: PDF path is required unless HTML only", ErrInvalidRequest)
		}
	default:
		if req.HTMLOnly {
			return fmt.Errorf("%w: HTML only needs the %s renderer, not %s", ErrInvalidRequest, RendererMarkup, g.renderer.Name())
		}
		if req.PDFPath == "" {
			return fmt.Errorf("%w: PDF path is required", ErrInvalidRequest)
		}
	}
	return nil
}

// generateMarkup writes the HTML and, unless HTMLOnly, prints it to PDF.
// Without an HTML path the document is printed from memory.
func (g *Generator) generateMarkup(ctx context.Context, req Request, log zerolog.Logger) (*Manifest, error) {
	html, err := g.renderer.Render(ctx, req.Data)
	if err != nil {
		return nil, err
	}

	manifest := &Manifest{}
	if req.HTMLPath != "" {
		if err := writeOutput(req.HTMLPath, html); err != nil {
			return nil, err
		}
		log.Debug().Str("path", req.HTMLPath).Int("bytes", len(html)).Msg("wrote HTML")
		manifest.HTML = req.HTMLPath
	}
	if req.HTMLOnly {
		return manifest, nil
	}

	log.Debug().Bool("keep_html", req.HTMLPath != "").Msg("printing HTML with headless browser")
	var pdf []byte
	if req.HTMLPath != "" {
		pdf, err = g.converter.ConvertFile(ctx, req.HTMLPath)
	} else {
		pdf, err = g.converter.ConvertHTML(ctx, string(html))
	}
	if err != nil {
		return nil, err
	}
	if err := writeOutput(req.PDFPath, pdf); err != nil {
		return nil, err
	}
	log.Debug().Str("path", req.PDFPath).Int("bytes", len(pdf)).Msg("wrote PDF")

	manifest.PDF = req.PDFPath
	return manifest, nil
}

// generateDirect writes the renderer's PDF.
func (g *Generator) generateDirect(ctx context.Context, req Request, log zerolog.Logger) (*Manifest, error) {
	pdf, err := g.renderer.Render(ctx, req.Data)
	if err != nil {
		return nil, err
	}
	if err := writeOutput(req.PDFPath, pdf); err != nil {
		return nil, err
	}
	log.Debug().Str("path", req.PDFPath).Int("bytes", len(pdf)).Msg("wrote PDF")

	return &Manifest{PDF: req.PDFPath}, nil
}

func writeOutput(path string, data []byte) error {
	if err := fileutil.WriteFile(path, data); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, path, err)
	}
	return nil
}
