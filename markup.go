package execreport

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"

	"github.com/alnah/go-execreport/internal/assets"
)

// MarkupRenderer renders the report as a self-contained HTML document ready
// for printing to A4.
type MarkupRenderer struct {
	tmpl       *template.Template
	stylesheet template.CSS
	md         *inlineMarkdown
}

// NewMarkupRenderer loads and parses the report template and stylesheet.
// Honours WithAssetPath and WithPalette.
func NewMarkupRenderer(opts ...Option) (*MarkupRenderer, error) {
	o := applyOptions(opts)

	if err := o.palette.Validate(); err != nil {
		return nil, err
	}

	loader, err := assets.NewResolver(o.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}

	tmplSrc, err := loader.Load(assets.Template, assets.DefaultTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading report template: %w", err)
	}
	tmpl, err := template.New(assets.DefaultTemplateName).Parse(tmplSrc)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing template: %v", ErrTemplateRender, err)
	}

	styleSrc, err := loader.Load(assets.Style, assets.DefaultStyleName)
	if err != nil {
		return nil, fmt.Errorf("loading stylesheet: %w", err)
	}
	css, err := buildStylesheet(styleSrc, o.palette)
	if err != nil {
		return nil, err
	}

	return &MarkupRenderer{
		tmpl:       tmpl,
		stylesheet: css,
		md:         newInlineMarkdown(),
	}, nil
}

// buildStylesheet fills the palette variables of the stylesheet.
// The palette is validated hex, so the result is safe to mark as CSS.
func buildStylesheet(src string, p Palette) (template.CSS, error) {
	t, err := texttemplate.New("style").Option("missingkey=error").Parse(src)
	if err != nil {
		return "", fmt.Errorf("%w: parsing stylesheet: %v", ErrTemplateRender, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("%w: stylesheet: %v", ErrTemplateRender, err)
	}
	// #nosec G203 -- palette values are validated #rrggbb colors
	return template.CSS(buf.String()), nil
}

// Name implements Renderer.
func (r *MarkupRenderer) Name() string { return RendererMarkup }

// Extension implements Renderer.
func (r *MarkupRenderer) Extension() string { return ExtensionHTML }

// markupView is the data the report template sees.
type markupView struct {
	Company    string
	Period     string
	Generated  string
	DocumentID string
	Stylesheet template.CSS
	Metrics    []Metric
	Highlights []template.HTML
	KPIs       []KPI
	Note       template.HTML
}

// Render implements Renderer.
func (r *MarkupRenderer) Render(ctx context.Context, data *ReportData) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}

	view := markupView{
		Company:    data.Company,
		Period:     data.Period,
		Generated:  data.generatedLabel(),
		DocumentID: data.DocumentID,
		Stylesheet: r.stylesheet,
		Metrics:    data.Metrics,
		KPIs:       data.KPIs,
	}

	view.Highlights = make([]template.HTML, 0, len(data.Highlights))
	for _, h := range data.Highlights {
		if strings.TrimSpace(h) == "" {
			continue
		}
		rendered, err := r.md.HTML(h)
		if err != nil {
			return nil, err
		}
		view.Highlights = append(view.Highlights, rendered)
	}

	if data.Note != "" {
		note, err := r.md.HTML(data.Note)
		if err != nil {
			return nil, err
		}
		view.Note = note
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.Bytes(), nil
}
