package execreport

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// inlineMarkdown renders the short Markdown snippets allowed in highlights
// and the KPI note. Raw HTML is dropped by goldmark's default renderer.
type inlineMarkdown struct {
	md goldmark.Markdown
}

func newInlineMarkdown() *inlineMarkdown {
	return &inlineMarkdown{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Strikethrough,
				extension.Linkify,
			),
		),
	}
}

// HTML renders src and unwraps a lone paragraph so the result can sit
// inside an <li> or <p>.
func (m *inlineMarkdown) HTML(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	out := strings.TrimSpace(buf.String())
	if strings.Count(out, "<p>") == 1 && strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}

	// #nosec G203 -- produced by goldmark without html.WithUnsafe
	return template.HTML(out), nil
}

// Text returns the visible text of src with all markup removed, for the
// canvas renderer.
func (m *inlineMarkdown) Text(src string) string {
	source := []byte(src)
	doc := m.md.Parser().Parse(text.NewReader(source))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Kind() == ast.KindParagraph && n.NextSibling() != nil {
				b.WriteByte(' ')
			}
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(node.Value)
		case *ast.AutoLink:
			b.Write(node.Label(source))
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(b.String())
}
