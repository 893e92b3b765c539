package execreport

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Canvas layout in millimetres, top-left origin.
const (
	contentX     = PageMargin
	contentWidth = PageWidth - 2*PageMargin

	heroTop    = PageMargin
	heroHeight = 34.0
	heroRadius = 4.0

	cardTop     = heroTop + heroHeight + 6
	cardHeight  = 32.0
	cardGutter  = 6.0
	cardRadius  = 3.5
	cardColumns = 3

	highlightsTop     = cardTop + cardHeight + 8
	highlightsRowH    = 12.0
	highlightsHeading = 16.0

	kpiTop     = heroTop + heroHeight + 6
	kpiHeading = 12.0
	kpiRowH    = 20.0
	kpiTrackH  = 5.0
	kpiTrackX  = contentX + InnerPadding
	kpiTrackW  = contentWidth - 2*InnerPadding

	footerY     = PageHeight - PageMargin + 4
	panelRadius = 4.0
)

// CanvasRenderer draws the report straight onto two A4 PDF pages.
// Text is placed on fixed positions; long strings are not wrapped.
type CanvasRenderer struct {
	palette      Palette
	md           *inlineMarkdown
	uncompressed bool
}

// NewCanvasRenderer creates a CanvasRenderer. Honours WithPalette.
func NewCanvasRenderer(opts ...Option) (*CanvasRenderer, error) {
	o := applyOptions(opts)
	if err := o.palette.Validate(); err != nil {
		return nil, err
	}
	return &CanvasRenderer{
		palette:      o.palette,
		md:           newInlineMarkdown(),
		uncompressed: o.uncompressed,
	}, nil
}

// Name implements Renderer.
func (r *CanvasRenderer) Name() string { return RendererCanvas }

// Extension implements Renderer.
func (r *CanvasRenderer) Extension() string { return ExtensionPDF }

// Render implements Renderer.
func (r *CanvasRenderer) Render(ctx context.Context, data *ReportData) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(PageMargin, PageMargin, PageMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(!r.uncompressed)
	r.setMetadata(pdf, data)

	c := &canvas{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), pal: r.colors()}

	r.drawSummaryPage(c, data)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.drawKPIPage(c, data)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCanvasRender, err)
	}
	return buf.Bytes(), nil
}

func (r *CanvasRenderer) setMetadata(pdf *fpdf.Fpdf, data *ReportData) {
	pdf.SetTitle(data.Company+" Executive Report", true)
	pdf.SetAuthor(data.Company, true)
	pdf.SetSubject(data.Period, true)
	pdf.SetCreator("go-execreport", true)

	keywords := []string{"executive report", data.Period}
	if data.DocumentID != "" {
		keywords = append(keywords, data.DocumentID)
	}
	pdf.SetKeywords(strings.Join(keywords, ", "), true)

	if !data.Generated.IsZero() {
		pdf.SetCreationDate(data.Generated)
	}
}

// colors is the palette resolved to RGB.
type colors struct {
	background, panel, panelAlt, border, text rgb
	muted, accent, accentSoft, positive, track rgb
}

func (r *CanvasRenderer) colors() colors {
	p := r.palette
	return colors{
		background: mustHex(p.Background),
		panel:      mustHex(p.Panel),
		panelAlt:   mustHex(p.PanelAlt),
		border:     mustHex(p.Border),
		text:       mustHex(p.Text),
		muted:      mustHex(p.Muted),
		accent:     mustHex(p.Accent),
		accentSoft: mustHex(p.AccentSoft),
		positive:   mustHex(p.Positive),
		track:      mustHex(p.Track),
	}
}

func (r *CanvasRenderer) drawSummaryPage(c *canvas, data *ReportData) {
	c.page()
	c.hero(data.Company+" — Executive Intelligence Report", data.subtitle())

	// Metric cards. The width is always split in three so cards keep their
	// size when fewer metrics are given.
	for i, m := range data.Metrics {
		if i >= cardColumns {
			break
		}
		box := CardRect(i, cardColumns, contentX, contentWidth, cardGutter)
		box.Y, box.H = cardTop, cardHeight
		c.panel(box, c.pal.panel, cardRadius)

		c.text(box.X+6, box.Y+5, box.W-12, 5, m.Label, "", 9, c.pal.muted, "L")
		c.text(box.X+6, box.Y+12, box.W-12, 9, m.Value, "B", 18, c.pal.text, "L")
		if m.Delta != "" {
			fg := c.pal.accent
			if m.Positive() {
				fg = c.pal.positive
			}
			c.chip(box.X+6, box.Y+23, m.Delta, fg)
		}
	}

	// Highlights panel sized to its rows.
	n := 0
	for _, h := range data.Highlights {
		if strings.TrimSpace(h) != "" {
			n++
		}
	}
	panel := Rect{X: contentX, Y: highlightsTop, W: contentWidth, H: highlightsHeading + float64(n)*highlightsRowH + 4}
	c.panel(panel, c.pal.panel, panelRadius)
	c.text(panel.X+InnerPadding, panel.Y+6, panel.W-2*InnerPadding, 6, "Strategic Highlights", "B", 13, c.pal.text, "L")

	row := 0
	for _, h := range data.Highlights {
		if strings.TrimSpace(h) == "" {
			continue
		}
		y := RowY(row, panel.Y+highlightsHeading, highlightsRowH)
		c.text(panel.X+InnerPadding, y, 8, 6, fmt.Sprintf("%d.", row+1), "B", 10, c.pal.accent, "L")
		c.text(panel.X+InnerPadding+8, y, panel.W-2*InnerPadding-8, 6, r.md.Text(h), "", 10, c.pal.muted, "L")
		row++
	}

	c.footer(data)
}

func (r *CanvasRenderer) drawKPIPage(c *canvas, data *ReportData) {
	c.page()
	c.hero("KPI Performance Matrix", "Target attainment across strategic objectives")

	rows := len(data.KPIs)
	noteH := 0.0
	if data.Note != "" {
		noteH = 10
	}
	panel := Rect{X: contentX, Y: kpiTop, W: contentWidth, H: kpiHeading + float64(rows)*kpiRowH + noteH + 4}
	c.panel(panel, c.pal.panel, panelRadius)

	trackX, trackW := kpiTrackX, kpiTrackW

	for i, k := range data.KPIs {
		y := RowY(i, panel.Y+kpiHeading, kpiRowH)
		c.text(trackX, y, trackW-20, 5, k.Label, "", 10, c.pal.muted, "L")
		c.text(trackX+trackW-20, y, 20, 5, fmt.Sprintf("%d%%", k.Percent()), "B", 10, c.pal.text, "R")
		c.bar(trackX, y+7, trackW, k.Score)
	}

	if data.Note != "" {
		y := RowY(rows, panel.Y+kpiHeading, kpiRowH)
		c.text(trackX, y, trackW, 5, "Note: "+r.md.Text(data.Note), "", 9, c.pal.muted, "L")
	}

	c.footer(data)
}

// canvas wraps fpdf with the handful of primitives the report uses.
type canvas struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	pal colors
}

func (c *canvas) fill(col rgb) { c.pdf.SetFillColor(col[0], col[1], col[2]) }
func (c *canvas) draw(col rgb) { c.pdf.SetDrawColor(col[0], col[1], col[2]) }

// page starts a new page painted with the background color.
func (c *canvas) page() {
	c.pdf.AddPage()
	c.fill(c.pal.background)
	c.pdf.Rect(0, 0, PageWidth, PageHeight, "F")
}

func (c *canvas) panel(box Rect, col rgb, radius float64) {
	c.fill(col)
	c.draw(c.pal.border)
	c.pdf.SetLineWidth(0.3)
	c.pdf.RoundedRect(box.X, box.Y, box.W, box.H, radius, "1234", "FD")
}

func (c *canvas) hero(title, subtitle string) {
	box := Rect{X: contentX, Y: heroTop, W: contentWidth, H: heroHeight}
	c.panel(box, c.pal.panelAlt, heroRadius)
	c.text(box.X+InnerPadding, box.Y+8, box.W-2*InnerPadding, 10, title, "B", 18, c.pal.text, "L")
	c.text(box.X+InnerPadding, box.Y+21, box.W-2*InnerPadding, 6, subtitle, "", 9, c.pal.muted, "L")
}

func (c *canvas) text(x, y, w, h float64, s, style string, size float64, col rgb, align string) {
	c.pdf.SetFont("Helvetica", style, size)
	c.pdf.SetTextColor(col[0], col[1], col[2])
	c.pdf.SetXY(x, y)
	c.pdf.CellFormat(w, h, c.tr(s), "", 0, align, false, 0, "")
}

// chip draws a pill-shaped label sized to its text.
func (c *canvas) chip(x, y float64, label string, fg rgb) {
	c.pdf.SetFont("Helvetica", "B", 8)
	w := c.pdf.GetStringWidth(c.tr(label)) + 6
	c.fill(c.pal.accentSoft)
	c.pdf.RoundedRect(x, y, w, 6, 3, "1234", "F")
	c.text(x, y, w, 6, label, "B", 8, fg, "C")
}

// bar draws a KPI track and its fill proportional to score.
func (c *canvas) bar(x, y, width, score float64) {
	radius := kpiTrackH / 2
	c.fill(c.pal.track)
	c.draw(c.pal.border)
	c.pdf.RoundedRect(x, y, width, kpiTrackH, radius, "1234", "FD")

	fw := FillWidth(score, width)
	if fw <= 0 {
		return
	}
	c.fill(c.pal.accent)
	c.pdf.RoundedRect(x, y, fw, kpiTrackH, math.Min(radius, fw/2), "1234", "F")
}

func (c *canvas) footer(data *ReportData) {
	c.text(contentX, footerY, contentWidth/2, 4, "Confidential • "+data.Company, "", 7, c.pal.muted, "L")
	if data.DocumentID != "" {
		c.text(contentX+contentWidth/2, footerY, contentWidth/2, 4, "Document ID: "+data.DocumentID, "", 7, c.pal.border, "R")
	}
}
