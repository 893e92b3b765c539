package execreport

import (
	"fmt"
	"strconv"
	"strings"
)

// Palette holds the report colors as #rrggbb strings, one per role.
// Both renderers draw from the same palette.
type Palette struct {
	Background string
	Panel      string
	PanelAlt   string
	Border     string
	Text       string
	Muted      string
	Accent     string
	AccentSoft string
	Positive   string
	Track      string
}

// DefaultPalette returns the dark executive theme.
func DefaultPalette() Palette {
	return Palette{
		Background: "#0b1020",
		Panel:      "#121a2f",
		PanelAlt:   "#18213b",
		Border:     "#2a3559",
		Text:       "#e8ecf8",
		Muted:      "#a6b1ce",
		Accent:     "#6ee7f9",
		AccentSoft: "#1e5d78",
		Positive:   "#34d399",
		Track:      "#1a2442",
	}
}

// Merge returns p with every non-empty role of override applied.
func (p Palette) Merge(override Palette) Palette {
	pick := func(base, over string) string {
		if over != "" {
			return over
		}
		return base
	}
	return Palette{
		Background: pick(p.Background, override.Background),
		Panel:      pick(p.Panel, override.Panel),
		PanelAlt:   pick(p.PanelAlt, override.PanelAlt),
		Border:     pick(p.Border, override.Border),
		Text:       pick(p.Text, override.Text),
		Muted:      pick(p.Muted, override.Muted),
		Accent:     pick(p.Accent, override.Accent),
		AccentSoft: pick(p.AccentSoft, override.AccentSoft),
		Positive:   pick(p.Positive, override.Positive),
		Track:      pick(p.Track, override.Track),
	}
}

// Validate checks that every role is a #rrggbb color.
func (p Palette) Validate() error {
	for _, c := range []string{
		p.Background, p.Panel, p.PanelAlt, p.Border, p.Text,
		p.Muted, p.Accent, p.AccentSoft, p.Positive, p.Track,
	} {
		if _, err := parseHex(c); err != nil {
			return fmt.Errorf("%w: palette: %v", ErrInvalidReport, err)
		}
	}
	return nil
}

// rgb is a color as 0-255 channels, the form fpdf setters take.
type rgb [3]int

// parseHex converts "#rrggbb" to channels.
func parseHex(s string) (rgb, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 || len(s) != 7 {
		return rgb{}, fmt.Errorf("color %q must be #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return rgb{}, fmt.Errorf("color %q must be #rrggbb", s)
	}
	return rgb{int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)}, nil
}

// mustHex is parseHex for palettes that already passed Validate.
func mustHex(s string) rgb {
	c, err := parseHex(s)
	if err != nil {
		return rgb{}
	}
	return c
}
