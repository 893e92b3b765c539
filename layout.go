package execreport

import "math"

// A4 portrait geometry in millimetres.
const (
	PageWidth    = 210.0
	PageHeight   = 297.0
	PageMargin   = 14.0
	InnerPadding = 8.0
)

// Percent returns score as a whole percentage, rounding half away from zero.
// 0.84 -> 84, 0.005 -> 1.
func Percent(score float64) int {
	return int(math.Round(score * 100))
}

// FillWidth returns the filled length of a bar of length track for score.
// Scores are clamped to [0,1], so the fill never leaves the track.
func FillWidth(score, track float64) float64 {
	if math.IsNaN(score) {
		return 0
	}
	return track * math.Max(0, math.Min(1, score))
}

// Rect is an axis-aligned box in page coordinates (origin top-left).
type Rect struct {
	X, Y, W, H float64
}

// CardRect returns the horizontal span of card i when width is split into
// n equal cards separated by gutter. Only X and W are set.
func CardRect(i, n int, x, width, gutter float64) Rect {
	if n <= 0 {
		return Rect{X: x}
	}
	w := (width - float64(n-1)*gutter) / float64(n)
	return Rect{X: x + float64(i)*(w+gutter), W: w}
}

// RowY returns the top edge of row i in a stack starting at top.
// Rows grow downward.
func RowY(i int, top, rowHeight float64) float64 {
	return top + float64(i)*rowHeight
}
