// Package plot draws the sine wave shown under a result.
package plot

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/trigcalc/internal/lut"
)

// Highlight reduces a raw angle into [0, 360) without rounding.
func Highlight(angle float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0
	}
	h := math.Mod(angle, 360)
	if h < 0 {
		h += 360
	}
	// Tiny negative angles round up to a full turn.
	if h >= 360 {
		h = 0
	}
	return h
}

// Wave renders one table period as an asciigraph chart. The caption names
// the highlighted angle and the tabled sin at its index.
func Wave(t *lut.Table, angle float64, width, height int) string {
	data := t.SinValues()
	data = append(data, data[0])
	r := t.Evaluate(angle)
	caption := fmt.Sprintf("sin over 0..360°, highlight %.2f° (entry %d) = %s",
		Highlight(angle), r.Index, lut.FormatValue(r.Sin))
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(-1),
		asciigraph.UpperBound(1),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	)
}

// Layout maps degrees and sin values onto a canvas's sub-pixel grid.
type Layout struct {
	W, H int
}

func NewLayout(c *Canvas) Layout {
	return Layout{W: c.Width * 2, H: c.Height * 4}
}

// X maps degrees in [0, 360] to a column.
func (l Layout) X(deg float64) int {
	return int(math.Round(deg / 360 * float64(l.W-1)))
}

// Y maps a value in [-1, 1] to a row, 1 at the top. The curve spans 80%
// of the height around the axis.
func (l Layout) Y(v float64) int {
	mid := float64(l.H-1) / 2
	return int(math.Round(mid - v*mid*0.8))
}

// Braille draws the sine curve, axis, quarter-turn grid columns and a marker
// from the axis to the curve at the highlighted angle.
func Braille(angle float64, cols, rows int) *Canvas {
	c := NewCanvas(cols, rows)
	l := NewLayout(c)
	axis := l.Y(0)

	for x := 0; x < l.W; x += 2 {
		c.Set(x, axis)
	}
	for q := 0; q <= 4; q++ {
		gx := l.X(float64(q) * 90)
		for y := 0; y < l.H; y += 3 {
			c.Set(gx, y)
		}
	}

	px, py := 0, l.Y(0)
	for x := 1; x < l.W; x++ {
		deg := float64(x) / float64(l.W-1) * 360
		y := l.Y(math.Sin(deg * lut.DegToRad))
		c.DrawLine(px, py, x, y)
		px, py = x, y
	}

	h := Highlight(angle)
	hx, hy := l.X(h), l.Y(math.Sin(h*lut.DegToRad))
	c.DrawLine(hx, axis, hx, hy)
	// Mark the point with a small cross.
	c.Set(hx-1, hy)
	c.Set(hx+1, hy)
	c.Set(hx, hy-1)
	c.Set(hx, hy+1)
	return c
}

// Labels returns the degree labels aligned under the braille grid columns.
func Labels(cols int) string {
	line := []rune(strings.Repeat(" ", cols+4))
	l := Layout{W: cols * 2}
	for q := 0; q <= 4; q++ {
		label := fmt.Sprintf("%d°", q*90)
		at := l.X(float64(q)*90) / 2
		if q == 4 {
			at -= len([]rune(label)) - 1
		}
		for i, r := range []rune(label) {
			if at+i >= 0 && at+i < len(line) {
				line[at+i] = r
			}
		}
	}
	return strings.TrimRight(string(line), " ")
}
