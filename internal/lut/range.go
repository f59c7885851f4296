package lut

import (
	"fmt"
	"math"
)

// MaxSpan is the largest End-Start distance a listing may cover.
const MaxSpan = 50

// Range is an inclusive span of integer degrees.
type Range struct {
	Start int
	End   int
}

// Normalize clamps both ends into the table, orders them and caps the span.
func (r Range) Normalize() Range {
	r.Start = clampDeg(r.Start)
	r.End = clampDeg(r.End)
	if r.Start > r.End {
		r.Start, r.End = r.End, r.Start
	}
	if r.End-r.Start > MaxSpan {
		r.End = r.Start + MaxSpan
	}
	return r
}

// Len is the number of entries in the normalized range.
func (r Range) Len() int {
	n := r.Normalize()
	return n.End - n.Start + 1
}

func clampDeg(d int) int {
	if d < 0 {
		return 0
	}
	if d > Size-1 {
		return Size - 1
	}
	return d
}

// Entry is one row of a table listing.
type Entry struct {
	Degree int
	Sin    float64
	Cos    float64
	Tan    float64
}

// Entries lists the table rows covered by r after normalization.
func (t *Table) Entries(r Range) []Entry {
	r = r.Normalize()
	out := make([]Entry, 0, r.End-r.Start+1)
	for d := r.Start; d <= r.End; d++ {
		s, c := t.sin[d], t.cos[d]
		out = append(out, Entry{Degree: d, Sin: s, Cos: c, Tan: Tangent(s, c)})
	}
	return out
}

// FormatValue renders v with 6 decimals, or an infinity glyph.
func FormatValue(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	return fmt.Sprintf("%.6f", v)
}

// Lines renders a result as the three labeled lines shown to the user.
// input is the angle text as the user typed it.
func (r Result) Lines(input string) []string {
	return []string{
		fmt.Sprintf("sin(%s°) = %s", input, FormatValue(r.Sin)),
		fmt.Sprintf("cos(%s°) = %s", input, FormatValue(r.Cos)),
		fmt.Sprintf("tan(%s°) = %s", input, FormatValue(r.Tan)),
	}
}
