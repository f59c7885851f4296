package lut

import "math"

const (
	// Size is the number of table entries, one per integer degree.
	Size = 360

	// DegToRad converts degrees to radians.
	DegToRad = math.Pi / 180

	// AsymptoteEpsilon is the |cos| below which tangent is reported as infinite.
	AsymptoteEpsilon = 1e-10
)

// Table holds precomputed sin/cos values for integer degrees 0..359.
// A Table is immutable after Build and safe to share.
type Table struct {
	sin [Size]float64
	cos [Size]float64
}

// Build computes the lookup table.
func Build() *Table {
	t := &Table{}
	for d := 0; d < Size; d++ {
		rad := float64(d) * DegToRad
		t.sin[d] = math.Sin(rad)
		t.cos[d] = math.Cos(rad)
	}
	return t
}

// Sin returns the entry for an already reduced degree index.
func (t *Table) Sin(deg int) float64 { return t.sin[deg] }

// Cos returns the entry for an already reduced degree index.
func (t *Table) Cos(deg int) float64 { return t.cos[deg] }

// SinValues returns a copy of the sin column.
func (t *Table) SinValues() []float64 {
	out := make([]float64, Size)
	copy(out, t.sin[:])
	return out
}

// CosValues returns a copy of the cos column.
func (t *Table) CosValues() []float64 {
	out := make([]float64, Size)
	copy(out, t.cos[:])
	return out
}

// Result is the outcome of evaluating one angle.
type Result struct {
	Angle float64
	Index int
	Sin   float64
	Cos   float64
	Tan   float64
}

// Index rounds angle half away from zero and reduces it into [0, Size).
// Non-finite angles map to 0.
func Index(angle float64) int {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0
	}
	// Reduce in float64 first so huge magnitudes never overflow int.
	r := math.Mod(math.Round(angle), Size)
	if r < 0 {
		r += Size
	}
	return int(r) % Size
}

// Tangent derives tan from a sin/cos pair, returning a signed infinity
// near the vertical asymptotes instead of dividing.
func Tangent(sin, cos float64) float64 {
	if math.Abs(cos) < AsymptoteEpsilon {
		if sin >= 0 {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	return sin / cos
}

// Evaluate looks up sin, cos and tan for angle in degrees.
func (t *Table) Evaluate(angle float64) Result {
	i := Index(angle)
	s, c := t.sin[i], t.cos[i]
	return Result{
		Angle: angle,
		Index: i,
		Sin:   s,
		Cos:   c,
		Tan:   Tangent(s, c),
	}
}
