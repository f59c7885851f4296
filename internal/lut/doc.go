// Package lut provides the degree lookup table behind the calculator.
//
// The table holds sin and cos for each integer degree 0..359 and is built
// once per process:
//
//   - [Build]: computes the table
//   - [Table.Evaluate]: rounds an angle, reduces it into [0, 360) and looks it up
//   - [Tangent]: sin/cos with a signed-infinity guard near the asymptotes
//   - [ParseAngle]: the text boundary, failing with [ErrInvalidAngleInput]
//   - [Table.Entries]: rows for a clamped degree [Range]
//
// # Example
//
//	tbl := lut.Build()
//	deg, err := lut.ParseAngle("60")
//	if err != nil {
//	    return err
//	}
//	r := tbl.Evaluate(deg) // r.Sin ≈ 0.866025, r.Cos = 0.5
//
// # Thread Safety
//
// A [Table] is never mutated after [Build]; share it freely.
package lut
