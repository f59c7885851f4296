package lut_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trigcalc/internal/lut"
)

var _ = Describe("Table", func() {
	var tbl *lut.Table

	BeforeEach(func() {
		tbl = lut.Build()
	})

	It("matches math.Sin and math.Cos at every degree", func() {
		for d := 0; d < lut.Size; d++ {
			rad := float64(d) * math.Pi / 180
			Expect(tbl.Sin(d)).To(Equal(math.Sin(rad)), "sin at %d", d)
			Expect(tbl.Cos(d)).To(Equal(math.Cos(rad)), "cos at %d", d)
		}
	})

	It("hands out copies of its columns", func() {
		s := tbl.SinValues()
		Expect(s).To(HaveLen(lut.Size))
		s[90] = 42
		Expect(tbl.Sin(90)).To(BeNumerically("~", 1, 1e-12))
		Expect(tbl.CosValues()).To(HaveLen(lut.Size))
	})

	DescribeTable("Index",
		func(angle float64, want int) {
			Expect(lut.Index(angle)).To(Equal(want))
		},
		Entry("zero", 0.0, 0),
		Entry("integer", 45.0, 45),
		Entry("rounds down", 44.4, 44),
		Entry("rounds half away from zero", 44.5, 45),
		Entry("full turn", 360.0, 0),
		Entry("just under a turn rounds up", 359.5, 0),
		Entry("beyond one turn", 725.0, 5),
		Entry("negative", -30.0, 330),
		Entry("negative half", -0.5, 359),
		Entry("negative multiple turns", -750.0, 330),
		Entry("huge", 1e20, int(math.Mod(1e20, 360))),
		Entry("NaN", math.NaN(), 0),
		Entry("+Inf", math.Inf(1), 0),
		Entry("-Inf", math.Inf(-1), 0),
	)

	It("keeps every index inside the table", func() {
		for x := -1000.0; x <= 1000.0; x += 0.37 {
			i := lut.Index(x)
			Expect(i).To(BeNumerically(">=", 0))
			Expect(i).To(BeNumerically("<", lut.Size))
		}
	})

	It("uses the same entry for -30 and 330", func() {
		Expect(tbl.Evaluate(-30)).To(Equal(withAngle(tbl.Evaluate(330), -30)))
	})

	It("evaluates 60 degrees", func() {
		r := tbl.Evaluate(60)
		Expect(r.Index).To(Equal(60))
		Expect(r.Sin).To(BeNumerically("~", 0.866025, 1e-6))
		Expect(r.Cos).To(BeNumerically("~", 0.5, 1e-12))
		Expect(r.Tan).To(BeNumerically("~", 1.732051, 1e-6))
	})

	It("reports +Inf tangent at 90 degrees", func() {
		r := tbl.Evaluate(90)
		Expect(math.Abs(r.Cos)).To(BeNumerically("<", 1e-10))
		Expect(math.IsInf(r.Tan, 1)).To(BeTrue())
	})

	It("reports -Inf tangent at 270 degrees", func() {
		r := tbl.Evaluate(270)
		Expect(math.Abs(r.Cos)).To(BeNumerically("<", 1e-10))
		Expect(r.Sin).To(BeNumerically("~", -1, 1e-12))
		Expect(math.IsInf(r.Tan, -1)).To(BeTrue())
	})

	It("divides away from the asymptotes", func() {
		Expect(lut.Tangent(0.5, 0.25)).To(Equal(2.0))
		Expect(math.IsInf(lut.Tangent(0, 0), 1)).To(BeTrue())
		Expect(math.IsInf(lut.Tangent(-0.1, 1e-11), -1)).To(BeTrue())
	})
})

var _ = Describe("ParseAngle", func() {
	DescribeTable("accepts real numbers",
		func(in string, want float64) {
			v, err := lut.ParseAngle(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(want))
		},
		Entry("integer", "60", 60.0),
		Entry("signed fraction", "-12.25", -12.25),
		Entry("plus sign", "+7", 7.0),
		Entry("surrounding space", "  12.5 ", 12.5),
		Entry("exponent", "1e2", 100.0),
	)

	DescribeTable("rejects everything else",
		func(in string) {
			_, err := lut.ParseAngle(in)
			Expect(err).To(MatchError(lut.ErrInvalidAngleInput))

			var ie *lut.InputError
			Expect(errors.As(err, &ie)).To(BeTrue())
			Expect(ie.Input).To(Equal(in))
			Expect(err.Error()).To(Equal("please enter a valid angle value"))
		},
		Entry("letters", "abc"),
		Entry("empty", ""),
		Entry("blank", "   "),
		Entry("trailing junk", "12deg"),
		Entry("NaN", "NaN"),
		Entry("infinity", "inf"),
	)
})

var _ = Describe("Range", func() {
	It("swaps reversed ends", func() {
		Expect(lut.Range{Start: 200, End: 100}.Normalize()).To(Equal(lut.Range{Start: 100, End: 200}.Normalize()))
		Expect(lut.Range{Start: 120, End: 100}.Normalize()).To(Equal(lut.Range{Start: 100, End: 120}))
	})

	It("caps the span at 50 past the start", func() {
		r := lut.Range{Start: 200, End: 100}.Normalize()
		Expect(r).To(Equal(lut.Range{Start: 100, End: 150}))
		Expect(r.Len()).To(Equal(51))
	})

	It("clamps into the table", func() {
		Expect(lut.Range{Start: -5, End: 400}.Normalize()).To(Equal(lut.Range{Start: 0, End: 50}))
		Expect(lut.Range{Start: 400, End: 400}.Normalize()).To(Equal(lut.Range{Start: 359, End: 359}))
	})

	It("lists entries with guarded tangents", func() {
		entries := lut.Build().Entries(lut.Range{Start: 91, End: 89})
		Expect(entries).To(HaveLen(3))
		Expect(entries[0].Degree).To(Equal(89))
		Expect(math.IsInf(entries[1].Tan, 1)).To(BeTrue())
		Expect(entries[2].Tan).To(BeNumerically("<", 0))
	})
})

var _ = Describe("FormatValue", func() {
	It("uses six decimals", func() {
		Expect(lut.FormatValue(math.Sqrt(3))).To(Equal("1.732051"))
		Expect(lut.FormatValue(-0.5)).To(Equal("-0.500000"))
	})

	It("renders infinities as glyphs", func() {
		Expect(lut.FormatValue(math.Inf(1))).To(Equal("∞"))
		Expect(lut.FormatValue(math.Inf(-1))).To(Equal("-∞"))
	})

	It("labels result lines with the submitted text", func() {
		lines := lut.Build().Evaluate(90).Lines("90")
		Expect(lines).To(Equal([]string{
			"sin(90°) = 1.000000",
			"cos(90°) = 0.000000",
			"tan(90°) = ∞",
		}))
	})
})

func withAngle(r lut.Result, angle float64) lut.Result {
	r.Angle = angle
	return r
}
