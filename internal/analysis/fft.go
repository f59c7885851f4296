package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude of FFT bins 0..n/2 of data.
// Any length is accepted.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	bins := fft.FFTReal(data)
	ps := make([]float64, len(bins)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(bins[i])
	}
	return ps
}

// Dominant returns the strongest bin after DC and its magnitude.
// It returns -1 when ps has no bins past DC.
func Dominant(ps []float64) (int, float64) {
	idx, peak := -1, 0.0
	for i := 1; i < len(ps); i++ {
		if idx < 0 || ps[i] > peak {
			idx, peak = i, ps[i]
		}
	}
	return idx, peak
}

// Purity is the share of spectral magnitude held by the dominant bin.
// A table holding exactly one clean period scores close to 1.
func Purity(ps []float64) float64 {
	idx, peak := Dominant(ps)
	if idx < 0 {
		return 0
	}
	total := 0.0
	for i := 1; i < len(ps); i++ {
		total += ps[i]
	}
	if total == 0 {
		return 0
	}
	return peak / total
}
