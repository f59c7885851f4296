// Package analysis inspects the lookup table in the frequency domain.
//
//   - [PowerSpectrum]: FFT magnitudes of a real series
//   - [Dominant]: strongest non-DC bin
//   - [Purity]: how much of the spectrum that bin holds
//
// The sin column of the table covers exactly one period, so its spectrum
// peaks at bin 1:
//
//	ps := analysis.PowerSpectrum(tbl.SinValues())
//	bin, _ := analysis.Dominant(ps) // 1
package analysis
