// Package analysis characterizes the displayed curves.
//
//   - [Spectrum]: single-sided magnitude spectrum of a sampled curve
//   - [Spectrum.Peak]: dominant non-DC component
//   - [Describe]: min, max and RMS of a curve
//
// # Wavelength Recovery
//
// wave1 has spatial frequency 1/λ, so the spectral peak of any curve recovers
// the wavelength to within one frequency bin:
//
//	spec, _ := analysis.NewSpectrum(curves.Wave1, grid.Spacing())
//	lambda := 1 / spec.Peak().Freq
package analysis
