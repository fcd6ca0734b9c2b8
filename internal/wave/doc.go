// Package wave provides the closed-form model behind the interference view.
//
// Two sinusoids share wavelength and amplitude; the second is shifted by a
// phase offset. Their pointwise sum is the interference curve:
//
//   - [Params]: wavelength, amplitude and phase with slider bounds
//   - [Grid]: the fixed sample positions
//   - [Compute]: evaluates wave1, wave2 and interference over a grid
//
// # Example
//
//	grid := wave.DefaultGrid()
//	curves := wave.Compute(grid, wave.DefaultParams())
//
// All functions are pure. [ComputeInto] reuses the destination buffers so the
// interactive front-ends can recompute on every input event without allocating.
package wave
