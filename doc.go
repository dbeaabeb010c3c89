// Package raogrid is an in-memory toolkit for tabulated marine response
// data — complex-valued Response Amplitude Operators stored as amplitude
// and phase over a (wave heading × wave frequency) grid.
//
// 🚀 What is raogrid?
//
//	A small, focused library that gets the physics of RAO interpolation right:
//		• Amplitude and phase interpolated as separate channels
//		  (interpolating complex numbers directly distorts amplitude)
//		• Heading treated as a circular coordinate, continuous across 0°/360°
//		• Flat (constant) extrapolation on the frequency axis
//		• Port/starboard (xz-plane) symmetry expansion with per-component
//		  sign conventions
//		• SQLite persistence of the de-complexified (real/imag) form
//
// ✨ Why choose raogrid?
//
//   - Minimal API, explicit errors, no silent defaults for physics choices
//   - Pure computation core: no locks, no I/O, no hidden state
//   - Every interpolation step is a separate, independently tested transform
//
// Everything is organized under two subpackages:
//
//	rao/      — the response grid: construction, regridding, point lookup,
//	            symmetry, scaling, flattened real/imag round trips
//	raostore/ — SQLite-backed storage for flattened grids
//
// Quick ASCII example:
//
//	         ω →  0.5   1.0   1.5
//	heading  0°  (A,φ) (A,φ) (A,φ)
//	   ↓    90°  (A,φ) (A,φ) (A,φ)
//	       180°  (A,φ) (A,φ) (A,φ)
//
//	one (amplitude, phase) pair per grid cell; queries at any
//	(heading, ω) resolve by channel-separated linear interpolation.
//
// Dive into examples/ for runnable scenarios.
//
//	go get github.com/seakeeping/raogrid/rao
package raogrid
