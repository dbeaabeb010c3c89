package rao

import (
	"fmt"
	"math"
	"sort"
)

// Grid is a dense (heading × frequency) table of amplitude and phase values.
// Axes are kept sorted ascending and duplicate-free; every mutating operation
// rebuilds the table wholesale, so callers never observe a partially
// regridded state. The zero Grid is not usable; construct with New or FromParts.
type Grid struct {
	headings    []float64   // degrees, in [0, 360), sorted ascending
	frequencies []float64   // rad/s, non-negative, sorted ascending
	amplitude   [][]float64 // [headingIdx][frequencyIdx], ≥ 0
	phase       [][]float64 // [headingIdx][frequencyIdx], radians
	component   Component
}

// New constructs a Grid from parallel arrays indexed [heading][frequency].
// The input is deep-copied and both axes are sorted (rows and columns follow
// their axis values). component may be ComponentUnset; it is then required
// only before ApplySymmetryXZ.
//
// Returns ErrEmptyAxis, ErrShapeMismatch, ErrNaNValue, ErrHeadingRange,
// ErrNegativeFrequency, ErrDuplicateAxisValue, or ErrNegativeAmplitude on
// invalid input.
// Complexity: O(H×F + H·logH + F·logF) time, O(H×F) memory.
func New(headings, frequencies []float64, amplitude, phase [][]float64, component Component) (*Grid, error) {
	if err := checkHeadingAxis(headings); err != nil {
		return nil, err
	}
	if err := checkFrequencyAxis(frequencies); err != nil {
		return nil, err
	}
	if err := checkShape(len(headings), len(frequencies), amplitude); err != nil {
		return nil, err
	}
	if err := checkShape(len(headings), len(frequencies), phase); err != nil {
		return nil, err
	}
	if component != ComponentUnset {
		if _, err := SymmetryOf(component); err != nil {
			return nil, err
		}
	}

	g := &Grid{
		headings:    append([]float64(nil), headings...),
		frequencies: append([]float64(nil), frequencies...),
		amplitude:   copyMatrix(amplitude),
		phase:       copyMatrix(phase),
		component:   component,
	}
	for i, row := range g.amplitude {
		for j, a := range row {
			if math.IsNaN(a) || math.IsNaN(g.phase[i][j]) {
				return nil, ErrNaNValue
			}
			if a < 0 {
				return nil, ErrNegativeAmplitude
			}
		}
	}
	g.sortHeadings()
	g.sortFrequencies()

	return g, nil
}

// NumFrequencies returns the number of frequencies in the grid.
func (g *Grid) NumFrequencies() int { return len(g.frequencies) }

// NumHeadings returns the number of headings (wave directions) in the grid.
func (g *Grid) NumHeadings() int { return len(g.headings) }

// Headings returns a copy of the heading axis in degrees, sorted ascending.
func (g *Grid) Headings() []float64 {
	return append([]float64(nil), g.headings...)
}

// Frequencies returns a copy of the frequency axis in rad/s, sorted ascending.
func (g *Grid) Frequencies() []float64 {
	return append([]float64(nil), g.frequencies...)
}

// Component returns the declared response component (ComponentUnset if none).
func (g *Grid) Component() Component { return g.component }

// SetComponent declares the response component of the grid.
// Returns ErrComponentUnset for tags outside the six recognized values;
// explicitly resetting to ComponentUnset is allowed.
func (g *Grid) SetComponent(c Component) error {
	if c != ComponentUnset {
		if _, err := SymmetryOf(c); err != nil {
			return err
		}
	}
	g.component = c

	return nil
}

// Channel returns the underlying slab of a stored real-valued channel,
// indexed [headingIdx][frequencyIdx]. Mutating the returned slices mutates
// the grid. For the derived complex channel use ChannelComplex or PhaseVector.
// Returns ErrUnknownChannel for anything but ChannelAmplitude and ChannelPhase.
func (g *Grid) Channel(name ChannelName) ([][]float64, error) {
	switch name {
	case ChannelAmplitude:
		return g.amplitude, nil
	case ChannelPhase:
		return g.phase, nil
	default:
		return nil, ErrUnknownChannel
	}
}

// ChannelComplex returns a derived complex-valued channel by name.
// Only ChannelPhaseVector is recognized; the slab is freshly computed on
// every call and is never cached on the grid.
func (g *Grid) ChannelComplex(name ChannelName) ([][]complex128, error) {
	if name != ChannelPhaseVector {
		return nil, ErrUnknownChannel
	}

	return g.PhaseVector(), nil
}

// PhaseVector returns exp(i·phase) for every grid cell: a unit-magnitude
// complex number whose angle equals the stored phase. This is the
// interpolation-safe proxy for circular phase values; amplitude never
// enters it. Recovering the phase as atan2(imag, real) reproduces it
// modulo 2π up to floating-point epsilon.
// Complexity: O(H×F).
func (g *Grid) PhaseVector() [][]complex128 {
	return phaseVectorOf(g.phase)
}

// Scale multiplies the amplitude channel elementwise by factor.
// Returns ErrNegativeScale for factor < 0 (amplitude can not be negative;
// an opposite response is a phase change of pi) and ErrNaNValue for NaN.
func (g *Grid) Scale(factor float64) error {
	if math.IsNaN(factor) {
		return ErrNaNValue
	}
	if factor < 0 {
		return ErrNegativeScale
	}
	for _, row := range g.amplitude {
		for j := range row {
			row[j] *= factor
		}
	}

	return nil
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		headings:    append([]float64(nil), g.headings...),
		frequencies: append([]float64(nil), g.frequencies...),
		amplitude:   copyMatrix(g.amplitude),
		phase:       copyMatrix(g.phase),
		component:   g.component,
	}
}

// String returns a compact one-line summary of the grid.
func (g *Grid) String() string {
	return fmt.Sprintf("rao.Grid{component: %s, headings: %d, frequencies: %d}",
		g.component, len(g.headings), len(g.frequencies))
}

// Parts flattens the grid into two real-valued arrays over the same
// (heading, frequency) cells:
//
//	re = amplitude·cos(phase)
//	im = amplitude·sin(phase)
//
// This is the de-complexified form for persistence formats that can not
// store complex numbers. FromParts inverts it exactly up to floating-point
// precision.
func (g *Grid) Parts() (re, im [][]float64) {
	re = make([][]float64, len(g.headings))
	im = make([][]float64, len(g.headings))
	for i := range g.headings {
		re[i] = make([]float64, len(g.frequencies))
		im[i] = make([]float64, len(g.frequencies))
		for j := range g.frequencies {
			a, p := g.amplitude[i][j], g.phase[i][j]
			re[i][j] = a * math.Cos(p)
			im[i][j] = a * math.Sin(p)
		}
	}

	return re, im
}

// FromParts reconstructs a Grid from the flattened real/imag arrays
// produced by Parts: amplitude = |re + i·im|, phase = atan2(im, re).
// Validation matches New.
func FromParts(headings, frequencies []float64, re, im [][]float64, component Component) (*Grid, error) {
	if err := checkShape(len(headings), len(frequencies), re); err != nil {
		return nil, err
	}
	if err := checkShape(len(headings), len(frequencies), im); err != nil {
		return nil, err
	}
	amplitude := make([][]float64, len(headings))
	phase := make([][]float64, len(headings))
	for i := range headings {
		amplitude[i] = make([]float64, len(frequencies))
		phase[i] = make([]float64, len(frequencies))
		for j := range frequencies {
			amplitude[i][j] = math.Hypot(re[i][j], im[i][j])
			phase[i][j] = math.Atan2(im[i][j], re[i][j])
		}
	}

	return New(headings, frequencies, amplitude, phase, component)
}

// SumExcitation combines a Froude–Krylov grid and a diffraction grid into a
// total excitation grid by complex summation per cell, then converts back to
// amplitude and phase. Diffraction solvers that do not emit a combined
// excitation field emit exactly these two addends.
// Both grids must share identical axes and component tag (ErrAxisMismatch).
// Complexity: O(H×F).
func SumExcitation(froudeKrylov, diffraction *Grid) (*Grid, error) {
	if !sameAxes(froudeKrylov, diffraction) || froudeKrylov.component != diffraction.component {
		return nil, ErrAxisMismatch
	}
	amplitude := make([][]float64, len(froudeKrylov.headings))
	phase := make([][]float64, len(froudeKrylov.headings))
	for i := range froudeKrylov.headings {
		amplitude[i] = make([]float64, len(froudeKrylov.frequencies))
		phase[i] = make([]float64, len(froudeKrylov.frequencies))
		for j := range froudeKrylov.frequencies {
			fa, fp := froudeKrylov.amplitude[i][j], froudeKrylov.phase[i][j]
			da, dp := diffraction.amplitude[i][j], diffraction.phase[i][j]
			re := fa*math.Cos(fp) + da*math.Cos(dp)
			im := fa*math.Sin(fp) + da*math.Sin(dp)
			amplitude[i][j] = math.Hypot(re, im)
			phase[i][j] = math.Atan2(im, re)
		}
	}

	return New(froudeKrylov.headings, froudeKrylov.frequencies, amplitude, phase, froudeKrylov.component)
}

// ----- internal helpers -----

// phaseVectorOf computes exp(i·p) elementwise for a phase matrix.
func phaseVectorOf(phase [][]float64) [][]complex128 {
	out := make([][]complex128, len(phase))
	for i, row := range phase {
		out[i] = make([]complex128, len(row))
		for j, p := range row {
			out[i][j] = complex(math.Cos(p), math.Sin(p))
		}
	}

	return out
}

func copyMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}

	return out
}

func checkShape(nHeadings, nFrequencies int, m [][]float64) error {
	if len(m) != nHeadings {
		return ErrShapeMismatch
	}
	for _, row := range m {
		if len(row) != nFrequencies {
			return ErrShapeMismatch
		}
	}

	return nil
}

func checkHeadingAxis(headings []float64) error {
	if len(headings) == 0 {
		return ErrEmptyAxis
	}
	for _, h := range headings {
		if math.IsNaN(h) {
			return ErrNaNValue
		}
		if h < 0 || h >= 360 {
			return ErrHeadingRange
		}
	}

	return checkDistinct(headings)
}

func checkFrequencyAxis(frequencies []float64) error {
	if len(frequencies) == 0 {
		return ErrEmptyAxis
	}
	for _, f := range frequencies {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return ErrNaNValue
		}
		if f < 0 {
			return ErrNegativeFrequency
		}
	}

	return checkDistinct(frequencies)
}

// checkDistinct rejects duplicate axis values using exact float64 equality,
// the same contract the point-insertion duplicate check uses.
func checkDistinct(axis []float64) error {
	seen := make(map[float64]struct{}, len(axis))
	for _, v := range axis {
		if _, dup := seen[v]; dup {
			return ErrDuplicateAxisValue
		}
		seen[v] = struct{}{}
	}

	return nil
}

// sortHeadings sorts the heading axis ascending, permuting rows with it.
func (g *Grid) sortHeadings() {
	idx := sortedIndex(g.headings)
	g.headings = permute(g.headings, idx)
	amp := make([][]float64, len(idx))
	ph := make([][]float64, len(idx))
	for k, i := range idx {
		amp[k] = g.amplitude[i]
		ph[k] = g.phase[i]
	}
	g.amplitude, g.phase = amp, ph
}

// sortFrequencies sorts the frequency axis ascending, permuting columns with it.
func (g *Grid) sortFrequencies() {
	idx := sortedIndex(g.frequencies)
	g.frequencies = permute(g.frequencies, idx)
	for i := range g.amplitude {
		g.amplitude[i] = permute(g.amplitude[i], idx)
		g.phase[i] = permute(g.phase[i], idx)
	}
}

// sortedIndex returns the permutation that sorts values ascending.
func sortedIndex(values []float64) []int {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })

	return idx
}

func permute(values []float64, idx []int) []float64 {
	out := make([]float64, len(values))
	for k, i := range idx {
		out[k] = values[i]
	}

	return out
}

func sameAxes(a, b *Grid) bool {
	if len(a.headings) != len(b.headings) || len(a.frequencies) != len(b.frequencies) {
		return false
	}
	for i := range a.headings {
		if a.headings[i] != b.headings[i] {
			return false
		}
	}
	for j := range a.frequencies {
		if a.frequencies[j] != b.frequencies[j] {
			return false
		}
	}

	return true
}
