package rao

import (
	"math"
	"sort"
)

// RegridFrequencies resamples the frequency axis to exactly targets (sorted
// ascending), leaving the heading axis unchanged. Targets may arrive in any
// order and may lie outside the stored range: out-of-range values are served
// by duplicating the nearest boundary column first (flat extrapolation, a
// deliberate simplification rather than a physical model), so interpolation
// itself never extrapolates.
//
// Amplitude and phase are interpolated as independent channels; phase travels
// through the unit-magnitude phase vector so circular values stay continuous.
//
// Returns ErrEmptyAxis, ErrNaNValue, ErrNegativeFrequency, or
// ErrDuplicateAxisValue on invalid targets; the grid is untouched on error.
// Complexity: O(H×(F + T·logF)) time, O(H×T) memory.
func (g *Grid) RegridFrequencies(targets []float64) error {
	ts, err := checkFrequencyTargets(targets)
	if err != nil {
		return err
	}

	axis, amp, ph := g.extendFrequencyRange(ts[0], ts[len(ts)-1])
	vec := phaseVectorOf(ph)

	nH := len(g.headings)
	newAmp := make([][]float64, nH)
	newPh := make([][]float64, nH)
	for i := 0; i < nH; i++ {
		newAmp[i] = make([]float64, len(ts))
		newPh[i] = make([]float64, len(ts))
		for k, x := range ts {
			lo, hi, t := lerpWeights(axis, x)
			newAmp[i][k] = (1-t)*amp[i][lo] + t*amp[i][hi]
			v := complex(1-t, 0)*vec[i][lo] + complex(t, 0)*vec[i][hi]
			newPh[i][k] = math.Atan2(imag(v), real(v))
		}
	}

	g.frequencies, g.amplitude, g.phase = ts, newAmp, newPh

	return nil
}

// RegridHeadings resamples the heading axis to exactly targets (folded into
// [0, 360) and sorted ascending), leaving the frequency axis unchanged.
// Headings are circular: before interpolating, boundary rows are duplicated
// at h ± 360° so the interpolant is defined across the wrap — a grid with
// rows at 0° and 350° serves a 355° query from the 350° row and a virtual
// 360° copy of the 0° row.
//
// Returns ErrEmptyAxis, ErrNaNValue, or ErrDuplicateAxisValue (duplicates
// are detected after folding); the grid is untouched on error.
// Complexity: O(F×(H + T·logH)) time, O(T×F) memory.
func (g *Grid) RegridHeadings(targets []float64) error {
	ts, err := checkHeadingTargets(targets)
	if err != nil {
		return err
	}

	axis, amp, ph := g.expandHeadingPeriod()
	vec := phaseVectorOf(ph)

	nF := len(g.frequencies)
	newAmp := make([][]float64, len(ts))
	newPh := make([][]float64, len(ts))
	for k, x := range ts {
		lo, hi, t := lerpWeights(axis, x)
		newAmp[k] = make([]float64, nF)
		newPh[k] = make([]float64, nF)
		for j := 0; j < nF; j++ {
			newAmp[k][j] = (1-t)*amp[lo][j] + t*amp[hi][j]
			v := complex(1-t, 0)*vec[lo][j] + complex(t, 0)*vec[hi][j]
			newPh[k][j] = math.Atan2(imag(v), real(v))
		}
	}

	g.headings, g.amplitude, g.phase = ts, newAmp, newPh

	return nil
}

// AddFrequency inserts omega [rad/s] into the grid by interpolation.
// Presence is decided by exact float64 equality against the stored axis —
// values that differ only by rounding are treated as new columns. This is a
// known precision sensitivity, kept for a stable, predictable contract.
// No-op when omega is already present.
func (g *Grid) AddFrequency(omega float64) error {
	if math.IsNaN(omega) || math.IsInf(omega, 0) {
		return ErrNaNValue
	}
	if omega < 0 {
		return ErrNegativeFrequency
	}
	for _, f := range g.frequencies {
		if f == omega {
			return nil
		}
	}

	return g.RegridFrequencies(append(g.Frequencies(), omega))
}

// AddHeading inserts heading [deg] into the grid by interpolation.
// The heading is folded into [0, 360) first; presence is decided by exact
// float64 equality against the stored axis. No-op when already present.
func (g *Grid) AddHeading(heading float64) error {
	if math.IsNaN(heading) || math.IsInf(heading, 0) {
		return ErrNaNValue
	}
	h := foldHeading(heading)
	for _, v := range g.headings {
		if v == h {
			return nil
		}
	}

	return g.RegridHeadings(append(g.Headings(), h))
}

// Value returns the complex response amplitude·exp(i·phase) at the requested
// (heading [deg], omega [rad/s]). If the point is not yet on the grid, the
// corresponding heading and frequency are first added by linear interpolation;
// the two insertions are order-independent because each interpolates along
// its own axis only. Amplitude and phase direction are recombined into a
// single complex number only here, at the point of final output.
func (g *Grid) Value(heading, omega float64) (complex128, error) {
	if err := g.AddHeading(heading); err != nil {
		return 0, err
	}
	if err := g.AddFrequency(omega); err != nil {
		return 0, err
	}

	i := sort.SearchFloat64s(g.headings, foldHeading(heading))
	j := sort.SearchFloat64s(g.frequencies, omega)
	a, p := g.amplitude[i][j], g.phase[i][j]

	return complex(a*math.Cos(p), a*math.Sin(p)), nil
}

// ----- boundary expansion (step 1 of each regrid) -----

// extendFrequencyRange returns the frequency axis and channel matrices,
// with the lowest-frequency column duplicated at lo and/or the
// highest-frequency column duplicated at hi when the targets reach outside
// the stored range. The grid itself is not modified.
func (g *Grid) extendFrequencyRange(lo, hi float64) (axis []float64, amp, ph [][]float64) {
	first, last := g.frequencies[0], g.frequencies[len(g.frequencies)-1]

	axis = make([]float64, 0, len(g.frequencies)+2)
	if lo < first {
		axis = append(axis, lo)
	}
	axis = append(axis, g.frequencies...)
	if hi > last {
		axis = append(axis, hi)
	}

	amp = make([][]float64, len(g.headings))
	ph = make([][]float64, len(g.headings))
	for i := range g.headings {
		amp[i] = make([]float64, 0, len(axis))
		ph[i] = make([]float64, 0, len(axis))
		if lo < first {
			amp[i] = append(amp[i], g.amplitude[i][0])
			ph[i] = append(ph[i], g.phase[i][0])
		}
		amp[i] = append(amp[i], g.amplitude[i]...)
		ph[i] = append(ph[i], g.phase[i]...)
		if hi > last {
			amp[i] = append(amp[i], g.amplitude[i][len(g.frequencies)-1])
			ph[i] = append(ph[i], g.phase[i][len(g.frequencies)-1])
		}
	}

	return axis, amp, ph
}

// expandHeadingPeriod returns the heading axis and channel matrices extended
// to cover a full period: the highest-heading row is duplicated at h-360 and
// the lowest-heading row at h+360, so linear interpolation over [0, 360) never
// crosses an undefined gap at the wrap point. The grid itself is not modified.
func (g *Grid) expandHeadingPeriod() (axis []float64, amp, ph [][]float64) {
	n := len(g.headings)

	axis = make([]float64, 0, n+2)
	axis = append(axis, g.headings[n-1]-360)
	axis = append(axis, g.headings...)
	axis = append(axis, g.headings[0]+360)

	amp = make([][]float64, 0, n+2)
	ph = make([][]float64, 0, n+2)
	amp = append(amp, g.amplitude[n-1])
	ph = append(ph, g.phase[n-1])
	amp = append(amp, g.amplitude...)
	ph = append(ph, g.phase...)
	amp = append(amp, g.amplitude[0])
	ph = append(ph, g.phase[0])

	return axis, amp, ph
}

// ----- interpolation (step 2 of each regrid) -----

// lerpWeights locates x on a sorted axis and returns the bracketing indices
// with the interpolation weight t in [0, 1]: value = (1-t)·v[lo] + t·v[hi].
// Exact axis hits return lo == hi with t = 0, so stored values are reproduced
// bit-for-bit. Out-of-range x clamps to the nearest boundary (callers expand
// the axis first, so clamping is a safety net, not a policy).
func lerpWeights(axis []float64, x float64) (lo, hi int, t float64) {
	n := len(axis)
	i := sort.SearchFloat64s(axis, x)
	switch {
	case i == 0:
		return 0, 0, 0
	case i == n:
		return n - 1, n - 1, 0
	case axis[i] == x:
		return i, i, 0
	}
	lo = i - 1
	t = (x - axis[lo]) / (axis[i] - axis[lo])

	return lo, i, t
}

// ----- target validation -----

// checkFrequencyTargets validates and sorts a copy of the target axis.
func checkFrequencyTargets(targets []float64) ([]float64, error) {
	if len(targets) == 0 {
		return nil, ErrEmptyAxis
	}
	ts := append([]float64(nil), targets...)
	for _, x := range ts {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, ErrNaNValue
		}
		if x < 0 {
			return nil, ErrNegativeFrequency
		}
	}
	if err := checkDistinct(ts); err != nil {
		return nil, err
	}
	sort.Float64s(ts)

	return ts, nil
}

// checkHeadingTargets folds targets into [0, 360), validates, and sorts a copy.
func checkHeadingTargets(targets []float64) ([]float64, error) {
	if len(targets) == 0 {
		return nil, ErrEmptyAxis
	}
	ts := make([]float64, len(targets))
	for k, x := range targets {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, ErrNaNValue
		}
		ts[k] = foldHeading(x)
	}
	if err := checkDistinct(ts); err != nil {
		return nil, err
	}
	sort.Float64s(ts)

	return ts, nil
}

// foldHeading maps any finite heading into [0, 360).
func foldHeading(h float64) float64 {
	f := math.Mod(h, 360)
	if f < 0 {
		f += 360
	}

	return f
}
