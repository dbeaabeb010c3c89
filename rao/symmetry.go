package rao

import (
	"math"
)

// ApplySymmetryXZ extends the heading axis with the headings equivalent
// under mirror symmetry about the vessel's xz (centerline) plane: the
// response at heading h also describes heading (-h) mod 360.
//
// For each stored heading whose mirror is absent, the column is cloned at
// the mirror heading with amplitude unchanged. Sign-preserving components
// (Surge, Heave, Pitch) keep the phase as-is; sign-reversing components
// (Sway, Roll, Yaw) store phase -p + π, which equals negating the phase
// vector and rotating it by π. Headings whose mirror already exists are
// skipped, so re-applying the operation is a no-op. The heading axis is
// re-sorted afterwards.
//
// Returns ErrComponentUnset when the grid carries no recognized component,
// since the sign convention can not be determined without one.
// Complexity: O(H×F) time and memory.
func (g *Grid) ApplySymmetryXZ() error {
	class, err := SymmetryOf(g.component)
	if err != nil {
		return err
	}

	present := make(map[float64]struct{}, 2*len(g.headings))
	for _, h := range g.headings {
		present[h] = struct{}{}
	}

	headings := g.headings
	amplitude := g.amplitude
	phase := g.phase
	for i, h := range g.headings {
		mirror := foldHeading(-h)
		if _, ok := present[mirror]; ok {
			continue
		}
		present[mirror] = struct{}{}

		headings = append(headings, mirror)
		amplitude = append(amplitude, append([]float64(nil), g.amplitude[i]...))
		row := append([]float64(nil), g.phase[i]...)
		if class == SignReversing {
			for j := range row {
				row[j] = -row[j] + math.Pi
			}
		}
		phase = append(phase, row)
	}

	g.headings, g.amplitude, g.phase = headings, amplitude, phase
	g.sortHeadings()

	return nil
}
