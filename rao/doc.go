// Package rao stores and resamples Response Amplitude Operators: tabulated
// complex-valued marine responses kept as amplitude [any unit] and phase
// [radians] over a (wave heading [deg] × angular frequency [rad/s]) grid.
//
// What:
//
//   - Grid holds a dense rectangle of amplitude/phase values with ordered,
//     duplicate-free heading and frequency axes and an optional Component tag.
//   - RegridFrequencies / RegridHeadings resample either axis by linear
//     interpolation, keeping amplitude and phase physically separate:
//     phase travels through a unit-magnitude complex "phase vector"
//     (exp(i·phase)) so that interpolation never shrinks amplitude.
//   - Headings are circular modulo 360°: boundary columns are duplicated at
//     h ± 360° before interpolating, so a query at 359° between stored 350°
//     and 0° columns is continuous across the wrap.
//   - Frequencies outside the stored range are served by duplicating the
//     nearest boundary column (flat extrapolation) — a deliberate
//     simplification, not a physical model.
//   - ApplySymmetryXZ extends a one-sided heading grid using port/starboard
//     symmetry; Sway/Roll/Yaw mirror with a sign flip (phase -p+π),
//     Surge/Heave/Pitch mirror unchanged.
//   - Value inserts the queried (heading, ω) point by interpolation if
//     absent, then returns amplitude·exp(i·phase) as one complex sample.
//
// Why:
//
//   - Motion RAOs from frequency-domain response calculations.
//   - Force/moment RAOs from diffraction analysis.
//   - Response spectra with relative phase angles.
//
// Complexity:
//
//   - Regridding:      O(H×F) time and memory per call (H headings, F frequencies).
//   - Value:           O(H×F) worst case (two regrids), O(log H + log F) when present.
//   - ApplySymmetryXZ: O(H×F) time and memory.
//
// Errors:
//
//   - ErrShapeMismatch: amplitude/phase arrays disagree with the axes.
//   - ErrDuplicateAxisValue: repeated heading or frequency values.
//   - ErrHeadingRange / ErrNegativeFrequency / ErrNaNValue: invalid axis values.
//   - ErrNegativeAmplitude / ErrNegativeScale: amplitude must stay ≥ 0.
//   - ErrComponentUnset: symmetry requested without a recognized component.
//   - ErrUnknownChannel: channel access with an unrecognized name.
//   - ErrAxisMismatch: combining grids whose axes or components differ.
//
// Concurrency: the package is a pure value-transformation engine with no
// internal locking. Mutating operations replace the grid wholesale; callers
// needing concurrent access must serialize mutation externally (one grid per
// owning goroutine, or an external mutex around the whole object).
package rao
