// Package rao defines core types, channel names, and sentinel errors
// for the rao subpackage of github.com/seakeeping/raogrid.
package rao

import (
	"errors"
)

// Sentinel errors for grid construction and transformation.
var (
	// ErrEmptyAxis indicates a heading or frequency axis with no entries.
	ErrEmptyAxis = errors.New("rao: axis must contain at least one value")
	// ErrShapeMismatch indicates amplitude/phase dimensions disagree with the declared axes.
	ErrShapeMismatch = errors.New("rao: amplitude and phase shapes must match the heading and frequency axes")
	// ErrDuplicateAxisValue indicates a repeated value on a heading or frequency axis.
	ErrDuplicateAxisValue = errors.New("rao: axis values must be distinct")
	// ErrHeadingRange indicates a heading outside [0, 360) degrees.
	ErrHeadingRange = errors.New("rao: headings must lie in [0, 360) degrees")
	// ErrNegativeFrequency indicates a negative angular frequency.
	ErrNegativeFrequency = errors.New("rao: frequencies must be non-negative")
	// ErrNegativeAmplitude indicates an amplitude below zero.
	ErrNegativeAmplitude = errors.New("rao: amplitude can not be negative")
	// ErrNegativeScale indicates a scale factor below zero.
	ErrNegativeScale = errors.New("rao: amplitude can not be negative; apply a phase change of pi for an opposite response")
	// ErrNaNValue indicates a NaN or infinity where a finite number is required.
	ErrNaNValue = errors.New("rao: values must be finite")
	// ErrComponentUnset indicates symmetry was requested without a recognized
	// response component, so the sign convention can not be determined.
	ErrComponentUnset = errors.New("rao: component is unset or unrecognized; symmetry sign can not be determined")
	// ErrUnknownChannel indicates a channel name outside the recognized set.
	ErrUnknownChannel = errors.New("rao: unknown channel name")
	// ErrAxisMismatch indicates two grids whose axes or components disagree.
	ErrAxisMismatch = errors.New("rao: grids must share identical axes and component")
)

// Component identifies which physical response a grid represents.
// The zero value ComponentUnset is a distinct, reachable state: grids
// without a component are valid for everything except symmetry expansion.
type Component int

const (
	// ComponentUnset marks a grid with no declared response component.
	ComponentUnset Component = iota
	// Surge is translation along the longitudinal (x) axis.
	Surge
	// Sway is translation along the transverse (y) axis.
	Sway
	// Heave is translation along the vertical (z) axis.
	Heave
	// Roll is rotation about the longitudinal (x) axis.
	Roll
	// Pitch is rotation about the transverse (y) axis.
	Pitch
	// Yaw is rotation about the vertical (z) axis.
	Yaw
)

// String returns the conventional upper-case name of the component.
func (c Component) String() string {
	switch c {
	case Surge:
		return "SURGE"
	case Sway:
		return "SWAY"
	case Heave:
		return "HEAVE"
	case Roll:
		return "ROLL"
	case Pitch:
		return "PITCH"
	case Yaw:
		return "YAW"
	default:
		return "UNSET"
	}
}

// SymmetryClass classifies a component's behavior under heading mirroring
// about the vessel's xz (centerline) plane.
type SymmetryClass int

const (
	// SignPreserving components keep their phase when the heading is mirrored.
	SignPreserving SymmetryClass = iota
	// SignReversing components flip sign (a phase shift of pi) when mirrored.
	SignReversing
)

// SymmetryOf maps a component to its xz-plane symmetry class.
// A wave from port excites heave exactly as the mirrored wave from
// starboard does, but drives roll in the opposite direction.
// Returns ErrComponentUnset for ComponentUnset or any unrecognized tag.
func SymmetryOf(c Component) (SymmetryClass, error) {
	switch c {
	case Surge, Heave, Pitch:
		return SignPreserving, nil
	case Sway, Roll, Yaw:
		return SignReversing, nil
	default:
		return 0, ErrComponentUnset
	}
}

// ChannelName selects a stored or derived grid channel by name.
type ChannelName string

const (
	// ChannelAmplitude is the stored amplitude channel (real, ≥ 0).
	ChannelAmplitude ChannelName = "amplitude"
	// ChannelPhase is the stored phase channel (real, radians).
	ChannelPhase ChannelName = "phase"
	// ChannelPhaseVector is the derived unit-magnitude complex channel
	// exp(i·phase), recomputed on every access and never cached.
	ChannelPhaseVector ChannelName = "phase-vector"
)
