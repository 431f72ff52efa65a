// Package strength holds the nominal strength models of AISC 360-10, one type
// per limit state. Every model keeps the intermediate values it computed
// (elastic buckling stress, critical stress, slenderness, limiting lengths)
// next to its nominal strength so a report can show the whole calculation.
//
// Units: N, mm, MPa, N·mm.
package strength

// LimitState names a failure mode
type LimitState string

const (
	StateFlexuralBucklingMajor     LimitState = "flexural buckling (major axis)"
	StateFlexuralBucklingMinor     LimitState = "flexural buckling (minor axis)"
	StateTorsionalBuckling         LimitState = "torsional buckling"
	StateFlexuralTorsionalBuckling LimitState = "flexural-torsional buckling"

	StateYielding                 LimitState = "yielding"
	StateMinorYielding            LimitState = "yielding (minor axis)"
	StateLateralTorsionalBuckling LimitState = "lateral-torsional buckling"
	StateFlangeLocalBuckling      LimitState = "flange local buckling"
	StateMinorFlangeLocalBuckling LimitState = "flange local buckling (minor axis)"
	StateWallLocalBuckling        LimitState = "wall local buckling"

	StateWebShear  LimitState = "web shear"
	StateLegShear  LimitState = "leg shear"
	StateWallShear LimitState = "shear yielding/buckling"

	StateTorsionalYielding LimitState = "torsional yielding"
	StateHSSTorsion        LimitState = "torsional yielding/buckling"
)

// Axis is a bending or buckling axis
type Axis int

const (
	Major Axis = iota
	Minor
)

func (a Axis) String() string {
	if a == Minor {
		return "minor"
	}
	return "major"
}
