package strength

import (
	"fmt"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/slenderness"
)

// WallBuckling is the local buckling strength of a round HSS in flexure
// (AISC 360-10 Section F8.2). Compact walls make it inapplicable.
type WallBuckling struct {
	Flexural slenderness.Flexural
	E        float64 // (MPa)
	Fy       float64 // (MPa)
	S        float64 // Elastic section modulus (mm³)
	Fcr      float64 // Critical stress, slender walls only (MPa)
	Mn       float64 // Nominal strength (N·mm)
}

// NewWallBuckling evaluates F8-2 for non-compact walls and F8-3 for slender
// walls. Walls with D/t ≥ 0.45·E/Fy are outside F8 and return
// aisc.ErrNotImplemented.
func NewWallBuckling(f slenderness.Flexural, e, fy, s float64) (*WallBuckling, error) {
	w := &WallBuckling{Flexural: f, E: e, Fy: fy, S: s}
	if f.Ratio >= 0.45*e/fy {
		return nil, fmt.Errorf("%w: round HSS flexure with D/t = %.1f", aisc.ErrNotImplemented, f.Ratio)
	}
	switch f.Class {
	case slenderness.NonCompact:
		w.Mn = (0.021*e/f.Ratio + fy) * s
	case slenderness.Slender:
		w.Fcr = 0.33 * e / f.Ratio
		w.Mn = w.Fcr * s
	}
	return w, nil
}

func (w *WallBuckling) Name() string             { return string(StateWallLocalBuckling) }
func (w *WallBuckling) NominalStrength() float64 { return w.Mn }

func (w *WallBuckling) Applicable() bool {
	return w.Flexural.Class != slenderness.Compact
}
