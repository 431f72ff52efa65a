// Package criteria selects the governing limit state of a loading type and
// converts nominal strengths into ASD allowable or LRFD design strengths.
package criteria

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gosteel/internal/aisc"
)

// DesignType is the design philosophy used to factor nominal strengths
type DesignType int

const (
	ASD DesignType = iota
	LRFD
)

func (d DesignType) String() string {
	if d == LRFD {
		return "LRFD"
	}
	return "ASD"
}

// ParseDesignType parses "ASD" or "LRFD", case-insensitively
func ParseDesignType(s string) (DesignType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ASD":
		return ASD, nil
	case "LRFD":
		return LRFD, nil
	default:
		return ASD, fmt.Errorf("unknown design type %q (want ASD or LRFD)", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (d DesignType) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *DesignType) UnmarshalText(b []byte) error {
	v, err := ParseDesignType(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Factors holds the ASD safety factor and the LRFD resistance factor
type Factors struct {
	Omega float64 `json:"omega"` // ASD: Rn/Ω
	Phi   float64 `json:"phi"`   // LRFD: φRn
}

// DefaultFactors returns Ω = 1.67 and φ = 0.90
func DefaultFactors() Factors {
	return Factors{Omega: aisc.OmegaDefault, Phi: aisc.PhiDefault}
}

// Apply converts a nominal strength into the design strength of type d
func (f Factors) Apply(d DesignType, nominal float64) float64 {
	if d == LRFD {
		return nominal * f.Phi
	}
	return nominal / f.Omega
}

// Validate checks that both factors are positive
func (f Factors) Validate() error {
	if f.Omega <= 0 || f.Phi <= 0 {
		return fmt.Errorf("safety factors must be positive (omega=%g, phi=%g)", f.Omega, f.Phi)
	}
	return nil
}

// Config is passed by value into every member analysis
type Config struct {
	Design  DesignType
	Factors Factors
	// IncludeMajorBuckling adds major axis flexural buckling to the governing
	// compression minimum. It is always computed and reported.
	IncludeMajorBuckling bool
}

// Default returns an ASD configuration with the default factors
func Default() Config {
	return Config{Design: ASD, Factors: DefaultFactors()}
}

// Strength is a nominal strength for one limit state
type Strength interface {
	Name() string
	NominalStrength() float64
	Applicable() bool
}

// Loading names the loading type a DesignStrength belongs to
type Loading string

const (
	Compression  Loading = "compression"
	MajorFlexure Loading = "major axis flexure"
	MinorFlexure Loading = "minor axis flexure"
	Shear        Loading = "shear"
	Torsion      Loading = "torsion"
)

// DesignStrength is the governing nominal strength of a loading type
type DesignStrength struct {
	Loading    Loading
	Nominal    float64    // Governing nominal strength
	Governing  string     // Name of the governing limit state
	Candidates []Strength // Every applicable candidate, in input order
	Factors    Factors
}

// Govern selects the minimum nominal strength among the applicable
// candidates. Nil and inapplicable candidates are skipped; when nothing
// remains aisc.ErrNoApplicableLimitState is returned. Ties keep the first.
func Govern(loading Loading, f Factors, candidates ...Strength) (*DesignStrength, error) {
	ds := &DesignStrength{Loading: loading, Factors: f}
	for _, c := range candidates {
		if c == nil || !c.Applicable() {
			continue
		}
		if len(ds.Candidates) == 0 || c.NominalStrength() < ds.Nominal {
			ds.Nominal = c.NominalStrength()
			ds.Governing = c.Name()
		}
		ds.Candidates = append(ds.Candidates, c)
	}
	if len(ds.Candidates) == 0 {
		return nil, fmt.Errorf("%s: %w", loading, aisc.ErrNoApplicableLimitState)
	}
	return ds, nil
}

// ASD returns the allowable strength Rn/Ω
func (d *DesignStrength) ASD() float64 { return d.Factors.Apply(ASD, d.Nominal) }

// LRFD returns the design strength φRn
func (d *DesignStrength) LRFD() float64 { return d.Factors.Apply(LRFD, d.Nominal) }

// Design returns the design strength for t
func (d *DesignStrength) Design(t DesignType) float64 { return d.Factors.Apply(t, d.Nominal) }
