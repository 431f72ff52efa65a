package beam

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/unit"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/criteria"
	"github.com/alexiusacademia/gosteel/internal/interaction"
	"github.com/alexiusacademia/gosteel/internal/material"
	"github.com/alexiusacademia/gosteel/internal/section"
	"github.com/alexiusacademia/gosteel/internal/slenderness"
	"github.com/alexiusacademia/gosteel/internal/units"
)

// TorsionThreshold is the Tr/Tc ratio above which round HSS use H3-6
// instead of H1-1 (Section H3.2)
const TorsionThreshold = 0.2

// Result holds the results of a member check
type Result struct {
	Name        string
	Kind        section.Kind
	Design      criteria.DesignType
	Material    material.Material
	Properties  section.Properties
	Slenderness *slenderness.Result
	Loads       aisc.Forces
	Lengths     Lengths
	K           KFactors
	Cb          float64

	// Governing strengths, nil when Unavailable names the loading
	Compression  *criteria.DesignStrength
	MajorFlexure *criteria.DesignStrength
	MinorFlexure *criteria.DesignStrength
	Shear        *criteria.DesignStrength
	Torsion      *criteria.DesignStrength

	// Unavailable maps a loading without demand to the reason it has no
	// design strength
	Unavailable map[criteria.Loading]string

	// Utilization per loading, required/available
	Ratios map[criteria.Loading]float64

	Interaction *interaction.Result // H1-1
	Combined    *interaction.Result // H3-6, round HSS with Tr > 0.2Tc

	// Status
	MaxRatio   float64
	Governing  string // Loading or equation with MaxRatio
	IsAdequate bool
	Message    string
}

// Analyze checks the member under cfg. Every loading is evaluated so its
// design strength can be reported. A limit state that is not implemented
// fails the analysis when the member carries that loading; without demand
// the loading is listed in Result.Unavailable instead.
func (b Beam) Analyze(cfg criteria.Config) (*Result, error) {
	b = b.withDefaults()
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Factors.Validate(); err != nil {
		return nil, err
	}

	cls, err := slenderness.Classify(b.Section, b.Material, b.Construction)
	if err != nil {
		return nil, fmt.Errorf("member %q: %w", b.Name, err)
	}
	m := &member{Beam: b, cfg: cfg, cls: cls, props: b.Section.Properties()}

	r := &Result{
		Name:        b.Name,
		Kind:        b.Section.Kind(),
		Design:      cfg.Design,
		Material:    b.Material,
		Properties:  m.props,
		Slenderness: cls,
		Loads:       b.Loads,
		Lengths:     b.Lengths,
		K:           b.K,
		Cb:          b.Cb,
		Unavailable: map[criteria.Loading]string{},
		Ratios:      map[criteria.Loading]float64{},
	}

	checks := []struct {
		loading criteria.Loading
		demand  float64
		run     func() (*criteria.DesignStrength, error)
		dst     **criteria.DesignStrength
	}{
		{criteria.Compression, b.Loads.Axial, m.compression, &r.Compression},
		{criteria.MajorFlexure, b.Loads.MomentMajor, m.majorFlexure, &r.MajorFlexure},
		{criteria.MinorFlexure, b.Loads.MomentMinor, m.minorFlexure, &r.MinorFlexure},
		{criteria.Shear, b.Loads.Shear, m.shear, &r.Shear},
		{criteria.Torsion, b.Loads.Torsion, m.torsion, &r.Torsion},
	}
	demands := map[criteria.Loading]interaction.Demand{}
	for _, c := range checks {
		ds, err := c.run()
		if err != nil {
			if errors.Is(err, aisc.ErrNotImplemented) && c.demand == 0 {
				r.Unavailable[c.loading] = err.Error()
				demands[c.loading] = interaction.Demand{}
				continue
			}
			return nil, fmt.Errorf("member %q: %s: %w", b.Name, c.loading, err)
		}
		*c.dst = ds
		d, err := interaction.NewDemand(r.Quantities(c.loading))
		if err != nil {
			return nil, fmt.Errorf("member %q: %s: %w", b.Name, c.loading, err)
		}
		ratio, err := d.Ratio()
		if err != nil {
			return nil, fmt.Errorf("member %q: %s: %w", b.Name, c.loading, err)
		}
		demands[c.loading] = d
		r.Ratios[c.loading] = ratio
		r.track(string(c.loading), ratio)
	}

	axial := demands[criteria.Compression]
	major := demands[criteria.MajorFlexure]
	minor := demands[criteria.MinorFlexure]
	if r.Interaction, err = interaction.H1(axial, major, minor); err != nil {
		return nil, fmt.Errorf("member %q: %w", b.Name, err)
	}
	r.track(string(r.Interaction.Equation), r.Interaction.Ratio)

	if r.Kind == section.KindPipe && r.Ratios[criteria.Torsion] > TorsionThreshold {
		r.Combined, err = interaction.H3(axial, major, minor, demands[criteria.Shear], demands[criteria.Torsion])
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", b.Name, err)
		}
		r.track(string(r.Combined.Equation), r.Combined.Ratio)
	}

	r.IsAdequate = r.MaxRatio < 1
	if r.IsAdequate {
		r.Message = fmt.Sprintf("Member is adequate. Governing: %s, ratio = %.3f", r.Governing, r.MaxRatio)
	} else {
		r.Message = fmt.Sprintf("Member is NOT adequate. Governing: %s, ratio = %.3f > 1.0", r.Governing, r.MaxRatio)
	}
	return r, nil
}

func (r *Result) track(name string, ratio float64) {
	if r.Governing == "" || ratio > r.MaxRatio {
		r.MaxRatio = math.Max(ratio, 0)
		r.Governing = name
	}
}

// Loadings lists the loadings in check order
var Loadings = []criteria.Loading{
	criteria.Compression, criteria.MajorFlexure, criteria.MinorFlexure, criteria.Shear, criteria.Torsion,
}

// Required returns the required strength of a loading (N or N·mm)
func (r *Result) Required(l criteria.Loading) float64 {
	switch l {
	case criteria.Compression:
		return r.Loads.Axial
	case criteria.MajorFlexure:
		return r.Loads.MomentMajor
	case criteria.MinorFlexure:
		return r.Loads.MomentMinor
	case criteria.Shear:
		return r.Loads.Shear
	default:
		return r.Loads.Torsion
	}
}

// Strength returns the governing strength of a loading, nil when unavailable
func (r *Result) Strength(l criteria.Loading) *criteria.DesignStrength {
	switch l {
	case criteria.Compression:
		return r.Compression
	case criteria.MajorFlexure:
		return r.MajorFlexure
	case criteria.MinorFlexure:
		return r.MinorFlexure
	case criteria.Shear:
		return r.Shear
	default:
		return r.Torsion
	}
}

// Quantities returns the required and available strength of a loading as
// a force or a moment. available is nil when the loading is unavailable.
func (r *Result) Quantities(l criteria.Loading) (required, available unit.Uniter) {
	conv := func(v float64) unit.Uniter { return units.Moment(v) }
	if l == criteria.Compression || l == criteria.Shear {
		conv = func(v float64) unit.Uniter { return units.Force(v) }
	}
	required = conv(r.Required(l))
	if ds := r.Strength(l); ds != nil {
		available = conv(ds.Design(r.Design))
	}
	return required, available
}

// Strengths returns the available governing strengths in loading order
func (r *Result) Strengths() []*criteria.DesignStrength {
	var out []*criteria.DesignStrength
	for _, ds := range []*criteria.DesignStrength{r.Compression, r.MajorFlexure, r.MinorFlexure, r.Shear, r.Torsion} {
		if ds != nil {
			out = append(out, ds)
		}
	}
	return out
}
