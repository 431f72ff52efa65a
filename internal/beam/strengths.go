package beam

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/criteria"
	"github.com/alexiusacademia/gosteel/internal/section"
	"github.com/alexiusacademia/gosteel/internal/slenderness"
	"github.com/alexiusacademia/gosteel/internal/strength"
)

// member carries what every loading check of one analysis shares
type member struct {
	Beam
	cfg   criteria.Config
	cls   *slenderness.Result
	props section.Properties
}

func (m *member) govern(l criteria.Loading, candidates ...criteria.Strength) (*criteria.DesignStrength, error) {
	return criteria.Govern(l, m.cfg.Factors, candidates...)
}

// compression implements AISC 360-10 Chapter E for non-slender elements
func (m *member) compression() (*criteria.DesignStrength, error) {
	if slender := m.cls.AxiallySlender(); len(slender) > 0 {
		e := slender[0]
		return nil, fmt.Errorf("%w: slender %s in axial compression (ratio %.2f >= %.2f), Section E7",
			aisc.ErrNotImplemented, e.Name, e.Axial.Ratio, e.Axial.Limit)
	}
	p, mat := m.props, m.Material
	major := strength.NewFlexuralBuckling(strength.Major, m.K.Major, m.Lengths.Major, p.Rx, p.Area, mat)
	minor := strength.NewFlexuralBuckling(strength.Minor, m.K.Minor, m.Lengths.Minor, p.Ry, p.Area, mat)

	switch m.Section.(type) {
	case *section.ISection:
		tb := strength.NewTorsionalBuckling(m.K.Torsion, m.Lengths.Torsion, p, mat)
		if m.cfg.IncludeMajorBuckling {
			return m.govern(criteria.Compression, minor, tb, major)
		}
		return m.govern(criteria.Compression, minor, tb)
	case *section.Channel:
		ftb := strength.NewFlexuralTorsionalBuckling(m.K.Major, m.Lengths.Major, m.K.Torsion, m.Lengths.Torsion, p, mat)
		if m.cfg.IncludeMajorBuckling {
			return m.govern(criteria.Compression, minor, ftb, major)
		}
		return m.govern(criteria.Compression, minor, ftb)
	case *section.Pipe:
		return m.govern(criteria.Compression, major, minor)
	default:
		return nil, fmt.Errorf("%w: %s compression, Section E5", aisc.ErrNotImplemented, m.Section.Kind())
	}
}

// majorFlexure implements Sections F2, F3 and F8
func (m *member) majorFlexure() (*criteria.DesignStrength, error) {
	p, mat := m.props, m.Material
	yield := strength.NewYielding(mat.Fy, p.Zx)

	switch s := m.Section.(type) {
	case *section.ISection:
		if err := m.compactWeb(); err != nil {
			return nil, err
		}
		ltb := strength.NewLateralTorsionalBuckling(m.ltbInput(s.Dims, 1))
		flb, err := strength.NewFlangeBuckling(strength.Major, m.cls.Flange.Flexure, yield.Mp, mat.Fy, p.Sx)
		if err != nil {
			return nil, err
		}
		return m.govern(criteria.MajorFlexure, yield, ltb, flb)
	case *section.Channel:
		if err := m.compactWeb(); err != nil {
			return nil, err
		}
		if f := m.cls.Flange.Flexure; f.Class != slenderness.Compact {
			return nil, fmt.Errorf("%w: %s channel flange in major axis flexure (b/t = %.2f)",
				aisc.ErrNotImplemented, f.Class, f.Ratio)
		}
		ho := s.Dims.FlangeDistance()
		c := ho / 2 * math.Sqrt(p.Iy/p.Cw)
		ltb := strength.NewLateralTorsionalBuckling(m.ltbInput(s.Dims, c))
		return m.govern(criteria.MajorFlexure, yield, ltb)
	case *section.Pipe:
		wall, err := strength.NewWallBuckling(m.cls.Wall.Flexure, mat.E, mat.Fy, p.Sx)
		if err != nil {
			return nil, err
		}
		return m.govern(criteria.MajorFlexure, yield, wall)
	default:
		return nil, fmt.Errorf("%w: %s flexure, Section F10", aisc.ErrNotImplemented, m.Section.Kind())
	}
}

// minorFlexure implements Sections F6 and F8
func (m *member) minorFlexure() (*criteria.DesignStrength, error) {
	p, mat := m.props, m.Material

	switch m.Section.(type) {
	case *section.ISection, *section.Channel:
		yield := strength.NewMinorYielding(mat.Fy, p.Zy, p.Sy)
		flb, err := strength.NewFlangeBuckling(strength.Minor, *m.cls.Flange.MinorFlexure, yield.Mn, mat.Fy, p.Sy)
		if err != nil {
			return nil, err
		}
		return m.govern(criteria.MinorFlexure, yield, flb)
	case *section.Pipe:
		wall, err := strength.NewWallBuckling(m.cls.Wall.Flexure, mat.E, mat.Fy, p.Sy)
		if err != nil {
			return nil, err
		}
		return m.govern(criteria.MinorFlexure, strength.NewYielding(mat.Fy, p.Zy), wall)
	default:
		return nil, fmt.Errorf("%w: %s flexure, Section F10", aisc.ErrNotImplemented, m.Section.Kind())
	}
}

// shear implements Sections G2, G4 and G6 for major axis shear
func (m *member) shear() (*criteria.DesignStrength, error) {
	mat := m.Material

	switch s := m.Section.(type) {
	case *section.ISection:
		return m.govern(criteria.Shear, webShear(s.Dims, mat.E, mat.Fy))
	case *section.Channel:
		return m.govern(criteria.Shear, webShear(s.Dims, mat.E, mat.Fy))
	case *section.Angle:
		return m.govern(criteria.Shear, strength.NewLegShear(s.Dims.LongLeg, s.Dims.Thickness, mat.E, mat.Fy))
	case *section.Pipe:
		d := s.Dims
		return m.govern(criteria.Shear, strength.NewRoundShear(d.OuterDiameter, d.Thickness, m.ShearLength, m.props.Area, mat.E, mat.Fy))
	default:
		return nil, fmt.Errorf("%w: %s shear", aisc.ErrNotImplemented, m.Section.Kind())
	}
}

// torsion implements Section H3.1 for round HSS and St. Venant yielding for
// open sections
func (m *member) torsion() (*criteria.DesignStrength, error) {
	mat := m.Material
	if s, ok := m.Section.(*section.Pipe); ok {
		d := s.Dims
		return m.govern(criteria.Torsion, strength.NewRoundTorsion(d.OuterDiameter, d.Thickness, m.Lengths.Torsion, mat.E, mat.Fy))
	}
	return m.govern(criteria.Torsion, strength.NewOpenTorsion(m.props.J, m.Section.MaxThickness(), mat.Fy))
}

// webShear uses the clear web height for h/tw and the web height for Aw
func webShear(d section.FlangedDimensions, e, fy float64) *strength.PlateShear {
	return strength.NewWebShear(d.CorrectedWebHeight(), d.WebThickness, d.WebHeight*d.WebThickness, e, fy)
}

func (m *member) compactWeb() error {
	if w := m.cls.Web.Flexure; w.Class != slenderness.Compact {
		return fmt.Errorf("%w: %s web in major axis flexure (h/tw = %.2f), Sections F4 and F5",
			aisc.ErrNotImplemented, w.Class, w.Ratio)
	}
	return nil
}

func (m *member) ltbInput(d section.FlangedDimensions, c float64) strength.LTBInput {
	p, mat := m.props, m.Material
	return strength.LTBInput{
		Lb: m.Lengths.Minor,
		Cb: m.Cb,
		E:  mat.E,
		Fy: mat.Fy,
		Ry: p.Ry,
		Iy: p.Iy,
		Cw: p.Cw,
		J:  p.J,
		Sx: p.Sx,
		Zx: p.Zx,
		Ho: d.FlangeDistance(),
		C:  c,
	}
}
