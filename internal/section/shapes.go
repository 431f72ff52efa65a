package section

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosteel/internal/aisc"
)

// ISection is a doubly symmetric I-shaped section
type ISection struct {
	name  string
	Dims  FlangedDimensions
	props Properties
}

// NewISection derives the area properties from the dimensions
func NewISection(name string, d FlangedDimensions) (*ISection, error) {
	d, err := d.normalize()
	if err != nil {
		return nil, err
	}
	return &ISection{name: name, Dims: d, props: iProperties(d)}, nil
}

// NewISectionWithProperties uses supplied area properties (typically from a
// shape table). Area, Ix and Iy are required; anything else left zero is
// back-derived.
func NewISectionWithProperties(name string, d FlangedDimensions, p Properties) (*ISection, error) {
	d, err := d.normalize()
	if err != nil {
		return nil, err
	}
	geo := iProperties(d)
	if p.Iy > 0 {
		geo.Cw = iWarping(p.Iy, d)
	}
	p, err = complete(p, geo, d.TotalHeight/2, d.FlangeWidth/2)
	if err != nil {
		return nil, fmt.Errorf("section %s: %w", name, err)
	}
	return &ISection{name: name, Dims: d, props: p}, nil
}

func (s *ISection) Name() string           { return s.name }
func (s *ISection) Kind() Kind             { return KindI }
func (s *ISection) Properties() Properties { return s.props }
func (s *ISection) Depth() float64         { return s.Dims.TotalHeight }

func (s *ISection) MaxThickness() float64 {
	return math.Max(s.Dims.FlangeThickness, s.Dims.WebThickness)
}

// Channel is a singly symmetric channel, symmetric about the major axis
type Channel struct {
	name  string
	Dims  FlangedDimensions
	props Properties
}

// NewChannel derives the area properties from the dimensions
func NewChannel(name string, d FlangedDimensions) (*Channel, error) {
	d, err := d.normalize()
	if err != nil {
		return nil, err
	}
	return &Channel{name: name, Dims: d, props: channelProperties(d)}, nil
}

// NewChannelWithProperties uses supplied area properties, back-deriving the rest
func NewChannelWithProperties(name string, d FlangedDimensions, p Properties) (*Channel, error) {
	d, err := d.normalize()
	if err != nil {
		return nil, err
	}
	_, xbar, _ := centroid(channelParts(d))
	p, err = complete(p, channelProperties(d), d.TotalHeight/2, d.FlangeWidth-xbar)
	if err != nil {
		return nil, fmt.Errorf("section %s: %w", name, err)
	}
	return &Channel{name: name, Dims: d, props: p}, nil
}

func (s *Channel) Name() string           { return s.name }
func (s *Channel) Kind() Kind             { return KindChannel }
func (s *Channel) Properties() Properties { return s.props }
func (s *Channel) Depth() float64         { return s.Dims.TotalHeight }

func (s *Channel) MaxThickness() float64 {
	return math.Max(s.Dims.FlangeThickness, s.Dims.WebThickness)
}

// Angle is a single angle
type Angle struct {
	name  string
	Dims  AngleDimensions
	props Properties
}

// NewAngle derives the area properties from the dimensions
func NewAngle(name string, d AngleDimensions) (*Angle, error) {
	d, err := d.normalize()
	if err != nil {
		return nil, err
	}
	return &Angle{name: name, Dims: d, props: angleProperties(d)}, nil
}

func (s *Angle) Name() string           { return s.name }
func (s *Angle) Kind() Kind             { return KindAngle }
func (s *Angle) Properties() Properties { return s.props }
func (s *Angle) Depth() float64         { return s.Dims.LongLeg }
func (s *Angle) MaxThickness() float64  { return s.Dims.Thickness }

// Pipe is a circular hollow section
type Pipe struct {
	name  string
	Dims  PipeDimensions
	props Properties
}

// NewPipe derives the area properties from the dimensions
func NewPipe(name string, d PipeDimensions) (*Pipe, error) {
	d, err := d.normalize()
	if err != nil {
		return nil, err
	}
	return &Pipe{name: name, Dims: d, props: pipeProperties(d)}, nil
}

// NewPipeWithProperties uses supplied area properties, back-deriving the rest
func NewPipeWithProperties(name string, d PipeDimensions, p Properties) (*Pipe, error) {
	d, err := d.normalize()
	if err != nil {
		return nil, err
	}
	c := d.OuterDiameter / 2
	p, err = complete(p, pipeProperties(d), c, c)
	if err != nil {
		return nil, fmt.Errorf("section %s: %w", name, err)
	}
	return &Pipe{name: name, Dims: d, props: p}, nil
}

func (s *Pipe) Name() string           { return s.name }
func (s *Pipe) Kind() Kind             { return KindPipe }
func (s *Pipe) Properties() Properties { return s.props }
func (s *Pipe) Depth() float64         { return s.Dims.OuterDiameter }
func (s *Pipe) MaxThickness() float64  { return s.Dims.Thickness }

// complete fills the zero fields of supplied properties. Elastic moduli and
// radii come from the supplied inertia and area; the rest from the geometric
// set geo. cx and cy are the extreme fiber distances for the x and y axes.
func complete(p, geo Properties, cx, cy float64) (Properties, error) {
	switch {
	case p.Area <= 0:
		return p, fmt.Errorf("%w: area", aisc.ErrMissingProperty)
	case p.Ix <= 0:
		return p, fmt.Errorf("%w: major axis inertia Ix", aisc.ErrMissingProperty)
	case p.Iy <= 0:
		return p, fmt.Errorf("%w: minor axis inertia Iy", aisc.ErrMissingProperty)
	}
	if p.Sx == 0 {
		p.Sx = p.Ix / cx
	}
	if p.Sy == 0 {
		p.Sy = p.Iy / cy
	}
	if p.Zx == 0 {
		p.Zx = geo.Zx
	}
	if p.Zy == 0 {
		p.Zy = geo.Zy
	}
	if p.J == 0 {
		p.J = geo.J
	}
	if p.Cw == 0 {
		p.Cw = geo.Cw
	}
	if p.X0 == 0 && p.Y0 == 0 {
		p.X0, p.Y0 = geo.X0, geo.Y0
	}
	fillRadii(&p)
	return p, nil
}
