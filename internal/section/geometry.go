package section

import "math"

// rect is a rectangular patch used to build area properties with the
// parallel-axis theorem. (cx, cy) is its centroid, b its width along x and
// h its height along y.
type rect struct {
	b, h   float64
	cx, cy float64
}

func (r rect) area() float64 { return r.b * r.h }

// ixAbout returns the second moment about a horizontal axis at y.
func (r rect) ixAbout(y float64) float64 {
	d := r.cy - y
	return r.b*r.h*r.h*r.h/12 + r.area()*d*d
}

// iyAbout returns the second moment about a vertical axis at x.
func (r rect) iyAbout(x float64) float64 {
	d := r.cx - x
	return r.h*r.b*r.b*r.b/12 + r.area()*d*d
}

func centroid(rs []rect) (a, cx, cy float64) {
	var mx, my float64
	for _, r := range rs {
		a += r.area()
		mx += r.area() * r.cx
		my += r.area() * r.cy
	}
	return a, mx / a, my / a
}

// FlangedDimensions describes an I-section or a channel (mm).
// Either WebHeight or TotalHeight may be omitted; the other is derived from
// TotalHeight = WebHeight + 2·FlangeThickness.
type FlangedDimensions struct {
	FlangeWidth     float64 `json:"flange_width"`
	FlangeThickness float64 `json:"flange_thickness"`
	WebHeight       float64 `json:"web_height,omitempty"`
	WebThickness    float64 `json:"web_thickness"`
	TotalHeight     float64 `json:"total_height,omitempty"`
	Radius          float64 `json:"radius,omitempty"` // Root fillet radius
}

func (d FlangedDimensions) normalize() (FlangedDimensions, error) {
	if err := positive("flange width", d.FlangeWidth); err != nil {
		return d, err
	}
	if err := positive("flange thickness", d.FlangeThickness); err != nil {
		return d, err
	}
	if err := positive("web thickness", d.WebThickness); err != nil {
		return d, err
	}
	switch {
	case d.WebHeight == 0 && d.TotalHeight == 0:
		return d, &ValidationError{"either web height or total height is required"}
	case d.WebHeight == 0:
		d.WebHeight = d.TotalHeight - 2*d.FlangeThickness
	case d.TotalHeight == 0:
		d.TotalHeight = d.WebHeight + 2*d.FlangeThickness
	case math.Abs(d.TotalHeight-(d.WebHeight+2*d.FlangeThickness)) > 1e-6*d.TotalHeight:
		return d, &ValidationError{"total height must equal web height + 2 x flange thickness"}
	}
	if err := positive("web height", d.WebHeight); err != nil {
		return d, err
	}
	if d.Radius < 0 || d.CorrectedWebHeight() <= 0 {
		return d, &ValidationError{"fillet radius leaves no flat web"}
	}
	return d, nil
}

// CorrectedWebHeight is the clear web height between fillets, h in the
// slenderness tables.
func (d FlangedDimensions) CorrectedWebHeight() float64 {
	if d.Radius > 0 {
		return d.WebHeight - 2*d.Radius
	}
	return d.WebHeight
}

// FlangeDistance is the distance between flange centroids, ho.
func (d FlangedDimensions) FlangeDistance() float64 {
	return d.TotalHeight - d.FlangeThickness
}

// iProperties computes the area properties of a doubly symmetric I-section
// from two flange rectangles and one web rectangle, all centred on the
// minor axis.
func iProperties(d FlangedDimensions) Properties {
	bf, tf, hw, tw, h := d.FlangeWidth, d.FlangeThickness, d.WebHeight, d.WebThickness, d.TotalHeight
	offset := h/2 - tf/2

	flange := rect{b: bf, h: tf}
	web := rect{b: tw, h: hw}

	var p Properties
	p.Area = web.area() + 2*flange.area()
	p.Ix = 2*flange.ixAbout(-offset) + web.ixAbout(0)
	p.Iy = 2*flange.iyAbout(0) + web.iyAbout(0)
	p.Sx = p.Ix / (h / 2)
	p.Sy = p.Iy / (bf / 2)

	// First moment of each half area, doubled
	p.Zx = 2 * (flange.area()*offset + (tw*hw/2)*(hw/4))
	p.Zy = 2 * (2*(tf*bf/2)*(bf/4) + (hw*tw/2)*(tw/4))

	p.J = (2*bf*tf*tf*tf + (h-tf)*tw*tw*tw) / 3
	p.Cw = iWarping(p.Iy, d)
	fillRadii(&p)
	return p
}

func iWarping(iy float64, d FlangedDimensions) float64 {
	ho := d.FlangeDistance()
	return iy * ho * ho / 4
}

// channelProperties computes the area properties of a channel whose web back
// lies on x = 0 and whose flanges point towards +x.
func channelProperties(d FlangedDimensions) Properties {
	bf, tf, hw, tw, h := d.FlangeWidth, d.FlangeThickness, d.WebHeight, d.WebThickness, d.TotalHeight
	offset := h/2 - tf/2
	parts := channelParts(d)
	a, xbar, _ := centroid(parts)

	var p Properties
	p.Area = a
	for _, r := range parts {
		p.Ix += r.ixAbout(0)
		p.Iy += r.iyAbout(xbar)
	}
	p.Sx = p.Ix / (h / 2)
	p.Sy = p.Iy / (bf - xbar)
	p.Zx = 2 * (bf*tf*offset + (tw*hw/2)*(hw/4))

	// Plastic neutral axis parallel to the web. The strip 0 ≤ x ≤ tw spans
	// the full height, the rest only the two flanges.
	half := a / 2
	if h*tw >= half {
		xp := half / h
		p.Zy = h*xp*xp/2 + h*(tw-xp)*(tw-xp)/2 + 2*tf*(bf-tw)*((bf+tw)/2-xp)
	} else {
		xp := tw + (half-h*tw)/(2*tf)
		p.Zy = h*tw*(xp-tw/2) + tf*(xp-tw)*(xp-tw) + tf*(bf-xp)*(bf-xp)
	}

	p.J = (2*bf*tf*tf*tf + (h-tf)*tw*tw*tw) / 3

	b := bf - tw/2
	ho := d.FlangeDistance()
	p.Cw = tf * b * b * b * ho * ho / 12 * (3*b*tf + 2*ho*tw) / (6*b*tf + ho*tw)

	// Shear center lies behind the web centreline
	e := 3 * b * b * tf / (6*b*tf + ho*tw)
	p.X0 = (xbar - tw/2) + e
	fillRadii(&p)
	return p
}

func channelParts(d FlangedDimensions) []rect {
	offset := d.TotalHeight/2 - d.FlangeThickness/2
	return []rect{
		{b: d.FlangeWidth, h: d.FlangeThickness, cx: d.FlangeWidth / 2, cy: offset},
		{b: d.FlangeWidth, h: d.FlangeThickness, cx: d.FlangeWidth / 2, cy: -offset},
		{b: d.WebThickness, h: d.WebHeight, cx: d.WebThickness / 2, cy: 0},
	}
}

// AngleDimensions describes a single angle (mm). LongLeg is vertical.
type AngleDimensions struct {
	LongLeg   float64 `json:"long_leg"`
	ShortLeg  float64 `json:"short_leg"`
	Thickness float64 `json:"thickness"`
	Radius    float64 `json:"radius,omitempty"`
}

func (d AngleDimensions) normalize() (AngleDimensions, error) {
	if d.ShortLeg == 0 {
		d.ShortLeg = d.LongLeg
	}
	if d.ShortLeg > d.LongLeg {
		d.LongLeg, d.ShortLeg = d.ShortLeg, d.LongLeg
	}
	if err := positive("leg length", d.ShortLeg); err != nil {
		return d, err
	}
	if err := positive("angle thickness", d.Thickness); err != nil {
		return d, err
	}
	if d.Thickness >= d.ShortLeg {
		return d, &ValidationError{"angle thickness must be smaller than the legs"}
	}
	return d, nil
}

// angleProperties computes geometric-axis properties of an angle with its
// heel at the origin: the long leg along +y, the short leg along +x.
func angleProperties(d AngleDimensions) Properties {
	h, b, t := d.LongLeg, d.ShortLeg, d.Thickness
	parts := []rect{
		{b: t, h: h, cx: t / 2, cy: h / 2},
		{b: b - t, h: t, cx: t + (b-t)/2, cy: t / 2},
	}
	a, xbar, ybar := centroid(parts)

	var p Properties
	p.Area = a
	var ixy float64
	for _, r := range parts {
		p.Ix += r.ixAbout(ybar)
		p.Iy += r.iyAbout(xbar)
		ixy += r.area() * (r.cx - xbar) * (r.cy - ybar)
	}
	p.Sx = p.Ix / (h - ybar)
	p.Sy = p.Iy / (b - xbar)
	p.Zx = legPlasticModulus(b, h, t)
	p.Zy = legPlasticModulus(h, b, t)

	p.J = t * t * t * (h + b - t) / 3
	bp, hp := b-t/2, h-t/2
	p.Cw = t * t * t / 36 * (bp*bp*bp + hp*hp*hp)

	// Shear center at the intersection of the leg centrelines
	p.X0 = t/2 - xbar
	p.Y0 = t/2 - ybar

	fillRadii(&p)
	avg := (p.Ix + p.Iy) / 2
	iz := avg - math.Sqrt((p.Ix-p.Iy)*(p.Ix-p.Iy)/4+ixy*ixy)
	p.Rz = math.Sqrt(iz / a)
	return p
}

// legPlasticModulus returns Z about an axis parallel to the leg of width w,
// the other leg having length l. Both legs have thickness t.
func legPlasticModulus(w, l, t float64) float64 {
	a := t * (w + l - t)
	half := a / 2
	if w*t >= half {
		yp := half / w
		return w*yp*yp/2 + w*(t-yp)*(t-yp)/2 + t*(l-t)*((l+t)/2-yp)
	}
	yp := t + (half-w*t)/t
	return w*t*(yp-t/2) + t*(yp-t)*(yp-t)/2 + t*(l-yp)*(l-yp)/2
}

// PipeDimensions describes a circular hollow section (mm)
type PipeDimensions struct {
	OuterDiameter float64 `json:"outer_diameter"`
	Thickness     float64 `json:"thickness"`
}

func (d PipeDimensions) normalize() (PipeDimensions, error) {
	if err := positive("outer diameter", d.OuterDiameter); err != nil {
		return d, err
	}
	if err := positive("wall thickness", d.Thickness); err != nil {
		return d, err
	}
	if 2*d.Thickness >= d.OuterDiameter {
		return d, &ValidationError{"wall thickness must be less than half the diameter"}
	}
	return d, nil
}

// Slenderness returns D/t
func (d PipeDimensions) Slenderness() float64 {
	return d.OuterDiameter / d.Thickness
}

func pipeProperties(d PipeDimensions) Properties {
	do := d.OuterDiameter
	di := do - 2*d.Thickness
	var p Properties
	p.Area = math.Pi / 4 * (do*do - di*di)
	p.Ix = math.Pi / 64 * (do*do*do*do - di*di*di*di)
	p.Iy = p.Ix
	p.Sx = p.Ix / (do / 2)
	p.Sy = p.Sx
	p.Zx = (do*do*do - di*di*di) / 6
	p.Zy = p.Zx
	p.J = 2 * p.Ix
	fillRadii(&p)
	return p
}

// fillRadii sets every radius of gyration that is still zero.
func fillRadii(p *Properties) {
	if p.Rx == 0 {
		p.Rx = math.Sqrt(p.Ix / p.Area)
	}
	if p.Ry == 0 {
		p.Ry = math.Sqrt(p.Iy / p.Area)
	}
	if p.Rz == 0 {
		p.Rz = p.Ry
	}
	if p.Ro == 0 {
		p.Ro = math.Sqrt(p.X0*p.X0 + p.Y0*p.Y0 + (p.Ix+p.Iy)/p.Area)
	}
}
