package domain

import "math"

// Measurement is one comparison point measured against a survey reference.
// Index is the 1-based position of the point in the input; the reference
// itself is point 1, so the first measurement has Index 2.
type Measurement struct {
	Index          int
	Point          GeoPoint
	EastMeters     float64
	NorthMeters    float64
	DistanceMeters float64
}

// Measure computes both the local offset and the great-circle distance of p
// relative to ref.
func Measure(index int, ref, p GeoPoint) Measurement {
	east, north := p.OffsetFrom(ref)
	return Measurement{
		Index:          index,
		Point:          p,
		EastMeters:     east,
		NorthMeters:    north,
		DistanceMeters: ref.DistanceTo(p),
	}
}

// PlanarMeters is the straight-line length of the local offset.
func (m Measurement) PlanarMeters() float64 {
	return math.Hypot(m.EastMeters, m.NorthMeters)
}

// Finite reports whether every computed value is a finite number.
func (m Measurement) Finite() bool {
	for _, v := range []float64{m.EastMeters, m.NorthMeters, m.DistanceMeters} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Survey is a reference point together with the measurements of every
// comparison point taken against it, in input order.
type Survey struct {
	Reference    GeoPoint
	Measurements []Measurement
}
