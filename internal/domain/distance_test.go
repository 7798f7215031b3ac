package domain

import (
	"math"
	"testing"
)

var (
	sampleReference = GeoPoint{Lon: 120.80157568, Lat: 30.36124268}
	samplePoint     = GeoPoint{Lon: 120.80154368, Lat: 30.36122002}
)

func approxEqual(got, want, relTol float64) bool {
	if got == want {
		return true
	}
	return math.Abs(got-want) <= relTol*math.Max(math.Abs(got), math.Abs(want))
}

func TestGreatCircleDistanceSample(t *testing.T) {
	// Pinned from the Haversine formula with R = 6371000.
	const want = 3.9717986463500408

	got := GreatCircleDistance(sampleReference.Lat, sampleReference.Lon, samplePoint.Lat, samplePoint.Lon)
	if !approxEqual(got, want, 1e-9) {
		t.Fatalf("GreatCircleDistance = %.12f, want %.12f", got, want)
	}
}

func TestLocalOffsetSample(t *testing.T) {
	const (
		wantX = -3.07024626263901
		wantY = -2.5196770376616207
	)

	x, y := LocalOffset(sampleReference.Lat, sampleReference.Lon, samplePoint.Lat, samplePoint.Lon)
	if !approxEqual(x, wantX, 1e-9) {
		t.Errorf("x = %.12f, want %.12f", x, wantX)
	}
	if !approxEqual(y, wantY, 1e-9) {
		t.Errorf("y = %.12f, want %.12f", y, wantY)
	}
}

func TestIdentity(t *testing.T) {
	points := []GeoPoint{
		{Lon: 0, Lat: 0},
		sampleReference,
		{Lon: -73.9857, Lat: 40.7484},
		{Lon: 179.999, Lat: -89.5},
	}

	for _, p := range points {
		x, y := LocalOffset(p.Lat, p.Lon, p.Lat, p.Lon)
		if x != 0 || y != 0 {
			t.Errorf("LocalOffset(%v, %v) = (%v, %v), want (0, 0)", p, p, x, y)
		}
		if d := GreatCircleDistance(p.Lat, p.Lon, p.Lat, p.Lon); d != 0 {
			t.Errorf("GreatCircleDistance(%v, %v) = %v, want 0", p, p, d)
		}
	}
}

func TestGreatCircleDistanceSymmetry(t *testing.T) {
	pairs := [][2]GeoPoint{
		{sampleReference, samplePoint},
		{{Lon: -0.1246, Lat: 51.5007}, {Lon: -74.0445, Lat: 40.6892}},
		{{Lon: 151.2093, Lat: -33.8688}, {Lon: -43.1729, Lat: -22.9068}},
		{{Lon: 0, Lat: 0}, {Lon: 180, Lat: 0}},
	}

	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		ab := a.DistanceTo(b)
		ba := b.DistanceTo(a)
		if !approxEqual(ab, ba, 1e-9) {
			t.Errorf("distance %v->%v = %v, reverse = %v", a, b, ab, ba)
		}
	}
}

func TestLocalOffsetAntisymmetry(t *testing.T) {
	pairs := [][2]GeoPoint{
		{sampleReference, samplePoint},
		{{Lon: 10, Lat: 45}, {Lon: 10.01, Lat: 45.02}},
		{{Lon: -122.4194, Lat: 37.7749}, {Lon: -122.4094, Lat: 37.7649}},
	}

	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		x1, y1 := b.OffsetFrom(a)
		x2, y2 := a.OffsetFrom(b)
		if !approxEqual(x1, -x2, 1e-9) || !approxEqual(y1, -y2, 1e-9) {
			t.Errorf("offset %v->%v = (%v, %v), reverse = (%v, %v)", a, b, x1, y1, x2, y2)
		}
	}
}

func TestSmallAngleConsistency(t *testing.T) {
	ref := GeoPoint{Lon: 120.8, Lat: 30.36}
	// Roughly 1 m, 100 m and 900 m away in assorted directions.
	deltas := []GeoPoint{
		{Lon: 0.00001, Lat: 0.000005},
		{Lon: -0.0008, Lat: 0.0006},
		{Lon: 0.006, Lat: -0.005},
		{Lon: 0, Lat: 0.008},
	}

	for _, d := range deltas {
		p := GeoPoint{Lon: ref.Lon + d.Lon, Lat: ref.Lat + d.Lat}
		m := Measure(2, ref, p)
		if m.DistanceMeters > 1000 {
			t.Fatalf("test point %v is %v m away, want under 1 km", p, m.DistanceMeters)
		}
		if !approxEqual(m.PlanarMeters(), m.DistanceMeters, 0.01) {
			t.Errorf("planar %v m vs great-circle %v m for %v", m.PlanarMeters(), m.DistanceMeters, p)
		}
	}
}

func TestLocalOffsetMonotonic(t *testing.T) {
	ref := GeoPoint{Lon: 120.8, Lat: 30.36}

	prevX, prevY := 0.0, 0.0
	for i := 1; i <= 10; i++ {
		step := float64(i) * 0.0001

		x, _ := LocalOffset(ref.Lat, ref.Lon, ref.Lat, ref.Lon+step)
		if math.Abs(x) <= prevX {
			t.Fatalf("|x| = %v at step %v, not greater than %v", math.Abs(x), step, prevX)
		}
		prevX = math.Abs(x)

		_, y := LocalOffset(ref.Lat, ref.Lon, ref.Lat-step, ref.Lon)
		if math.Abs(y) <= prevY {
			t.Fatalf("|y| = %v at step %v, not greater than %v", math.Abs(y), step, prevY)
		}
		prevY = math.Abs(y)
	}
}

func TestLocalOffsetSigns(t *testing.T) {
	ref := GeoPoint{Lon: 10, Lat: 10}

	tests := []struct {
		name      string
		p         GeoPoint
		wantEast  bool
		wantNorth bool
	}{
		{"north-east", GeoPoint{Lon: 10.001, Lat: 10.001}, true, true},
		{"south-west", GeoPoint{Lon: 9.999, Lat: 9.999}, false, false},
		{"north-west", GeoPoint{Lon: 9.999, Lat: 10.001}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.p.OffsetFrom(ref)
			if (x > 0) != tt.wantEast {
				t.Errorf("x = %v, want east=%v", x, tt.wantEast)
			}
			if (y > 0) != tt.wantNorth {
				t.Errorf("y = %v, want north=%v", y, tt.wantNorth)
			}
		})
	}
}

func TestGreatCircleDistanceRange(t *testing.T) {
	maxDistance := math.Pi * EarthRadiusMeters

	for lat1 := -90.0; lat1 <= 90; lat1 += 30 {
		for lon1 := -180.0; lon1 <= 180; lon1 += 45 {
			for lat2 := -90.0; lat2 <= 90; lat2 += 22.5 {
				for lon2 := -180.0; lon2 <= 180; lon2 += 60 {
					d := GreatCircleDistance(lat1, lon1, lat2, lon2)
					if d < 0 || d > maxDistance {
						t.Fatalf("distance (%v,%v)->(%v,%v) = %v, outside [0, %v]", lat1, lon1, lat2, lon2, d, maxDistance)
					}
				}
			}
		}
	}
}

func TestGreatCircleDistanceAntipodal(t *testing.T) {
	want := math.Pi * EarthRadiusMeters

	got := GreatCircleDistance(0, 0, 0, 180)
	if !approxEqual(got, want, 1e-12) {
		t.Fatalf("antipodal distance = %v, want %v", got, want)
	}

	got = GreatCircleDistance(45, 30, -45, -150)
	if math.IsNaN(got) || !approxEqual(got, want, 1e-9) {
		t.Fatalf("antipodal distance = %v, want %v", got, want)
	}
}

func TestNaNPropagates(t *testing.T) {
	nan := math.NaN()

	if d := GreatCircleDistance(nan, 0, 0, 0); !math.IsNaN(d) {
		t.Errorf("GreatCircleDistance with NaN = %v, want NaN", d)
	}
	x, y := LocalOffset(0, 0, nan, nan)
	if !math.IsNaN(x) || !math.IsNaN(y) {
		t.Errorf("LocalOffset with NaN = (%v, %v), want NaN", x, y)
	}
}
