package domain

import "math"

// EarthRadiusMeters is the mean spherical Earth radius shared by every
// distance computation in this package.
const EarthRadiusMeters = 6_371_000.0

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// LocalOffset projects (lat, lon) onto a flat plane tangent at (refLat, refLon)
// and returns the signed offset in meters: x is east (+) / west (-), y is
// north (+) / south (-).
//
// This is the equirectangular approximation: latitude difference maps
// linearly to arc length and longitude difference is scaled by the cosine of
// the mean latitude. It is accurate for sub-kilometer separations. Crossing
// the antimeridian is not unwrapped and yields a large, wrong x.
func LocalOffset(refLat, refLon, lat, lon float64) (x, y float64) {
	refLatRad := radians(refLat)
	latRad := radians(lat)

	y = EarthRadiusMeters * radians(lat-refLat)

	avgLatRad := (refLatRad + latRad) / 2
	x = EarthRadiusMeters * radians(lon-refLon) * math.Cos(avgLatRad)

	return x, y
}

// GreatCircleDistance returns the surface distance in meters between two
// points on a sphere of radius EarthRadiusMeters, using the Haversine formula.
// The result is symmetric in its arguments and lies in [0, π·R] for valid
// degree inputs. NaN inputs produce NaN.
func GreatCircleDistance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := radians(lat1)
	lat2Rad := radians(lat2)
	dLat := lat2Rad - lat1Rad
	dLon := radians(lon2) - radians(lon1)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat + math.Cos(lat1Rad)*math.Cos(lat2Rad)*sinLon*sinLon

	// Rounding can push a a hair above 1 for antipodal points.
	if a > 1 {
		a = 1
	}

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMeters * c
}
