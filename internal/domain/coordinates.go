package domain

import (
	"fmt"
	"strconv"
)

// Immutable geographic coordinates (longitude, latitude) in decimal degrees.
// Ranges are not enforced; callers supply sensible values.
type GeoPoint struct {
	Lon float64
	Lat float64
}

func NewGeoPoint(lon, lat float64) GeoPoint {
	return GeoPoint{Lon: lon, Lat: lat}
}

// Return coordinates as [lon, lat] for external API compatibility.
func (p GeoPoint) CoordsToList() []float64 { return []float64{p.Lon, p.Lat} }

// String renders the point in the same "(lon, lat)" form ParseGeoPoint accepts.
func (p GeoPoint) String() string {
	return fmt.Sprintf("(%s, %s)", formatDegrees(p.Lon), formatDegrees(p.Lat))
}

// OffsetFrom returns the signed east/north offset in meters of p relative to ref.
func (p GeoPoint) OffsetFrom(ref GeoPoint) (east, north float64) {
	return LocalOffset(ref.Lat, ref.Lon, p.Lat, p.Lon)
}

// DistanceTo returns the great-circle distance in meters between p and other.
func (p GeoPoint) DistanceTo(other GeoPoint) float64 {
	return GreatCircleDistance(p.Lat, p.Lon, other.Lat, other.Lon)
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
