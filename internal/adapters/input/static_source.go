package input

import (
	"context"
	"survey-distance-service/internal/domain"
)

// SampleCoordinates are four GPS fixes of the same spot; the first is the reference.
var SampleCoordinates = []domain.GeoPoint{
	{Lon: 120.80157568, Lat: 30.36124268},
	{Lon: 120.80154368, Lat: 30.36122002},
	{Lon: 120.80157603, Lat: 30.36123931},
	{Lon: 120.80157603, Lat: 30.36123929},
}

// StaticSource serves a fixed, already-parsed set of points.
type StaticSource struct {
	points []domain.GeoPoint
}

func NewStaticSource(points ...domain.GeoPoint) *StaticSource {
	cp := make([]domain.GeoPoint, len(points))
	copy(cp, points)
	return &StaticSource{points: cp}
}

func (s *StaticSource) Points(ctx context.Context) ([]domain.GeoPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.GeoPoint, len(s.points))
	copy(out, s.points)
	return out, nil
}
