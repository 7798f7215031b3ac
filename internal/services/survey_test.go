package services

import (
	"context"
	"errors"
	"survey-distance-service/internal/adapters/input"
	"survey-distance-service/internal/domain"
	"testing"
)

func TestMeasureSurveySample(t *testing.T) {
	s, err := MeasureSurvey(context.Background(), input.SampleCoordinates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Reference != input.SampleCoordinates[0] {
		t.Fatalf("reference = %+v, want %+v", s.Reference, input.SampleCoordinates[0])
	}
	if len(s.Measurements) != 3 {
		t.Fatalf("expected 3 measurements, got %d", len(s.Measurements))
	}

	for i, m := range s.Measurements {
		if m.Index != i+2 {
			t.Errorf("measurement %d index = %d, want %d", i, m.Index, i+2)
		}
		if m.Point != input.SampleCoordinates[i+1] {
			t.Errorf("measurement %d point = %+v, want %+v", i, m.Point, input.SampleCoordinates[i+1])
		}

		want := domain.GreatCircleDistance(s.Reference.Lat, s.Reference.Lon, m.Point.Lat, m.Point.Lon)
		if m.DistanceMeters != want {
			t.Errorf("measurement %d distance = %v, want %v", i, m.DistanceMeters, want)
		}
		x, y := domain.LocalOffset(s.Reference.Lat, s.Reference.Lon, m.Point.Lat, m.Point.Lon)
		if m.EastMeters != x || m.NorthMeters != y {
			t.Errorf("measurement %d offset = (%v, %v), want (%v, %v)", i, m.EastMeters, m.NorthMeters, x, y)
		}
	}
}

func TestMeasureSurveyKeepsOrder(t *testing.T) {
	points := []domain.GeoPoint{{Lon: 0, Lat: 0}}
	for i := 1; i <= 200; i++ {
		points = append(points, domain.GeoPoint{Lon: float64(i) * 0.0001, Lat: 0})
	}

	s, err := MeasureSurvey(context.Background(), points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prev := 0.0
	for i, m := range s.Measurements {
		if m.Point != points[i+1] {
			t.Fatalf("measurement %d point = %+v, want %+v", i, m.Point, points[i+1])
		}
		if m.DistanceMeters <= prev {
			t.Fatalf("measurement %d distance %v not greater than %v", i, m.DistanceMeters, prev)
		}
		prev = m.DistanceMeters
	}
}

func TestMeasureSurveyNotEnoughPoints(t *testing.T) {
	for _, points := range [][]domain.GeoPoint{nil, {{Lon: 1, Lat: 2}}} {
		_, err := MeasureSurvey(context.Background(), points)
		if !errors.Is(err, ErrNotEnoughPoints) {
			t.Errorf("MeasureSurvey(%d points) err = %v, want ErrNotEnoughPoints", len(points), err)
		}
	}
}

func TestMeasureSurveyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := MeasureSurvey(ctx, input.SampleCoordinates)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestCollectSurvey(t *testing.T) {
	src := input.NewTextSource([]string{"(120.80157568, 30.36124268)", "(120.80154368, 30.36122002)"})

	s, err := CollectSurvey(context.Background(), src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Measurements) != 1 {
		t.Fatalf("expected 1 measurement, got %d", len(s.Measurements))
	}

	_, err = CollectSurvey(context.Background(), input.NewTextSource([]string{"(1, 2)", "bad"}))
	if !errors.Is(err, domain.ErrParseFailure) {
		t.Fatalf("err = %v, want ErrParseFailure", err)
	}
}

func TestCheckSurveySize(t *testing.T) {
	if err := CheckSurveySize(10, 0); err != nil {
		t.Errorf("unlimited: unexpected error %v", err)
	}
	if err := CheckSurveySize(10, 10); err != nil {
		t.Errorf("at limit: unexpected error %v", err)
	}
	if err := CheckSurveySize(11, 10); !errors.Is(err, ErrTooManyPoints) {
		t.Errorf("over limit: err = %v, want ErrTooManyPoints", err)
	}
}
