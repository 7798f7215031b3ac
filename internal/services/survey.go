package services

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"survey-distance-service/internal/domain"
	"survey-distance-service/internal/platform/obs"
	"survey-distance-service/internal/ports"

	"github.com/sourcegraph/conc/iter"
)

var (
	// ErrNotEnoughPoints is returned when a survey has no comparison point.
	ErrNotEnoughPoints = errors.New("at least 2 points are required (reference + 1 comparison point)")
	// ErrTooManyPoints is returned when a survey exceeds the configured limit.
	ErrTooManyPoints = errors.New("too many points")
)

// Measure every point against the first one, which becomes the reference.
//
// Measurements are independent pure computations, so they are fanned out
// across GOMAXPROCS workers; the result keeps input order.
func MeasureSurvey(ctx context.Context, points []domain.GeoPoint) (s *domain.Survey, err error) {
	defer obs.Time(ctx, "survey.Measure")(&err)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("measure survey: %w", err)
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("measure survey: got %d point(s): %w", len(points), ErrNotEnoughPoints)
	}

	ref := points[0]

	// Input position 1 is the reference, so comparison points start at 2.
	indexed := make([]indexedPoint, len(points)-1)
	for i, p := range points[1:] {
		indexed[i] = indexedPoint{index: i + 2, point: p}
	}

	mapper := iter.Mapper[indexedPoint, domain.Measurement]{
		MaxGoroutines: runtime.GOMAXPROCS(0),
	}
	measurements := mapper.Map(indexed, func(ip *indexedPoint) domain.Measurement {
		return domain.Measure(ip.index, ref, ip.point)
	})

	return &domain.Survey{
		Reference:    ref,
		Measurements: measurements,
	}, nil
}

type indexedPoint struct {
	index int
	point domain.GeoPoint
}

// Collect points from src and measure them.
func CollectSurvey(ctx context.Context, src ports.PointSource) (*domain.Survey, error) {
	points, err := src.Points(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect survey: %w", err)
	}

	s, err := MeasureSurvey(ctx, points)
	if err != nil {
		return nil, fmt.Errorf("collect survey: %w", err)
	}

	return s, nil
}

// CheckSurveySize enforces an upper bound on the number of points; max <= 0 disables it.
func CheckSurveySize(n, limit int) error {
	if limit > 0 && n > limit {
		return fmt.Errorf("survey has %d points, limit is %d: %w", n, limit, ErrTooManyPoints)
	}
	return nil
}
