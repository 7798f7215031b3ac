package ports

import (
	"context"
	"survey-distance-service/internal/domain"
)

// Port: a boundary for collecting survey coordinates from an input channel.
type PointSource interface {
	// Return the reference point followed by zero or more comparison points.
	Points(ctx context.Context) ([]domain.GeoPoint, error)
}
