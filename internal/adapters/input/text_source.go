package input

import (
	"context"
	"fmt"
	"survey-distance-service/internal/domain"
)

// TextSource parses each "(lon, lat)" string in order.
// Unlike ConsoleSource there is nobody to re-prompt, so the first malformed
// coordinate fails the whole set.
type TextSource struct {
	lines []string
}

func NewTextSource(lines []string) *TextSource {
	return &TextSource{lines: lines}
}

func (s *TextSource) Points(ctx context.Context) ([]domain.GeoPoint, error) {
	points := make([]domain.GeoPoint, 0, len(s.lines))
	for i, line := range s.lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p, err := domain.ParseGeoPoint(line)
		if err != nil {
			return nil, fmt.Errorf("text source: point %d: %w", i+1, err)
		}
		points = append(points, p)
	}

	return points, nil
}
