// Package report renders survey results for the console.
package report

import (
	"fmt"
	"io"
	"strings"
	"survey-distance-service/internal/domain"
)

const (
	width = 60

	// Distances above this switch from millimeters to FormatDistance.
	adaptiveThresholdMeters = 1000
)

var (
	heavyRule = strings.Repeat("=", width)
	lightRule = strings.Repeat("-", width)
)

func Millimeters(meters float64) float64 { return meters * 1000 }

// FormatDistance renders meters below 1000 m and kilometers from there on,
// both with two decimals.
func FormatDistance(meters float64) string {
	if meters < adaptiveThresholdMeters {
		return fmt.Sprintf("%.2f m", meters)
	}
	return fmt.Sprintf("%.2f km", meters/1000)
}

// errWriter keeps the first write error so rendering code can stay linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func Banner(w io.Writer, title string) error {
	ew := &errWriter{w: w}
	ew.printf("%s\n%s\n%s\n", heavyRule, title, heavyRule)
	return ew.err
}

// WriteOffsets renders the east-west (X) and north-south (Y) offset of every
// measurement in millimeters, with meters alongside.
func WriteOffsets(w io.Writer, s *domain.Survey) error {
	ew := &errWriter{w: w}

	ew.printf("\nReference: %s\n\n", s.Reference)
	ew.printf("%s\n", lightRule)

	for _, m := range s.Measurements {
		ew.printf("Point %d: %s\n", m.Index, m.Point)
		ew.printf("  X (east-west):   %10.2f mm (%10.6f m)\n", Millimeters(m.EastMeters), m.EastMeters)
		ew.printf("  Y (north-south): %10.2f mm (%10.6f m)\n", Millimeters(m.NorthMeters), m.NorthMeters)
		ew.printf("\n")
	}

	return ew.err
}

// WriteDistances renders the great-circle distance of every measurement to
// the reference in millimeters, or adaptively once it exceeds 1000 m.
func WriteDistances(w io.Writer, s *domain.Survey) error {
	ew := &errWriter{w: w}

	ew.printf("\n%s\nResults\n%s\n", heavyRule, heavyRule)
	ew.printf("Reference: %s\n\n", s.Reference)

	for _, m := range s.Measurements {
		ew.printf("Point %d: %s\n", m.Index, m.Point)
		if m.DistanceMeters > adaptiveThresholdMeters {
			ew.printf("  -> distance to reference: %s\n\n", FormatDistance(m.DistanceMeters))
			continue
		}
		ew.printf("  -> distance to reference: %.2f mm (%.6f m)\n\n", Millimeters(m.DistanceMeters), m.DistanceMeters)
	}

	return ew.err
}
