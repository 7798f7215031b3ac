package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"survey-distance-service/internal/api/dto"
	"survey-distance-service/internal/domain"
	"survey-distance-service/internal/platform/metrics"
	"survey-distance-service/internal/report"
	"survey-distance-service/internal/services"

	"github.com/go-playground/validator/v10"
)

// MeasureHandler exposes the offset, distance and survey computations.
type MeasureHandler struct {
	Validate        *validator.Validate
	Metrics         *metrics.Metrics
	MaxBodyBytes    int64
	MaxSurveyPoints int
}

// Offset returns the signed east/north offset of point from reference.
func (h *MeasureHandler) Offset(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.PairRequest
	if !decodeJSON(w, r, h.MaxBodyBytes, h.Validate, &req) {
		return
	}

	ref, p := toGeoPoint(req.Reference), toGeoPoint(req.Point)
	m := domain.Measure(2, ref, p)
	if !m.Finite() {
		writeError(w, r, http.StatusUnprocessableEntity, "result is not a finite number")
		return
	}
	h.Metrics.AddMeasurements(metrics.KindOffset, 1)

	writeJSON(w, r, http.StatusOK, dto.OffsetResponse{
		Reference:        toPointResponse(ref),
		Point:            toPointResponse(p),
		EastMeters:       m.EastMeters,
		NorthMeters:      m.NorthMeters,
		EastMillimeters:  report.Millimeters(m.EastMeters),
		NorthMillimeters: report.Millimeters(m.NorthMeters),
	})
}

// Distance returns the great-circle distance between reference and point.
func (h *MeasureHandler) Distance(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.PairRequest
	if !decodeJSON(w, r, h.MaxBodyBytes, h.Validate, &req) {
		return
	}

	ref, p := toGeoPoint(req.Reference), toGeoPoint(req.Point)
	m := domain.Measure(2, ref, p)
	if !m.Finite() {
		writeError(w, r, http.StatusUnprocessableEntity, "result is not a finite number")
		return
	}
	h.Metrics.AddMeasurements(metrics.KindDistance, 1)

	writeJSON(w, r, http.StatusOK, dto.DistanceResponse{
		Reference:           toPointResponse(ref),
		Point:               toPointResponse(p),
		DistanceMeters:      m.DistanceMeters,
		DistanceMillimeters: report.Millimeters(m.DistanceMeters),
		Formatted:           report.FormatDistance(m.DistanceMeters),
	})
}

// Survey measures every point against the first one.
func (h *MeasureHandler) Survey(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.SurveyRequest
	if !decodeJSON(w, r, h.MaxBodyBytes, h.Validate, &req) {
		return
	}

	if len(req.Points) > 0 && len(req.Coordinates) > 0 {
		writeError(w, r, http.StatusBadRequest, "provide either points or coordinates, not both")
		return
	}

	points, err := h.surveyPoints(req)
	if err != nil {
		if errors.Is(err, domain.ErrParseFailure) {
			h.Metrics.IncParseFailures()
		}
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := services.CheckSurveySize(len(points), h.MaxSurveyPoints); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	s, err := services.MeasureSurvey(r.Context(), points)
	if err != nil {
		if errors.Is(err, services.ErrNotEnoughPoints) {
			writeError(w, r, http.StatusBadRequest, services.ErrNotEnoughPoints.Error())
			return
		}
		slog.ErrorContext(r.Context(), "measure survey failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.SurveyResponse{
		Reference:    toPointResponse(s.Reference),
		Measurements: make([]dto.MeasurementResponse, 0, len(s.Measurements)),
	}
	for _, m := range s.Measurements {
		if !m.Finite() {
			writeError(w, r, http.StatusUnprocessableEntity, fmt.Sprintf("point %d: result is not a finite number", m.Index))
			return
		}
		res.Measurements = append(res.Measurements, dto.MeasurementResponse{
			Index:               m.Index,
			Point:               toPointResponse(m.Point),
			EastMeters:          m.EastMeters,
			NorthMeters:         m.NorthMeters,
			DistanceMeters:      m.DistanceMeters,
			DistanceMillimeters: report.Millimeters(m.DistanceMeters),
			Formatted:           report.FormatDistance(m.DistanceMeters),
		})
	}
	h.Metrics.AddMeasurements(metrics.KindSurvey, len(res.Measurements))

	writeJSON(w, r, http.StatusOK, res)
}

func (h *MeasureHandler) surveyPoints(req dto.SurveyRequest) ([]domain.GeoPoint, error) {
	if len(req.Coordinates) == 0 {
		points := make([]domain.GeoPoint, 0, len(req.Points))
		for i := range req.Points {
			points = append(points, toGeoPoint(&req.Points[i]))
		}
		return points, nil
	}

	points := make([]domain.GeoPoint, 0, len(req.Coordinates))
	for i, c := range req.Coordinates {
		p, err := domain.ParseGeoPoint(c)
		if err != nil {
			return nil, fmt.Errorf("coordinates[%d]: %w", i, err)
		}
		points = append(points, p)
	}
	return points, nil
}

func toGeoPoint(p *dto.PointRequest) domain.GeoPoint {
	return domain.NewGeoPoint(*p.Lon, *p.Lat)
}

func toPointResponse(p domain.GeoPoint) dto.PointResponse {
	return dto.PointResponse{Lon: p.Lon, Lat: p.Lat, Coordinates: p.CoordsToList()}
}
