package api

import (
	"net/http"
	"survey-distance-service/internal/api/handlers"
	"survey-distance-service/internal/platform/metrics"
)

// Options configure NewRouter. A nil Metrics disables /metrics and request metrics.
type Options struct {
	Metrics         *metrics.Metrics
	MetricsPath     string
	MaxBodyBytes    int64
	MaxSurveyPoints int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
func NewRouter(opts Options) http.Handler {
	mux := http.NewServeMux()

	measure := &handlers.MeasureHandler{
		Validate:        handlers.NewValidator(),
		Metrics:         opts.Metrics,
		MaxBodyBytes:    opts.MaxBodyBytes,
		MaxSurveyPoints: opts.MaxSurveyPoints,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/v1/offset", measure.Offset)
	mux.HandleFunc("/v1/distance", measure.Distance)
	mux.HandleFunc("/v1/survey", measure.Survey)

	if opts.Metrics != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		mux.Handle(path, opts.Metrics.Handler())
	}

	return requestIDMiddleware(accessMiddleware(opts.Metrics, mux))
}
