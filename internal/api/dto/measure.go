package dto

// Pointers distinguish a missing coordinate from an explicit zero.
type PointRequest struct {
	Lon *float64 `json:"lon" validate:"required"`
	Lat *float64 `json:"lat" validate:"required"`
}

type PairRequest struct {
	Reference *PointRequest `json:"reference" validate:"required"`
	Point     *PointRequest `json:"point" validate:"required"`
}

// SurveyRequest carries either structured points or "(lon, lat)" strings.
// The first entry is the reference.
type SurveyRequest struct {
	Points      []PointRequest `json:"points" validate:"omitempty,dive"`
	Coordinates []string       `json:"coordinates"`
}

// Coordinates repeats the point as [lon, lat] for GeoJSON-style clients.
type PointResponse struct {
	Lon         float64   `json:"lon"`
	Lat         float64   `json:"lat"`
	Coordinates []float64 `json:"coordinates"`
}

type OffsetResponse struct {
	Reference        PointResponse `json:"reference"`
	Point            PointResponse `json:"point"`
	EastMeters       float64       `json:"east_meters"`
	NorthMeters      float64       `json:"north_meters"`
	EastMillimeters  float64       `json:"east_millimeters"`
	NorthMillimeters float64       `json:"north_millimeters"`
}

type DistanceResponse struct {
	Reference           PointResponse `json:"reference"`
	Point               PointResponse `json:"point"`
	DistanceMeters      float64       `json:"distance_meters"`
	DistanceMillimeters float64       `json:"distance_millimeters"`
	Formatted           string        `json:"formatted"`
}

type MeasurementResponse struct {
	Index               int           `json:"index"`
	Point               PointResponse `json:"point"`
	EastMeters          float64       `json:"east_meters"`
	NorthMeters         float64       `json:"north_meters"`
	DistanceMeters      float64       `json:"distance_meters"`
	DistanceMillimeters float64       `json:"distance_millimeters"`
	Formatted           string        `json:"formatted"`
}

type SurveyResponse struct {
	Reference    PointResponse         `json:"reference"`
	Measurements []MeasurementResponse `json:"measurements"`
}
