package models

// Location is a latitude/longitude pair sent by the frontend.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RouteRequest asks for driving directions between two points.
type RouteRequest struct {
	OriginLat float64 `json:"origin_lat"`
	OriginLng float64 `json:"origin_lng"`
	DestLat   float64 `json:"dest_lat"`
	DestLng   float64 `json:"dest_lng"`
}

// NGO describes one donation partner near the store.
type NGO struct {
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Lat     float64  `json:"lat"`
	Lng     float64  `json:"lng"`
	PlaceID string   `json:"place_id"`
	Rating  float64  `json:"rating"`
	Types   []string `json:"types"`
}

// NGOList is the response for a nearby-partner search.
type NGOList struct {
	NGOs  []NGO  `json:"ngos"`
	Total int    `json:"total"`
	Note  string `json:"note,omitempty"`
}

// RouteStep is one navigation instruction along a route.
type RouteStep struct {
	Distance    string `json:"distance"`
	Duration    string `json:"duration"`
	Instruction string `json:"instruction"`
}

// RouteSummary aggregates a computed route.
type RouteSummary struct {
	TotalDistance string `json:"total_distance"`
	TotalDuration string `json:"total_duration"`
	TotalSteps    int    `json:"total_steps"`
}

// Route is the response for a route computation.
type Route struct {
	Polyline string       `json:"polyline"`
	Steps    []RouteStep  `json:"steps"`
	Summary  RouteSummary `json:"summary"`
	Note     string       `json:"note,omitempty"`
}
