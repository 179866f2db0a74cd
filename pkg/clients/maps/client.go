// Package maps proxies the Google Places (New) and Routes APIs to locate
// donation partners and compute delivery routes. With no API key configured,
// or when the upstream call fails, it serves mock data so the donation
// workflow stays usable offline.
package maps

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/resqcart/aiml-service/internal/domain/models"
)

const (
	placesSearchURL = "https://places.googleapis.com/v1/places:searchNearby"
	routesURL       = "https://routes.googleapis.com/directions/v2:computeRoutes"

	searchRadiusMeters = 15000.0

	mockKeyMissingNote = "Using mock data - Google Maps API key not configured"
	mockAPIErrorNote   = "Using mock data - Google Maps API error occurred"
)

// ErrNoRoutes is returned when the Routes API answers without any route.
var ErrNoRoutes = errors.New("no routes found")

// Client calls the Google mapping APIs.
type Client struct {
	httpClient *resty.Client
	apiKey     string
}

// NewClient builds a maps client. An empty API key is allowed; the client
// then always serves mock data.
func NewClient(apiKey string) *Client {
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetTimeout(10 * time.Second)

	return &Client{httpClient: client, apiKey: apiKey}
}

// Configured reports whether a real API key is present.
func (c *Client) Configured() bool { return c.apiKey != "" }

type placesSearchRequest struct {
	LocationRestriction struct {
		Circle struct {
			Center struct {
				Latitude  float64 `json:"latitude"`
				Longitude float64 `json:"longitude"`
			} `json:"center"`
			Radius float64 `json:"radius"`
		} `json:"circle"`
	} `json:"locationRestriction"`
	IncludedTypes []string `json:"includedTypes"`
	TextQuery     string   `json:"textQuery"`
}

type placesSearchResponse struct {
	Places []struct {
		ID          string `json:"id"`
		DisplayName struct {
			Text string `json:"text"`
		} `json:"displayName"`
		FormattedAddress string `json:"formattedAddress"`
		Location         struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"location"`
		Rating float64  `json:"rating"`
		Types  []string `json:"types"`
	} `json:"places"`
}

// NearbyNGOs searches for food banks and charities around the location.
// Upstream failures degrade to mock data rather than erroring.
func (c *Client) NearbyNGOs(ctx context.Context, loc models.Location) models.NGOList {
	if !c.Configured() {
		return mockNGOList(loc, mockKeyMissingNote)
	}

	var payload placesSearchRequest
	payload.LocationRestriction.Circle.Center.Latitude = loc.Lat
	payload.LocationRestriction.Circle.Center.Longitude = loc.Lng
	payload.LocationRestriction.Circle.Radius = searchRadiusMeters
	payload.IncludedTypes = []string{"food"}
	payload.TextQuery = "food bank charity ngo food pantry"

	result := new(placesSearchResponse)
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("X-Goog-Api-Key", c.apiKey).
		SetHeader("X-Goog-FieldMask", "places.displayName,places.formattedAddress,places.location,places.rating,places.types,places.id").
		SetBody(payload).
		SetResult(result).
		Post(placesSearchURL)
	if err != nil || resp.StatusCode() >= http.StatusBadRequest {
		return mockNGOList(loc, mockAPIErrorNote)
	}

	ngos := make([]models.NGO, 0, len(result.Places))
	for _, place := range result.Places {
		name := place.DisplayName.Text
		if name == "" {
			name = "Unknown NGO"
		}
		address := place.FormattedAddress
		if address == "" {
			address = "Address not available"
		}

		ngos = append(ngos, models.NGO{
			Name:    name,
			Address: address,
			Lat:     place.Location.Latitude,
			Lng:     place.Location.Longitude,
			PlaceID: place.ID,
			Rating:  place.Rating,
			Types:   place.Types,
		})
	}

	return models.NGOList{NGOs: ngos, Total: len(ngos)}
}

type routesRequest struct {
	Origin            latLngWrapper `json:"origin"`
	Destination       latLngWrapper `json:"destination"`
	TravelMode        string        `json:"travelMode"`
	RoutingPreference string        `json:"routingPreference"`
}

type latLngWrapper struct {
	Location struct {
		LatLng struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"latLng"`
	} `json:"location"`
}

type routesResponse struct {
	Routes []struct {
		Polyline struct {
			EncodedPolyline string `json:"encodedPolyline"`
		} `json:"polyline"`
		Legs []struct {
			DistanceMeters int    `json:"distanceMeters"`
			Duration       string `json:"duration"`
			Steps          []struct {
				DistanceMeters        int    `json:"distanceMeters"`
				Duration              string `json:"duration"`
				NavigationInstruction struct {
					Instructions string `json:"instructions"`
				} `json:"navigationInstruction"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

// Route computes driving directions between two points. Network and upstream
// failures degrade to a straight-line mock estimate; an empty result surfaces
// ErrNoRoutes.
func (c *Client) Route(ctx context.Context, req models.RouteRequest) (models.Route, error) {
	if !c.Configured() {
		return mockRoute(req, mockKeyMissingNote), nil
	}

	var payload routesRequest
	payload.Origin.Location.LatLng.Latitude = req.OriginLat
	payload.Origin.Location.LatLng.Longitude = req.OriginLng
	payload.Destination.Location.LatLng.Latitude = req.DestLat
	payload.Destination.Location.LatLng.Longitude = req.DestLng
	payload.TravelMode = "DRIVE"
	payload.RoutingPreference = "TRAFFIC_AWARE"

	result := new(routesResponse)
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("X-Goog-Api-Key", c.apiKey).
		SetHeader("X-Goog-FieldMask", "routes.duration,routes.distanceMeters,routes.polyline.encodedPolyline,routes.legs.steps").
		SetBody(payload).
		SetResult(result).
		Post(routesURL)
	if err != nil || resp.StatusCode() >= http.StatusBadRequest {
		return mockRoute(req, mockAPIErrorNote), nil
	}

	if len(result.Routes) == 0 {
		return models.Route{}, ErrNoRoutes
	}

	route := result.Routes[0]

	var steps []models.RouteStep
	var totalDistanceMeters int
	var totalDurationSeconds int

	for _, leg := range route.Legs {
		totalDistanceMeters += leg.DistanceMeters
		totalDurationSeconds += parseDurationSeconds(leg.Duration)

		for _, step := range leg.Steps {
			instruction := step.NavigationInstruction.Instructions
			if instruction == "" {
				instruction = "Continue"
			}
			steps = append(steps, models.RouteStep{
				Distance:    fmt.Sprintf("%.1f km", float64(step.DistanceMeters)/1000),
				Duration:    fmt.Sprintf("%d min", parseDurationSeconds(step.Duration)/60),
				Instruction: instruction,
			})
		}
	}

	return models.Route{
		Polyline: route.Polyline.EncodedPolyline,
		Steps:    steps,
		Summary: models.RouteSummary{
			TotalDistance: fmt.Sprintf("%.1f km", float64(totalDistanceMeters)/1000),
			TotalDuration: fmt.Sprintf("%d min", totalDurationSeconds/60),
			TotalSteps:    len(steps),
		},
	}, nil
}

// parseDurationSeconds reads the Routes API duration format, e.g. "1265s".
func parseDurationSeconds(s string) int {
	seconds, err := strconv.Atoi(strings.TrimSuffix(s, "s"))
	if err != nil {
		return 0
	}
	return seconds
}

func mockNGOList(loc models.Location, note string) models.NGOList {
	ngos := []models.NGO{
		{
			Name:    "Community Food Bank",
			Address: "123 Main Street, Downtown",
			Lat:     loc.Lat + 0.01,
			Lng:     loc.Lng + 0.01,
			PlaceID: "mock_place_1",
			Rating:  4.5,
			Types:   []string{"food", "charity"},
		},
		{
			Name:    "Hope Kitchen",
			Address: "456 Oak Avenue, Westside",
			Lat:     loc.Lat - 0.008,
			Lng:     loc.Lng + 0.015,
			PlaceID: "mock_place_2",
			Rating:  4.2,
			Types:   []string{"food", "charity"},
		},
		{
			Name:    "Second Harvest Food Bank",
			Address: "789 Pine Street, Eastside",
			Lat:     loc.Lat + 0.012,
			Lng:     loc.Lng - 0.005,
			PlaceID: "mock_place_3",
			Rating:  4.7,
			Types:   []string{"food", "charity"},
		},
		{
			Name:    "Neighborhood Pantry",
			Address: "321 Elm Street, Northside",
			Lat:     loc.Lat - 0.015,
			Lng:     loc.Lng - 0.008,
			PlaceID: "mock_place_4",
			Rating:  4.0,
			Types:   []string{"food", "charity"},
		},
	}

	return models.NGOList{NGOs: ngos, Total: len(ngos), Note: note}
}

func mockRoute(req models.RouteRequest, note string) models.Route {
	latDiff := req.DestLat - req.OriginLat
	lngDiff := req.DestLng - req.OriginLng

	// Rough conversion: one degree is about 111 km, two minutes per km.
	distanceKm := math.Sqrt(latDiff*latDiff+lngDiff*lngDiff) * 111
	durationMin := int(distanceKm * 2)

	steps := []models.RouteStep{
		{
			Distance:    fmt.Sprintf("%.1f km", distanceKm),
			Duration:    fmt.Sprintf("%d min", durationMin),
			Instruction: fmt.Sprintf("Head towards %.4f, %.4f", req.DestLat, req.DestLng),
		},
	}

	return models.Route{
		Polyline: "",
		Steps:    steps,
		Summary: models.RouteSummary{
			TotalDistance: fmt.Sprintf("%.1f km", distanceKm),
			TotalDuration: fmt.Sprintf("%d min", durationMin),
			TotalSteps:    1,
		},
		Note: note,
	}
}
