package maps

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resqcart/aiml-service/internal/domain/models"
)

func TestNearbyNGOsWithoutKeyServesMockData(t *testing.T) {
	client := NewClient("")
	assert.False(t, client.Configured())

	list := client.NearbyNGOs(context.Background(), models.Location{Lat: 40.0, Lng: -74.0})

	require.Len(t, list.NGOs, 4)
	assert.Equal(t, 4, list.Total)
	assert.Equal(t, "Using mock data - Google Maps API key not configured", list.Note)

	first := list.NGOs[0]
	assert.Equal(t, "Community Food Bank", first.Name)
	assert.InDelta(t, 40.01, first.Lat, 1e-9)
	assert.InDelta(t, -73.99, first.Lng, 1e-9)
	assert.Equal(t, "mock_place_1", first.PlaceID)
}

func TestRouteWithoutKeyServesMockEstimate(t *testing.T) {
	client := NewClient("")

	route, err := client.Route(context.Background(), models.RouteRequest{
		OriginLat: 0, OriginLng: 0,
		DestLat: 0.01, DestLng: 0.01,
	})
	require.NoError(t, err)

	assert.Equal(t, "1.6 km", route.Summary.TotalDistance)
	assert.Equal(t, "3 min", route.Summary.TotalDuration)
	assert.Equal(t, 1, route.Summary.TotalSteps)
	require.Len(t, route.Steps, 1)
	assert.Equal(t, "Head towards 0.0100, 0.0100", route.Steps[0].Instruction)
	assert.Equal(t, "Using mock data - Google Maps API key not configured", route.Note)
}

func TestParseDurationSeconds(t *testing.T) {
	assert.Equal(t, 1265, parseDurationSeconds("1265s"))
	assert.Equal(t, 0, parseDurationSeconds("garbage"))
	assert.Equal(t, 0, parseDurationSeconds(""))
}
