package geo

import (
	"math"
	"testing"

	"github.com/streetbites/streetbites_backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_Identity(t *testing.T) {
	point := models.Coordinate{Latitude: 47.4979, Longitude: 19.0402}

	assert.Zero(t, DistanceMeters(point, point))
}

func TestDistanceMeters_Symmetry(t *testing.T) {
	pairs := [][2]models.Coordinate{
		{{Latitude: 40.7128, Longitude: -74.0060}, {Latitude: 40.7306, Longitude: -73.9352}},
		{{Latitude: -33.8688, Longitude: 151.2093}, {Latitude: 51.5074, Longitude: -0.1278}},
		{{Latitude: 0, Longitude: 0}, {Latitude: 0.001, Longitude: 0.001}},
	}

	for _, pair := range pairs {
		assert.Equal(t, DistanceMeters(pair[0], pair[1]), DistanceMeters(pair[1], pair[0]))
	}
}

func TestDistanceMeters_KnownValue(t *testing.T) {
	// Нью-Йорк -> Бруклин, около 6.29 км по сферической модели
	newYork := models.Coordinate{Latitude: 40.7128, Longitude: -74.0060}
	brooklyn := models.Coordinate{Latitude: 40.7306, Longitude: -73.9352}

	dist := DistanceMeters(newYork, brooklyn)

	assert.InDelta(t, 6286.0, dist, 15.0)
}

func TestDistanceMeters_NonNegative(t *testing.T) {
	a := models.Coordinate{Latitude: -45.0, Longitude: 170.0}
	b := models.Coordinate{Latitude: 45.0, Longitude: -170.0}

	assert.GreaterOrEqual(t, DistanceMeters(a, b), 0.0)
}

func TestIsWithinRadius_InclusiveBoundary(t *testing.T) {
	center := models.Coordinate{Latitude: 0, Longitude: 0}
	edge := pointMetersNorth(center, 100)
	dist := DistanceMeters(center, edge)

	// Граница радиуса включительно: точка на самом радиусе проходит
	assert.True(t, IsWithinRadius(center, edge, dist))
	assert.False(t, IsWithinRadius(center, edge, dist-1))
}

// pointMetersNorth строит точку в meters метрах к северу от origin
// по той же сферической модели, что и DistanceMeters.
func pointMetersNorth(origin models.Coordinate, meters float64) models.Coordinate {
	return models.Coordinate{
		Latitude:  origin.Latitude + meters/earthRadiusMeters*180/math.Pi,
		Longitude: origin.Longitude,
	}
}
