package geo

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/streetbites/streetbites_backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-01-01 - понедельник
func mondayAt(hour, minute int) time.Time {
	return time.Date(2024, time.January, 1, hour, minute, 0, 0, time.UTC)
}

func mondayEntry(coords *models.Coordinate) models.ScheduledLocation {
	return models.ScheduledLocation{
		ID:           uuid.New(),
		CompanyID:    uuid.New(),
		DayOfWeek:    models.Monday,
		LocationName: "City Park",
		Address:      "Main square 1",
		Coordinates:  coords,
		StartTime:    "09:00",
		EndTime:      "17:00",
		Attendees:    []string{},
	}
}

func TestParseClock(t *testing.T) {
	minutes, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, minutes)

	minutes, err = ParseClock("00:00")
	require.NoError(t, err)
	assert.Zero(t, minutes)

	for _, bad := range []string{"", "24:00", "12:60", "12", "12:0x", "noon", "1:2:3", "9:00", "+9:30", "09:3", " 9:00"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, "expected error for %q", bad)
	}
}

func TestIsScheduleActiveAt_DayGating(t *testing.T) {
	entry := mondayEntry(nil)

	// Вторник 12:00 - день не совпал, время не важно
	tuesdayNoon := time.Date(2024, time.January, 2, 12, 0, 0, 0, time.UTC)
	assert.False(t, IsScheduleActiveAt(entry, tuesdayNoon))
}

func TestIsScheduleActiveAt_TimeGating(t *testing.T) {
	entry := mondayEntry(nil)

	assert.False(t, IsScheduleActiveAt(entry, mondayAt(8, 59)))
	assert.True(t, IsScheduleActiveAt(entry, mondayAt(9, 0)))
	assert.True(t, IsScheduleActiveAt(entry, mondayAt(12, 30)))
	assert.True(t, IsScheduleActiveAt(entry, mondayAt(17, 0)))
	assert.False(t, IsScheduleActiveAt(entry, mondayAt(17, 1)))
}

func TestIsScheduleActiveAt_DegenerateWindowNeverActive(t *testing.T) {
	// end < start - это не переход через полночь, а всегда закрытое окно
	entry := mondayEntry(nil)
	entry.StartTime = "22:00"
	entry.EndTime = "02:00"

	assert.False(t, IsScheduleActiveAt(entry, mondayAt(23, 0)))
	assert.False(t, IsScheduleActiveAt(entry, mondayAt(1, 0)))
	assert.False(t, IsScheduleActiveAt(entry, mondayAt(22, 0)))
}

func TestIsScheduleActiveAt_MalformedTimeFailsClosed(t *testing.T) {
	entry := mondayEntry(nil)
	entry.StartTime = "garbage"

	assert.False(t, IsScheduleActiveAt(entry, mondayAt(12, 0)))

	entry = mondayEntry(nil)
	entry.EndTime = "25:99"
	assert.False(t, IsScheduleActiveAt(entry, mondayAt(12, 0)))
}

func TestFindActiveNearby_EmitsNotification(t *testing.T) {
	userLocation := models.Coordinate{Latitude: 47.4979, Longitude: 19.0402}
	near := pointMetersNorth(userLocation, 300)
	entry := mondayEntry(&near)
	business := &models.Business{
		ID:   uuid.New(),
		Name: "Taco Truck",
		ScheduledLocations: []models.ScheduledLocation{entry},
	}

	notifications := FindActiveNearby([]*models.Business{business}, userLocation, mondayAt(12, 0), 500)

	require.Len(t, notifications, 1)
	assert.Equal(t, business.ID, notifications[0].BusinessID)
	assert.Equal(t, "Taco Truck", notifications[0].BusinessName)
	assert.Equal(t, entry.ID, notifications[0].ScheduledLocationID)
	assert.Equal(t, "City Park", notifications[0].LocationName)
	assert.InDelta(t, 300, notifications[0].DistanceMeters, 1)
	assert.Contains(t, notifications[0].Message, "Taco Truck")
}

func TestFindActiveNearby_MissingCoordinatesFailClosed(t *testing.T) {
	// Запись без координат никогда не попадает в выдачу, даже активная по времени
	userLocation := models.Coordinate{Latitude: 47.4979, Longitude: 19.0402}
	business := &models.Business{
		ID:                 uuid.New(),
		Name:               "No Coords Truck",
		ScheduledLocations: []models.ScheduledLocation{mondayEntry(nil)},
	}

	notifications := FindActiveNearby([]*models.Business{business}, userLocation, mondayAt(12, 0), 500)

	assert.Empty(t, notifications)
}

func TestFindActiveNearby_SkipsInactiveWindow(t *testing.T) {
	userLocation := models.Coordinate{Latitude: 47.4979, Longitude: 19.0402}
	near := pointMetersNorth(userLocation, 100)
	business := &models.Business{
		ID:                 uuid.New(),
		Name:               "Closed Truck",
		ScheduledLocations: []models.ScheduledLocation{mondayEntry(&near)},
	}

	notifications := FindActiveNearby([]*models.Business{business}, userLocation, mondayAt(8, 0), 500)

	assert.Empty(t, notifications)
}

func TestFindActiveNearby_SkipsBeyondRadius(t *testing.T) {
	userLocation := models.Coordinate{Latitude: 47.4979, Longitude: 19.0402}
	far := pointMetersNorth(userLocation, 600)
	business := &models.Business{
		ID:                 uuid.New(),
		Name:               "Far Truck",
		ScheduledLocations: []models.ScheduledLocation{mondayEntry(&far)},
	}

	notifications := FindActiveNearby([]*models.Business{business}, userLocation, mondayAt(12, 0), 500)

	assert.Empty(t, notifications)
}

func TestFindActiveNearby_NoDuplicates(t *testing.T) {
	userLocation := models.Coordinate{Latitude: 47.4979, Longitude: 19.0402}
	near := pointMetersNorth(userLocation, 200)
	first := mondayEntry(&near)
	second := mondayEntry(&near)
	business := &models.Business{
		ID:                 uuid.New(),
		Name:               "Busy Truck",
		ScheduledLocations: []models.ScheduledLocation{first, second},
	}

	notifications := FindActiveNearby([]*models.Business{business}, userLocation, mondayAt(12, 0), 500)

	// Каждая запись обходится один раз: пары (бизнес, запись) не повторяются
	require.Len(t, notifications, 2)
	seen := map[uuid.UUID]bool{}
	for _, n := range notifications {
		assert.False(t, seen[n.ScheduledLocationID])
		seen[n.ScheduledLocationID] = true
	}
}

func TestFindActiveNearby_Idempotent(t *testing.T) {
	userLocation := models.Coordinate{Latitude: 47.4979, Longitude: 19.0402}
	near := pointMetersNorth(userLocation, 200)
	business := &models.Business{
		ID:                 uuid.New(),
		Name:               "Stable Truck",
		ScheduledLocations: []models.ScheduledLocation{mondayEntry(&near)},
	}
	at := mondayAt(12, 0)

	first := FindActiveNearby([]*models.Business{business}, userLocation, at, 500)
	second := FindActiveNearby([]*models.Business{business}, userLocation, at, 500)

	assert.Equal(t, first, second)
}
