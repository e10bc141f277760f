package geo

import (
	"testing"

	"github.com/google/uuid"
	"github.com/streetbites/streetbites_backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBusiness(checkedIn ...string) *models.Business {
	return &models.Business{
		ID:             uuid.New(),
		Name:           "Burger Van",
		Status:         models.BusinessStatusOpen,
		Location:       models.Coordinate{Latitude: 0, Longitude: 0},
		CheckedInUsers: checkedIn,
	}
}

func TestCheckInEligibility_NoLocation(t *testing.T) {
	decision := CheckInEligibility(testBusiness(), nil, "user-1", 100)

	assert.False(t, decision.Eligible)
	assert.Equal(t, ReasonNoLocation, decision.Reason)
	assert.Nil(t, decision.DistanceMeters)
}

func TestCheckInEligibility_OnBoundary(t *testing.T) {
	business := testBusiness()
	edge := pointMetersNorth(business.Location, 100)
	radius := DistanceMeters(business.Location, edge)

	decision := CheckInEligibility(business, &edge, "user-1", radius)

	require.NotNil(t, decision.DistanceMeters)
	assert.InDelta(t, 100, *decision.DistanceMeters, 0.01)
	assert.True(t, decision.Eligible)
	assert.Equal(t, ReasonOK, decision.Reason)
}

func TestCheckInEligibility_TooFar(t *testing.T) {
	business := testBusiness()
	beyond := pointMetersNorth(business.Location, 101)

	decision := CheckInEligibility(business, &beyond, "user-1", 100)

	assert.False(t, decision.Eligible)
	assert.Equal(t, ReasonTooFar, decision.Reason)
	require.NotNil(t, decision.DistanceMeters)
	assert.InDelta(t, 101, *decision.DistanceMeters, 0.01)
}

func TestCheckInEligibility_AlreadyCheckedInPrecedence(t *testing.T) {
	business := testBusiness("user-1")
	far := pointMetersNorth(business.Location, 5000)

	// already_checked_in важнее дистанции
	decision := CheckInEligibility(business, &far, "user-1", 100)
	assert.False(t, decision.Eligible)
	assert.Equal(t, ReasonAlreadyCheckedIn, decision.Reason)

	// ...и важнее отсутствия координат
	decision = CheckInEligibility(business, nil, "user-1", 100)
	assert.False(t, decision.Eligible)
	assert.Equal(t, ReasonAlreadyCheckedIn, decision.Reason)
	assert.Nil(t, decision.DistanceMeters)
}

func TestCheckInEligibility_NearbyUser(t *testing.T) {
	business := testBusiness()
	close := pointMetersNorth(business.Location, 25)

	decision := CheckInEligibility(business, &close, "user-2", 100)

	assert.True(t, decision.Eligible)
	assert.Equal(t, ReasonOK, decision.Reason)
}
