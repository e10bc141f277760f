package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/streetbites/streetbites_backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBusinessRepository(t *testing.T) (*BusinessRepository, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	// Redis в этих тестах не трогаем, кеш-методы проверяются на интеграционном уровне
	repo := NewBusinessRepository(mock, nil).(*BusinessRepository)
	return repo, mock
}

func TestBusinessRepository_Create(t *testing.T) {
	// Подготовка
	repo, mock := newTestBusinessRepository(t)
	ctx := context.Background()
	business := &models.Business{
		Name:     "Taco Truck",
		Category: "tacos",
		Status:   models.BusinessStatusClosed,
		Location: models.Coordinate{Latitude: 40.7128, Longitude: -74.0060},
	}
	businessID := uuid.New()
	now := time.Now()

	// Ожидания: долгота идет первым аргументом ST_MakePoint
	mock.ExpectQuery("INSERT INTO businesses").
		WithArgs(business.Name, business.Category, business.Description, business.Status, business.Location.Longitude, business.Location.Latitude).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(businessID, now, now))

	// Действие
	err := repo.Create(ctx, business)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, businessID, business.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBusinessRepository_GetByID_NotFound(t *testing.T) {
	// Подготовка
	repo, mock := newTestBusinessRepository(t)
	ctx := context.Background()
	businessID := uuid.New()

	// Ожидания
	mock.ExpectQuery("SELECT").
		WithArgs(businessID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "category", "description", "status", "latitude", "longitude", "created_at", "updated_at"}))

	// Действие
	business, err := repo.GetByID(ctx, businessID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, business)
	assert.ErrorContains(t, err, "not found")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBusinessRepository_FindNearby(t *testing.T) {
	// Подготовка
	repo, mock := newTestBusinessRepository(t)
	ctx := context.Background()
	businessID := uuid.New()
	now := time.Now()

	// Ожидания: в ST_MakePoint долгота и широта меняются местами
	mock.ExpectQuery("ST_DWithin").
		WithArgs(-74.0060, 40.7128, float64(5000)).
		WillReturnRows(pgxmock.
			NewRows([]string{"id", "name", "category", "description", "status", "latitude", "longitude", "created_at", "updated_at"}).
			AddRow(businessID, "Taco Truck", "tacos", "", models.BusinessStatusOpen, 40.7128, -74.0060, now, now))

	// Действие
	businesses, err := repo.FindNearby(ctx, 40.7128, -74.0060, 5000)

	// Проверки
	require.NoError(t, err)
	require.Len(t, businesses, 1)
	assert.Equal(t, businessID, businesses[0].ID)
	assert.Equal(t, 40.7128, businesses[0].Location.Latitude)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBusinessRepository_UpdateLocation_NotFound(t *testing.T) {
	// Подготовка
	repo, mock := newTestBusinessRepository(t)
	ctx := context.Background()
	businessID := uuid.New()
	location := models.Coordinate{Latitude: 40.7128, Longitude: -74.0060}

	// Ожидания
	mock.ExpectExec("UPDATE businesses").
		WithArgs(location.Longitude, location.Latitude, businessID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	// Действие
	err := repo.UpdateLocation(ctx, businessID, location)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "not found for location update")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBusinessRepository_SaveCheckIn(t *testing.T) {
	// Подготовка
	repo, mock := newTestBusinessRepository(t)
	ctx := context.Background()
	checkIn := &models.CheckIn{
		BusinessID: uuid.New(),
		UserID:     "user-1",
	}
	now := time.Now()

	// Ожидания
	mock.ExpectQuery("INSERT INTO check_ins").
		WithArgs(checkIn.BusinessID, checkIn.UserID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "checked_in_at"}).AddRow(int64(42), now))

	// Действие
	err := repo.SaveCheckIn(ctx, checkIn)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(42), checkIn.ID)
	assert.Equal(t, now, checkIn.CheckedInAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBusinessRepository_GetOpenCheckInUserIDs(t *testing.T) {
	// Подготовка
	repo, mock := newTestBusinessRepository(t)
	ctx := context.Background()
	businessID := uuid.New()

	// Ожидания
	mock.ExpectQuery("FROM check_ins").
		WithArgs(businessID).
		WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow("user-1").AddRow("user-2"))

	// Действие
	userIDs, err := repo.GetOpenCheckInUserIDs(ctx, businessID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, []string{"user-1", "user-2"}, userIDs)
	require.NoError(t, mock.ExpectationsWereMet())
}
