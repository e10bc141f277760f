package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/streetbites/streetbites_backend/internal/config"
	"github.com/streetbites/streetbites_backend/internal/geo"
	"github.com/streetbites/streetbites_backend/internal/models"
	notifier_mocks "github.com/streetbites/streetbites_backend/internal/notifier/mocks"
	"github.com/streetbites/streetbites_backend/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestBusinessService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestBusinessService(t *testing.T) (*businessService, *mocks.MockBusinessRepository, *mocks.MockProfileRepository, *notifier_mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockBusinessRepository(ctrl)
	profileMock := mocks.NewMockProfileRepository(ctrl)
	publisherMock := notifier_mocks.NewMockEventPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		CheckInRadiusMeters:      100,
		NotificationRadiusMeters: 500,
		NearbyRadiusMeters:       5000,
	}

	service := NewBusinessService(repoMock, profileMock, logger, cfg, publisherMock)
	return service.(*businessService), repoMock, profileMock, publisherMock
}

func TestGetBusiness_Success_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestBusinessService(t)
	ctx := context.Background()
	businessID := uuid.New()
	expectedBusiness := &models.Business{
		ID:   businessID,
		Name: "Тако-трак из кеша",
	}

	// Ожидания
	repoMock.EXPECT().
		GetBusinessFromCache(ctx, businessID).
		Return(expectedBusiness, nil).
		Times(1)

	// Действие
	business, err := service.GetBusiness(ctx, businessID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedBusiness, business)
}

func TestGetBusiness_Success_FromDB(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestBusinessService(t)
	ctx := context.Background()
	businessID := uuid.New()
	expectedBusiness := &models.Business{
		ID:   businessID,
		Name: "Тако-трак из БД",
	}

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().
		GetBusinessFromCache(ctx, businessID).
		Return(nil, nil).
		Times(1)

	// 2. Попадание в БД
	repoMock.EXPECT().
		GetByID(ctx, businessID).
		Return(expectedBusiness, nil).
		Times(1)

	// 3. Догрузка открытых чек-инов
	repoMock.EXPECT().
		GetOpenCheckInUserIDs(ctx, businessID).
		Return([]string{"user-1"}, nil).
		Times(1)

	// 4. Запись в кеш
	repoMock.EXPECT().
		SetBusinessCache(ctx, expectedBusiness).
		Return(nil).
		Times(1)

	// Действие
	business, err := service.GetBusiness(ctx, businessID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, business.CheckedInUsers)
}

func TestGetBusiness_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestBusinessService(t)
	ctx := context.Background()
	businessID := uuid.New()
	dbError := fmt.Errorf("не найдено")

	// Ожидания
	repoMock.EXPECT().GetBusinessFromCache(ctx, businessID).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, businessID).Return(nil, dbError).Times(1)

	// Действие
	business, err := service.GetBusiness(ctx, businessID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, business)
	assert.ErrorContains(t, err, "could not get business")
}

func TestCreateBusiness_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestBusinessService(t)
	ctx := context.Background()
	businessToCreate := &models.Business{
		Name:     "Новый бургер-трак",
		Category: "burgers",
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, b *models.Business) error {
			// Симулируем, что БД присвоила ID
			b.ID = uuid.New()
			return nil
		}).Times(1)

	// Действие
	err := service.CreateBusiness(ctx, businessToCreate)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.BusinessStatusClosed, businessToCreate.Status)
	assert.NotEqual(t, uuid.Nil, businessToCreate.ID)
}

func TestUpdateBusiness_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestBusinessService(t)
	ctx := context.Background()
	businessID := uuid.New()
	businessToUpdate := &models.Business{ID: businessID}
	repoError := fmt.Errorf("не найдено")

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, businessID).Return(nil, repoError).Times(1)

	// Действие
	err := service.UpdateBusiness(ctx, businessToUpdate)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "not found for update")
}

func TestFindNearby_DefaultRadius(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestBusinessService(t)
	ctx := context.Background()

	// Ожидания
	// При нулевом радиусе сервис подставляет радиус из конфига
	repoMock.EXPECT().
		FindNearby(ctx, 40.7, -74.0, float64(5000)).
		Return([]*models.Business{}, nil).
		Times(1)

	// Действие
	_, err := service.FindNearby(ctx, 40.7, -74.0, 0)

	// Проверки
	require.NoError(t, err)
}

func TestUpdateLocation_PublishesEvent(t *testing.T) {
	// Подготовка
	service, repoMock, _, publisherMock := newTestBusinessService(t)
	ctx := context.Background()
	businessID := uuid.New()
	location := models.Coordinate{Latitude: 40.7128, Longitude: -74.0060}

	// Ожидания
	repoMock.EXPECT().UpdateLocation(ctx, businessID, location).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateBusinessCache(ctx, businessID).Return(nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	err := service.UpdateLocation(ctx, businessID, location)

	// Проверки
	require.NoError(t, err)
}

func TestCheckIn_Success(t *testing.T) {
	// Подготовка
	service, repoMock, profileMock, publisherMock := newTestBusinessService(t)
	ctx := context.Background()
	businessID := uuid.New()
	userID := "user-42"
	business := &models.Business{
		ID:       businessID,
		Name:     "Тако-трак",
		Location: models.Coordinate{Latitude: 40.7128, Longitude: -74.0060},
	}
	// Пользователь стоит ровно там же, где трак
	userLocation := &models.Coordinate{Latitude: 40.7128, Longitude: -74.0060}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, businessID).Return(business, nil).Times(1)
	repoMock.EXPECT().GetOpenCheckInUserIDs(ctx, businessID).Return(nil, nil).Times(1)
	repoMock.EXPECT().
		SaveCheckIn(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, c *models.CheckIn) error {
			c.ID = 1
			return nil
		}).Times(1)
	repoMock.EXPECT().InvalidateBusinessCache(ctx, businessID).Return(nil).Times(1)
	profileMock.EXPECT().AddPassportStamp(ctx, userID, businessID).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	checkIn, decision, err := service.CheckIn(ctx, businessID, userID, userLocation)

	// Проверки
	require.NoError(t, err)
	assert.True(t, decision.Eligible)
	assert.Equal(t, geo.ReasonOK, decision.Reason)
	require.NotNil(t, checkIn)
	assert.Equal(t, int64(1), checkIn.ID)
	assert.Equal(t, userID, checkIn.UserID)
}

func TestCheckIn_Rejected_TooFar(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestBusinessService(t)
	ctx := context.Background()
	businessID := uuid.New()
	userID := "user-42"
	business := &models.Business{
		ID:       businessID,
		Location: models.Coordinate{Latitude: 40.7128, Longitude: -74.0060},
	}
	// Пользователь в паре километров от трака
	userLocation := &models.Coordinate{Latitude: 40.7306, Longitude: -73.9866}

	// Ожидания: запись чек-ина и публикация события не вызываются
	repoMock.EXPECT().GetByID(ctx, businessID).Return(business, nil).Times(1)
	repoMock.EXPECT().GetOpenCheckInUserIDs(ctx, businessID).Return(nil, nil).Times(1)

	// Действие
	checkIn, decision, err := service.CheckIn(ctx, businessID, userID, userLocation)

	// Проверки
	require.NoError(t, err)
	assert.Nil(t, checkIn)
	assert.False(t, decision.Eligible)
	assert.Equal(t, geo.ReasonTooFar, decision.Reason)
	require.NotNil(t, decision.DistanceMeters)
	assert.Greater(t, *decision.DistanceMeters, float64(100))
}

func TestCheckInEligibility_AlreadyCheckedIn(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestBusinessService(t)
	ctx := context.Background()
	businessID := uuid.New()
	userID := "user-42"
	business := &models.Business{
		ID:       businessID,
		Location: models.Coordinate{Latitude: 40.7128, Longitude: -74.0060},
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, businessID).Return(business, nil).Times(1)
	repoMock.EXPECT().GetOpenCheckInUserIDs(ctx, businessID).Return([]string{userID}, nil).Times(1)

	// Действие
	// Локация не передана, но already_checked_in важнее ее отсутствия
	decision, err := service.CheckInEligibility(ctx, businessID, userID, nil)

	// Проверки
	require.NoError(t, err)
	assert.False(t, decision.Eligible)
	assert.Equal(t, geo.ReasonAlreadyCheckedIn, decision.Reason)
}
