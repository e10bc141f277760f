package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/streetbites/streetbites_backend/internal/config"
	"github.com/streetbites/streetbites_backend/internal/models"
	"github.com/streetbites/streetbites_backend/internal/notifier"
	notifier_mocks "github.com/streetbites/streetbites_backend/internal/notifier/mocks"
	"github.com/streetbites/streetbites_backend/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestScheduleService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestScheduleService(t *testing.T) (*scheduleService, *mocks.MockScheduleRepository, *mocks.MockBusinessRepository, *mocks.MockProfileRepository, *notifier_mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockScheduleRepository(ctrl)
	businessMock := mocks.NewMockBusinessRepository(ctrl)
	profileMock := mocks.NewMockProfileRepository(ctrl)
	publisherMock := notifier_mocks.NewMockEventPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		NotificationRadiusMeters: 500,
	}

	service := NewScheduleService(repoMock, businessMock, profileMock, logger, cfg, publisherMock)
	return service.(*scheduleService), repoMock, businessMock, profileMock, publisherMock
}

func validEntry() *models.ScheduledLocation {
	return &models.ScheduledLocation{
		CompanyID:    uuid.New(),
		DayOfWeek:    models.Monday,
		LocationName: "Городской парк",
		StartTime:    "09:00",
		EndTime:      "17:00",
	}
}

func TestCreateEntry_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestScheduleService(t)
	ctx := context.Background()
	entry := validEntry()

	// Ожидания
	repoMock.EXPECT().
		CreateEntry(ctx, entry).
		DoAndReturn(func(ctx context.Context, e *models.ScheduledLocation) error {
			e.ID = uuid.New()
			return nil
		}).Times(1)

	// Действие
	err := service.CreateEntry(ctx, entry)

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, entry.ID)
}

func TestCreateEntry_InvalidDayOfWeek(t *testing.T) {
	// Подготовка
	service, _, _, _, _ := newTestScheduleService(t)
	ctx := context.Background()
	entry := validEntry()
	entry.DayOfWeek = "someday"

	// Действие
	err := service.CreateEntry(ctx, entry)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid schedule entry")
}

func TestCreateEntry_MalformedTime(t *testing.T) {
	// Подготовка
	service, _, _, _, _ := newTestScheduleService(t)
	ctx := context.Background()
	entry := validEntry()
	entry.StartTime = "9am"

	// Действие
	err := service.CreateEntry(ctx, entry)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid start time")
}

func TestCreateEntry_WindowEndsBeforeStart(t *testing.T) {
	// Подготовка
	service, _, _, _, _ := newTestScheduleService(t)
	ctx := context.Background()
	entry := validEntry()
	entry.StartTime = "22:00"
	entry.EndTime = "02:00"

	// Действие
	err := service.CreateEntry(ctx, entry)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "ends before it starts")
}

func TestToggleAttendance_AddsUser(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestScheduleService(t)
	ctx := context.Background()
	entryID := uuid.New()
	entry := validEntry()
	entry.ID = entryID

	// Ожидания
	repoMock.EXPECT().GetEntryByID(ctx, entryID).Return(entry, nil).Times(1)
	repoMock.EXPECT().SetAttendance(ctx, entryID, "user-1", true).Return(nil).Times(1)

	// Действие
	toggled, err := service.ToggleAttendance(ctx, entryID, "user-1")

	// Проверки
	require.NoError(t, err)
	assert.Contains(t, toggled.Attendees, "user-1")
}

func TestToggleAttendance_RemovesUser(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestScheduleService(t)
	ctx := context.Background()
	entryID := uuid.New()
	entry := validEntry()
	entry.ID = entryID
	entry.Attendees = []string{"user-1", "user-2"}

	// Ожидания
	repoMock.EXPECT().GetEntryByID(ctx, entryID).Return(entry, nil).Times(1)
	repoMock.EXPECT().SetAttendance(ctx, entryID, "user-1", false).Return(nil).Times(1)

	// Действие
	toggled, err := service.ToggleAttendance(ctx, entryID, "user-1")

	// Проверки
	require.NoError(t, err)
	assert.NotContains(t, toggled.Attendees, "user-1")
	assert.Contains(t, toggled.Attendees, "user-2")
}

func TestEvaluateProximity_NotificationsDisabled(t *testing.T) {
	// Подготовка
	service, _, _, profileMock, _ := newTestScheduleService(t)
	ctx := context.Background()
	location := models.Coordinate{Latitude: 40.7128, Longitude: -74.0060}

	// Ожидания: до выборки бизнесов дело не доходит
	profileMock.EXPECT().
		GetByID(ctx, "user-1").
		Return(&models.UserProfile{ID: "user-1", NotificationsEnabled: false}, nil).
		Times(1)

	// Действие
	notifications, err := service.EvaluateProximity(ctx, "user-1", location, time.Now())

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestEvaluateProximity_EmitsNotification(t *testing.T) {
	// Подготовка
	service, _, businessMock, profileMock, publisherMock := newTestScheduleService(t)
	ctx := context.Background()
	location := models.Coordinate{Latitude: 40.7128, Longitude: -74.0060}
	// 2024-01-01 — понедельник
	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	businessID := uuid.New()
	business := &models.Business{
		ID:   businessID,
		Name: "Тако-трак",
		ScheduledLocations: []models.ScheduledLocation{
			{
				ID:           uuid.New(),
				BusinessID:   &businessID,
				DayOfWeek:    models.Monday,
				LocationName: "Городской парк",
				Coordinates:  &models.Coordinate{Latitude: 40.7128, Longitude: -74.0060},
				StartTime:    "09:00",
				EndTime:      "17:00",
			},
		},
	}

	// Ожидания
	profileMock.EXPECT().
		GetByID(ctx, "user-1").
		Return(&models.UserProfile{ID: "user-1", NotificationsEnabled: true}, nil).
		Times(1)
	businessMock.EXPECT().
		ListFollowedWithSchedules(ctx, "user-1").
		Return([]*models.Business{business}, nil).
		Times(1)

	// Найденные сигналы уходят в очередь вебхуков событием proximity_alert
	var published notifier.Event
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, event notifier.Event) error {
			published = event
			return nil
		}).Times(1)

	// Действие
	notifications, err := service.EvaluateProximity(ctx, "user-1", location, at)

	// Проверки
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, businessID, notifications[0].BusinessID)
	assert.Equal(t, "Городской парк", notifications[0].LocationName)
	assert.Equal(t, notifier.EventProximityAlert, published.Type)
	assert.Equal(t, "user-1", published.UserID)
	assert.Equal(t, notifications, published.Notifications)
}

func TestEvaluateProximity_PublishFailureDoesNotFailRequest(t *testing.T) {
	// Подготовка
	service, _, businessMock, profileMock, publisherMock := newTestScheduleService(t)
	ctx := context.Background()
	location := models.Coordinate{Latitude: 40.7128, Longitude: -74.0060}
	// 2024-01-01 — понедельник
	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	businessID := uuid.New()
	business := &models.Business{
		ID:   businessID,
		Name: "Тако-трак",
		ScheduledLocations: []models.ScheduledLocation{
			{
				ID:           uuid.New(),
				BusinessID:   &businessID,
				DayOfWeek:    models.Monday,
				LocationName: "Городской парк",
				Coordinates:  &models.Coordinate{Latitude: 40.7128, Longitude: -74.0060},
				StartTime:    "09:00",
				EndTime:      "17:00",
			},
		},
	}

	// Ожидания: отказ очереди логируется, но уведомления возвращаются
	profileMock.EXPECT().
		GetByID(ctx, "user-1").
		Return(&models.UserProfile{ID: "user-1", NotificationsEnabled: true}, nil).
		Times(1)
	businessMock.EXPECT().
		ListFollowedWithSchedules(ctx, "user-1").
		Return([]*models.Business{business}, nil).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(assert.AnError).
		Times(1)

	// Действие
	notifications, err := service.EvaluateProximity(ctx, "user-1", location, at)

	// Проверки
	require.NoError(t, err)
	require.Len(t, notifications, 1)
}
