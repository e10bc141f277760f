package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/streetbites/streetbites_backend/internal/models"
	"github.com/streetbites/streetbites_backend/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestProfileService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestProfileService(t *testing.T) (*profileService, *mocks.MockProfileRepository, *mocks.MockBusinessRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockProfileRepository(ctrl)
	businessMock := mocks.NewMockBusinessRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewProfileService(repoMock, businessMock, logger)
	return service.(*profileService), repoMock, businessMock
}

func TestGetProfile_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestProfileService(t)
	ctx := context.Background()
	expectedProfile := &models.UserProfile{
		ID:                   "user-1",
		Name:                 "Тестовый пользователь",
		NotificationsEnabled: true,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, "user-1").Return(expectedProfile, nil).Times(1)

	// Действие
	profile, err := service.GetProfile(ctx, "user-1")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedProfile, profile)
}

func TestSaveProfile_EmptyID(t *testing.T) {
	// Подготовка
	service, _, _ := newTestProfileService(t)
	ctx := context.Background()

	// Действие
	err := service.SaveProfile(ctx, &models.UserProfile{})

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "must not be empty")
}

func TestFollowBusiness_Success(t *testing.T) {
	// Подготовка
	service, repoMock, businessMock := newTestProfileService(t)
	ctx := context.Background()
	businessID := uuid.New()

	// Ожидания
	businessMock.EXPECT().
		GetByID(ctx, businessID).
		Return(&models.Business{ID: businessID}, nil).
		Times(1)
	repoMock.EXPECT().Follow(ctx, "user-1", businessID).Return(nil).Times(1)

	// Действие
	err := service.FollowBusiness(ctx, "user-1", businessID)

	// Проверки
	require.NoError(t, err)
}

func TestFollowBusiness_BusinessNotFound(t *testing.T) {
	// Подготовка
	service, _, businessMock := newTestProfileService(t)
	ctx := context.Background()
	businessID := uuid.New()
	repoError := fmt.Errorf("не найдено")

	// Ожидания
	businessMock.EXPECT().GetByID(ctx, businessID).Return(nil, repoError).Times(1)

	// Действие
	err := service.FollowBusiness(ctx, "user-1", businessID)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "not found")
}

func TestUnfollowBusiness_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestProfileService(t)
	ctx := context.Background()
	businessID := uuid.New()

	// Ожидания
	repoMock.EXPECT().Unfollow(ctx, "user-1", businessID).Return(nil).Times(1)

	// Действие
	err := service.UnfollowBusiness(ctx, "user-1", businessID)

	// Проверки
	require.NoError(t, err)
}
