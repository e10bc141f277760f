package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/streetbites/streetbites_backend/internal/models"
)

// ProfileRepository определяет контракт для работы с бд профилей пользователей
type ProfileRepository interface {
	GetByID(ctx context.Context, userID string) (*models.UserProfile, error)
	Upsert(ctx context.Context, profile *models.UserProfile) error
	Follow(ctx context.Context, userID string, businessID uuid.UUID) error
	Unfollow(ctx context.Context, userID string, businessID uuid.UUID) error
	AddPassportStamp(ctx context.Context, userID string, businessID uuid.UUID) error
}

// ProfileService определяет контракт бизнес-логики профилей и подписок
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	SaveProfile(ctx context.Context, profile *models.UserProfile) error
	FollowBusiness(ctx context.Context, userID string, businessID uuid.UUID) error
	UnfollowBusiness(ctx context.Context, userID string, businessID uuid.UUID) error
}

type profileService struct {
	repo       ProfileRepository
	businesses BusinessRepository
	logger     *logrus.Logger
}

func NewProfileService(repo ProfileRepository, businesses BusinessRepository, logger *logrus.Logger) ProfileService {
	return &profileService{
		repo:       repo,
		businesses: businesses,
		logger:     logger,
	}
}

// GetProfile получает профиль пользователя по ID
func (s *profileService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "profile",
		"method":  "GetProfile",
		"user_id": userID,
	})
	log.Info("Fetching user profile")

	profile, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to get user profile in repository")
		return nil, fmt.Errorf("service: could not get user profile: %w", err)
	}
	return profile, nil
}

// SaveProfile создает или обновляет профиль пользователя
func (s *profileService) SaveProfile(ctx context.Context, profile *models.UserProfile) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "profile",
		"method":  "SaveProfile",
		"user_id": profile.ID,
	})
	log.Info("Saving user profile")

	if profile.ID == "" {
		return fmt.Errorf("service: user profile id must not be empty")
	}

	if err := s.repo.Upsert(ctx, profile); err != nil {
		log.WithError(err).Error("Failed to save user profile in repository")
		return fmt.Errorf("service: could not save user profile: %w", err)
	}

	log.Info("User profile saved successfully")
	return nil
}

// FollowBusiness подписывает пользователя на бизнес
func (s *profileService) FollowBusiness(ctx context.Context, userID string, businessID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "profile",
		"method":      "FollowBusiness",
		"user_id":     userID,
		"business_id": businessID,
	})
	log.Info("Following business")

	if _, err := s.businesses.GetByID(ctx, businessID); err != nil {
		log.WithError(err).Warn("Attempted to follow a non-existent business")
		return fmt.Errorf("service: business with id %s not found: %w", businessID, err)
	}

	if err := s.repo.Follow(ctx, userID, businessID); err != nil {
		log.WithError(err).Error("Failed to follow business in repository")
		return fmt.Errorf("service: could not follow business: %w", err)
	}

	log.Info("Business followed successfully")
	return nil
}

// UnfollowBusiness отписывает пользователя от бизнеса
func (s *profileService) UnfollowBusiness(ctx context.Context, userID string, businessID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "profile",
		"method":      "UnfollowBusiness",
		"user_id":     userID,
		"business_id": businessID,
	})
	log.Info("Unfollowing business")

	if err := s.repo.Unfollow(ctx, userID, businessID); err != nil {
		log.WithError(err).Error("Failed to unfollow business in repository")
		return fmt.Errorf("service: could not unfollow business: %w", err)
	}

	log.Info("Business unfollowed successfully")
	return nil
}
