package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/streetbites/streetbites_backend/internal/config"
	"github.com/streetbites/streetbites_backend/internal/geo"
	"github.com/streetbites/streetbites_backend/internal/models"
	"github.com/streetbites/streetbites_backend/internal/notifier"
)

// BusinessRepository определяет контракт для работы с бд бизнесов
type BusinessRepository interface {
	Create(ctx context.Context, business *models.Business) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Business, error)
	Update(ctx context.Context, business *models.Business) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	ListBusinesses(ctx context.Context, page, pageSize int) ([]*models.Business, error)
	FindNearby(ctx context.Context, lat, lon, radiusMeters float64) ([]*models.Business, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, location models.Coordinate) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.BusinessStatus) error
	GetOpenCheckInUserIDs(ctx context.Context, businessID uuid.UUID) ([]string, error)
	SaveCheckIn(ctx context.Context, checkIn *models.CheckIn) error
	ListFollowedWithSchedules(ctx context.Context, userID string) ([]*models.Business, error)
	GetBusinessFromCache(ctx context.Context, id uuid.UUID) (*models.Business, error)
	SetBusinessCache(ctx context.Context, business *models.Business) error
	InvalidateBusinessCache(ctx context.Context, id uuid.UUID) error
}

// BusinessService определяет контракт бизнес-логики управления фудтраками и чек-инами
type BusinessService interface {
	CreateBusiness(ctx context.Context, business *models.Business) error
	GetBusiness(ctx context.Context, id uuid.UUID) (*models.Business, error)
	UpdateBusiness(ctx context.Context, business *models.Business) error
	DeactivateBusiness(ctx context.Context, id uuid.UUID) error
	ListBusinesses(ctx context.Context, page, pageSize int) ([]*models.Business, error)
	FindNearby(ctx context.Context, lat, lon, radiusMeters float64) ([]*models.Business, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, location models.Coordinate) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.BusinessStatus) error
	CheckInEligibility(ctx context.Context, businessID uuid.UUID, userID string, userLocation *models.Coordinate) (geo.CheckInDecision, error)
	CheckIn(ctx context.Context, businessID uuid.UUID, userID string, userLocation *models.Coordinate) (*models.CheckIn, geo.CheckInDecision, error)
}

type businessService struct {
	repo      BusinessRepository
	profiles  ProfileRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher notifier.EventPublisher
}

func NewBusinessService(repo BusinessRepository, profiles ProfileRepository, logger *logrus.Logger, cfg *config.Config, publisher notifier.EventPublisher) BusinessService {
	return &businessService{
		repo:      repo,
		profiles:  profiles,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
	}
}

// CreateBusiness создает бизнес
func (s *businessService) CreateBusiness(ctx context.Context, business *models.Business) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "business",
		"method":  "CreateBusiness",
		"name":    business.Name,
	})
	log.Info("Attempting to create a new business")

	if business.Status == "" {
		business.Status = models.BusinessStatusClosed
	}
	if err := s.repo.Create(ctx, business); err != nil {
		log.WithError(err).Error("Failed to create business in repository")
		return fmt.Errorf("service: could not create business: %w", err)
	}

	log.WithField("business_id", business.ID).Info("Business created successfully")
	return nil
}

// GetBusiness получает бизнес по ID, сначала из кеша, потом из бд
func (s *businessService) GetBusiness(ctx context.Context, id uuid.UUID) (*models.Business, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "business",
		"method":      "GetBusiness",
		"business_id": id,
	})
	log.Info("Fetching business by ID")

	cached, err := s.repo.GetBusinessFromCache(ctx, id)
	if err != nil {
		// Промах кеша не фатален, идем в бд
		log.WithError(err).Warn("Failed to read business from cache")
	}
	if cached != nil {
		log.Debug("Business served from cache")
		return cached, nil
	}

	business, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get business in repository")
		return nil, fmt.Errorf("service: could not get business: %w", err)
	}

	business.CheckedInUsers, err = s.repo.GetOpenCheckInUserIDs(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to load open check-ins")
		return nil, fmt.Errorf("service: could not load check-ins: %w", err)
	}

	if err := s.repo.SetBusinessCache(ctx, business); err != nil {
		log.WithError(err).Warn("Failed to cache business")
	}

	log.Info("Business fetched successfully")
	return business, nil
}

// UpdateBusiness обновляет существующий бизнес
func (s *businessService) UpdateBusiness(ctx context.Context, business *models.Business) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "business",
		"method":      "UpdateBusiness",
		"business_id": business.ID,
	})
	log.Info("Attempting to update business")

	existing, err := s.repo.GetByID(ctx, business.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent business")
		return fmt.Errorf("service: business with id %s not found for update: %w", business.ID, err)
	}

	existing.Name = business.Name
	existing.Category = business.Category
	existing.Description = business.Description
	existing.Status = business.Status
	existing.Location = business.Location

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update business in repository")
		return fmt.Errorf("service: could not update business: %w", err)
	}
	if err := s.repo.InvalidateBusinessCache(ctx, business.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate business cache")
	}
	log.Info("Business updated successfully")
	return nil
}

// DeactivateBusiness переводит бизнес в статус closed
func (s *businessService) DeactivateBusiness(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "business",
		"method":      "DeactivateBusiness",
		"business_id": id,
	})
	log.Info("Attempting to deactivate business")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to deactivate a non-existent business")
		return fmt.Errorf("service: business with id %s not found for deactivate: %w", id, err)
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		log.WithError(err).Error("Failed to deactivate business in repository")
		return fmt.Errorf("service: could not deactivate business: %w", err)
	}
	if err := s.repo.InvalidateBusinessCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate business cache")
	}

	log.Info("Business deactivated successfully")
	return nil
}

// ListBusinesses возвращает список бизнесов с пагинацией
func (s *businessService) ListBusinesses(ctx context.Context, page, pageSize int) ([]*models.Business, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "business",
		"method":    "ListBusinesses",
		"page":      page,
		"page_size": pageSize,
	})
	log.Info("Listing businesses")

	businesses, err := s.repo.ListBusinesses(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list businesses from repository")
		return nil, fmt.Errorf("service: could not list businesses: %w", err)
	}

	log.WithField("count", len(businesses)).Info("Businesses listed successfully")
	return businesses, nil
}

// FindNearby возвращает бизнесы в радиусе от точки
func (s *businessService) FindNearby(ctx context.Context, lat, lon, radiusMeters float64) ([]*models.Business, error) {
	if radiusMeters <= 0 {
		radiusMeters = s.cfg.NearbyRadiusMeters
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "business",
		"method":  "FindNearby",
		"radius":  radiusMeters,
	})
	log.Info("Searching nearby businesses")

	businesses, err := s.repo.FindNearby(ctx, lat, lon, radiusMeters)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby businesses")
		return nil, fmt.Errorf("service: could not find nearby businesses: %w", err)
	}

	log.WithField("count", len(businesses)).Info("Nearby search completed")
	return businesses, nil
}

// UpdateLocation сохраняет живую позицию бизнеса и публикует событие
func (s *businessService) UpdateLocation(ctx context.Context, id uuid.UUID, location models.Coordinate) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "business",
		"method":      "UpdateLocation",
		"business_id": id,
	})
	log.Debug("Updating live business location")

	if err := s.repo.UpdateLocation(ctx, id, location); err != nil {
		log.WithError(err).Error("Failed to update business location")
		return fmt.Errorf("service: could not update business location: %w", err)
	}
	if err := s.repo.InvalidateBusinessCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate business cache")
	}

	event := notifier.Event{
		Type:       notifier.EventLocationUpdate,
		BusinessID: id,
		Timestamp:  time.Now(),
		Location:   &location,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		// Доставка уведомления не должна ронять сохранение позиции
		log.WithError(err).Error("Failed to publish location update event")
	}
	return nil
}

// UpdateStatus переключает статус бизнеса
func (s *businessService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.BusinessStatus) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "business",
		"method":      "UpdateStatus",
		"business_id": id,
		"status":      status,
	})
	log.Info("Updating business status")

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		log.WithError(err).Error("Failed to update business status")
		return fmt.Errorf("service: could not update business status: %w", err)
	}
	if err := s.repo.InvalidateBusinessCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate business cache")
	}
	log.Info("Business status updated successfully")
	return nil
}

// CheckInEligibility решает, можно ли пользователю зачекиниться, ничего не меняя
func (s *businessService) CheckInEligibility(ctx context.Context, businessID uuid.UUID, userID string, userLocation *models.Coordinate) (geo.CheckInDecision, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "business",
		"method":      "CheckInEligibility",
		"business_id": businessID,
		"user_id":     userID,
	})
	log.Info("Evaluating check-in eligibility")

	// Кеш здесь не используется: решение о допуске должно видеть свежие чек-ины
	business, err := s.repo.GetByID(ctx, businessID)
	if err != nil {
		log.WithError(err).Error("Failed to get business for eligibility check")
		return geo.CheckInDecision{}, fmt.Errorf("service: could not get business: %w", err)
	}
	business.CheckedInUsers, err = s.repo.GetOpenCheckInUserIDs(ctx, businessID)
	if err != nil {
		log.WithError(err).Error("Failed to load open check-ins")
		return geo.CheckInDecision{}, fmt.Errorf("service: could not load check-ins: %w", err)
	}

	decision := geo.CheckInEligibility(business, userLocation, userID, s.cfg.CheckInRadiusMeters)
	log.WithFields(logrus.Fields{"eligible": decision.Eligible, "reason": decision.Reason}).Info("Eligibility evaluated")
	return decision, nil
}

// CheckIn записывает чек-ин, если пользователь допущен: сохраняет запись,
// выдает штамп в паспорт и публикует событие
func (s *businessService) CheckIn(ctx context.Context, businessID uuid.UUID, userID string, userLocation *models.Coordinate) (*models.CheckIn, geo.CheckInDecision, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "business",
		"method":      "CheckIn",
		"business_id": businessID,
		"user_id":     userID,
	})
	log.Info("Attempting check-in")

	decision, err := s.CheckInEligibility(ctx, businessID, userID, userLocation)
	if err != nil {
		return nil, decision, err
	}
	if !decision.Eligible {
		log.WithField("reason", decision.Reason).Info("Check-in rejected")
		return nil, decision, nil
	}

	checkIn := &models.CheckIn{
		BusinessID: businessID,
		UserID:     userID,
	}
	if err := s.repo.SaveCheckIn(ctx, checkIn); err != nil {
		log.WithError(err).Error("Failed to save check-in")
		return nil, decision, fmt.Errorf("service: could not save check-in: %w", err)
	}
	if err := s.repo.InvalidateBusinessCache(ctx, businessID); err != nil {
		log.WithError(err).Warn("Failed to invalidate business cache")
	}

	if err := s.profiles.AddPassportStamp(ctx, userID, businessID); err != nil {
		// Штамп - приятный бонус, его потеря не отменяет чек-ин
		log.WithError(err).Error("Failed to add passport stamp")
	}

	event := notifier.Event{
		Type:       notifier.EventCheckIn,
		UserID:     userID,
		BusinessID: businessID,
		Timestamp:  time.Now(),
		CheckIn:    checkIn,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish check-in event")
	}

	log.WithField("check_in_id", checkIn.ID).Info("Check-in recorded successfully")
	return checkIn, decision, nil
}
