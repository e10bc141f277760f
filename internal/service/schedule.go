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

// ScheduleRepository определяет контракт для работы с бд расписаний
type ScheduleRepository interface {
	CreateEntry(ctx context.Context, entry *models.ScheduledLocation) error
	GetEntryByID(ctx context.Context, id uuid.UUID) (*models.ScheduledLocation, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.ScheduledLocation, error)
	UpdateEntry(ctx context.Context, entry *models.ScheduledLocation) error
	DeleteEntry(ctx context.Context, id uuid.UUID) error
	SetAttendance(ctx context.Context, scheduleID uuid.UUID, userID string, attending bool) error
}

// ScheduleService определяет контракт бизнес-логики расписаний и посещаемости
type ScheduleService interface {
	CreateEntry(ctx context.Context, entry *models.ScheduledLocation) error
	GetEntry(ctx context.Context, id uuid.UUID) (*models.ScheduledLocation, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.ScheduledLocation, error)
	UpdateEntry(ctx context.Context, entry *models.ScheduledLocation) error
	DeleteEntry(ctx context.Context, id uuid.UUID) error
	ToggleAttendance(ctx context.Context, entryID uuid.UUID, userID string) (*models.ScheduledLocation, error)
	EvaluateProximity(ctx context.Context, userID string, location models.Coordinate, at time.Time) ([]models.ProximityNotification, error)
}

type scheduleService struct {
	repo       ScheduleRepository
	businesses BusinessRepository
	profiles   ProfileRepository
	logger     *logrus.Logger
	cfg        *config.Config
	publisher  notifier.EventPublisher
}

func NewScheduleService(repo ScheduleRepository, businesses BusinessRepository, profiles ProfileRepository, logger *logrus.Logger, cfg *config.Config, publisher notifier.EventPublisher) ScheduleService {
	return &scheduleService{
		repo:       repo,
		businesses: businesses,
		profiles:   profiles,
		logger:     logger,
		cfg:        cfg,
		publisher:  publisher,
	}
}

// validateEntry проверяет день недели и временное окно записи расписания
func validateEntry(entry *models.ScheduledLocation) error {
	day, err := models.ParseWeekday(string(entry.DayOfWeek))
	if err != nil {
		return fmt.Errorf("service: invalid schedule entry: %w", err)
	}
	entry.DayOfWeek = day

	start, err := geo.ParseClock(entry.StartTime)
	if err != nil {
		return fmt.Errorf("service: invalid start time: %w", err)
	}
	end, err := geo.ParseClock(entry.EndTime)
	if err != nil {
		return fmt.Errorf("service: invalid end time: %w", err)
	}
	if end < start {
		return fmt.Errorf("service: schedule window %s-%s ends before it starts", entry.StartTime, entry.EndTime)
	}
	return nil
}

// CreateEntry создает запись расписания
func (s *scheduleService) CreateEntry(ctx context.Context, entry *models.ScheduledLocation) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "schedule",
		"method":      "CreateEntry",
		"day_of_week": entry.DayOfWeek,
	})
	log.Info("Attempting to create a schedule entry")

	if err := validateEntry(entry); err != nil {
		log.WithError(err).Warn("Schedule entry validation failed")
		return err
	}

	if entry.BusinessID != nil {
		if _, err := s.businesses.GetByID(ctx, *entry.BusinessID); err != nil {
			log.WithError(err).Warn("Schedule entry references a non-existent business")
			return fmt.Errorf("service: business with id %s not found: %w", *entry.BusinessID, err)
		}
	}

	if err := s.repo.CreateEntry(ctx, entry); err != nil {
		log.WithError(err).Error("Failed to create schedule entry in repository")
		return fmt.Errorf("service: could not create schedule entry: %w", err)
	}

	log.WithField("schedule_id", entry.ID).Info("Schedule entry created successfully")
	return nil
}

// GetEntry получает запись расписания по ID
func (s *scheduleService) GetEntry(ctx context.Context, id uuid.UUID) (*models.ScheduledLocation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "schedule",
		"method":      "GetEntry",
		"schedule_id": id,
	})
	log.Info("Fetching schedule entry by ID")

	entry, err := s.repo.GetEntryByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get schedule entry in repository")
		return nil, fmt.Errorf("service: could not get schedule entry: %w", err)
	}
	return entry, nil
}

// ListByBusiness возвращает все записи расписания бизнеса
func (s *scheduleService) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.ScheduledLocation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "schedule",
		"method":      "ListByBusiness",
		"business_id": businessID,
	})
	log.Info("Listing schedule entries")

	entries, err := s.repo.ListByBusiness(ctx, businessID)
	if err != nil {
		log.WithError(err).Error("Failed to list schedule entries from repository")
		return nil, fmt.Errorf("service: could not list schedule entries: %w", err)
	}

	log.WithField("count", len(entries)).Info("Schedule entries listed successfully")
	return entries, nil
}

// UpdateEntry обновляет существующую запись расписания
func (s *scheduleService) UpdateEntry(ctx context.Context, entry *models.ScheduledLocation) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "schedule",
		"method":      "UpdateEntry",
		"schedule_id": entry.ID,
	})
	log.Info("Attempting to update schedule entry")

	if err := validateEntry(entry); err != nil {
		log.WithError(err).Warn("Schedule entry validation failed")
		return err
	}

	existing, err := s.repo.GetEntryByID(ctx, entry.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent schedule entry")
		return fmt.Errorf("service: schedule entry with id %s not found for update: %w", entry.ID, err)
	}

	existing.DayOfWeek = entry.DayOfWeek
	existing.LocationName = entry.LocationName
	existing.Address = entry.Address
	existing.Coordinates = entry.Coordinates
	existing.StartTime = entry.StartTime
	existing.EndTime = entry.EndTime
	existing.Description = entry.Description

	if err := s.repo.UpdateEntry(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update schedule entry in repository")
		return fmt.Errorf("service: could not update schedule entry: %w", err)
	}

	*entry = *existing
	log.Info("Schedule entry updated successfully")
	return nil
}

// DeleteEntry удаляет запись расписания
func (s *scheduleService) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "schedule",
		"method":      "DeleteEntry",
		"schedule_id": id,
	})
	log.Info("Attempting to delete schedule entry")

	if _, err := s.repo.GetEntryByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to delete a non-existent schedule entry")
		return fmt.Errorf("service: schedule entry with id %s not found for delete: %w", id, err)
	}

	if err := s.repo.DeleteEntry(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete schedule entry in repository")
		return fmt.Errorf("service: could not delete schedule entry: %w", err)
	}

	log.Info("Schedule entry deleted successfully")
	return nil
}

// ToggleAttendance переключает отметку пользователя "я приду" на записи
// расписания и возвращает запись после переключения
func (s *scheduleService) ToggleAttendance(ctx context.Context, entryID uuid.UUID, userID string) (*models.ScheduledLocation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "schedule",
		"method":      "ToggleAttendance",
		"schedule_id": entryID,
		"user_id":     userID,
	})
	log.Info("Toggling attendance")

	entry, err := s.repo.GetEntryByID(ctx, entryID)
	if err != nil {
		log.WithError(err).Error("Failed to get schedule entry in repository")
		return nil, fmt.Errorf("service: could not get schedule entry: %w", err)
	}

	toggled := geo.ToggleAttendance(*entry, userID)
	attending := false
	for _, attendee := range toggled.Attendees {
		if attendee == userID {
			attending = true
			break
		}
	}

	if err := s.repo.SetAttendance(ctx, entryID, userID, attending); err != nil {
		log.WithError(err).Error("Failed to persist attendance")
		return nil, fmt.Errorf("service: could not persist attendance: %w", err)
	}

	log.WithField("attending", attending).Info("Attendance toggled successfully")
	return &toggled, nil
}

// EvaluateProximity вычисляет уведомления о близости для пользователя:
// активные по расписанию точки отслеживаемых бизнесов в радиусе уведомлений
func (s *scheduleService) EvaluateProximity(ctx context.Context, userID string, location models.Coordinate, at time.Time) ([]models.ProximityNotification, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "schedule",
		"method":  "EvaluateProximity",
		"user_id": userID,
	})
	log.Debug("Evaluating proximity notifications")

	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to get user profile")
		return nil, fmt.Errorf("service: could not get user profile: %w", err)
	}
	if !profile.NotificationsEnabled {
		log.Debug("Notifications disabled for user, skipping evaluation")
		return []models.ProximityNotification{}, nil
	}

	businesses, err := s.businesses.ListFollowedWithSchedules(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to list followed businesses")
		return nil, fmt.Errorf("service: could not list followed businesses: %w", err)
	}

	notifications := geo.FindActiveNearby(businesses, location, at, s.cfg.NotificationRadiusMeters)
	if len(notifications) > 0 {
		event := notifier.Event{
			Type:          notifier.EventProximityAlert,
			UserID:        userID,
			Timestamp:     time.Now(),
			Notifications: notifications,
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			// Доставка вебхука не должна ломать ответ на запрос близости
			log.WithError(err).Error("Failed to publish proximity alert event")
		}
	}

	log.WithField("count", len(notifications)).Debug("Proximity evaluation completed")
	return notifications, nil
}
