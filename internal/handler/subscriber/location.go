package subscriber

import (
	"context"
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/streetbites/streetbites_backend/internal/models"
	"github.com/streetbites/streetbites_backend/internal/service"
)

const topicPattern = "/streetbites/truck/+/location"

// locationMessage - сырое сообщение GPS-трекера фудтрака
type locationMessage struct {
	BusinessID string  `json:"business_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Timestamp  int64   `json:"timestamp"`
}

// LocationSubscriber подписывается на MQTT-топик GPS-трекеров и передает
// позиции фудтраков в сервис бизнесов
type LocationSubscriber struct {
	client          mqtt.Client
	businessService service.BusinessService
	logger          *logrus.Logger
}

func NewLocationSubscriber(client mqtt.Client, businessService service.BusinessService, logger *logrus.Logger) *LocationSubscriber {
	return &LocationSubscriber{
		client:          client,
		businessService: businessService,
		logger:          logger,
	}
}

func (s *LocationSubscriber) Start() error {
	token := s.client.Subscribe(topicPattern, 1, s.handleMessage)
	token.Wait()
	return token.Error()
}

func (s *LocationSubscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	log := s.logger.WithField("topic", msg.Topic())

	var raw locationMessage
	if err := json.Unmarshal(msg.Payload(), &raw); err != nil {
		log.WithError(err).Warn("Invalid location message")
		return
	}

	if err := validateLocationMessage(&raw); err != nil {
		log.WithError(err).Warn("Location message validation failed")
		return
	}

	businessID, err := uuid.Parse(raw.BusinessID)
	if err != nil {
		log.WithError(err).Warn("Invalid business ID in location message")
		return
	}

	location := models.Coordinate{Latitude: raw.Latitude, Longitude: raw.Longitude}
	if err := s.businessService.UpdateLocation(context.Background(), businessID, location); err != nil {
		log.WithError(err).Error("Failed to update business location")
	}
}

func validateLocationMessage(msg *locationMessage) error {
	if msg.BusinessID == "" {
		return fmt.Errorf("business_id: required")
	}
	if msg.Latitude < -90 || msg.Latitude > 90 {
		return fmt.Errorf("latitude: must be between -90 and 90")
	}
	if msg.Longitude < -180 || msg.Longitude > 180 {
		return fmt.Errorf("longitude: must be between -180 and 180")
	}
	if msg.Timestamp <= 0 {
		return fmt.Errorf("timestamp: must be positive")
	}
	return nil
}
