package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/streetbites/streetbites_backend/internal/models"
)

const notificationQueueKey = "notification_events"

// EventType - тип события уведомления
type EventType string

const (
	EventCheckIn        EventType = "check_in"
	EventProximityAlert EventType = "proximity_alert"
	EventLocationUpdate EventType = "location_update"
)

// Event - структура данных уведомления, уходящего во внешний канал
type Event struct {
	Type       EventType `json:"type"`
	UserID     string    `json:"user_id,omitempty"`
	BusinessID uuid.UUID `json:"business_id"`
	Timestamp  time.Time `json:"timestamp"`
	// Notifications - проксимити-сигналы, если событие о них
	Notifications []models.ProximityNotification `json:"notifications,omitempty"`
	// CheckIn - данные чек-ина, если событие о нем
	CheckIn *models.CheckIn `json:"check_in,omitempty"`
	// Location - свежая живая позиция, если событие об обновлении координат
	Location *models.Coordinate `json:"location,omitempty"`
}

// EventPublisher - интерфейс для публикации событий уведомлений
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisEventPublisher - реализация EventPublisher поверх очереди в Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, notificationQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification event to Redis: %w", err)
	}
	return nil
}
