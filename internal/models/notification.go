package models

import "github.com/google/uuid"

// ProximityNotification - транзиентный сигнал "подписанный бизнес сейчас
// активен по расписанию рядом с пользователем". Не персистится: пересчитывается
// заново на каждом обновлении координат.
type ProximityNotification struct {
	BusinessID          uuid.UUID `json:"business_id"`
	BusinessName        string    `json:"business_name"`
	ScheduledLocationID uuid.UUID `json:"scheduled_location_id"`
	LocationName        string    `json:"location_name"`
	Message             string    `json:"message"`
	DistanceMeters      float64   `json:"distance_meters"`
}
