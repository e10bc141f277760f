package models

import (
	"time"

	"github.com/google/uuid"
)

// BusinessStatus - статус бизнеса (фудтрака)
type BusinessStatus string

const (
	BusinessStatusOpen    BusinessStatus = "open"
	BusinessStatusClosed  BusinessStatus = "closed"
	BusinessStatusOnRoute BusinessStatus = "on_route"
)

type Business struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	Status      BusinessStatus `json:"status"`
	// Location - текущая "живая" позиция, обновляется по GPS
	Location           Coordinate          `json:"location"`
	CheckedInUsers     []string            `json:"checked_in_users,omitempty"`
	ScheduledLocations []ScheduledLocation `json:"scheduled_locations,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// IsCheckedIn сообщает, есть ли у пользователя открытый чек-ин в этом бизнесе
func (b *Business) IsCheckedIn(userID string) bool {
	for _, id := range b.CheckedInUsers {
		if id == userID {
			return true
		}
	}
	return false
}
