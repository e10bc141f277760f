package models

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile - профиль пользователя в части, нужной для проксимити-логики
type UserProfile struct {
	ID                   string      `json:"id"`
	Name                 string      `json:"name"`
	NotificationsEnabled bool        `json:"notifications_enabled"`
	Following            []uuid.UUID `json:"following"`
	// PassportStamps - ID бизнесов, в которых пользователь хотя бы раз чекинился
	PassportStamps []uuid.UUID `json:"passport_stamps"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// IsFollowing сообщает, подписан ли пользователь на бизнес
func (p *UserProfile) IsFollowing(businessID uuid.UUID) bool {
	for _, id := range p.Following {
		if id == businessID {
			return true
		}
	}
	return false
}

// HasStamp сообщает, есть ли уже штамп за этот бизнес
func (p *UserProfile) HasStamp(businessID uuid.UUID) bool {
	for _, id := range p.PassportStamps {
		if id == businessID {
			return true
		}
	}
	return false
}
