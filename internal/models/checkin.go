package models

import (
	"time"

	"github.com/google/uuid"
)

// CheckIn представляет запись о посещении бизнеса пользователем
type CheckIn struct {
	ID           int64      `json:"id"`
	BusinessID   uuid.UUID  `json:"business_id"`
	UserID       string     `json:"user_id"`
	CheckedInAt  time.Time  `json:"checked_in_at"`
	CheckedOutAt *time.Time `json:"checked_out_at,omitempty"`
}
