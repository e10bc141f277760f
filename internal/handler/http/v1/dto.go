package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateBusinessRequest DTO для создания бизнеса
// @Description DTO для создания бизнеса
type CreateBusinessRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Category    string  `json:"category" validate:"required,min=2,max=100"`
	Description string  `json:"description,omitempty"`
	Latitude    float64 `json:"latitude" validate:"required,latitude"`
	Longitude   float64 `json:"longitude" validate:"required,longitude"`
}

// UpdateBusinessRequest DTO для обновления бизнеса
// @Description DTO для обновления бизнеса
type UpdateBusinessRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Category    string  `json:"category" validate:"required,min=2,max=100"`
	Description string  `json:"description,omitempty"`
	Latitude    float64 `json:"latitude" validate:"required,latitude"`
	Longitude   float64 `json:"longitude" validate:"required,longitude"`
	Status      string  `json:"status" validate:"required,oneof=open closed on_route"`
}

// BusinessResponse DTO для ответа с информацией о бизнесе
// @Description DTO для ответа с информацией о бизнесе
type BusinessResponse struct {
	ID                 uuid.UUID               `json:"id"`
	Name               string                  `json:"name"`
	Category           string                  `json:"category"`
	Description        string                  `json:"description,omitempty"`
	Status             string                  `json:"status"`
	Latitude           float64                 `json:"latitude"`
	Longitude          float64                 `json:"longitude"`
	CheckedInUsers     []string                `json:"checked_in_users"`
	ScheduledLocations []ScheduleEntryResponse `json:"scheduled_locations,omitempty"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          time.Time               `json:"updated_at"`
}

// UpdateLocationRequest DTO для обновления живой позиции бизнеса
// @Description DTO для обновления живой позиции бизнеса
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// UpdateStatusRequest DTO для смены статуса бизнеса
// @Description DTO для смены статуса бизнеса
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open closed on_route"`
}

// CheckInRequest DTO для чек-ина. Координаты опциональны: их отсутствие
// означает, что клиент не смог определить позицию пользователя.
// @Description DTO для чек-ина пользователя у бизнеса
type CheckInRequest struct {
	UserID    string   `json:"user_id" validate:"required"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// CheckInDecisionResponse DTO с решением о допуске к чек-ину
// @Description DTO с решением о допуске к чек-ину
type CheckInDecisionResponse struct {
	Eligible       bool     `json:"eligible"`
	Reason         string   `json:"reason"`
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
}

// CheckInResponse DTO с результатом чек-ина
// @Description DTO с результатом чек-ина
type CheckInResponse struct {
	Decision    CheckInDecisionResponse `json:"decision"`
	CheckInID   *int64                  `json:"check_in_id,omitempty"`
	CheckedInAt *time.Time              `json:"checked_in_at,omitempty"`
}

// CreateScheduleEntryRequest DTO для создания записи расписания
// @Description DTO для создания записи расписания
type CreateScheduleEntryRequest struct {
	CompanyID    uuid.UUID  `json:"company_id" validate:"required"`
	BusinessID   *uuid.UUID `json:"business_id,omitempty"`
	DayOfWeek    string     `json:"day_of_week" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	LocationName string     `json:"location_name" validate:"required,min=1,max=255"`
	Address      string     `json:"address,omitempty"`
	Latitude     *float64   `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude    *float64   `json:"longitude,omitempty" validate:"omitempty,longitude"`
	StartTime    string     `json:"start_time" validate:"required"`
	EndTime      string     `json:"end_time" validate:"required"`
	Description  string     `json:"description,omitempty"`
}

// UpdateScheduleEntryRequest DTO для обновления записи расписания
// @Description DTO для обновления записи расписания
type UpdateScheduleEntryRequest struct {
	DayOfWeek    string   `json:"day_of_week" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	LocationName string   `json:"location_name" validate:"required,min=1,max=255"`
	Address      string   `json:"address,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	StartTime    string   `json:"start_time" validate:"required"`
	EndTime      string   `json:"end_time" validate:"required"`
	Description  string   `json:"description,omitempty"`
}

// ScheduleEntryResponse DTO для ответа с записью расписания
// @Description DTO для ответа с записью расписания
type ScheduleEntryResponse struct {
	ID           uuid.UUID  `json:"id"`
	CompanyID    uuid.UUID  `json:"company_id"`
	BusinessID   *uuid.UUID `json:"business_id,omitempty"`
	DayOfWeek    string     `json:"day_of_week"`
	LocationName string     `json:"location_name"`
	Address      string     `json:"address,omitempty"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`
	StartTime    string     `json:"start_time"`
	EndTime      string     `json:"end_time"`
	Attendees    []string   `json:"attendees"`
	Description  string     `json:"description,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ToggleAttendanceRequest DTO для переключения отметки "я приду"
// @Description DTO для переключения отметки "я приду"
type ToggleAttendanceRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// ProximityCheckRequest DTO для проверки близости пользователя
// @Description DTO для проверки близости пользователя
type ProximityCheckRequest struct {
	UserID    string  `json:"user_id" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// ProximityNotificationResponse DTO для уведомления о близости
// @Description DTO для уведомления о близости
type ProximityNotificationResponse struct {
	BusinessID          uuid.UUID `json:"business_id"`
	BusinessName        string    `json:"business_name"`
	ScheduledLocationID uuid.UUID `json:"scheduled_location_id"`
	LocationName        string    `json:"location_name"`
	Message             string    `json:"message"`
	DistanceMeters      float64   `json:"distance_meters"`
}

// SaveProfileRequest DTO для сохранения профиля пользователя
// @Description DTO для сохранения профиля пользователя
type SaveProfileRequest struct {
	Name                 string `json:"name" validate:"required,min=1,max=255"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
}

// ProfileResponse DTO для ответа с профилем пользователя
// @Description DTO для ответа с профилем пользователя
type ProfileResponse struct {
	ID                   string      `json:"id"`
	Name                 string      `json:"name"`
	NotificationsEnabled bool        `json:"notifications_enabled"`
	Following            []uuid.UUID `json:"following"`
	PassportStamps       []uuid.UUID `json:"passport_stamps"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}
