package geo

import (
	"github.com/streetbites/streetbites_backend/internal/models"
)

// CheckInReason - причина решения о допуске к чек-ину
type CheckInReason string

const (
	ReasonOK               CheckInReason = "ok"
	ReasonNoLocation       CheckInReason = "no_location"
	ReasonTooFar           CheckInReason = "too_far"
	ReasonAlreadyCheckedIn CheckInReason = "already_checked_in"
)

// CheckInDecision - результат проверки допуска. DistanceMeters равен nil,
// когда позиция пользователя неизвестна
type CheckInDecision struct {
	Eligible       bool          `json:"eligible"`
	Reason         CheckInReason `json:"reason"`
	DistanceMeters *float64      `json:"distance_meters"`
}

// CheckInEligibility решает, может ли пользователь зачекиниться. Сравнение
// идет с "живой" позицией бизнеса, а не с записями расписания. Уже открытый
// чек-ин имеет приоритет над всем остальным, включая отсутствие координат.
// Функция чистая: сам чек-ин записывает вызывающая сторона отдельным действием.
func CheckInEligibility(business *models.Business, userLocation *models.Coordinate, userID string, radiusMeters float64) CheckInDecision {
	var dist *float64
	if userLocation != nil {
		d := DistanceMeters(*userLocation, business.Location)
		dist = &d
	}

	if business.IsCheckedIn(userID) {
		return CheckInDecision{Eligible: false, Reason: ReasonAlreadyCheckedIn, DistanceMeters: dist}
	}
	if userLocation == nil {
		return CheckInDecision{Eligible: false, Reason: ReasonNoLocation, DistanceMeters: nil}
	}
	if *dist > radiusMeters {
		return CheckInDecision{Eligible: false, Reason: ReasonTooFar, DistanceMeters: dist}
	}
	return CheckInDecision{Eligible: true, Reason: ReasonOK, DistanceMeters: dist}
}
