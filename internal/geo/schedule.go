package geo

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/streetbites/streetbites_backend/internal/models"
)

// ParseClock разбирает время вида "HH:MM" в минуты с начала суток.
// Формат строгий: ровно две цифры часов, двоеточие, две цифры минут,
// значения вроде "9:00" или "+09:00" отклоняются
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid clock value %q: expected HH:MM", s)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("invalid clock value %q: expected HH:MM", s)
		}
	}
	hours, _ := strconv.Atoi(s[:2])
	if hours > 23 {
		return 0, fmt.Errorf("invalid clock value %q: bad hours", s)
	}
	minutes, _ := strconv.Atoi(s[3:])
	if minutes > 59 {
		return 0, fmt.Errorf("invalid clock value %q: bad minutes", s)
	}
	return hours*60 + minutes, nil
}

// IsScheduleActiveAt сообщает, попадает ли момент at в окно записи расписания.
// День недели должен совпасть, границы окна включительно. Окно с end < start
// считается всегда закрытым, а не переходящим через полночь. Неразбираемое
// время тоже закрывает окно (fail closed).
func IsScheduleActiveAt(entry models.ScheduledLocation, at time.Time) bool {
	if models.WeekdayOf(at) != entry.DayOfWeek {
		return false
	}
	start, err := ParseClock(entry.StartTime)
	if err != nil {
		return false
	}
	end, err := ParseClock(entry.EndTime)
	if err != nil {
		return false
	}
	nowMinutes := at.Hour()*60 + at.Minute()
	return start <= nowMinutes && nowMinutes <= end
}

// FindActiveNearby возвращает уведомления по записям расписаний, которые
// активны в момент at и укладываются в radiusMeters от userLocation.
// Список бизнесов уже отфильтрован по подпискам вызывающей стороной.
// Записи без координат пропускаются. Функция без побочных эффектов,
// безопасно звать на каждом обновлении GPS.
func FindActiveNearby(businesses []*models.Business, userLocation models.Coordinate, at time.Time, radiusMeters float64) []models.ProximityNotification {
	notifications := make([]models.ProximityNotification, 0)
	for _, business := range businesses {
		for _, entry := range business.ScheduledLocations {
			if entry.Coordinates == nil {
				continue
			}
			if !IsScheduleActiveAt(entry, at) {
				continue
			}
			dist := DistanceMeters(userLocation, *entry.Coordinates)
			if dist > radiusMeters {
				continue
			}
			rounded := math.Round(dist)
			notifications = append(notifications, models.ProximityNotification{
				BusinessID:          business.ID,
				BusinessName:        business.Name,
				ScheduledLocationID: entry.ID,
				LocationName:        entry.LocationName,
				Message:             fmt.Sprintf("%s is now at %s, %.0f m away", business.Name, entry.LocationName, rounded),
				DistanceMeters:      rounded,
			})
		}
	}
	return notifications
}
