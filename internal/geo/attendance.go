package geo

import (
	"github.com/streetbites/streetbites_backend/internal/models"
)

// ToggleAttendance возвращает копию записи расписания, в которой userID
// добавлен в список "я приду", если его там не было, и убран, если был.
// Исходная запись не мутируется: персист и рассылку делает вызывающая
// сторона. Повторный вызов с тем же userID восстанавливает исходный набор.
func ToggleAttendance(entry models.ScheduledLocation, userID string) models.ScheduledLocation {
	attendees := make([]string, 0, len(entry.Attendees)+1)
	found := false
	for _, id := range entry.Attendees {
		if id == userID {
			found = true
			continue
		}
		attendees = append(attendees, id)
	}
	if !found {
		attendees = append(attendees, userID)
	}
	entry.Attendees = attendees
	return entry
}
