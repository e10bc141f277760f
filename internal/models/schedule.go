package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Weekday - закрытое перечисление дней недели для расписаний.
// Значения в нижнем регистре, одно появление в неделю (не календарная дата).
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

var weekdayByTime = map[time.Weekday]Weekday{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// WeekdayOf возвращает день недели в словаре расписаний для момента времени
func WeekdayOf(t time.Time) Weekday {
	return weekdayByTime[t.Weekday()]
}

// ParseWeekday проверяет строку по словарю из семи значений
func ParseWeekday(s string) (Weekday, error) {
	switch Weekday(s) {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return Weekday(s), nil
	}
	return "", fmt.Errorf("unknown weekday %q", s)
}

// ScheduledLocation - еженедельное запланированное появление бизнеса в точке.
// Coordinates может отсутствовать: такая запись не участвует в геофенсинге.
type ScheduledLocation struct {
	ID           uuid.UUID  `json:"id"`
	CompanyID    uuid.UUID  `json:"company_id"`
	BusinessID   *uuid.UUID `json:"business_id,omitempty"`
	DayOfWeek    Weekday    `json:"day_of_week"`
	LocationName string     `json:"location_name"`
	Address      string     `json:"address"`
	Coordinates  *Coordinate `json:"coordinates,omitempty"`
	// StartTime и EndTime - локальное время "HH:MM", окно в пределах одних суток
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Attendees   []string  `json:"attendees"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
