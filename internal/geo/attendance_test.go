package geo

import (
	"testing"

	"github.com/streetbites/streetbites_backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestToggleAttendance_AddsWhenAbsent(t *testing.T) {
	entry := models.ScheduledLocation{Attendees: []string{"user-1"}}

	toggled := ToggleAttendance(entry, "user-2")

	assert.ElementsMatch(t, []string{"user-1", "user-2"}, toggled.Attendees)
	// Исходная запись не тронута
	assert.ElementsMatch(t, []string{"user-1"}, entry.Attendees)
}

func TestToggleAttendance_RemovesWhenPresent(t *testing.T) {
	entry := models.ScheduledLocation{Attendees: []string{"user-1", "user-2"}}

	toggled := ToggleAttendance(entry, "user-1")

	assert.ElementsMatch(t, []string{"user-2"}, toggled.Attendees)
}

func TestToggleAttendance_Involution(t *testing.T) {
	entry := models.ScheduledLocation{Attendees: []string{"user-1", "user-2"}}

	twice := ToggleAttendance(ToggleAttendance(entry, "user-3"), "user-3")

	assert.ElementsMatch(t, entry.Attendees, twice.Attendees)

	twice = ToggleAttendance(ToggleAttendance(entry, "user-1"), "user-1")
	assert.ElementsMatch(t, entry.Attendees, twice.Attendees)
}

func TestToggleAttendance_NeverDuplicates(t *testing.T) {
	// Даже если входные данные содержали дубликат, после тоггла его нет
	entry := models.ScheduledLocation{Attendees: []string{"user-1", "user-1"}}

	toggled := ToggleAttendance(entry, "user-1")
	assert.Empty(t, toggled.Attendees)

	toggled = ToggleAttendance(toggled, "user-1")
	assert.Equal(t, []string{"user-1"}, toggled.Attendees)
}

func TestToggleAttendance_EmptySet(t *testing.T) {
	entry := models.ScheduledLocation{}

	toggled := ToggleAttendance(entry, "user-1")

	assert.Equal(t, []string{"user-1"}, toggled.Attendees)
}
