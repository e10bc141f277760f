package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/streetbites/streetbites_backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduleRepository(t *testing.T) (*ScheduleRepository, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repo := NewScheduleRepository(mock).(*ScheduleRepository)
	return repo, mock
}

func TestScheduleRepository_CreateEntry(t *testing.T) {
	// Подготовка
	repo, mock := newTestScheduleRepository(t)
	ctx := context.Background()
	businessID := uuid.New()
	entry := &models.ScheduledLocation{
		CompanyID:    uuid.New(),
		BusinessID:   &businessID,
		DayOfWeek:    models.Monday,
		LocationName: "Центральный рынок",
		Address:      "ул. Рыночная, 1",
		Coordinates:  &models.Coordinate{Latitude: 47.4979, Longitude: 19.0402},
		StartTime:    "09:00",
		EndTime:      "17:00",
	}
	entryID := uuid.New()
	now := time.Now()

	// Ожидания: координаты пишутся в geography-колонку, долгота первым аргументом ST_MakePoint
	mock.ExpectQuery(`INSERT INTO scheduled_locations[\s\S]*ST_SetSRID\(ST_MakePoint`).
		WithArgs(
			entry.CompanyID,
			entry.BusinessID,
			entry.DayOfWeek,
			entry.LocationName,
			entry.Address,
			&entry.Coordinates.Longitude,
			&entry.Coordinates.Latitude,
			entry.StartTime,
			entry.EndTime,
			entry.Description,
		).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(entryID, now, now))

	// Действие
	err := repo.CreateEntry(ctx, entry)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, entryID, entry.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepository_GetEntryByID(t *testing.T) {
	// Подготовка
	repo, mock := newTestScheduleRepository(t)
	ctx := context.Background()
	entryID := uuid.New()
	businessID := uuid.New()
	now := time.Now()
	lat, lon := 47.4979, 19.0402

	// Ожидания: координаты читаются из geography-колонки через ST_Y/ST_X
	scheduleRows := pgxmock.NewRows([]string{
		"id", "company_id", "business_id", "day_of_week", "location_name", "address",
		"latitude", "longitude", "start_time", "end_time", "description", "created_at", "updated_at",
	}).AddRow(entryID, uuid.New(), &businessID, models.Friday, "Набережная", "", &lat, &lon, "11:00", "15:00", "", now, now)
	mock.ExpectQuery(`ST_Y\(s\.coordinates::geometry\)[\s\S]*ST_X\(s\.coordinates::geometry\)`).
		WithArgs(entryID).
		WillReturnRows(scheduleRows)
	mock.ExpectQuery("FROM schedule_attendees").
		WithArgs([]uuid.UUID{entryID}).
		WillReturnRows(pgxmock.NewRows([]string{"schedule_id", "user_id"}).
			AddRow(entryID, "user-1").
			AddRow(entryID, "user-2"))

	// Действие
	entry, err := repo.GetEntryByID(ctx, entryID)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, entry.Coordinates)
	assert.Equal(t, lat, entry.Coordinates.Latitude)
	assert.Equal(t, lon, entry.Coordinates.Longitude)
	assert.Equal(t, []string{"user-1", "user-2"}, entry.Attendees)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepository_GetEntryByID_NoCoordinates(t *testing.T) {
	// Подготовка
	repo, mock := newTestScheduleRepository(t)
	ctx := context.Background()
	entryID := uuid.New()
	now := time.Now()

	// Ожидания: NULL в geography-колонке дает запись без координат
	scheduleRows := pgxmock.NewRows([]string{
		"id", "company_id", "business_id", "day_of_week", "location_name", "address",
		"latitude", "longitude", "start_time", "end_time", "description", "created_at", "updated_at",
	}).AddRow(entryID, uuid.New(), (*uuid.UUID)(nil), models.Monday, "Без точки", "", (*float64)(nil), (*float64)(nil), "09:00", "17:00", "", now, now)
	mock.ExpectQuery("FROM scheduled_locations").
		WithArgs(entryID).
		WillReturnRows(scheduleRows)
	mock.ExpectQuery("FROM schedule_attendees").
		WithArgs([]uuid.UUID{entryID}).
		WillReturnRows(pgxmock.NewRows([]string{"schedule_id", "user_id"}))

	// Действие
	entry, err := repo.GetEntryByID(ctx, entryID)

	// Проверки
	require.NoError(t, err)
	assert.Nil(t, entry.Coordinates)
	assert.Empty(t, entry.Attendees)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepository_SetAttendance(t *testing.T) {
	// Подготовка
	repo, mock := newTestScheduleRepository(t)
	ctx := context.Background()
	scheduleID := uuid.New()

	// Ожидания
	mock.ExpectExec("INSERT INTO schedule_attendees").
		WithArgs(scheduleID, "user-1").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("DELETE FROM schedule_attendees").
		WithArgs(scheduleID, "user-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	// Действие и проверки
	require.NoError(t, repo.SetAttendance(ctx, scheduleID, "user-1", true))
	require.NoError(t, repo.SetAttendance(ctx, scheduleID, "user-1", false))
	require.NoError(t, mock.ExpectationsWereMet())
}
