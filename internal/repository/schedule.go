package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/streetbites/streetbites_backend/internal/models"
	"github.com/streetbites/streetbites_backend/internal/service"
)

type ScheduleRepository struct {
	db DB
}

func NewScheduleRepository(db DB) service.ScheduleRepository {
	return &ScheduleRepository{db: db}
}

const scheduleColumns = `
			s.id,
			s.company_id,
			s.business_id,
			s.day_of_week,
			s.location_name,
			s.address,
			ST_Y(s.coordinates::geometry) as latitude,
			ST_X(s.coordinates::geometry) as longitude,
			s.start_time,
			s.end_time,
			s.description,
			s.created_at,
			s.updated_at`

func scanScheduleEntry(row pgx.Row) (models.ScheduledLocation, error) {
	var entry models.ScheduledLocation
	var lat, lon *float64
	err := row.Scan(
		&entry.ID,
		&entry.CompanyID,
		&entry.BusinessID,
		&entry.DayOfWeek,
		&entry.LocationName,
		&entry.Address,
		&lat,
		&lon,
		&entry.StartTime,
		&entry.EndTime,
		&entry.Description,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return entry, err
	}
	// Координаты опциональны: запись без них исключается из геофенсинга
	if lat != nil && lon != nil {
		entry.Coordinates = &models.Coordinate{Latitude: *lat, Longitude: *lon}
	}
	entry.Attendees = make([]string, 0)
	return entry, nil
}

// listScheduleEntries выбирает записи расписаний по произвольному условию
// и подгружает к ним списки "я приду"
func listScheduleEntries(ctx context.Context, db DB, where string, arg any) ([]models.ScheduledLocation, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM scheduled_locations s
		` + where + `
		ORDER BY s.created_at;
	`
	rows, err := db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule entries: %w", err)
	}

	entries := make([]models.ScheduledLocation, 0)
	index := make(map[uuid.UUID]int)
	err = func() error {
		defer rows.Close()
		for rows.Next() {
			entry, err := scanScheduleEntry(rows)
			if err != nil {
				return fmt.Errorf("failed to scan schedule row: %w", err)
			}
			index[entry.ID] = len(entries)
			entries = append(entries, entry)
		}
		return rows.Err()
	}()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return entries, nil
	}

	ids := make([]uuid.UUID, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.ID)
	}

	attendeeRows, err := db.Query(ctx, `
		SELECT schedule_id, user_id
		FROM schedule_attendees
		WHERE schedule_id = ANY($1)
		ORDER BY user_id;
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule attendees: %w", err)
	}
	defer attendeeRows.Close()

	for attendeeRows.Next() {
		var scheduleID uuid.UUID
		var userID string
		if err := attendeeRows.Scan(&scheduleID, &userID); err != nil {
			return nil, fmt.Errorf("failed to scan attendee row: %w", err)
		}
		if i, ok := index[scheduleID]; ok {
			entries[i].Attendees = append(entries[i].Attendees, userID)
		}
	}
	if err := attendeeRows.Err(); err != nil {
		return nil, fmt.Errorf("error attendee rows iteration: %w", err)
	}
	return entries, nil
}

// CreateEntry создает запись расписания
func (r *ScheduleRepository) CreateEntry(ctx context.Context, entry *models.ScheduledLocation) error {
	query := `
		INSERT INTO scheduled_locations
			(company_id, business_id, day_of_week, location_name, address, coordinates, start_time, end_time, description)
		VALUES ($1, $2, $3, $4, $5, ST_SetSRID(ST_MakePoint($6, $7), 4326), $8, $9, $10)
		RETURNING id, created_at, updated_at;
	`
	var lon, lat *float64
	if entry.Coordinates != nil {
		lon = &entry.Coordinates.Longitude
		lat = &entry.Coordinates.Latitude
	}
	err := r.db.QueryRow(ctx, query,
		entry.CompanyID,
		entry.BusinessID,
		entry.DayOfWeek,
		entry.LocationName,
		entry.Address,
		lon,
		lat,
		entry.StartTime,
		entry.EndTime,
		entry.Description,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create schedule entry: %w", err)
	}
	if entry.Attendees == nil {
		entry.Attendees = make([]string, 0)
	}
	return nil
}

// GetEntryByID возвращает запись расписания вместе со списком "я приду"
func (r *ScheduleRepository) GetEntryByID(ctx context.Context, id uuid.UUID) (*models.ScheduledLocation, error) {
	entries, err := listScheduleEntries(ctx, r.db, `WHERE s.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("schedule entry with id %s not found", id)
	}
	return &entries[0], nil
}

// ListByBusiness возвращает записи расписания бизнеса
func (r *ScheduleRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.ScheduledLocation, error) {
	return listScheduleEntries(ctx, r.db, `WHERE s.business_id = $1`, businessID)
}

// UpdateEntry обновляет запись расписания
func (r *ScheduleRepository) UpdateEntry(ctx context.Context, entry *models.ScheduledLocation) error {
	query := `
		UPDATE scheduled_locations SET
			day_of_week = $1,
			location_name = $2,
			address = $3,
			coordinates = ST_SetSRID(ST_MakePoint($4, $5), 4326),
			start_time = $6,
			end_time = $7,
			description = $8,
			updated_at = NOW()
		WHERE id = $9;
	`
	var lon, lat *float64
	if entry.Coordinates != nil {
		lon = &entry.Coordinates.Longitude
		lat = &entry.Coordinates.Latitude
	}
	cmdTag, err := r.db.Exec(ctx, query,
		entry.DayOfWeek,
		entry.LocationName,
		entry.Address,
		lon,
		lat,
		entry.StartTime,
		entry.EndTime,
		entry.Description,
		entry.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update schedule entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("schedule entry with id %s not found for update", entry.ID)
	}
	return nil
}

// DeleteEntry удаляет запись расписания
func (r *ScheduleRepository) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM scheduled_locations WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("schedule entry with id %s not found for delete", id)
	}
	return nil
}

// SetAttendance фиксирует результат тоггла "я приду". Таблица с составным
// первичным ключом гарантирует отсутствие дублей, гонки конкурентных тогглов
// сериализует Postgres
func (r *ScheduleRepository) SetAttendance(ctx context.Context, scheduleID uuid.UUID, userID string, attending bool) error {
	if attending {
		query := `
			INSERT INTO schedule_attendees (schedule_id, user_id)
			VALUES ($1, $2)
			ON CONFLICT (schedule_id, user_id) DO NOTHING;
		`
		if _, err := r.db.Exec(ctx, query, scheduleID, userID); err != nil {
			return fmt.Errorf("failed to add attendee: %w", err)
		}
		return nil
	}

	query := `
		DELETE FROM schedule_attendees
		WHERE schedule_id = $1 AND user_id = $2;
	`
	if _, err := r.db.Exec(ctx, query, scheduleID, userID); err != nil {
		return fmt.Errorf("failed to remove attendee: %w", err)
	}
	return nil
}
