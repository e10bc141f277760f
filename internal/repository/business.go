package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/streetbites/streetbites_backend/internal/models"
	"github.com/streetbites/streetbites_backend/internal/service"
)

type BusinessRepository struct {
	db          DB
	redisClient *redis.Client
}

func NewBusinessRepository(db DB, redisClient *redis.Client) service.BusinessRepository {
	return &BusinessRepository{
		db:          db,
		redisClient: redisClient,
	}
}

const businessColumns = `
			id,
			name,
			category,
			description,
			status,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			created_at,
			updated_at`

func scanBusiness(row pgx.Row) (*models.Business, error) {
	business := &models.Business{}
	err := row.Scan(
		&business.ID,
		&business.Name,
		&business.Category,
		&business.Description,
		&business.Status,
		&business.Location.Latitude,
		&business.Location.Longitude,
		&business.CreatedAt,
		&business.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return business, nil
}

// Create создает новую запись о бизнесе в бд
func (r *BusinessRepository) Create(ctx context.Context, business *models.Business) error {
	query := `
		INSERT INTO businesses (name, category, description, status, location)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326)) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		business.Name,
		business.Category,
		business.Description,
		business.Status,
		business.Location.Longitude,
		business.Location.Latitude,
	).Scan(&business.ID, &business.CreatedAt, &business.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create business: %w", err)
	}
	return nil
}

// GetByID возвращает бизнес по его UUID
func (r *BusinessRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Business, error) {
	query := `
		SELECT ` + businessColumns + `
		FROM businesses
		WHERE id = $1;
	`
	business, err := scanBusiness(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("business with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get business by id: %w", err)
	}
	return business, nil
}

// Update обновляет основные поля бизнеса
func (r *BusinessRepository) Update(ctx context.Context, business *models.Business) error {
	query := `
		UPDATE businesses SET
			name = $1,
			category = $2,
			description = $3,
			status = $4,
			location = ST_SetSRID(ST_MakePoint($5, $6), 4326),
			updated_at = NOW()
		WHERE id = $7;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		business.Name,
		business.Category,
		business.Description,
		business.Status,
		business.Location.Longitude,
		business.Location.Latitude,
		business.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update business: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("business with id %s not found for update", business.ID)
	}
	return nil
}

// Deactivate переводит бизнес в статус 'closed' вместо физического удаления
func (r *BusinessRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE businesses SET
			status = 'closed',
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate business: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("business with id %s not found for deactivate", id)
	}
	return nil
}

// ListBusinesses возвращает список бизнесов с пагинацией
func (r *BusinessRepository) ListBusinesses(ctx context.Context, page, pageSize int) ([]*models.Business, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT ` + businessColumns + `
		FROM businesses
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	defer rows.Close()

	return collectBusinesses(rows)
}

// FindNearby находит не закрытые бизнесы, чья живая позиция попадает в радиус от точки
func (r *BusinessRepository) FindNearby(ctx context.Context, lat, lon, radiusMeters float64) ([]*models.Business, error) {
	query := `
		SELECT ` + businessColumns + `
		FROM businesses
		WHERE
			status <> 'closed'
			AND ST_DWithin(
				location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				$3
			);
	`
	rows, err := r.db.Query(ctx, query, lon, lat, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby businesses: %w", err)
	}
	defer rows.Close()

	return collectBusinesses(rows)
}

func collectBusinesses(rows pgx.Rows) ([]*models.Business, error) {
	businesses := make([]*models.Business, 0)
	for rows.Next() {
		business, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan business row: %w", err)
		}
		businesses = append(businesses, business)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error business rows iteration: %w", err)
	}
	return businesses, nil
}

// UpdateLocation сохраняет свежую живую позицию бизнеса
func (r *BusinessRepository) UpdateLocation(ctx context.Context, id uuid.UUID, location models.Coordinate) error {
	query := `
		UPDATE businesses SET
			location = ST_SetSRID(ST_MakePoint($1, $2), 4326),
			updated_at = NOW()
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, location.Longitude, location.Latitude, id)
	if err != nil {
		return fmt.Errorf("failed to update business location: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("business with id %s not found for location update", id)
	}
	return nil
}

// UpdateStatus переключает статус бизнеса (open/closed/on_route)
func (r *BusinessRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.BusinessStatus) error {
	query := `
		UPDATE businesses SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update business status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("business with id %s not found for status update", id)
	}
	return nil
}

// GetOpenCheckInUserIDs возвращает пользователей с незакрытым чек-ином в бизнесе
func (r *BusinessRepository) GetOpenCheckInUserIDs(ctx context.Context, businessID uuid.UUID) ([]string, error) {
	query := `
		SELECT user_id
		FROM check_ins
		WHERE business_id = $1 AND checked_out_at IS NULL;
	`
	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to get open check-ins: %w", err)
	}
	defer rows.Close()

	userIDs := make([]string, 0)
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("failed to scan check-in row: %w", err)
		}
		userIDs = append(userIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error check-in rows iteration: %w", err)
	}
	return userIDs, nil
}

// SaveCheckIn сохраняет запись о чек-ине в бд
func (r *BusinessRepository) SaveCheckIn(ctx context.Context, checkIn *models.CheckIn) error {
	query := `
		INSERT INTO check_ins (business_id, user_id)
		VALUES ($1, $2) RETURNING id, checked_in_at;
	`
	err := r.db.QueryRow(ctx, query, checkIn.BusinessID, checkIn.UserID).
		Scan(&checkIn.ID, &checkIn.CheckedInAt)
	if err != nil {
		return fmt.Errorf("failed to save check-in: %w", err)
	}
	return nil
}

// ListFollowedWithSchedules возвращает бизнесы, на которые подписан пользователь,
// вместе с их записями расписаний (для проксимити-оценки)
func (r *BusinessRepository) ListFollowedWithSchedules(ctx context.Context, userID string) ([]*models.Business, error) {
	query := `
		SELECT
			b.id,
			b.name,
			b.category,
			b.description,
			b.status,
			ST_Y(b.location::geometry) as latitude,
			ST_X(b.location::geometry) as longitude,
			b.created_at,
			b.updated_at
		FROM businesses b
		JOIN user_following f ON f.business_id = b.id
		WHERE f.user_id = $1;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list followed businesses: %w", err)
	}
	businesses, err := func() ([]*models.Business, error) {
		defer rows.Close()
		return collectBusinesses(rows)
	}()
	if err != nil {
		return nil, err
	}
	if len(businesses) == 0 {
		return businesses, nil
	}

	ids := make([]uuid.UUID, 0, len(businesses))
	byID := make(map[uuid.UUID]*models.Business, len(businesses))
	for _, business := range businesses {
		ids = append(ids, business.ID)
		byID[business.ID] = business
	}

	entries, err := listScheduleEntries(ctx, r.db, `WHERE s.business_id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedules for followed businesses: %w", err)
	}
	for _, entry := range entries {
		if entry.BusinessID == nil {
			continue
		}
		if business, ok := byID[*entry.BusinessID]; ok {
			business.ScheduledLocations = append(business.ScheduledLocations, entry)
		}
	}
	return businesses, nil
}

// GetBusinessFromCache пытается получить бизнес из Redis
func (r *BusinessRepository) GetBusinessFromCache(ctx context.Context, id uuid.UUID) (*models.Business, error) {
	key := fmt.Sprintf("business:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get business from cache: %w", err)
	}

	business := &models.Business{}
	if err := json.Unmarshal(val, business); err != nil {
		return nil, fmt.Errorf("failed to unmarshal business from cache: %w", err)
	}
	return business, nil
}

// SetBusinessCache сохраняет бизнес в Redis
func (r *BusinessRepository) SetBusinessCache(ctx context.Context, business *models.Business) error {
	key := fmt.Sprintf("business:%s", business.ID.String())
	val, err := json.Marshal(business)
	if err != nil {
		return fmt.Errorf("failed to marshal business for cache: %w", err)
	}
	// Срок жизни кэша 5 минут
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set business in cache: %w", err)
	}
	return nil
}

// InvalidateBusinessCache удаляет бизнес из Redis кэша
func (r *BusinessRepository) InvalidateBusinessCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("business:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate business cache: %w", err)
	}
	return nil
}
