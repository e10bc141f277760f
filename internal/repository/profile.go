package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/streetbites/streetbites_backend/internal/models"
	"github.com/streetbites/streetbites_backend/internal/service"
)

type ProfileRepository struct {
	db DB
}

func NewProfileRepository(db DB) service.ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetByID возвращает профиль пользователя вместе с подписками и штампами
func (r *ProfileRepository) GetByID(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile := &models.UserProfile{}
	query := `
		SELECT id, name, notifications_enabled, created_at, updated_at
		FROM user_profiles
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.Name,
		&profile.NotificationsEnabled,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user profile with id %s not found", userID)
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	profile.Following, err = r.collectUUIDs(ctx, `
		SELECT business_id FROM user_following WHERE user_id = $1;
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load following list: %w", err)
	}

	profile.PassportStamps, err = r.collectUUIDs(ctx, `
		SELECT business_id FROM passport_stamps WHERE user_id = $1 ORDER BY stamped_at;
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load passport stamps: %w", err)
	}

	return profile, nil
}

func (r *ProfileRepository) collectUUIDs(ctx context.Context, query, userID string) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Upsert создает профиль или обновляет имя и флаг уведомлений
func (r *ProfileRepository) Upsert(ctx context.Context, profile *models.UserProfile) error {
	query := `
		INSERT INTO user_profiles (id, name, notifications_enabled)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			notifications_enabled = EXCLUDED.notifications_enabled,
			updated_at = NOW()
		RETURNING created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query, profile.ID, profile.Name, profile.NotificationsEnabled).
		Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert user profile: %w", err)
	}
	return nil
}

// Follow подписывает пользователя на бизнес (идемпотентно)
func (r *ProfileRepository) Follow(ctx context.Context, userID string, businessID uuid.UUID) error {
	query := `
		INSERT INTO user_following (user_id, business_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, business_id) DO NOTHING;
	`
	if _, err := r.db.Exec(ctx, query, userID, businessID); err != nil {
		return fmt.Errorf("failed to follow business: %w", err)
	}
	return nil
}

// Unfollow отписывает пользователя от бизнеса
func (r *ProfileRepository) Unfollow(ctx context.Context, userID string, businessID uuid.UUID) error {
	query := `
		DELETE FROM user_following
		WHERE user_id = $1 AND business_id = $2;
	`
	if _, err := r.db.Exec(ctx, query, userID, businessID); err != nil {
		return fmt.Errorf("failed to unfollow business: %w", err)
	}
	return nil
}

// AddPassportStamp выдает штамп за первое посещение бизнеса
func (r *ProfileRepository) AddPassportStamp(ctx context.Context, userID string, businessID uuid.UUID) error {
	query := `
		INSERT INTO passport_stamps (user_id, business_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, business_id) DO NOTHING;
	`
	if _, err := r.db.Exec(ctx, query, userID, businessID); err != nil {
		return fmt.Errorf("failed to add passport stamp: %w", err)
	}
	return nil
}
