package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"growlink/internal/apperrors"
	"growlink/internal/models"
)

type eventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	event.CreatedAt = time.Now()

	query := `
		INSERT INTO events (id, user_id, title, topic, description, image_url, key_summary_path, created_at)
		VALUES (:id, :user_id, :title, :topic, :description, :image_url, :key_summary_path, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, event)
	if err != nil {
		return fmt.Errorf("ошибка при создании события: %w", err)
	}

	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, eventID string) (*models.Event, error) {
	query := `
		SELECT ev.*, u.user_name
		FROM events ev
		JOIN users u ON ev.user_id = u.id
		WHERE ev.id = $1
	`

	var event models.Event
	err := r.db.GetContext(ctx, &event, query, eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении события: %w", err)
	}

	return &event, nil
}

func (r *eventRepository) GetAll(ctx context.Context) ([]models.Event, error) {
	query := `
		SELECT ev.*, u.user_name
		FROM events ev
		JOIN users u ON ev.user_id = u.id
		ORDER BY ev.created_at DESC
	`

	var events []models.Event
	err := r.db.SelectContext(ctx, &events, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении событий: %w", err)
	}

	return events, nil
}
