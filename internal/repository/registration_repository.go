package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"growlink/internal/apperrors"
	"growlink/internal/models"
)

type registrationRepository struct {
	db *sqlx.DB
}

func NewRegistrationRepository(db *sqlx.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

// Create полагается на UNIQUE(event_id, user_id): повторная регистрация
// приходит из БД нарушением уникальности и превращается в ErrConflict
func (r *registrationRepository) Create(ctx context.Context, registration *models.Registration) error {
	if registration.ID == "" {
		registration.ID = uuid.New().String()
	}
	registration.CreatedAt = time.Now()

	query := `
		INSERT INTO event_registrations (id, event_id, user_id, created_at)
		VALUES (:id, :event_id, :user_id, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, registration)
	if err != nil {
		if apperrors.IsUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("ошибка при регистрации на событие: %w", err)
	}

	return nil
}

func (r *registrationRepository) GetByEventID(ctx context.Context, eventID string) ([]models.Registration, error) {
	query := `
		SELECT er.*, u.user_name
		FROM event_registrations er
		JOIN users u ON er.user_id = u.id
		WHERE er.event_id = $1
	`

	var registrations []models.Registration
	err := r.db.SelectContext(ctx, &registrations, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении регистраций: %w", err)
	}

	return registrations, nil
}

func (r *registrationRepository) GetEventIDsByUserID(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT er.event_id
		FROM event_registrations er
		WHERE er.user_id = $1
	`

	var eventIDs []string
	err := r.db.SelectContext(ctx, &eventIDs, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении регистраций пользователя: %w", err)
	}

	return eventIDs, nil
}

func (r *registrationRepository) GetRegisteredEvents(ctx context.Context, userID string) ([]models.RegisteredEvent, error) {
	query := `
		SELECT ev.id, ev.title, ev.image_url, ev.topic, ev.description, u.user_name
		FROM events ev
		JOIN event_registrations er ON ev.id = er.event_id
		JOIN users u ON ev.user_id = u.id
		WHERE er.user_id = $1
	`

	var events []models.RegisteredEvent
	err := r.db.SelectContext(ctx, &events, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении событий пользователя: %w", err)
	}

	return events, nil
}

// GetEventsNeedingReview - события, на которые пользователь зарегистрирован,
// но еще не оставил отзыв
func (r *registrationRepository) GetEventsNeedingReview(ctx context.Context, userID string) ([]models.EventNeedingReview, error) {
	query := `
		SELECT ev.id, ev.title, ev.image_url
		FROM events ev
		JOIN event_registrations er ON ev.id = er.event_id
		LEFT JOIN event_reviews rev ON ev.id = rev.event_id AND rev.user_id = er.user_id
		WHERE er.user_id = $1 AND rev.id IS NULL
	`

	var events []models.EventNeedingReview
	err := r.db.SelectContext(ctx, &events, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении событий без отзыва: %w", err)
	}

	return events, nil
}
