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

type reviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create полагается на UNIQUE(event_id, user_id): второй отзыв того же
// пользователя превращается в ErrConflict
func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	review.CreatedAt = time.Now()

	query := `
		INSERT INTO event_reviews (id, event_id, user_id, rating, review_text, created_at)
		VALUES (:id, :event_id, :user_id, :rating, :review_text, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, review)
	if err != nil {
		if apperrors.IsUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("ошибка при создании отзыва: %w", err)
	}

	return nil
}

func (r *reviewRepository) GetByEventID(ctx context.Context, eventID string) ([]models.Review, error) {
	query := `
		SELECT er.*, u.user_name
		FROM event_reviews er
		JOIN users u ON er.user_id = u.id
		WHERE er.event_id = $1
		ORDER BY er.created_at DESC
	`

	var reviews []models.Review
	err := r.db.SelectContext(ctx, &reviews, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении отзывов: %w", err)
	}

	return reviews, nil
}
