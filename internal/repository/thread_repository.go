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

type threadRepository struct {
	db *sqlx.DB
}

func NewThreadRepository(db *sqlx.DB) ThreadRepository {
	return &threadRepository{db: db}
}

func (r *threadRepository) Create(ctx context.Context, thread *models.Thread) error {
	if thread.ID == "" {
		thread.ID = uuid.New().String()
	}
	thread.CreatedAt = time.Now()

	query := `
		INSERT INTO threads (id, user_id, content, created_at)
		VALUES (:id, :user_id, :content, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, thread)
	if err != nil {
		return fmt.Errorf("ошибка при создании треда: %w", err)
	}

	return nil
}

func (r *threadRepository) GetByID(ctx context.Context, threadID string) (*models.Thread, error) {
	query := `
		SELECT t.*, u.user_name AS author
		FROM threads t
		JOIN users u ON t.user_id = u.id
		WHERE t.id = $1
	`

	var thread models.Thread
	err := r.db.GetContext(ctx, &thread, query, threadID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении треда: %w", err)
	}

	return &thread, nil
}

func (r *threadRepository) GetAll(ctx context.Context) ([]models.Thread, error) {
	query := `
		SELECT t.*, u.user_name AS author
		FROM threads t
		JOIN users u ON t.user_id = u.id
		ORDER BY t.created_at DESC
	`

	var threads []models.Thread
	err := r.db.SelectContext(ctx, &threads, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении тредов: %w", err)
	}

	return threads, nil
}

// DeleteOwned удаляет тред одним запросом с проверкой владельца.
// Ноль затронутых строк значит "не владелец или не найдено" - по контракту
// это forbidden, без уточнения какой из двух случаев
func (r *threadRepository) DeleteOwned(ctx context.Context, threadID, userID string) error {
	query := `DELETE FROM threads WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, threadID, userID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении треда: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrForbidden
	}

	return nil
}
