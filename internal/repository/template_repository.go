package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"growlink/internal/apperrors"
	"growlink/internal/models"
)

type templateRepository struct {
	db *sqlx.DB
}

func NewTemplateRepository(db *sqlx.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) Create(ctx context.Context, template *models.Template) error {
	if template.ID == "" {
		template.ID = uuid.New().String()
	}

	query := `
		INSERT INTO templates (id, user_id, title, category, file_path)
		VALUES (:id, :user_id, :title, :category, :file_path)
	`

	_, err := r.db.NamedExecContext(ctx, query, template)
	if err != nil {
		return fmt.Errorf("ошибка при создании шаблона: %w", err)
	}

	return nil
}

func (r *templateRepository) GetByID(ctx context.Context, templateID string) (*models.Template, error) {
	query := `
		SELECT tp.*, u.user_name
		FROM templates tp
		JOIN users u ON tp.user_id = u.id
		WHERE tp.id = $1
	`

	var template models.Template
	err := r.db.GetContext(ctx, &template, query, templateID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении шаблона: %w", err)
	}

	return &template, nil
}

func (r *templateRepository) GetAll(ctx context.Context) ([]models.Template, error) {
	query := `
		SELECT tp.*, u.user_name
		FROM templates tp
		JOIN users u ON tp.user_id = u.id
		ORDER BY tp.id DESC
	`

	var templates []models.Template
	err := r.db.SelectContext(ctx, &templates, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении шаблонов: %w", err)
	}

	return templates, nil
}

// GetOwned возвращает шаблон только если он принадлежит пользователю.
// Для чужого или несуществующего шаблона - одинаковый ErrNotFound
func (r *templateRepository) GetOwned(ctx context.Context, templateID, userID string) (*models.Template, error) {
	query := `
		SELECT tp.*, u.user_name
		FROM templates tp
		JOIN users u ON tp.user_id = u.id
		WHERE tp.id = $1 AND tp.user_id = $2
	`

	var template models.Template
	err := r.db.GetContext(ctx, &template, query, templateID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении шаблона: %w", err)
	}

	return &template, nil
}

func (r *templateRepository) DeleteOwned(ctx context.Context, templateID, userID string) error {
	query := `DELETE FROM templates WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, templateID, userID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении шаблона: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
