package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"growlink/internal/apperrors"
	"growlink/internal/models"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	// create password hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	user.ID = uuid.New().String()
	user.PasswordHash = string(hashedPassword)
	if user.Role == "" {
		user.Role = "user"
	}
	user.CreatedAt = time.Now()

	query := `
		INSERT INTO users (id, user_name, password_hash, full_name, email, role, created_at)
		VALUES (:id, :user_name, :password_hash, :full_name, :email, :role, :created_at)
	`

	_, err = r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if apperrors.IsUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByUserName(ctx context.Context, userName string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE user_name = $1`

	err := r.db.GetContext(ctx, &user, query, userName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по имени: %w", err)
	}

	return &user, nil
}

// VerifyPassword возвращает одну и ту же ошибку и для неизвестного имени,
// и для неверного пароля, чтобы не раскрывать существование аккаунта
func (r *userRepository) VerifyPassword(ctx context.Context, userName, password string) (*models.User, error) {
	user, err := r.GetUserByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, userID, fullName, email string) error {
	query := `
		UPDATE users
		SET full_name = $1, email = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, fullName, email, userID)
	if err != nil {
		if apperrors.IsUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("ошибка при обновлении профиля: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

func (r *userRepository) BecomeSpeaker(ctx context.Context, userID string, linkedinURL, cvPath, speakerCategory *string) error {
	query := `
		UPDATE users
		SET role = 'speaker', linkedin_url = $1, cv_path = $2, speaker_category = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query, linkedinURL, cvPath, speakerCategory, userID)
	if err != nil {
		return fmt.Errorf("ошибка при переводе в спикеры: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
