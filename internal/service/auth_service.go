package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"growlink/internal/apperrors"
	"growlink/internal/config"
	"growlink/internal/models"
	"growlink/internal/repository"
)

type RegisterRequest struct {
	UserName string
	Password string
	FullName string
	Email    string
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Login(ctx context.Context, userName, password string) (*models.User, string, error)
	GenerateAccessToken(user *models.User) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	user := &models.User{
		UserName: req.UserName,
		FullName: req.FullName,
		Email:    req.Email,
		Role:     "user",
	}

	// уникальность имени и email проверяет БД, дубликат придет как ErrConflict
	err := s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.ErrConflict
		}
		return nil, fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, userName, password string) (*models.User, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, userName, password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			return nil, "", apperrors.ErrUnauthorized
		}
		return nil, "", fmt.Errorf("ошибка аутентификации: %w", err)
	}

	accessToken, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка генерации access token: %w", err)
	}

	return user, accessToken, nil
}

func (s *authService) GenerateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":        user.ID,
		"user_name": user.UserName,
		"role":      user.Role,
		"exp":       time.Now().Add(s.cfg.AccessTokenDuration).Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

func (s *authService) ValidateToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга токена: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("недействительный токен")
	}

	return token, nil
}
