package service

import (
	"context"
	"fmt"

	"growlink/internal/config"
	"growlink/internal/models"
	"growlink/internal/repository"
	"growlink/internal/storage"
)

type BecomeSpeakerRequest struct {
	UserID          string
	LinkedinURL     *string
	SpeakerCategory *string
	CV              UploadFile
}

type UserService interface {
	UpdateProfile(ctx context.Context, userID, fullName, email string) error
	BecomeSpeaker(ctx context.Context, req BecomeSpeakerRequest) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	storage  storage.Storage
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, storage storage.Storage, cfg *config.Config) UserService {
	return &userService{
		userRepo: userRepo,
		storage:  storage,
		cfg:      cfg,
	}
}

func (s *userService) UpdateProfile(ctx context.Context, userID, fullName, email string) error {
	return s.userRepo.UpdateProfile(ctx, userID, fullName, email)
}

// BecomeSpeaker сохраняет CV, переводит роль в speaker и возвращает
// свежую строку пользователя. Новый токен с новой ролью выписывает
// handler через AuthService
func (s *userService) BecomeSpeaker(ctx context.Context, req BecomeSpeakerRequest) (*models.User, error) {
	cvPath, err := s.storage.SaveFile(ctx, storage.KindCV, req.CV.Name, req.CV.File, req.CV.Size)
	if err != nil {
		return nil, fmt.Errorf("ошибка сохранения CV: %w", err)
	}

	err = s.userRepo.BecomeSpeaker(ctx, req.UserID, req.LinkedinURL, &cvPath, req.SpeakerCategory)
	if err != nil {
		s.storage.DeleteFile(ctx, cvPath)
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	return user, nil
}
