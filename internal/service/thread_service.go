package service

import (
	"context"

	"growlink/internal/models"
	"growlink/internal/repository"
)

type ThreadService interface {
	CreateThread(ctx context.Context, userID, content string) (*models.Thread, error)
	DeleteThread(ctx context.Context, threadID, userID string) error
}

type threadService struct {
	threadRepo repository.ThreadRepository
}

func NewThreadService(threadRepo repository.ThreadRepository) ThreadService {
	return &threadService{threadRepo: threadRepo}
}

// CreateThread вставляет строку и сразу перечитывает ее с JOIN,
// чтобы в ответе было имя автора. Это два независимых запроса,
// не транзакция
func (s *threadService) CreateThread(ctx context.Context, userID, content string) (*models.Thread, error) {
	thread := &models.Thread{
		UserID:  userID,
		Content: content,
	}

	err := s.threadRepo.Create(ctx, thread)
	if err != nil {
		return nil, err
	}

	created, err := s.threadRepo.GetByID(ctx, thread.ID)
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *threadService) DeleteThread(ctx context.Context, threadID, userID string) error {
	return s.threadRepo.DeleteOwned(ctx, threadID, userID)
}
