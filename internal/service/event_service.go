package service

import (
	"context"
	"fmt"

	"growlink/internal/models"
	"growlink/internal/repository"
	"growlink/internal/storage"
)

type CreateEventRequest struct {
	UserID      string
	Title       string
	Topic       string
	Description *string
	// оба файла необязательны
	Image      *UploadFile
	KeySummary *UploadFile
}

type EventService interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*models.Event, error)
}

type eventService struct {
	eventRepo repository.EventRepository
	storage   storage.Storage
}

func NewEventService(eventRepo repository.EventRepository, storage storage.Storage) EventService {
	return &eventService{
		eventRepo: eventRepo,
		storage:   storage,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, req CreateEventRequest) (*models.Event, error) {
	var imageURL, keySummaryPath *string

	if req.Image != nil {
		path, err := s.storage.SaveFile(ctx, storage.KindImage, req.Image.Name, req.Image.File, req.Image.Size)
		if err != nil {
			return nil, fmt.Errorf("ошибка сохранения изображения: %w", err)
		}
		imageURL = &path
	}

	if req.KeySummary != nil {
		path, err := s.storage.SaveFile(ctx, storage.KindKeySum, req.KeySummary.Name, req.KeySummary.File, req.KeySummary.Size)
		if err != nil {
			if imageURL != nil {
				s.storage.DeleteFile(ctx, *imageURL)
			}
			return nil, fmt.Errorf("ошибка сохранения key summary: %w", err)
		}
		keySummaryPath = &path
	}

	event := &models.Event{
		UserID:         req.UserID,
		Title:          req.Title,
		Topic:          req.Topic,
		Description:    req.Description,
		ImageURL:       imageURL,
		KeySummaryPath: keySummaryPath,
	}

	err := s.eventRepo.Create(ctx, event)
	if err != nil {
		if imageURL != nil {
			s.storage.DeleteFile(ctx, *imageURL)
		}
		if keySummaryPath != nil {
			s.storage.DeleteFile(ctx, *keySummaryPath)
		}
		return nil, err
	}

	created, err := s.eventRepo.GetByID(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	return created, nil
}
