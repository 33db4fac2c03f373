package service

import (
	"context"
	"fmt"
	"log"

	"growlink/internal/models"
	"growlink/internal/repository"
	"growlink/internal/storage"
)

type CreateTemplateRequest struct {
	UserID   string
	Title    string
	Category string
	File     UploadFile
}

type TemplateService interface {
	CreateTemplate(ctx context.Context, req CreateTemplateRequest) (*models.Template, error)
	DeleteTemplate(ctx context.Context, templateID, userID string) error
}

type templateService struct {
	templateRepo repository.TemplateRepository
	storage      storage.Storage
}

func NewTemplateService(templateRepo repository.TemplateRepository, storage storage.Storage) TemplateService {
	return &templateService{
		templateRepo: templateRepo,
		storage:      storage,
	}
}

func (s *templateService) CreateTemplate(ctx context.Context, req CreateTemplateRequest) (*models.Template, error) {
	filePath, err := s.storage.SaveFile(ctx, storage.KindTemplate, req.File.Name, req.File.File, req.File.Size)
	if err != nil {
		return nil, fmt.Errorf("ошибка сохранения файла шаблона: %w", err)
	}

	template := &models.Template{
		UserID:   req.UserID,
		Title:    req.Title,
		Category: req.Category,
		FilePath: filePath,
	}

	err = s.templateRepo.Create(ctx, template)
	if err != nil {
		s.storage.DeleteFile(ctx, filePath)
		return nil, err
	}

	return template, nil
}

// DeleteTemplate сначала находит шаблон в границах владельца (чужой или
// несуществующий - одинаковый ErrNotFound), удаляет файл best-effort,
// затем удаляет строку. Файл и строка не атомарны между собой
func (s *templateService) DeleteTemplate(ctx context.Context, templateID, userID string) error {
	template, err := s.templateRepo.GetOwned(ctx, templateID, userID)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteFile(ctx, template.FilePath); err != nil {
		log.Printf("Предупреждение: не удалось удалить файл шаблона: %v", err)
	}

	return s.templateRepo.DeleteOwned(ctx, templateID, userID)
}
