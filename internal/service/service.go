package service

import (
	"io"

	"growlink/internal/config"
	"growlink/internal/repository"
	"growlink/internal/storage"
)

// UploadFile - файл из multipart формы, как его передает handler
type UploadFile struct {
	Name string
	File io.Reader
	Size int64
}

type Service struct {
	Auth     AuthService
	User     UserService
	Thread   ThreadService
	Template TemplateService
	Event    EventService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:     NewAuthService(rep.User, cfg),
		User:     NewUserService(rep.User, storage, cfg),
		Thread:   NewThreadService(rep.Thread),
		Template: NewTemplateService(rep.Template, storage),
		Event:    NewEventService(rep.Event, storage),
	}
}
