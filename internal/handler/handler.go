package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"growlink/internal/config"
	"growlink/internal/database"
	"growlink/internal/repository"
	"growlink/internal/service"
)

type Handlers struct {
	AuthService      service.AuthService
	UserService      service.UserService
	ThreadService    service.ThreadService
	TemplateService  service.TemplateService
	EventService     service.EventService
	UserRepo         repository.UserRepository
	ThreadRepo       repository.ThreadRepository
	TemplateRepo     repository.TemplateRepository
	EventRepo        repository.EventRepository
	RegistrationRepo repository.RegistrationRepository
	ReviewRepo       repository.ReviewRepository
	CommentRepo      repository.CommentRepository
	DB               *database.DB
	Cfg              *config.Config
	Validate         *validator.Validate
}

func NewHandlers(db *database.DB, repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:      service.Auth,
		UserService:      service.User,
		ThreadService:    service.Thread,
		TemplateService:  service.Template,
		EventService:     service.Event,
		UserRepo:         repo.User,
		ThreadRepo:       repo.Thread,
		TemplateRepo:     repo.Template,
		EventRepo:        repo.Event,
		RegistrationRepo: repo.Registration,
		ReviewRepo:       repo.Review,
		CommentRepo:      repo.Comment,
		DB:               db,
		Cfg:              config,
		Validate:         validator.New(),
	}
}

func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, map[string]interface{}{
		"message":   "Welcome to the GrowLink API!",
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"features": []string{
			"/auth",
			"/events",
			"/threads",
			"/templates",
			"/users",
		},
	}, http.StatusOK)
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		WriteError(w, "База данных недоступна", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
