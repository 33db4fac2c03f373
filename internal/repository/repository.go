package repository

import (
	"context"
	"growlink/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByUserName(ctx context.Context, userName string) (*models.User, error)
	VerifyPassword(ctx context.Context, userName, password string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID, fullName, email string) error
	BecomeSpeaker(ctx context.Context, userID string, linkedinURL, cvPath, speakerCategory *string) error
}

type ThreadRepository interface {
	Create(ctx context.Context, thread *models.Thread) error
	GetByID(ctx context.Context, threadID string) (*models.Thread, error)
	GetAll(ctx context.Context) ([]models.Thread, error)
	DeleteOwned(ctx context.Context, threadID, userID string) error
}

type TemplateRepository interface {
	Create(ctx context.Context, template *models.Template) error
	GetByID(ctx context.Context, templateID string) (*models.Template, error)
	GetAll(ctx context.Context) ([]models.Template, error)
	GetOwned(ctx context.Context, templateID, userID string) (*models.Template, error)
	DeleteOwned(ctx context.Context, templateID, userID string) error
}

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, eventID string) (*models.Event, error)
	GetAll(ctx context.Context) ([]models.Event, error)
}

type RegistrationRepository interface {
	Create(ctx context.Context, registration *models.Registration) error
	GetByEventID(ctx context.Context, eventID string) ([]models.Registration, error)
	GetEventIDsByUserID(ctx context.Context, userID string) ([]string, error)
	GetRegisteredEvents(ctx context.Context, userID string) ([]models.RegisteredEvent, error)
	GetEventsNeedingReview(ctx context.Context, userID string) ([]models.EventNeedingReview, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByEventID(ctx context.Context, eventID string) ([]models.Review, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByEventID(ctx context.Context, eventID string) ([]models.Comment, error)
}

type Repository struct {
	User         UserRepository
	Thread       ThreadRepository
	Template     TemplateRepository
	Event        EventRepository
	Registration RegistrationRepository
	Review       ReviewRepository
	Comment      CommentRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:         NewUserRepository(db),
		Thread:       NewThreadRepository(db),
		Template:     NewTemplateRepository(db),
		Event:        NewEventRepository(db),
		Registration: NewRegistrationRepository(db),
		Review:       NewReviewRepository(db),
		Comment:      NewCommentRepository(db),
	}
}
