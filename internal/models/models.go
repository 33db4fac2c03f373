package models

import (
	"time"
)

type User struct {
	ID              string    `json:"id" db:"id"`
	UserName        string    `json:"user_name" db:"user_name"`
	PasswordHash    string    `json:"-" db:"password_hash"`
	FullName        string    `json:"full_name" db:"full_name"`
	Email           string    `json:"email" db:"email"`
	Role            string    `json:"role" db:"role"`
	LinkedinURL     *string   `json:"linkedin_url,omitempty" db:"linkedin_url"`
	CvPath          *string   `json:"cv_path,omitempty" db:"cv_path"`
	SpeakerCategory *string   `json:"speaker_category,omitempty" db:"speaker_category"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// PublicUser - публичные поля пользователя (без хеша пароля)
type PublicUser struct {
	ID       string `json:"id" db:"id"`
	UserName string `json:"user_name" db:"user_name"`
	FullName string `json:"full_name" db:"full_name"`
	Email    string `json:"email" db:"email"`
	Role     string `json:"role" db:"role"`
}

type Thread struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	// user_name автора из JOIN
	Author string `json:"author" db:"author"`
}

type Template struct {
	ID       string `json:"id" db:"id"`
	UserID   string `json:"user_id" db:"user_id"`
	Title    string `json:"title" db:"title"`
	Category string `json:"category" db:"category"`
	FilePath string `json:"file_path" db:"file_path"`
	UserName string `json:"user_name" db:"user_name"`
}

type Event struct {
	ID             string    `json:"id" db:"id"`
	UserID         string    `json:"user_id" db:"user_id"`
	Title          string    `json:"title" db:"title"`
	Topic          string    `json:"topic" db:"topic"`
	Description    *string   `json:"description" db:"description"`
	ImageURL       *string   `json:"image_url" db:"image_url"`
	KeySummaryPath *string   `json:"key_summary_path" db:"key_summary_path"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UserName       string    `json:"user_name" db:"user_name"`
}

// RegisteredEvent - событие из списка "мои регистрации" (детали)
type RegisteredEvent struct {
	ID          string  `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	ImageURL    *string `json:"image_url" db:"image_url"`
	Topic       string  `json:"topic" db:"topic"`
	Description *string `json:"description" db:"description"`
	UserName    string  `json:"user_name" db:"user_name"`
}

// EventNeedingReview - посещенное событие без отзыва текущего пользователя
type EventNeedingReview struct {
	ID       string  `json:"id" db:"id"`
	Title    string  `json:"title" db:"title"`
	ImageURL *string `json:"image_url" db:"image_url"`
}

type Registration struct {
	ID        string    `json:"id" db:"id"`
	EventID   string    `json:"event_id" db:"event_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UserName  string    `json:"user_name" db:"user_name"`
}

type Review struct {
	ID         string    `json:"id" db:"id"`
	EventID    string    `json:"event_id" db:"event_id"`
	UserID     string    `json:"user_id" db:"user_id"`
	Rating     int       `json:"rating" db:"rating"`
	ReviewText *string   `json:"review_text" db:"review_text"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UserName   string    `json:"user_name" db:"user_name"`
}

type Comment struct {
	ID          string    `json:"id" db:"id"`
	EventID     string    `json:"event_id" db:"event_id"`
	UserID      string    `json:"user_id" db:"user_id"`
	CommentText string    `json:"comment_text" db:"comment_text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UserName    string    `json:"user_name" db:"user_name"`
}
