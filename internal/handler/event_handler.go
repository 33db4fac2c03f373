package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"growlink/internal/apperrors"
	"growlink/internal/middleware"
	"growlink/internal/models"
	"growlink/internal/service"
	"growlink/internal/storage"
)

type CreateCommentRequest struct {
	Comment string `json:"comment"`
}

type CreateReviewRequest struct {
	Rating     int     `json:"rating"`
	ReviewText *string `json:"review_text"`
}

type EventResponse struct {
	Message string       `json:"message"`
	Event   models.Event `json:"event"`
}

func normalizeEvent(event *models.Event) {
	event.ImageURL = storage.NormalizeUploadPathPtr(event.ImageURL)
	event.KeySummaryPath = storage.NormalizeUploadPathPtr(event.KeySummaryPath)
}

func (h *Handlers) GetEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.EventRepo.GetAll(r.Context())
	if err != nil {
		WriteKindError(w, err, "Не удалось получить события")
		return
	}

	if events == nil {
		events = []models.Event{}
	}

	for i := range events {
		normalizeEvent(&events[i])
	}

	WriteJSON(w, events, http.StatusOK)
}

func (h *Handlers) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["id"]

	event, err := h.EventRepo.GetByID(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			WriteKindError(w, err, "Событие не найдено")
		} else {
			WriteKindError(w, err, "")
		}
		return
	}

	normalizeEvent(event)

	WriteJSON(w, event, http.StatusOK)
}

func (h *Handlers) CreateEvent(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Неверный формат формы", http.StatusBadRequest)
		return
	}

	title := r.FormValue("title")
	topic := r.FormValue("topic")

	if title == "" || topic == "" {
		WriteError(w, "Название и тема обязательны", http.StatusBadRequest)
		return
	}

	var description *string
	if v := r.FormValue("description"); v != "" {
		description = &v
	}

	req := service.CreateEventRequest{
		UserID:      claims.ID,
		Title:       title,
		Topic:       topic,
		Description: description,
	}

	// оба файла необязательны
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		req.Image = &service.UploadFile{Name: header.Filename, File: file, Size: header.Size}
	}

	if file, header, err := r.FormFile("keySum"); err == nil {
		defer file.Close()
		req.KeySummary = &service.UploadFile{Name: header.Filename, File: file, Size: header.Size}
	}

	event, err := h.EventService.CreateEvent(r.Context(), req)
	if err != nil {
		WriteKindError(w, err, "")
		return
	}

	normalizeEvent(event)

	WriteJSON(w, EventResponse{
		Message: "Событие успешно создано",
		Event:   *event,
	}, http.StatusCreated)
}

func (h *Handlers) RegisterForEvent(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	eventID := mux.Vars(r)["id"]

	registration := &models.Registration{
		EventID: eventID,
		UserID:  claims.ID,
	}

	err := h.RegistrationRepo.Create(r.Context(), registration)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			WriteKindError(w, err, "Вы уже зарегистрированы на это событие")
		} else {
			WriteKindError(w, err, "")
		}
		return
	}

	WriteJSON(w, MessageResponse{Message: "Вы успешно зарегистрированы на событие"}, http.StatusCreated)
}

func (h *Handlers) GetRegistrations(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["id"]

	registrations, err := h.RegistrationRepo.GetByEventID(r.Context(), eventID)
	if err != nil {
		WriteKindError(w, err, "")
		return
	}

	if registrations == nil {
		registrations = []models.Registration{}
	}

	WriteJSON(w, registrations, http.StatusOK)
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["id"]

	comments, err := h.CommentRepo.GetByEventID(r.Context(), eventID)
	if err != nil {
		WriteKindError(w, err, "")
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	WriteJSON(w, comments, http.StatusOK)
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	eventID := mux.Vars(r)["id"]

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Comment) == "" {
		WriteError(w, "Комментарий обязателен", http.StatusBadRequest)
		return
	}

	comment := &models.Comment{
		EventID:     eventID,
		UserID:      claims.ID,
		CommentText: req.Comment,
	}

	if err := h.CommentRepo.Create(r.Context(), comment); err != nil {
		WriteKindError(w, err, "")
		return
	}

	WriteJSON(w, MessageResponse{Message: "Комментарий успешно добавлен"}, http.StatusCreated)
}

func (h *Handlers) GetReviews(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["id"]

	reviews, err := h.ReviewRepo.GetByEventID(r.Context(), eventID)
	if err != nil {
		WriteKindError(w, err, "")
		return
	}

	if reviews == nil {
		reviews = []models.Review{}
	}

	WriteJSON(w, reviews, http.StatusOK)
}

func (h *Handlers) CreateReview(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	eventID := mux.Vars(r)["id"]

	var req CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.Rating == 0 {
		WriteError(w, "Оценка обязательна", http.StatusBadRequest)
		return
	}

	review := &models.Review{
		EventID:    eventID,
		UserID:     claims.ID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	}

	err := h.ReviewRepo.Create(r.Context(), review)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			WriteKindError(w, err, "Вы уже оставили отзыв на это событие")
		} else {
			WriteKindError(w, err, "")
		}
		return
	}

	WriteJSON(w, MessageResponse{Message: "Отзыв успешно добавлен"}, http.StatusCreated)
}
