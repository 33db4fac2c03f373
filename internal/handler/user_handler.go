package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"growlink/internal/apperrors"
	"growlink/internal/middleware"
	"growlink/internal/models"
	"growlink/internal/service"
	"growlink/internal/storage"
)

// SuccessResponse - обертка {success, data}, как ее отдают маршруты /users и /templates
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	user, err := h.UserRepo.GetUserByID(r.Context(), claims.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			WriteKindError(w, err, "Пользователь не найден")
		} else {
			WriteKindError(w, err, "")
		}
		return
	}

	WriteJSON(w, SuccessResponse{Success: true, Data: publicUser(user)}, http.StatusOK)
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.FullName == "" || req.Email == "" {
		WriteError(w, "Полное имя и email обязательны", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверный формат email", http.StatusBadRequest)
		return
	}

	err := h.UserService.UpdateProfile(r.Context(), claims.ID, req.FullName, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			WriteKindError(w, err, "Email уже занят")
		} else {
			WriteKindError(w, err, "")
		}
		return
	}

	WriteJSON(w, SuccessResponse{Success: true, Message: "Профиль обновлен"}, http.StatusOK)
}

func (h *Handlers) BecomeSpeaker(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Неверный формат формы", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("cv")
	if err != nil {
		WriteError(w, "Файл CV обязателен", http.StatusBadRequest)
		return
	}
	defer file.Close()

	var linkedinURL, speakerCategory *string
	if v := r.FormValue("linkedin-url"); v != "" {
		linkedinURL = &v
	}
	if v := r.FormValue("category"); v != "" {
		speakerCategory = &v
	}

	user, err := h.UserService.BecomeSpeaker(r.Context(), service.BecomeSpeakerRequest{
		UserID:          claims.ID,
		LinkedinURL:     linkedinURL,
		SpeakerCategory: speakerCategory,
		CV: service.UploadFile{
			Name: header.Filename,
			File: file,
			Size: header.Size,
		},
	})
	if err != nil {
		WriteKindError(w, err, "")
		return
	}

	// новый токен с ролью speaker, чтобы следующий запрос уже нес новые права
	token, err := h.AuthService.GenerateAccessToken(user)
	if err != nil {
		WriteKindError(w, err, "")
		return
	}

	WriteJSON(w, map[string]interface{}{
		"success": true,
		"message": "Поздравляем! Теперь вы спикер",
		"user":    publicUser(user),
		"token":   token,
	}, http.StatusOK)
}

func (h *Handlers) GetRegisteredEvents(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	eventIDs, err := h.RegistrationRepo.GetEventIDsByUserID(r.Context(), claims.ID)
	if err != nil {
		WriteKindError(w, err, "")
		return
	}

	if eventIDs == nil {
		eventIDs = []string{}
	}

	WriteJSON(w, SuccessResponse{Success: true, Data: eventIDs}, http.StatusOK)
}

func (h *Handlers) GetRegisteredEventDetails(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	events, err := h.RegistrationRepo.GetRegisteredEvents(r.Context(), claims.ID)
	if err != nil {
		WriteKindError(w, err, "")
		return
	}

	if events == nil {
		events = []models.RegisteredEvent{}
	}

	for i := range events {
		events[i].ImageURL = storage.NormalizeUploadPathPtr(events[i].ImageURL)
	}

	WriteJSON(w, SuccessResponse{Success: true, Data: events}, http.StatusOK)
}

func (h *Handlers) GetEventsNeedingReview(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	events, err := h.RegistrationRepo.GetEventsNeedingReview(r.Context(), claims.ID)
	if err != nil {
		WriteKindError(w, err, "")
		return
	}

	if events == nil {
		events = []models.EventNeedingReview{}
	}

	for i := range events {
		events[i].ImageURL = storage.NormalizeUploadPathPtr(events[i].ImageURL)
	}

	WriteJSON(w, SuccessResponse{Success: true, Data: events}, http.StatusOK)
}
