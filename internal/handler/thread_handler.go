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
)

type CreateThreadRequest struct {
	Content string `json:"content"`
}

type ThreadResponse struct {
	Message string        `json:"message"`
	Thread  models.Thread `json:"thread"`
}

func (h *Handlers) GetThreads(w http.ResponseWriter, r *http.Request) {
	threads, err := h.ThreadRepo.GetAll(r.Context())
	if err != nil {
		WriteKindError(w, err, "Не удалось получить треды")
		return
	}

	if threads == nil {
		threads = []models.Thread{}
	}

	WriteJSON(w, threads, http.StatusOK)
}

func (h *Handlers) GetThread(w http.ResponseWriter, r *http.Request) {
	threadID := mux.Vars(r)["id"]

	thread, err := h.ThreadRepo.GetByID(r.Context(), threadID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			WriteKindError(w, err, "Тред не найден")
		} else {
			WriteKindError(w, err, "")
		}
		return
	}

	WriteJSON(w, thread, http.StatusOK)
}

func (h *Handlers) CreateThread(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req CreateThreadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Content) == "" {
		WriteError(w, "Содержимое треда обязательно", http.StatusBadRequest)
		return
	}

	thread, err := h.ThreadService.CreateThread(r.Context(), claims.ID, req.Content)
	if err != nil {
		WriteKindError(w, err, "")
		return
	}

	WriteJSON(w, ThreadResponse{
		Message: "Тред успешно создан",
		Thread:  *thread,
	}, http.StatusCreated)
}

func (h *Handlers) DeleteThread(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	threadID := mux.Vars(r)["id"]

	err := h.ThreadService.DeleteThread(r.Context(), threadID, claims.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			WriteKindError(w, err, "Вы не владелец треда или тред не найден")
		} else {
			WriteKindError(w, err, "")
		}
		return
	}

	WriteJSON(w, MessageResponse{Message: "Тред успешно удален"}, http.StatusOK)
}
