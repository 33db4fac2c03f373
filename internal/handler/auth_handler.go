package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"growlink/internal/apperrors"
	"growlink/internal/models"
	"growlink/internal/service"
)

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

type LoginRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    models.PublicUser `json:"user"`
}

func publicUser(user *models.User) models.PublicUser {
	return models.PublicUser{
		ID:       user.ID,
		UserName: user.UserName,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     user.Role,
	}
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.UserName == "" || req.Password == "" || req.FullName == "" || req.Email == "" {
		WriteError(w, "Все поля обязательны", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	serviceReq := service.RegisterRequest{
		UserName: req.UserName,
		Password: req.Password,
		FullName: req.FullName,
		Email:    req.Email,
	}

	_, err := h.AuthService.Register(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			WriteKindError(w, err, "Имя пользователя или email уже существуют")
		} else {
			WriteKindError(w, err, "")
		}
		return
	}

	WriteJSON(w, MessageResponse{Message: "Пользователь успешно зарегистрирован"}, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.UserName == "" || req.Password == "" {
		WriteError(w, "Имя пользователя и пароль обязательны", http.StatusBadRequest)
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.UserName, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			// одинаковый ответ для неизвестного имени и неверного пароля
			WriteKindError(w, err, "Неверное имя пользователя или пароль")
		} else {
			WriteKindError(w, err, "")
		}
		return
	}

	WriteJSON(w, AuthResponse{
		Message: "Вход выполнен успешно",
		Token:   token,
		User:    publicUser(user),
	}, http.StatusOK)
}
