package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"growlink/internal/apperrors"
	"growlink/internal/middleware"
	"growlink/internal/models"
)

func TestGetCurrentUserHandler(t *testing.T) {
	claims := middleware.Claims{ID: "user-123", UserName: "alice", Role: "user"}

	t.Run("Профиль в обертке success/data", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		handler := createTestHandlers()
		handler.UserRepo = mockUserRepo

		mockUserRepo.On("GetUserByID", mock.Anything, "user-123").
			Return(&models.User{
				ID:           "user-123",
				UserName:     "alice",
				FullName:     "Alice Liddell",
				Email:        "alice@example.com",
				Role:         "user",
				PasswordHash: "secret-hash",
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		req = authed(req, claims)
		rr := httptest.NewRecorder()

		handler.GetCurrentUser(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response map[string]interface{}
		err := json.Unmarshal(rr.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, true, response["success"])

		data, ok := response["data"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, "alice", data["user_name"])
		_, leaked := data["password_hash"]
		assert.False(t, leaked)
	})

	t.Run("Пользователь удален после выдачи токена", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		handler := createTestHandlers()
		handler.UserRepo = mockUserRepo

		mockUserRepo.On("GetUserByID", mock.Anything, "user-123").
			Return(nil, apperrors.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		req = authed(req, claims)
		rr := httptest.NewRecorder()

		handler.GetCurrentUser(rr, req)

		assertJSONError(t, rr, http.StatusNotFound, "Пользователь не найден")
	})
}

func TestUpdateProfileHandler(t *testing.T) {
	claims := middleware.Claims{ID: "user-123", UserName: "alice", Role: "user"}

	t.Run("Успешное обновление", func(t *testing.T) {
		mockUserService := new(MockUserService)
		handler := createTestHandlers()
		handler.UserService = mockUserService

		mockUserService.On("UpdateProfile", mock.Anything, "user-123", "Alice L.", "alice@new.com").
			Return(nil)

		body, _ := json.Marshal(map[string]string{"full_name": "Alice L.", "email": "alice@new.com"})
		req := httptest.NewRequest(http.MethodPut, "/users/me", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req = authed(req, claims)
		rr := httptest.NewRecorder()

		handler.UpdateProfile(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockUserService.AssertExpectations(t)
	})

	t.Run("Пустые поля", func(t *testing.T) {
		mockUserService := new(MockUserService)
		handler := createTestHandlers()
		handler.UserService = mockUserService

		body, _ := json.Marshal(map[string]string{"full_name": "Alice L."})
		req := httptest.NewRequest(http.MethodPut, "/users/me", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req = authed(req, claims)
		rr := httptest.NewRecorder()

		handler.UpdateProfile(rr, req)

		assertJSONError(t, rr, http.StatusBadRequest, "Полное имя и email обязательны")
		mockUserService.AssertNotCalled(t, "UpdateProfile",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Занятый email дает 409", func(t *testing.T) {
		mockUserService := new(MockUserService)
		handler := createTestHandlers()
		handler.UserService = mockUserService

		mockUserService.On("UpdateProfile", mock.Anything, "user-123", "Alice L.", "taken@example.com").
			Return(apperrors.ErrConflict)

		body, _ := json.Marshal(map[string]string{"full_name": "Alice L.", "email": "taken@example.com"})
		req := httptest.NewRequest(http.MethodPut, "/users/me", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req = authed(req, claims)
		rr := httptest.NewRecorder()

		handler.UpdateProfile(rr, req)

		assertJSONError(t, rr, http.StatusConflict, "Email уже занят")
	})
}

func TestGetRegisteredEventsHandler(t *testing.T) {
	claims := middleware.Claims{ID: "user-123", UserName: "alice", Role: "user"}

	mockRegistrationRepo := new(MockRegistrationRepository)
	handler := createTestHandlers()
	handler.RegistrationRepo = mockRegistrationRepo

	mockRegistrationRepo.On("GetEventIDsByUserID", mock.Anything, "user-123").
		Return([]string{"event-1", "event-2"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/me/events", nil)
	req = authed(req, claims)
	rr := httptest.NewRecorder()

	handler.GetRegisteredEvents(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, []interface{}{"event-1", "event-2"}, response["data"])
}

func TestGetEventsNeedingReviewHandler_NormalizesPaths(t *testing.T) {
	claims := middleware.Claims{ID: "user-123", UserName: "alice", Role: "user"}

	mockRegistrationRepo := new(MockRegistrationRepository)
	handler := createTestHandlers()
	handler.RegistrationRepo = mockRegistrationRepo

	imageURL := `/srv/app/uploads/images/image-7-7.png`
	mockRegistrationRepo.On("GetEventsNeedingReview", mock.Anything, "user-123").
		Return([]models.EventNeedingReview{
			{ID: "event-1", Title: "Meetup", ImageURL: &imageURL},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/me/events/reviews", nil)
	req = authed(req, claims)
	rr := httptest.NewRecorder()

	handler.GetEventsNeedingReview(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)

	data, ok := response["data"].([]interface{})
	assert.True(t, ok)
	first, ok := data[0].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "uploads/images/image-7-7.png", first["image_url"])
}
