package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"growlink/internal/apperrors"
	"growlink/internal/middleware"
	"growlink/internal/models"
)

func TestGetThreadsHandler(t *testing.T) {
	mockThreadRepo := new(MockThreadRepository)
	handler := createTestHandlers()
	handler.ThreadRepo = mockThreadRepo

	t.Run("Список тредов", func(t *testing.T) {
		threads := []models.Thread{
			{ID: "thread-1", UserID: "user-1", Content: "Первый", Author: "alice", CreatedAt: time.Now()},
			{ID: "thread-2", UserID: "user-2", Content: "Второй", Author: "bob", CreatedAt: time.Now()},
		}

		mockThreadRepo.On("GetAll", mock.Anything).Return(threads, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/threads", nil)
		rr := httptest.NewRecorder()

		handler.GetThreads(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response []map[string]interface{}
		err := json.Unmarshal(rr.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Len(t, response, 2)
		assert.Equal(t, "alice", response[0]["author"])
	})

	t.Run("Пустая база дает [], а не null", func(t *testing.T) {
		mockThreadRepo.On("GetAll", mock.Anything).Return([]models.Thread(nil), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/threads", nil)
		rr := httptest.NewRecorder()

		handler.GetThreads(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]\n", rr.Body.String())
	})
}

func TestGetThreadHandler_NotFound(t *testing.T) {
	mockThreadRepo := new(MockThreadRepository)
	handler := createTestHandlers()
	handler.ThreadRepo = mockThreadRepo

	mockThreadRepo.On("GetByID", mock.Anything, "missing-id").
		Return(nil, apperrors.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/threads/missing-id", nil)
	rr := serveVars(handler.GetThread, http.MethodGet, "/threads/{id}", req)

	assertJSONError(t, rr, http.StatusNotFound, "Тред не найден")
}

func TestCreateThreadHandler(t *testing.T) {
	claims := middleware.Claims{ID: "user-123", UserName: "alice", Role: "user"}

	t.Run("Успешное создание", func(t *testing.T) {
		mockThreadService := new(MockThreadService)
		handler := createTestHandlers()
		handler.ThreadService = mockThreadService

		mockThreadService.On("CreateThread", mock.Anything, "user-123", "Привет, форум!").
			Return(&models.Thread{
				ID:      "thread-1",
				UserID:  "user-123",
				Content: "Привет, форум!",
				Author:  "alice",
			}, nil)

		body, _ := json.Marshal(map[string]string{"content": "Привет, форум!"})
		req := httptest.NewRequest(http.MethodPost, "/threads", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req = authed(req, claims)
		rr := httptest.NewRecorder()

		handler.CreateThread(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var response map[string]interface{}
		err := json.Unmarshal(rr.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "Тред успешно создан", response["message"])

		threadData, ok := response["thread"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, "alice", threadData["author"])

		mockThreadService.AssertExpectations(t)
	})

	t.Run("Пустое содержимое", func(t *testing.T) {
		mockThreadService := new(MockThreadService)
		handler := createTestHandlers()
		handler.ThreadService = mockThreadService

		body, _ := json.Marshal(map[string]string{"content": "   "})
		req := httptest.NewRequest(http.MethodPost, "/threads", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req = authed(req, claims)
		rr := httptest.NewRecorder()

		handler.CreateThread(rr, req)

		assertJSONError(t, rr, http.StatusBadRequest, "Содержимое треда обязательно")
		mockThreadService.AssertNotCalled(t, "CreateThread", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Без личности в контексте", func(t *testing.T) {
		mockThreadService := new(MockThreadService)
		handler := createTestHandlers()
		handler.ThreadService = mockThreadService

		body, _ := json.Marshal(map[string]string{"content": "Привет"})
		req := httptest.NewRequest(http.MethodPost, "/threads", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()

		handler.CreateThread(rr, req)

		assertJSONError(t, rr, http.StatusUnauthorized, "Требуется аутентификация")
	})
}

func TestDeleteThreadHandler(t *testing.T) {
	claims := middleware.Claims{ID: "user-123", UserName: "alice", Role: "user"}

	t.Run("Владелец удаляет тред", func(t *testing.T) {
		mockThreadService := new(MockThreadService)
		handler := createTestHandlers()
		handler.ThreadService = mockThreadService

		mockThreadService.On("DeleteThread", mock.Anything, "thread-1", "user-123").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/threads/thread-1", nil)
		req = authed(req, claims)
		rr := serveVars(handler.DeleteThread, http.MethodDelete, "/threads/{id}", req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockThreadService.AssertExpectations(t)
	})

	t.Run("Не владелец получает 403", func(t *testing.T) {
		mockThreadService := new(MockThreadService)
		handler := createTestHandlers()
		handler.ThreadService = mockThreadService

		mockThreadService.On("DeleteThread", mock.Anything, "thread-1", "user-123").
			Return(apperrors.ErrForbidden)

		req := httptest.NewRequest(http.MethodDelete, "/threads/thread-1", nil)
		req = authed(req, claims)
		rr := serveVars(handler.DeleteThread, http.MethodDelete, "/threads/{id}", req)

		assertJSONError(t, rr, http.StatusForbidden, "Вы не владелец треда или тред не найден")
	})
}
