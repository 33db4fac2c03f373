package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"growlink/internal/apperrors"
	"growlink/internal/middleware"
	"growlink/internal/models"
	"growlink/internal/service"
	"growlink/internal/storage"
)

// categoryMap - фиксированный справочник категорий шаблонов.
// Неизвестный код возвращается как есть
var categoryMap = map[string]string{
	"1": "Proposal",
	"2": "LPJ (Laporan Pertanggungjawaban)",
	"3": "TOR (Term of Reference)",
	"4": "Cue Card",
	"5": "Rundown",
	"6": "Another Document",
}

func resolveCategory(category string) string {
	if label, ok := categoryMap[category]; ok {
		return label
	}
	return category
}

// normalizeTemplate приводит путь файла и категорию к виду для клиента
func normalizeTemplate(t *models.Template) {
	t.FilePath = storage.NormalizeUploadPath(t.FilePath)
	t.Category = resolveCategory(t.Category)
}

func (h *Handlers) GetTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.TemplateRepo.GetAll(r.Context())
	if err != nil {
		WriteKindError(w, err, "Не удалось получить шаблоны")
		return
	}

	if templates == nil {
		templates = []models.Template{}
	}

	for i := range templates {
		normalizeTemplate(&templates[i])
	}

	WriteJSON(w, SuccessResponse{Success: true, Data: templates}, http.StatusOK)
}

func (h *Handlers) GetTemplate(w http.ResponseWriter, r *http.Request) {
	templateID := mux.Vars(r)["id"]

	template, err := h.TemplateRepo.GetByID(r.Context(), templateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			WriteKindError(w, err, "Шаблон не найден")
		} else {
			WriteKindError(w, err, "")
		}
		return
	}

	normalizeTemplate(template)

	WriteJSON(w, SuccessResponse{Success: true, Data: template}, http.StatusOK)
}

func (h *Handlers) CreateTemplate(w http.ResponseWriter, r *http.Request) {
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
	category := r.FormValue("category")

	file, header, err := r.FormFile("template_file")
	if err != nil || title == "" || category == "" {
		if file != nil {
			file.Close()
		}
		WriteError(w, "Название, категория и файл обязательны", http.StatusBadRequest)
		return
	}
	defer file.Close()

	template, err := h.TemplateService.CreateTemplate(r.Context(), service.CreateTemplateRequest{
		UserID:   claims.ID,
		Title:    title,
		Category: category,
		File: service.UploadFile{
			Name: header.Filename,
			File: file,
			Size: header.Size,
		},
	})
	if err != nil {
		WriteKindError(w, err, "")
		return
	}

	normalizeTemplate(template)

	WriteJSON(w, SuccessResponse{
		Success: true,
		Message: "Шаблон успешно загружен",
		Data:    template,
	}, http.StatusCreated)
}

func (h *Handlers) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	templateID := mux.Vars(r)["id"]

	err := h.TemplateService.DeleteTemplate(r.Context(), templateID, claims.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			WriteKindError(w, err, "Шаблон не найден или нет прав на удаление")
		} else {
			WriteKindError(w, err, "")
		}
		return
	}

	WriteJSON(w, SuccessResponse{Success: true, Message: "Шаблон успешно удален"}, http.StatusOK)
}
