package storage

import (
	"context"
	"io"
	"strings"
)

// FileKind определяет подпапку внутри корня uploads
type FileKind string

const (
	KindCV       FileKind = "cv"
	KindImage    FileKind = "image"
	KindKeySum   FileKind = "keySum"
	KindTemplate FileKind = "template_file"
)

// subDir возвращает подпапку для данного вида файла
func (k FileKind) subDir() string {
	switch k {
	case KindCV:
		return "cvs"
	case KindImage:
		return "images"
	case KindKeySum:
		return "pdfs"
	case KindTemplate:
		return "templates"
	}
	return "misc"
}

type Storage interface {
	// SaveFile сохраняет файл и возвращает ссылку, которая кладется в БД
	SaveFile(ctx context.Context, kind FileKind, fileName string, file io.Reader, size int64) (string, error)
	// DeleteFile удаляет файл по сохраненной ссылке (best-effort)
	DeleteFile(ctx context.Context, storedPath string) error
}

// NormalizeUploadPath переписывает сохраненный путь так, чтобы он
// начинался с сегмента "uploads" и использовал прямые слеши.
// Путь без сегмента uploads возвращается как есть.
func NormalizeUploadPath(storedPath string) string {
	if storedPath == "" {
		return ""
	}

	idx := strings.Index(storedPath, "uploads")
	if idx == -1 {
		return storedPath
	}

	return strings.ReplaceAll(storedPath[idx:], "\\", "/")
}

// NormalizeUploadPathPtr - то же самое для nullable колонок
func NormalizeUploadPathPtr(storedPath *string) *string {
	if storedPath == nil {
		return nil
	}
	normalized := NormalizeUploadPath(*storedPath)
	return &normalized
}
