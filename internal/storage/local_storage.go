package storage

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"growlink/internal/config"
)

// LocalStorage кладет файлы на диск под корнем uploads,
// в подпапку по виду файла
type LocalStorage struct {
	baseDir string
}

func NewLocalStorage(cfg *config.Config) (*LocalStorage, error) {
	baseDir, err := filepath.Abs(cfg.Uploads.Dir)
	if err != nil {
		return nil, fmt.Errorf("ошибка определения папки загрузок: %w", err)
	}

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("ошибка создания папки загрузок: %w", err)
	}

	return &LocalStorage{baseDir: baseDir}, nil
}

func (s *LocalStorage) SaveFile(ctx context.Context, kind FileKind, fileName string, file io.Reader, size int64) (string, error) {
	dir := filepath.Join(s.baseDir, kind.subDir())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ошибка создания подпапки %s: %w", kind.subDir(), err)
	}

	fileExt := strings.ToLower(filepath.Ext(fileName))

	// имя вида <поле>-<timestamp>-<случайный суффикс><ext>
	uniqueName := fmt.Sprintf("%s-%d-%d%s",
		string(kind),
		time.Now().UnixMilli(),
		rand.Int63n(1_000_000_000),
		fileExt)

	fullPath := filepath.Join(dir, uniqueName)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("ошибка создания файла: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("ошибка записи файла: %w", err)
	}

	// В БД уходит абсолютный путь, как его отдала ОС.
	// Относительный вид клиент получает через NormalizeUploadPath при чтении.
	return fullPath, nil
}

func (s *LocalStorage) DeleteFile(ctx context.Context, storedPath string) error {
	if storedPath == "" {
		return nil
	}

	// сохраненный путь может быть и абсолютным, и уже нормализованным
	fullPath := storedPath
	if !filepath.IsAbs(fullPath) {
		rel := NormalizeUploadPath(storedPath)
		rel = strings.TrimPrefix(rel, "uploads/")
		fullPath = filepath.Join(s.baseDir, filepath.FromSlash(rel))
	}

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return nil
	}

	if err := os.Remove(fullPath); err != nil {
		return fmt.Errorf("ошибка удаления файла: %w", err)
	}

	return nil
}

// BaseDir возвращает корень для раздачи статики
func (s *LocalStorage) BaseDir() string {
	return s.baseDir
}
