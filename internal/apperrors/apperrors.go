package apperrors

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// Закрытый набор видов ошибок. Репозитории и сервисы оборачивают свои
// ошибки в один из этих sentinel'ов, а единственный транслятор в
// handler/errors.go переводит вид в HTTP статус.
var (
	ErrValidation   = errors.New("некорректные данные запроса")
	ErrUnauthorized = errors.New("требуется аутентификация")
	ErrForbidden    = errors.New("доступ запрещен")
	ErrNotFound     = errors.New("не найдено")
	ErrConflict     = errors.New("запись уже существует")
)

// uniqueViolation - код SQLSTATE для нарушения уникального ограничения
const uniqueViolation = "23505"

// IsUniqueViolation проверяет, что ошибка от Postgres вызвана
// дубликатом по уникальному ключу
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}

// ClassifyDB переводит низкоуровневую ошибку БД в вид из закрытого набора:
// нет строк -> ErrNotFound, дубликат -> ErrConflict, иначе ошибка как есть
func ClassifyDB(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if IsUniqueViolation(err) {
		return ErrConflict
	}
	return err
}
