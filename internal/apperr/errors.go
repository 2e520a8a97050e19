package apperr

import "errors"

// Фиксированный набор ошибок сервисного слоя.
// Обработчики сопоставляют их с HTTP статусами через errors.Is:
// ErrValidation -> 400, ErrNotFound и ErrContentMissing -> 404,
// ErrConflict -> 409, ErrUnauthorized -> 401, всё остальное -> 500
// с общим сообщением.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrContentMissing : запись о файле существует, а содержимого в
	// хранилище нет. Отличается от ErrNotFound, потому что клиенту
	// возвращается другое сообщение.
	ErrContentMissing = errors.New("content missing")
)
