package domain

import "errors"

// Ошибки уровня домена. Обработчики HTTP сопоставляют их со статус-кодами.
var (
	ErrDuplicateUsername  = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUnauthenticated    = errors.New("could not validate credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotFound           = errors.New("record not found")
	ErrValidation         = errors.New("validation failed")
	ErrAggregationFailed  = errors.New("dashboard aggregation failed")
)
