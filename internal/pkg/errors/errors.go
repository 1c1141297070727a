package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или отфильтрованный набор пусты.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется, когда запрос корректен по форме,
	// но операция не может быть выполнена (ошибки хранилища при записи и т.п.).
	ErrValidation = errors.New("unprocessable")

	// ErrBadRequest зарезервирована для некорректного входа.
	// Компоненты ядра её не поднимают, маппинг существует на уровне роутера.
	ErrBadRequest = errors.New("bad request")
)
