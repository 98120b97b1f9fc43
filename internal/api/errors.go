package api

import (
	"errors"
	"fmt"
)

// ErrNetwork оборачивает транспортный сбой: ответ от сервера не получен.
var ErrNetwork = errors.New("network error")

// Error классифицированная ошибка HTTP-запроса: статус и конверт
// {message, details}, который возвращает бэкенд.
type Error struct {
	Status  int
	Message string
	Details []string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: unexpected status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// envelope формат тела ошибки бэкенда.
type envelope struct {
	Message string   `json:"message,omitempty"`
	Details []string `json:"details,omitempty"`
}
