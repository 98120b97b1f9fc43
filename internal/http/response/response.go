// Package response содержит конверт ошибок стаба бэкенда.
//
// Клиент ожидает от бэкенда формат {message?, details?}: message — единое
// сообщение, details — список пофилдовых сообщений валидации, каждое из
// которых клиент показывает отдельно.
package response

import (
	"fmt"

	"github.com/go-playground/validator"
)

// Error описывает тело неуспешного ответа.
type Error struct {
	Message string   `json:"message,omitempty"`
	Details []string `json:"details,omitempty"`
}

// Message возвращает конверт с единственным сообщением.
func Message(msg string) Error {
	return Error{Message: msg}
}

// ValidationError формирует конверт из ошибок валидации: общее сообщение
// плюс по одной детали на каждое нарушение.
func ValidationError(errs validator.ValidationErrors) Error {
	details := make([]string, 0, len(errs))

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			details = append(details, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			details = append(details, fmt.Sprintf("field %s must be a valid email address", err.Field()))
		case "min":
			details = append(details, fmt.Sprintf("field %s is too short", err.Field()))
		case "max":
			details = append(details, fmt.Sprintf("field %s is too long", err.Field()))
		case "gt", "gte", "lt", "lte":
			details = append(details, fmt.Sprintf("field %s is out of range", err.Field()))
		default:
			details = append(details, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}
	return Error{
		Message: "validation failed",
		Details: details,
	}
}
