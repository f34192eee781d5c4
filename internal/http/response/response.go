// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON-ответов HTTP-обработчиков.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// Response описывает общую часть JSON-ответа сервера.
// Status принимает значения "OK" или "Error", Error заполняется только при неуспехе.
type Response struct {
	Status  string `json:"status" example:"OK"`
	Message string `json:"message" example:"success"`
	Error   string `json:"error,omitempty"`
}

// ErrorResponse используется в аннотациях @Failure как возвращаемый тип ошибки.
type ErrorResponse struct {
	Status  string `json:"status" example:"Error"`
	Message string `json:"message" example:"invalid request body"`
	Error   string `json:"error,omitempty" example:"unexpected EOF"`
}

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

// MessageInternal отдается клиенту при любой непредвиденной ошибке.
const MessageInternal = "internal error"

// OK возвращает успешный Response с сообщением msg.
func OK(msg string) Response {
	return Response{
		Status:  StatusOK,
		Message: msg,
	}
}

// Error возвращает Response с ошибкой и переданным сообщением.
func Error(msg string) Response {
	return Response{
		Status:  StatusError,
		Message: msg,
	}
}

// ErrorWithDetails дополняет сообщение текстом причины.
func ErrorWithDetails(msg, details string) Response {
	return Response{
		Status:  StatusError,
		Message: msg,
		Error:   details,
	}
}

// Internal формирует ответ для 500. Текст err отдается клиенту как есть.
func Internal(err error) Response {
	resp := Error(MessageInternal)
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}

// ValidationError формирует Response со статусом Error на основе ошибок валидации.
// Каждое нарушение формируется в человекочитаемый текст, объединенный через запятую.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "gte":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be greater than or equal to %s", err.Field(), err.Param()))
		case "numeric":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only numbers", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}
	return ErrorWithDetails("validation failed", strings.Join(errsMsgs, ", "))
}
