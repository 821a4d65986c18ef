// errors стандартизирует ответы об ошибках HTTP-слоя discovery-сервиса.
// На вход он принимает доменную ошибку (sentinel-ошибки сервисного слоя,
// хранилища и провайдера позиции), а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Mawa444/conso-gab-sub005/internal/position"
	"github.com/Mawa444/conso-gab-sub005/internal/service"
	"github.com/Mawa444/conso-gab-sub005/internal/storage"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует доменную ошибку в HTTP-статус и унифицированный
// ответ для фронта.
//
// Поведение:
//   - err == nil — это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг;
//   - известные sentinel-ошибки маппятся по таблице ниже;
//   - прочее — 500/internal (без утечки деталей).
//
// Таблица:
//   - service.ErrInvalidArgument (битые входные/kind/offset) -> 400;
//   - service.ErrNoPosition (позиции нет вовсе) -> 412;
//   - storage.ErrNotFound -> 404;
//   - position.ErrPermissionDenied -> 403;
//   - position.ErrUnavailable -> 503;
//   - position.ErrTimeout, context.DeadlineExceeded -> 504;
//   - position.ErrNotSupported -> 501;
//   - context.Canceled -> 499 (клиент закрыл соединение).
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return internalResponse()
	}

	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		return respond(http.StatusBadRequest, "invalid_argument", "invalid argument")
	case errors.Is(err, service.ErrNoPosition):
		return respond(http.StatusPreconditionFailed, "no_position", "position unavailable")
	case errors.Is(err, storage.ErrNotFound):
		return respond(http.StatusNotFound, "not_found", "not found")
	case errors.Is(err, position.ErrPermissionDenied):
		return respond(http.StatusForbidden, "permission_denied", "location permission denied")
	case errors.Is(err, position.ErrUnavailable):
		return respond(http.StatusServiceUnavailable, "unavailable", "location unavailable")
	case errors.Is(err, position.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return respond(http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded")
	case errors.Is(err, position.ErrNotSupported):
		return respond(http.StatusNotImplemented, "unimplemented", "not supported")
	case errors.Is(err, context.Canceled):
		return respond(StatusClientClosedRequest, "canceled", "canceled")
	default:
		return internalResponse()
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func respond(status int, code, msg string) (int, ErrorResponse) {
	return status, ErrorResponse{Error: APIError{Code: code, Message: msg}}
}

func internalResponse() (int, ErrorResponse) {
	return http.StatusInternalServerError, ErrorResponse{
		Error: APIError{
			Code:    "internal",
			Message: "internal error",
		},
	}
}
