// errors стандартизирует ответы об ошибках HTTP-слоя events-сервиса.
// На вход он принимает сервисную ошибку, а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Источник истинности по маппингу: сентинельные ошибки internal/service.
package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/pribylovaa/go-events-platform/internal/service"
)

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

// ToHTTP конвертирует сервисную ошибку в HTTP-статус и унифицированный
// ответ для фронта.
//
// Поведение:
//   - err == nil - это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг;
//   - неизвестная ошибка - 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	status, code, msg := base(err)

	return status, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
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

// base — маппинг сервисных ошибок -> HTTP/FE-код/сообщение:
//   - InvalidArgument (битые входные/UUID) -> 400
//   - Validation (нарушение бизнес-правила) -> 400
//   - NotFound -> 404
//   - Forbidden (чужая сущность) -> 403
//   - SelfParticipation (заявка на своё событие) -> 403
//   - Conflict (дубликаты/целостность/чужая заявка в пакете) -> 409
//   - InvalidState (операция против текущего состояния) -> 409
//   - CapacityExceeded (лимит участников) -> 409
//   - прочее -> 500/internal
//
// Конфликтные коды различаются, чтобы фронт мог ветвиться без разбора
// message.
func base(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "internal", "internal error"
	case stderrors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case stderrors.Is(err, service.ErrValidation):
		return http.StatusBadRequest, "validation_failed", "validation failed"
	case stderrors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"
	case stderrors.Is(err, service.ErrSelfParticipation):
		return http.StatusForbidden, "self_participation", "initiator cannot join own event"
	case stderrors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, "forbidden", "forbidden"
	case stderrors.Is(err, service.ErrCapacityExceeded):
		return http.StatusConflict, "capacity_exceeded", "participant limit reached"
	case stderrors.Is(err, service.ErrInvalidState):
		return http.StatusConflict, "invalid_state", "operation is not allowed in current state"
	case stderrors.Is(err, service.ErrConflict):
		return http.StatusConflict, "conflict", "conflict"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
