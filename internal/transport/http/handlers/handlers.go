// handlers реализует REST-хендлеры events-сервиса поверх internal/service.
//
// Контракт ошибок: хендлеры не формируют ответы об ошибках сами,
// а отдают сервисную ошибку в apierrors.WriteError; локальные ошибки
// парсинга оборачиваются в service.ErrInvalidArgument.
package handlers

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pribylovaa/go-events-platform/internal/service"
)

// timeLayout — формат дат во внешнем API.
const timeLayout = "2006-01-02 15:04:05"

// Handlers агрегирует зависимости (сервисный слой).
type Handlers struct {
	service *service.Service
}

func New(s *service.Service) *Handlers {
	return &Handlers{service: s}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// errInvalidArgument — локальная ошибка парсинга как сервисная.
func errInvalidArgument(msg string) error {
	return fmt.Errorf("%w: %s", service.ErrInvalidArgument, msg)
}

// uuidParam разбирает UUID из параметра пути.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errInvalidArgument("malformed " + name)
	}

	return id, nil
}

// int32Query разбирает неотрицательный int32 из query-параметра;
// отсутствие параметра даёт def.
func int32Query(r *http.Request, name string, def int32) (int32, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || n < 0 {
		return 0, errInvalidArgument("malformed " + name)
	}

	return int32(n), nil
}

// timeQuery разбирает дату из query-параметра в формате API.
func timeQuery(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		return time.Time{}, errInvalidArgument("malformed " + name)
	}

	return t, nil
}

// uuidListQuery разбирает список UUID из повторяющегося query-параметра
// либо значения через запятую.
func uuidListQuery(r *http.Request, name string) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, raw := range r.URL.Query()[name] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			id, err := uuid.Parse(part)
			if err != nil {
				return nil, errInvalidArgument("malformed " + name)
			}
			out = append(out, id)
		}
	}

	return out, nil
}

// clientIP достаёт адрес клиента для сервиса статистики.
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Real-Ip"); ip != "" {
		return ip
	}
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

// apiTime форматирует время для внешнего API.
func apiTime(t time.Time) string {
	return t.Format(timeLayout)
}

// apiTimePtr форматирует опциональное время; nil — пустая строка, поле опускается.
func apiTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format(timeLayout)
}
