// service содержит бизнес-логику events-сервиса: движок допуска заявок,
// пакетные решения организатора, жизненный цикл события и модерацию
// комментариев.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/pribylovaa/go-events-platform/internal/config"
	"github.com/pribylovaa/go-events-platform/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument — неверные входные параметры запроса к сервису.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrValidation — нарушение бизнес-правила, не связанное с конкурирующим
	// ресурсом (дата события, повторная модерация опубликованного комментария).
	ErrValidation = errors.New("validation failed")
	// ErrInvalidState — операция неприменима к текущему состоянию сущности
	// (событие не опубликовано, заявка не в ожидании, модерация отключена).
	ErrInvalidState = errors.New("invalid state")
	// ErrConflict — конфликт с существующим ресурсом (повторная заявка,
	// нарушение целостности, чужая заявка в пакете).
	ErrConflict = errors.New("conflict")
	// ErrSelfParticipation — инициатор пытается подать заявку на своё событие.
	ErrSelfParticipation = errors.New("self participation")
	// ErrForbidden — у актора нет прав на целевую сущность.
	ErrForbidden = errors.New("forbidden")
	// ErrCapacityExceeded — лимит участников события исчерпан.
	ErrCapacityExceeded = errors.New("participant limit reached")
	// ErrInternal — внутренняя ошибка (сторадж/БД/контекст и т.д.).
	ErrInternal = errors.New("internal")
)

// StatsClient — клиент внешнего сервиса статистики просмотров.
// Реализация — internal/clients/stats; допускается nil (статистика выключена).
type StatsClient interface {
	// Hit регистрирует просмотр uri с адреса ip.
	Hit(ctx context.Context, uri, ip string) error
	// Views возвращает количество просмотров по каждому uri за период.
	Views(ctx context.Context, start, end time.Time, uris []string, unique bool) (map[string]int64, error)
}

// Service — бизнес-логика events-сервиса.
type Service struct {
	storage storage.Storage
	stats   StatsClient
	cfg     config.Config
}

// New создает новый экземпляр Service.
func New(storage storage.Storage, stats StatsClient, cfg config.Config) *Service {
	return &Service{
		storage: storage,
		stats:   stats,
		cfg:     cfg,
	}
}

// pageLimit нормализует размер страницы по лимитам конфигурации.
func (s *Service) pageLimit(size int32) int32 {
	if size <= 0 {
		if s.cfg.Limits.Default > 0 {
			return s.cfg.Limits.Default
		}
		return 10
	}

	if s.cfg.Limits.Max > 0 && size > s.cfg.Limits.Max {
		return s.cfg.Limits.Max
	}

	return size
}
