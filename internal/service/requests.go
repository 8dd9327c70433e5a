package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-events-platform/internal/models"
	"github.com/pribylovaa/go-events-platform/internal/storage"
)

// SubmitRequest подаёт заявку пользователя на участие в событии.
//
// Порядок проверок: событие опубликовано -> заявка не дублирует
// существующую (в любом статусе) -> заявитель не инициатор -> лимит
// не исчерпан. Статус новой заявки: CONFIRMED, если премодерация
// отключена или лимит не задан, иначе PENDING. Финальная проверка
// лимита и инкремент счётчика выполняются в хранилище атомарно,
// под блокировкой строки события.
//
// Ошибки: ErrNotFound, ErrInvalidState, ErrConflict,
// ErrSelfParticipation, ErrCapacityExceeded, ErrInternal.
func (s *Service) SubmitRequest(ctx context.Context, requesterID, eventID uuid.UUID) (*models.Request, error) {
	const op = "service.requests.SubmitRequest"

	if requesterID == uuid.Nil || eventID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.requireUser(ctx, op, requesterID); err != nil {
		return nil, err
	}

	event, err := s.eventByID(ctx, op, eventID)
	if err != nil {
		return nil, err
	}

	if event.State != models.EventStatePublished {
		return nil, fmt.Errorf("%s: %w: event is not published", op, ErrInvalidState)
	}

	exists, err := s.storage.RequestExists(ctx, eventID, requesterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}
	if exists {
		return nil, fmt.Errorf("%s: %w: request already exists", op, ErrConflict)
	}

	if event.InitiatorID == requesterID {
		return nil, fmt.Errorf("%s: %w", op, ErrSelfParticipation)
	}

	if !event.HasCapacity() {
		return nil, fmt.Errorf("%s: %w", op, ErrCapacityExceeded)
	}

	status := models.RequestStatusPending
	if event.AutoConfirm() {
		status = models.RequestStatusConfirmed
	}

	request := &models.Request{
		ID:          uuid.New(),
		EventID:     eventID,
		RequesterID: requesterID,
		Created:     time.Now().UTC(),
		Status:      status,
	}

	saved, err := s.storage.SubmitRequest(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrNoCapacity):
			return nil, fmt.Errorf("%s: %w", op, ErrCapacityExceeded)
		case errors.Is(err, storage.ErrAlreadyExists):
			return nil, fmt.Errorf("%s: %w: request already exists", op, ErrConflict)
		default:
			return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
		}
	}

	return saved, nil
}

// CancelRequest отменяет собственную заявку пользователя.
//
// Операция идемпотентна: повторная отмена возвращает заявку без
// изменений. Отмена подтверждённой заявки счётчик участников
// не уменьшает — место остаётся занятым.
//
// Ошибки: ErrNotFound, ErrForbidden, ErrInternal.
func (s *Service) CancelRequest(ctx context.Context, requesterID, requestID uuid.UUID) (*models.Request, error) {
	const op = "service.requests.CancelRequest"

	if err := s.requireUser(ctx, op, requesterID); err != nil {
		return nil, err
	}

	request, err := s.storage.RequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	if request.RequesterID != requesterID {
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	if request.Status == models.RequestStatusCanceled {
		return request, nil
	}

	updated, err := s.storage.UpdateRequestStatus(ctx, requestID, models.RequestStatusCanceled)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return updated, nil
}

// RequestsByUser возвращает все заявки пользователя.
//
// Ошибки: ErrNotFound (пользователь), ErrInternal.
func (s *Service) RequestsByUser(ctx context.Context, requesterID uuid.UUID) ([]models.Request, error) {
	const op = "service.requests.RequestsByUser"

	if err := s.requireUser(ctx, op, requesterID); err != nil {
		return nil, err
	}

	requests, err := s.storage.RequestsByRequester(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return requests, nil
}

// RequestsByEvent возвращает заявки на событие для его инициатора.
//
// Ошибки: ErrNotFound, ErrForbidden, ErrInternal.
func (s *Service) RequestsByEvent(ctx context.Context, initiatorID, eventID uuid.UUID) ([]models.Request, error) {
	const op = "service.requests.RequestsByEvent"

	if err := s.requireUser(ctx, op, initiatorID); err != nil {
		return nil, err
	}

	event, err := s.eventByID(ctx, op, eventID)
	if err != nil {
		return nil, err
	}

	if event.InitiatorID != initiatorID {
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	requests, err := s.storage.RequestsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return requests, nil
}

// ResolveRequests применяет решение инициатора к пакету ожидающих заявок.
//
// Решение CONFIRMED подтверждает заявки в порядке их следования, пока
// есть места; остаток отклоняется той же транзакцией. Решение REJECTED
// отклоняет весь пакет. Пакет применяется атомарно: чужая заявка или
// заявка не в статусе PENDING отменяет весь пакет целиком.
//
// Ошибки: ErrInvalidArgument, ErrNotFound, ErrForbidden, ErrInvalidState,
// ErrConflict, ErrCapacityExceeded, ErrInternal.
func (s *Service) ResolveRequests(ctx context.Context, initiatorID, eventID uuid.UUID, requestIDs []uuid.UUID, decision models.ResolveDecision) (*models.ResolutionResult, error) {
	const op = "service.requests.ResolveRequests"

	if len(requestIDs) == 0 {
		return nil, fmt.Errorf("%s: %w: empty request list", op, ErrInvalidArgument)
	}

	if decision != models.DecisionConfirm && decision != models.DecisionReject {
		return nil, fmt.Errorf("%s: %w: unknown decision %q", op, ErrInvalidArgument, decision)
	}

	if err := s.requireUser(ctx, op, initiatorID); err != nil {
		return nil, err
	}

	event, err := s.eventByID(ctx, op, eventID)
	if err != nil {
		return nil, err
	}

	if event.InitiatorID != initiatorID {
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	if !event.ModerationRequired() {
		return nil, fmt.Errorf("%s: %w: moderation is not required", op, ErrInvalidState)
	}

	if decision == models.DecisionConfirm && !event.HasCapacity() {
		return nil, fmt.Errorf("%s: %w", op, ErrCapacityExceeded)
	}

	result, err := s.storage.ResolveRequests(ctx, eventID, requestIDs, decision)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrNoCapacity):
			return nil, fmt.Errorf("%s: %w", op, ErrCapacityExceeded)
		case errors.Is(err, storage.ErrForeignRequest):
			return nil, fmt.Errorf("%s: %w: request belongs to another event", op, ErrConflict)
		case errors.Is(err, storage.ErrNotPending):
			return nil, fmt.Errorf("%s: %w: request is not pending", op, ErrInvalidState)
		default:
			return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
		}
	}

	return result, nil
}

// requireUser проверяет существование пользователя.
func (s *Service) requireUser(ctx context.Context, op string, userID uuid.UUID) error {
	exists, err := s.storage.UserExists(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}
	if !exists {
		return fmt.Errorf("%s: %w: user does not exist", op, ErrNotFound)
	}

	return nil
}

// eventByID читает событие с маппингом ошибок хранилища.
func (s *Service) eventByID(ctx context.Context, op string, eventID uuid.UUID) (*models.Event, error) {
	event, err := s.storage.EventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w: event does not exist", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return event, nil
}
