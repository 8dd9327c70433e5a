package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-events-platform/internal/models"
	"github.com/pribylovaa/go-events-platform/internal/pkg/log"
	"github.com/pribylovaa/go-events-platform/internal/storage"
)

// minEventLead — минимальный запас от момента создания/правки до даты события.
const minEventLead = 2 * time.Hour

// minPublishLead — минимальный запас от момента публикации до даты события.
const minPublishLead = time.Hour

// NewEventInput — данные нового события от инициатора.
type NewEventInput struct {
	CategoryID        uuid.UUID
	Title             string
	Annotation        string
	Description       string
	Location          models.Location
	EventDate         time.Time
	Paid              bool
	ParticipantLimit  int32
	RequestModeration bool
}

// UpdateEventInput — частичное обновление события; nil-поля не меняются.
type UpdateEventInput struct {
	CategoryID        *uuid.UUID
	Title             *string
	Annotation        *string
	Description       *string
	Location          *models.Location
	EventDate         *time.Time
	Paid              *bool
	ParticipantLimit  *int32
	RequestModeration *bool
	StateAction       *models.StateAction
}

// PublicSearchInput — параметры публичного поиска событий.
// URI и IP нужны для регистрации просмотра в сервисе статистики.
type PublicSearchInput struct {
	Text        string
	CategoryIDs []uuid.UUID
	Paid        *bool
	RangeStart  time.Time
	RangeEnd    time.Time
	From        int32
	Size        int32
	URI         string
	IP          string
}

// AddEvent создаёт событие от имени инициатора в состоянии PENDING.
//
// Дата события должна отстоять от текущего момента не менее чем
// на два часа.
//
// Ошибки: ErrInvalidArgument, ErrValidation, ErrNotFound (пользователь
// или категория), ErrInternal.
func (s *Service) AddEvent(ctx context.Context, initiatorID uuid.UUID, input NewEventInput) (*models.Event, error) {
	const op = "service.events.AddEvent"

	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Annotation) == "" {
		return nil, fmt.Errorf("%s: %w: title and annotation are required", op, ErrInvalidArgument)
	}

	if input.ParticipantLimit < 0 {
		return nil, fmt.Errorf("%s: %w: negative participant limit", op, ErrInvalidArgument)
	}

	if input.EventDate.Before(time.Now().Add(minEventLead)) {
		return nil, fmt.Errorf("%s: %w: event date is too close", op, ErrValidation)
	}

	if err := s.requireUser(ctx, op, initiatorID); err != nil {
		return nil, err
	}

	if _, err := s.storage.CategoryByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w: category does not exist", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	event := &models.Event{
		ID:                uuid.New(),
		InitiatorID:       initiatorID,
		CategoryID:        input.CategoryID,
		Title:             input.Title,
		Annotation:        input.Annotation,
		Description:       input.Description,
		Location:          input.Location,
		EventDate:         input.EventDate,
		Paid:              input.Paid,
		ParticipantLimit:  input.ParticipantLimit,
		RequestModeration: input.RequestModeration,
		State:             models.EventStatePending,
		CreatedOn:         time.Now().UTC(),
	}

	saved, err := s.storage.SaveEvent(ctx, event)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return saved, nil
}

// EventsByInitiator возвращает страницу событий инициатора.
//
// Ошибки: ErrNotFound (пользователь), ErrInternal.
func (s *Service) EventsByInitiator(ctx context.Context, initiatorID uuid.UUID, from, size int32) ([]models.Event, error) {
	const op = "service.events.EventsByInitiator"

	if err := s.requireUser(ctx, op, initiatorID); err != nil {
		return nil, err
	}

	events, err := s.storage.EventsByInitiator(ctx, initiatorID, from, s.pageLimit(size))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return events, nil
}

// EventOfInitiator возвращает событие инициатора в любом состоянии.
//
// Ошибки: ErrNotFound, ErrForbidden (чужое событие), ErrInternal.
func (s *Service) EventOfInitiator(ctx context.Context, initiatorID, eventID uuid.UUID) (*models.Event, error) {
	const op = "service.events.EventOfInitiator"

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

	return event, nil
}

// UpdateEventOfInitiator изменяет неопубликованное событие инициатора.
//
// Допустимые действия инициатора: SEND_TO_REVIEW (вернуть отменённое
// на модерацию), CANCEL_REVIEW (отозвать с модерации). Опубликованное
// событие инициатор менять не может.
//
// Ошибки: ErrNotFound, ErrForbidden, ErrInvalidState (опубликовано),
// ErrValidation (дата), ErrInvalidArgument, ErrInternal.
func (s *Service) UpdateEventOfInitiator(ctx context.Context, initiatorID, eventID uuid.UUID, input UpdateEventInput) (*models.Event, error) {
	const op = "service.events.UpdateEventOfInitiator"

	event, err := s.EventOfInitiator(ctx, initiatorID, eventID)
	if err != nil {
		return nil, err
	}

	if event.State == models.EventStatePublished {
		return nil, fmt.Errorf("%s: %w: published event cannot be changed", op, ErrInvalidState)
	}

	if err := s.applyEventPatch(ctx, op, event, input); err != nil {
		return nil, err
	}

	if input.EventDate != nil && event.EventDate.Before(time.Now().Add(minEventLead)) {
		return nil, fmt.Errorf("%s: %w: event date is too close", op, ErrValidation)
	}

	if input.StateAction != nil {
		switch *input.StateAction {
		case models.ActionSendToReview:
			event.State = models.EventStatePending
		case models.ActionCancelReview:
			event.State = models.EventStateCanceled
		default:
			return nil, fmt.Errorf("%s: %w: unknown state action %q", op, ErrInvalidArgument, *input.StateAction)
		}
	}

	updated, err := s.storage.UpdateEvent(ctx, event)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return updated, nil
}

// DecideEvent применяет решение администратора к событию на модерации.
//
// PUBLISH_EVENT переводит событие в PUBLISHED и фиксирует момент
// публикации; дата события при этом должна отстоять от момента
// публикации не менее чем на час. REJECT_EVENT переводит событие
// в CANCELED. Обе ветки работают только с событием в PENDING.
//
// Ошибки: ErrNotFound, ErrInvalidState, ErrValidation,
// ErrInvalidArgument, ErrInternal.
func (s *Service) DecideEvent(ctx context.Context, eventID uuid.UUID, input UpdateEventInput) (*models.Event, error) {
	const op = "service.events.DecideEvent"

	if input.StateAction == nil {
		return nil, fmt.Errorf("%s: %w: state action is required", op, ErrInvalidArgument)
	}

	event, err := s.eventByID(ctx, op, eventID)
	if err != nil {
		return nil, err
	}

	if event.State != models.EventStatePending {
		return nil, fmt.Errorf("%s: %w: event is not pending review", op, ErrInvalidState)
	}

	if err := s.applyEventPatch(ctx, op, event, input); err != nil {
		return nil, err
	}

	switch *input.StateAction {
	case models.ActionPublishEvent:
		now := time.Now().UTC()
		if event.EventDate.Before(now.Add(minPublishLead)) {
			return nil, fmt.Errorf("%s: %w: event date is too close to publication", op, ErrValidation)
		}

		event.State = models.EventStatePublished
		event.PublishedOn = &now
	case models.ActionRejectEvent:
		event.State = models.EventStateCanceled
	default:
		return nil, fmt.Errorf("%s: %w: unknown state action %q", op, ErrInvalidArgument, *input.StateAction)
	}

	updated, err := s.storage.UpdateEvent(ctx, event)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	return updated, nil
}

// PublishedEvents возвращает страницу опубликованных событий по фильтру
// и регистрирует просмотр списка в сервисе статистики.
//
// Ошибки: ErrInvalidArgument (диапазон дат), ErrInternal.
func (s *Service) PublishedEvents(ctx context.Context, input PublicSearchInput) ([]models.Event, error) {
	const op = "service.events.PublishedEvents"

	if !input.RangeStart.IsZero() && !input.RangeEnd.IsZero() && input.RangeEnd.Before(input.RangeStart) {
		return nil, fmt.Errorf("%s: %w: range end is before range start", op, ErrInvalidArgument)
	}

	events, err := s.storage.PublishedEvents(ctx, storage.EventFilter{
		Text:        input.Text,
		CategoryIDs: input.CategoryIDs,
		Paid:        input.Paid,
		RangeStart:  input.RangeStart,
		RangeEnd:    input.RangeEnd,
		From:        input.From,
		Size:        s.pageLimit(input.Size),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
	}

	s.recordHit(ctx, input.URI, input.IP)
	s.enrichViews(ctx, events)

	return events, nil
}

// PublishedEventByID возвращает опубликованное событие по идентификатору,
// регистрирует просмотр и обогащает число просмотров.
//
// Неопубликованное событие публичному читателю не видно — ErrNotFound.
func (s *Service) PublishedEventByID(ctx context.Context, eventID uuid.UUID, uri, ip string) (*models.Event, error) {
	const op = "service.events.PublishedEventByID"

	event, err := s.eventByID(ctx, op, eventID)
	if err != nil {
		return nil, err
	}

	if event.State != models.EventStatePublished {
		return nil, fmt.Errorf("%s: %w: event is not published", op, ErrNotFound)
	}

	s.recordHit(ctx, uri, ip)

	events := []models.Event{*event}
	s.enrichViews(ctx, events)

	return &events[0], nil
}

// applyEventPatch накладывает ненулевые поля патча на событие.
func (s *Service) applyEventPatch(ctx context.Context, op string, event *models.Event, input UpdateEventInput) error {
	if input.CategoryID != nil {
		if _, err := s.storage.CategoryByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("%s: %w: category does not exist", op, ErrNotFound)
			}

			return fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
		}

		event.CategoryID = *input.CategoryID
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return fmt.Errorf("%s: %w: empty title", op, ErrInvalidArgument)
		}

		event.Title = *input.Title
	}

	if input.Annotation != nil {
		if strings.TrimSpace(*input.Annotation) == "" {
			return fmt.Errorf("%s: %w: empty annotation", op, ErrInvalidArgument)
		}

		event.Annotation = *input.Annotation
	}

	if input.Description != nil {
		event.Description = *input.Description
	}

	if input.Location != nil {
		event.Location = *input.Location
	}

	if input.EventDate != nil {
		event.EventDate = *input.EventDate
	}

	if input.Paid != nil {
		event.Paid = *input.Paid
	}

	if input.ParticipantLimit != nil {
		if *input.ParticipantLimit < 0 {
			return fmt.Errorf("%s: %w: negative participant limit", op, ErrInvalidArgument)
		}

		event.ParticipantLimit = *input.ParticipantLimit
	}

	if input.RequestModeration != nil {
		event.RequestModeration = *input.RequestModeration
	}

	return nil
}

// recordHit регистрирует просмотр в сервисе статистики.
// Недоступность статистики не должна ломать публичное чтение.
func (s *Service) recordHit(ctx context.Context, uri, ip string) {
	if s.stats == nil || uri == "" {
		return
	}

	if err := s.stats.Hit(ctx, uri, ip); err != nil {
		log.From(ctx).Warn("stats hit failed",
			"uri", uri,
			"err", err,
		)
	}
}

// enrichViews подставляет в события количество просмотров из сервиса
// статистики. Ошибки статистики только логируются.
func (s *Service) enrichViews(ctx context.Context, events []models.Event) {
	if s.stats == nil || len(events) == 0 {
		return
	}

	start := time.Now().UTC()
	uris := make([]string, 0, len(events))
	for i := range events {
		if events[i].PublishedOn != nil && events[i].PublishedOn.Before(start) {
			start = *events[i].PublishedOn
		}
		uris = append(uris, eventURI(events[i].ID))
	}

	views, err := s.stats.Views(ctx, start, time.Now().UTC(), uris, true)
	if err != nil {
		log.From(ctx).Warn("stats views failed", "err", err)
		return
	}

	for i := range events {
		events[i].Views = views[eventURI(events[i].ID)]
	}
}

func eventURI(id uuid.UUID) string {
	return "/events/" + id.String()
}
