// Package models содержит доменные сущности events-сервиса.
package models

import (
	"time"

	"github.com/google/uuid"
)

// EventState — состояние жизненного цикла события.
// PENDING назначается при создании; PUBLISHED/CANCELED — терминальные
// состояния, достижимые только решением администратора (или отзывом
// с модерации самим инициатором).
type EventState string

const (
	EventStatePending   EventState = "PENDING"
	EventStatePublished EventState = "PUBLISHED"
	EventStateCanceled  EventState = "CANCELED"
)

// ParseEventState разбирает строковое представление состояния.
func ParseEventState(s string) (EventState, bool) {
	switch EventState(s) {
	case EventStatePending, EventStatePublished, EventStateCanceled:
		return EventState(s), true
	}

	return "", false
}

// StateAction — запрошенное действие над состоянием события.
// SEND_TO_REVIEW/CANCEL_REVIEW доступны инициатору, пока событие
// не опубликовано; PUBLISH_EVENT/REJECT_EVENT — администратору.
type StateAction string

const (
	ActionSendToReview StateAction = "SEND_TO_REVIEW"
	ActionCancelReview StateAction = "CANCEL_REVIEW"
	ActionPublishEvent StateAction = "PUBLISH_EVENT"
	ActionRejectEvent  StateAction = "REJECT_EVENT"
)

// ParseUserStateAction — действия, допустимые для инициатора.
func ParseUserStateAction(s string) (StateAction, bool) {
	switch StateAction(s) {
	case ActionSendToReview, ActionCancelReview:
		return StateAction(s), true
	}

	return "", false
}

// ParseAdminStateAction — действия, допустимые для администратора.
func ParseAdminStateAction(s string) (StateAction, bool) {
	switch StateAction(s) {
	case ActionPublishEvent, ActionRejectEvent:
		return StateAction(s), true
	}

	return "", false
}

// Location — координаты места проведения.
type Location struct {
	Lat float64
	Lon float64
}

// Event — внутренняя доменная модель события.
// Важно:
//   - ParticipantLimit == 0 означает отсутствие ограничения;
//   - ConfirmedRequests — единственный источник истины по числу
//     подтверждённых участников, обновляется в одной транзакции со
//     сменой статуса заявки;
//   - PublishedOn устанавливается только при публикации;
//   - Views не хранится в БД и обогащается из сервиса статистики
//     на публичных чтениях.
type Event struct {
	ID                uuid.UUID
	InitiatorID       uuid.UUID
	CategoryID        uuid.UUID
	Title             string
	Annotation        string
	Description       string
	Location          Location
	EventDate         time.Time
	Paid              bool
	ParticipantLimit  int32
	RequestModeration bool
	ConfirmedRequests int32
	State             EventState
	CreatedOn         time.Time
	PublishedOn       *time.Time
	Views             int64
}

// HasCapacity — можно ли подтвердить ещё одного участника.
func (e *Event) HasCapacity() bool {
	return e.ParticipantLimit == 0 || e.ConfirmedRequests < e.ParticipantLimit
}

// AutoConfirm — заявка на это событие подтверждается без участия
// организатора (премодерация выключена или лимит отсутствует).
func (e *Event) AutoConfirm() bool {
	return !e.RequestModeration || e.ParticipantLimit == 0
}

// ModerationRequired — событию требуется ручное подтверждение заявок;
// для прочих событий пакетное решение организатора не имеет смысла.
func (e *Event) ModerationRequired() bool {
	return e.RequestModeration && e.ParticipantLimit > 0
}
