package service

// Тесты жизненного цикла события (internal/service/events.go).

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-events-platform/internal/models"
	"github.com/pribylovaa/go-events-platform/internal/storage"
)

// validNewEvent собирает корректный ввод нового события.
func validNewEvent(categoryID uuid.UUID) NewEventInput {
	return NewEventInput{
		CategoryID:        categoryID,
		Title:             "Go meetup",
		Annotation:        "Ежемесячная встреча",
		Description:       "Доклады и дискуссия",
		EventDate:         time.Now().Add(72 * time.Hour),
		Paid:              false,
		ParticipantLimit:  50,
		RequestModeration: true,
	}
}

func TestService_AddEvent_Validation(t *testing.T) {
	s, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	in := validNewEvent(uuid.New())
	in.Title = "   "
	_, err := s.AddEvent(context.Background(), uuid.New(), in)
	require.ErrorIs(t, err, ErrInvalidArgument)

	in = validNewEvent(uuid.New())
	in.ParticipantLimit = -1
	_, err = s.AddEvent(context.Background(), uuid.New(), in)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// Дата события должна отстоять от текущего момента минимум на два часа.
func TestService_AddEvent_DateTooClose(t *testing.T) {
	s, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	in := validNewEvent(uuid.New())
	in.EventDate = time.Now().Add(30 * time.Minute)

	_, err := s.AddEvent(context.Background(), uuid.New(), in)
	require.ErrorIs(t, err, ErrValidation)
}

func TestService_AddEvent_CategoryNotFound(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	initiatorID := uuid.New()
	in := validNewEvent(uuid.New())

	ms.EXPECT().UserExists(gomock.Any(), initiatorID).Return(true, nil)
	ms.EXPECT().CategoryByID(gomock.Any(), in.CategoryID).Return(nil, storage.ErrNotFound)

	_, err := s.AddEvent(context.Background(), initiatorID, in)
	require.ErrorIs(t, err, ErrNotFound)
}

// Новое событие всегда попадает на модерацию в состоянии PENDING.
func TestService_AddEvent_OK(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	initiatorID := uuid.New()
	in := validNewEvent(uuid.New())

	ms.EXPECT().UserExists(gomock.Any(), initiatorID).Return(true, nil)
	ms.EXPECT().CategoryByID(gomock.Any(), in.CategoryID).
		Return(&models.Category{ID: in.CategoryID, Name: "tech"}, nil)
	ms.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.Event) (*models.Event, error) {
			require.Equal(t, models.EventStatePending, e.State)
			require.Equal(t, initiatorID, e.InitiatorID)
			require.Nil(t, e.PublishedOn)
			require.Zero(t, e.ConfirmedRequests)
			return e, nil
		})

	event, err := s.AddEvent(context.Background(), initiatorID, in)
	require.NoError(t, err)
	require.Equal(t, models.EventStatePending, event.State)
}

func TestService_EventOfInitiator_Foreign(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	initiatorID := uuid.New()
	event := publishedEvent(uuid.New(), 0, 0, false)

	ms.EXPECT().UserExists(gomock.Any(), initiatorID).Return(true, nil)
	ms.EXPECT().EventByID(gomock.Any(), event.ID).Return(event, nil)

	_, err := s.EventOfInitiator(context.Background(), initiatorID, event.ID)
	require.ErrorIs(t, err, ErrForbidden)
}

// Опубликованное событие инициатор править не может.
func TestService_UpdateEventOfInitiator_Published(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	initiatorID := uuid.New()
	event := publishedEvent(initiatorID, 0, 0, false)

	ms.EXPECT().UserExists(gomock.Any(), initiatorID).Return(true, nil)
	ms.EXPECT().EventByID(gomock.Any(), event.ID).Return(event, nil)

	title := "new title"
	_, err := s.UpdateEventOfInitiator(context.Background(), initiatorID, event.ID,
		UpdateEventInput{Title: &title})
	require.ErrorIs(t, err, ErrInvalidState)
}

// Отозванное событие можно вернуть на модерацию.
func TestService_UpdateEventOfInitiator_SendToReview(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	initiatorID := uuid.New()
	event := publishedEvent(initiatorID, 0, 0, false)
	event.State = models.EventStateCanceled
	event.PublishedOn = nil

	ms.EXPECT().UserExists(gomock.Any(), initiatorID).Return(true, nil)
	ms.EXPECT().EventByID(gomock.Any(), event.ID).Return(event, nil)
	ms.EXPECT().UpdateEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.Event) (*models.Event, error) {
			require.Equal(t, models.EventStatePending, e.State)
			return e, nil
		})

	action := models.ActionSendToReview
	updated, err := s.UpdateEventOfInitiator(context.Background(), initiatorID, event.ID,
		UpdateEventInput{StateAction: &action})
	require.NoError(t, err)
	require.Equal(t, models.EventStatePending, updated.State)
}

// Решение администратора применимо только к событию на модерации.
func TestService_DecideEvent_NotPending(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	event := publishedEvent(uuid.New(), 0, 0, false)

	ms.EXPECT().EventByID(gomock.Any(), event.ID).Return(event, nil)

	action := models.ActionPublishEvent
	_, err := s.DecideEvent(context.Background(), event.ID, UpdateEventInput{StateAction: &action})
	require.ErrorIs(t, err, ErrInvalidState)
}

// Публикация фиксирует момент публикации; между ним и датой события
// должен оставаться хотя бы час.
func TestService_DecideEvent_Publish(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	event := publishedEvent(uuid.New(), 0, 0, false)
	event.State = models.EventStatePending
	event.PublishedOn = nil

	ms.EXPECT().EventByID(gomock.Any(), event.ID).Return(event, nil)
	ms.EXPECT().UpdateEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.Event) (*models.Event, error) {
			require.Equal(t, models.EventStatePublished, e.State)
			require.NotNil(t, e.PublishedOn)
			return e, nil
		})

	action := models.ActionPublishEvent
	updated, err := s.DecideEvent(context.Background(), event.ID, UpdateEventInput{StateAction: &action})
	require.NoError(t, err)
	require.Equal(t, models.EventStatePublished, updated.State)
	require.NotNil(t, updated.PublishedOn)
}

func TestService_DecideEvent_PublishTooClose(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	event := publishedEvent(uuid.New(), 0, 0, false)
	event.State = models.EventStatePending
	event.PublishedOn = nil
	event.EventDate = time.Now().Add(30 * time.Minute)

	ms.EXPECT().EventByID(gomock.Any(), event.ID).Return(event, nil)

	action := models.ActionPublishEvent
	_, err := s.DecideEvent(context.Background(), event.ID, UpdateEventInput{StateAction: &action})
	require.ErrorIs(t, err, ErrValidation)
}

func TestService_DecideEvent_Reject(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	event := publishedEvent(uuid.New(), 0, 0, false)
	event.State = models.EventStatePending
	event.PublishedOn = nil

	ms.EXPECT().EventByID(gomock.Any(), event.ID).Return(event, nil)
	ms.EXPECT().UpdateEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.Event) (*models.Event, error) {
			require.Equal(t, models.EventStateCanceled, e.State)
			require.Nil(t, e.PublishedOn)
			return e, nil
		})

	action := models.ActionRejectEvent
	updated, err := s.DecideEvent(context.Background(), event.ID, UpdateEventInput{StateAction: &action})
	require.NoError(t, err)
	require.Equal(t, models.EventStateCanceled, updated.State)
}

// Публичное чтение: неопубликованное событие снаружи не видно.
func TestService_PublishedEventByID_NotPublished(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	event := publishedEvent(uuid.New(), 0, 0, false)
	event.State = models.EventStatePending
	event.PublishedOn = nil

	ms.EXPECT().EventByID(gomock.Any(), event.ID).Return(event, nil)

	_, err := s.PublishedEventByID(context.Background(), event.ID, "/events/"+event.ID.String(), "10.0.0.1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_PublishedEvents_BadRange(t *testing.T) {
	s, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	now := time.Now()
	_, err := s.PublishedEvents(context.Background(), PublicSearchInput{
		RangeStart: now,
		RangeEnd:   now.Add(-time.Hour),
	})
	require.ErrorIs(t, err, ErrInvalidArgument)
}
