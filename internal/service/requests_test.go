package service

// Тесты движка допуска заявок (internal/service/requests.go).
//
//  Проверяем:
//  - порядок и полноту проверок SubmitRequest (публикация, дубль,
//    самоподача, лимит) и выбор стартового статуса заявки;
//  - идемпотентность отмены и запрет отмены чужой заявки;
//  - предусловия пакетного решения и маппинг ошибок хранилища.
//
// Подготовка окружения:
//   mockgen -source=./internal/storage/storage.go -destination=./mocks/storage.go -package=mocks

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-events-platform/internal/models"
	"github.com/pribylovaa/go-events-platform/internal/storage"
	"github.com/pribylovaa/go-events-platform/mocks"
)

// newServiceWithMocks поднимает сервис с моком стораджа.
func newServiceWithMocks(t *testing.T) (*Service, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ms := mocks.NewMockStorage(ctrl)
	s := &Service{storage: ms}
	return s, ms, ctrl
}

// publishedEvent собирает опубликованное событие с заданной вместимостью.
func publishedEvent(initiatorID uuid.UUID, limit, confirmed int32, moderation bool) *models.Event {
	now := time.Now().UTC()
	return &models.Event{
		ID:                uuid.New(),
		InitiatorID:       initiatorID,
		CategoryID:        uuid.New(),
		Title:             "t",
		Annotation:        "a",
		EventDate:         now.Add(48 * time.Hour),
		ParticipantLimit:  limit,
		RequestModeration: moderation,
		ConfirmedRequests: confirmed,
		State:             models.EventStatePublished,
		CreatedOn:         now,
		PublishedOn:       &now,
	}
}

func TestService_SubmitRequest_Validation(t *testing.T) {
	s, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.SubmitRequest(context.Background(), uuid.Nil, uuid.New())
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.SubmitRequest(context.Background(), uuid.New(), uuid.Nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_SubmitRequest_UserNotFound(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().UserExists(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := s.SubmitRequest(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

// Заявка на неопубликованное событие отклоняется до любых прочих проверок.
func TestService_SubmitRequest_EventNotPublished(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	requesterID := uuid.New()
	event := publishedEvent(uuid.New(), 0, 0, false)
	event.State = models.EventStatePending
	event.PublishedOn = nil

	ms.EXPECT().UserExists(gomock.Any(), requesterID).Return(true, nil)
	ms.EXPECT().EventByID(gomock.Any(), event.ID).Return(event, nil)

	_, err := s.SubmitRequest(context.Background(), requesterID, event.ID)
	require.ErrorIs(t, err, ErrInvalidState)
}

// Повторная заявка той же пары — конфликт вне зависимости от статуса первой.
func TestService_SubmitRequest_Duplicate(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	requesterID := uuid.New()
	event := publishedEvent(uuid.New(), 10, 0, true)

	ms.EXPECT().UserExists(gomock.Any(), requesterID).Return(true, nil)
	ms.EXPECT().EventByID(gomock.Any(), event.ID).Return(event, nil)
	ms.EXPECT().RequestExists(gomock.Any(), event.ID, requesterID).Return(true, nil)

	_, err := s.SubmitRequest(context.Background(), requesterID, event.ID)
	require.ErrorIs(t, err, ErrConflict)
}

func TestService_SubmitRequest_SelfParticipation(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	initiatorID := uuid.New()
	event := publishedEvent(initiatorID, 10, 0, true)

	ms.EXPECT().UserExists(gomock.Any(), initiatorID).Return(true, nil)
	ms.EXPECT().EventByID(gomock.Any(), event.ID).Return(event, nil)
	ms.EXPECT().RequestExists(gomock.Any(), event.ID, initiatorID).Return(false, nil)

	_, err := s.SubmitRequest(context.Background(), initiatorID, event.ID)
	require.ErrorIs(t, err, ErrSelfParticipation)
}

func TestService_SubmitRequest_CapacityExceeded(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	requesterID := uuid.New()
	event := publishedEvent(uuid.New(), 2, 2, true)

	ms.EXPECT().UserExists(gomock.Any(), requesterID).Return(true, nil)
	ms.EXPECT().EventByID(gomock.Any(), event.ID).Return(event, nil)
	ms.EXPECT().RequestExists(gomock.Any(), event.ID, requesterID).Return(false, nil)

	_, err := s.SubmitRequest(context.Background(), requesterID, event.ID)
	require.ErrorIs(t, err, ErrCapacityExceeded)
}

// Премодерация выключена: заявка подтверждается сразу.
func TestService_SubmitRequest_AutoConfirm(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	requesterID := uuid.New()
	event := publishedEvent(uuid.New(), 10, 0, false)

	ms.EXPECT().UserExists(gomock.Any(), requesterID).Return(true, nil)
	ms.EXPECT().EventByID(gomock.Any(), event.ID).Return(event, nil)
	ms.EXPECT().RequestExists(gomock.Any(), event.ID, requesterID).Return(false, nil)
	ms.EXPECT().SubmitRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Request) (*models.Request, error) {
			require.Equal(t, models.RequestStatusConfirmed, r.Status)
			require.Equal(t, event.ID, r.EventID)
			require.Equal(t, requesterID, r.RequesterID)
			return r, nil
		})

	request, err := s.SubmitRequest(context.Background(), requesterID, event.ID)
	require.NoError(t, err)
	require.Equal(t, models.RequestStatusConfirmed, request.Status)
}

// Лимит отсутствует: заявка подтверждается сразу даже при включённой
// премодерации.
func TestService_SubmitRequest_NoLimitAutoConfirm(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	requesterID := uuid.New()
	event := publishedEvent(uuid.New(), 0, 0, true)

	ms.EXPECT().UserExists(gomock.Any(), requesterID).Return(true, nil)
	ms.EXPECT().EventByID(gomock.Any(), event.ID).Return(event, nil)
	ms.EXPECT().RequestExists(gomock.Any(), event.ID, requesterID).Return(false, nil)
	ms.EXPECT().SubmitRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Request) (*models.Request, error) {
			require.Equal(t, models.RequestStatusConfirmed, r.Status)
			return r, nil
		})

	_, err := s.SubmitRequest(context.Background(), requesterID, event.ID)
	require.NoError(t, err)
}

// Премодерация включена и лимит задан: заявка ждёт решения организатора.
func TestService_SubmitRequest_Pending(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	requesterID := uuid.New()
	event := publishedEvent(uuid.New(), 10, 3, true)

	ms.EXPECT().UserExists(gomock.Any(), requesterID).Return(true, nil)
	ms.EXPECT().EventByID(gomock.Any(), event.ID).Return(event, nil)
	ms.EXPECT().RequestExists(gomock.Any(), event.ID, requesterID).Return(false, nil)
	ms.EXPECT().SubmitRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Request) (*models.Request, error) {
			require.Equal(t, models.RequestStatusPending, r.Status)
			return r, nil
		})

	request, err := s.SubmitRequest(context.Background(), requesterID, event.ID)
	require.NoError(t, err)
	require.Equal(t, models.RequestStatusPending, request.Status)
}

// Гонка: между проверкой и вставкой лимит выбрали другие — ошибка
// хранилища транслируется в ErrCapacityExceeded.
func TestService_SubmitRequest_StorageNoCapacity(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	requesterID := uuid.New()
	event := publishedEvent(uuid.New(), 5, 4, false)

	ms.EXPECT().UserExists(gomock.Any(), requesterID).Return(true, nil)
	ms.EXPECT().EventByID(gomock.Any(), event.ID).Return(event, nil)
	ms.EXPECT().RequestExists(gomock.Any(), event.ID, requesterID).Return(false, nil)
	ms.EXPECT().SubmitRequest(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNoCapacity)

	_, err := s.SubmitRequest(context.Background(), requesterID, event.ID)
	require.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestService_CancelRequest_Foreign(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	requesterID := uuid.New()
	request := &models.Request{
		ID:          uuid.New(),
		EventID:     uuid.New(),
		RequesterID: uuid.New(),
		Status:      models.RequestStatusPending,
	}

	ms.EXPECT().UserExists(gomock.Any(), requesterID).Return(true, nil)
	ms.EXPECT().RequestByID(gomock.Any(), request.ID).Return(request, nil)

	_, err := s.CancelRequest(context.Background(), requesterID, request.ID)
	require.ErrorIs(t, err, ErrForbidden)
}

// Повторная отмена — no-op: статус не меняется, сторадж не трогается.
func TestService_CancelRequest_Idempotent(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	requesterID := uuid.New()
	request := &models.Request{
		ID:          uuid.New(),
		EventID:     uuid.New(),
		RequesterID: requesterID,
		Status:      models.RequestStatusCanceled,
	}

	ms.EXPECT().UserExists(gomock.Any(), requesterID).Return(true, nil)
	ms.EXPECT().RequestByID(gomock.Any(), request.ID).Return(request, nil)

	got, err := s.CancelRequest(context.Background(), requesterID, request.ID)
	require.NoError(t, err)
	require.Equal(t, models.RequestStatusCanceled, got.Status)
}

// Отмена подтверждённой заявки не уменьшает счётчик участников:
// сервис переводит статус без пересчёта мест.
func TestService_CancelRequest_Confirmed(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	requesterID := uuid.New()
	request := &models.Request{
		ID:          uuid.New(),
		EventID:     uuid.New(),
		RequesterID: requesterID,
		Status:      models.RequestStatusConfirmed,
	}
	canceled := *request
	canceled.Status = models.RequestStatusCanceled

	ms.EXPECT().UserExists(gomock.Any(), requesterID).Return(true, nil)
	ms.EXPECT().RequestByID(gomock.Any(), request.ID).Return(request, nil)
	ms.EXPECT().UpdateRequestStatus(gomock.Any(), request.ID, models.RequestStatusCanceled).
		Return(&canceled, nil)

	got, err := s.CancelRequest(context.Background(), requesterID, request.ID)
	require.NoError(t, err)
	require.Equal(t, models.RequestStatusCanceled, got.Status)
}

func TestService_ResolveRequests_Validation(t *testing.T) {
	s, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.ResolveRequests(context.Background(), uuid.New(), uuid.New(), nil, models.DecisionConfirm)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.ResolveRequests(context.Background(), uuid.New(), uuid.New(),
		[]uuid.UUID{uuid.New()}, models.ResolveDecision("MAYBE"))
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_ResolveRequests_Forbidden(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	organizerID := uuid.New()
	event := publishedEvent(uuid.New(), 10, 0, true)

	ms.EXPECT().UserExists(gomock.Any(), organizerID).Return(true, nil)
	ms.EXPECT().EventByID(gomock.Any(), event.ID).Return(event, nil)

	_, err := s.ResolveRequests(context.Background(), organizerID, event.ID,
		[]uuid.UUID{uuid.New()}, models.DecisionConfirm)
	require.ErrorIs(t, err, ErrForbidden)
}

// Пакетное решение не имеет смысла для событий с автоподтверждением.
func TestService_ResolveRequests_ModerationNotRequired(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	organizerID := uuid.New()
	event := publishedEvent(organizerID, 0, 0, true)

	ms.EXPECT().UserExists(gomock.Any(), organizerID).Return(true, nil)
	ms.EXPECT().EventByID(gomock.Any(), event.ID).Return(event, nil)

	_, err := s.ResolveRequests(context.Background(), organizerID, event.ID,
		[]uuid.UUID{uuid.New()}, models.DecisionConfirm)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestService_ResolveRequests_FullEvent(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	organizerID := uuid.New()
	event := publishedEvent(organizerID, 3, 3, true)

	ms.EXPECT().UserExists(gomock.Any(), organizerID).Return(true, nil)
	ms.EXPECT().EventByID(gomock.Any(), event.ID).Return(event, nil)

	_, err := s.ResolveRequests(context.Background(), organizerID, event.ID,
		[]uuid.UUID{uuid.New()}, models.DecisionConfirm)
	require.ErrorIs(t, err, ErrCapacityExceeded)
}

// Маппинг ошибок хранилища: чужая заявка и заявка не в ожидании
// отменяют пакет целиком.
func TestService_ResolveRequests_StorageErrors(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	organizerID := uuid.New()
	event := publishedEvent(organizerID, 10, 0, true)
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	ms.EXPECT().UserExists(gomock.Any(), organizerID).Return(true, nil).Times(3)
	ms.EXPECT().EventByID(gomock.Any(), event.ID).Return(event, nil).Times(3)

	ms.EXPECT().ResolveRequests(gomock.Any(), event.ID, ids, models.DecisionConfirm).
		Return(nil, storage.ErrForeignRequest)
	_, err := s.ResolveRequests(context.Background(), organizerID, event.ID, ids, models.DecisionConfirm)
	require.ErrorIs(t, err, ErrConflict)

	ms.EXPECT().ResolveRequests(gomock.Any(), event.ID, ids, models.DecisionConfirm).
		Return(nil, storage.ErrNotPending)
	_, err = s.ResolveRequests(context.Background(), organizerID, event.ID, ids, models.DecisionConfirm)
	require.ErrorIs(t, err, ErrInvalidState)

	ms.EXPECT().ResolveRequests(gomock.Any(), event.ID, ids, models.DecisionConfirm).
		Return(nil, storage.ErrNotFound)
	_, err = s.ResolveRequests(context.Background(), organizerID, event.ID, ids, models.DecisionConfirm)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_ResolveRequests_OK(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	organizerID := uuid.New()
	event := publishedEvent(organizerID, 2, 0, true)
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	result := &models.ResolutionResult{
		Confirmed: []models.Request{
			{ID: ids[0], Status: models.RequestStatusConfirmed},
			{ID: ids[1], Status: models.RequestStatusConfirmed},
		},
		Rejected: []models.Request{
			{ID: ids[2], Status: models.RequestStatusRejected},
		},
	}

	ms.EXPECT().UserExists(gomock.Any(), organizerID).Return(true, nil)
	ms.EXPECT().EventByID(gomock.Any(), event.ID).Return(event, nil)
	ms.EXPECT().ResolveRequests(gomock.Any(), event.ID, ids, models.DecisionConfirm).
		Return(result, nil)

	got, err := s.ResolveRequests(context.Background(), organizerID, event.ID, ids, models.DecisionConfirm)
	require.NoError(t, err)
	require.Len(t, got.Confirmed, 2)
	require.Len(t, got.Rejected, 1)
}
