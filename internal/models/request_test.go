package models

// Тесты чистой логики вместимости и пакетного разбиения заявок.
//
// Покрытие:
//  - HasCapacity для ограниченных и безлимитных событий;
//  - AutoConfirm/ModerationRequired по комбинациям флагов;
//  - PartitionPending: переполнение внутри пакета (часть CONFIRMED,
//    остаток REJECTED), вердикт REJECTED, сохранение входного порядка,
//    инвариант confirmed <= limit.

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func limitedEvent(limit, confirmed int32) *Event {
	return &Event{
		ID:                uuid.New(),
		ParticipantLimit:  limit,
		RequestModeration: true,
		ConfirmedRequests: confirmed,
		State:             EventStatePublished,
	}
}

func pendingRequests(n int) []Request {
	reqs := make([]Request, 0, n)
	for i := 0; i < n; i++ {
		reqs = append(reqs, Request{ID: uuid.New(), Status: RequestStatusPending})
	}
	return reqs
}

func TestEvent_HasCapacity(t *testing.T) {
	require.True(t, limitedEvent(0, 100500).HasCapacity(), "безлимитное событие всегда вмещает")
	require.True(t, limitedEvent(2, 1).HasCapacity())
	require.False(t, limitedEvent(2, 2).HasCapacity())
}

func TestEvent_AutoConfirm(t *testing.T) {
	e := &Event{RequestModeration: false, ParticipantLimit: 10}
	require.True(t, e.AutoConfirm())
	require.False(t, e.ModerationRequired())

	e = &Event{RequestModeration: true, ParticipantLimit: 0}
	require.True(t, e.AutoConfirm())
	require.False(t, e.ModerationRequired())

	e = &Event{RequestModeration: true, ParticipantLimit: 10}
	require.False(t, e.AutoConfirm())
	require.True(t, e.ModerationRequired())
}

// Переполнение внутри пакета: при limit=1 из двух заявок подтверждается
// ровно одна, вторая отклоняется, счётчик равен лимиту.
func TestPartitionPending_OverflowSpillover(t *testing.T) {
	event := limitedEvent(1, 0)
	reqs := pendingRequests(2)

	res := PartitionPending(event, reqs, DecisionConfirm)

	require.Len(t, res.Confirmed, 1)
	require.Len(t, res.Rejected, 1)
	require.Equal(t, reqs[0].ID, res.Confirmed[0].ID, "подтверждение идёт в порядке входного списка")
	require.Equal(t, reqs[1].ID, res.Rejected[0].ID)
	require.Equal(t, RequestStatusConfirmed, res.Confirmed[0].Status)
	require.Equal(t, RequestStatusRejected, res.Rejected[0].Status)
	require.Equal(t, int32(1), event.ConfirmedRequests)
}

func TestPartitionPending_ConfirmAllWithinLimit(t *testing.T) {
	event := limitedEvent(10, 3)
	reqs := pendingRequests(4)

	res := PartitionPending(event, reqs, DecisionConfirm)

	require.Len(t, res.Confirmed, 4)
	require.Empty(t, res.Rejected)
	require.Equal(t, int32(7), event.ConfirmedRequests)
}

func TestPartitionPending_RejectAll(t *testing.T) {
	event := limitedEvent(10, 0)
	reqs := pendingRequests(3)

	res := PartitionPending(event, reqs, DecisionReject)

	require.Empty(t, res.Confirmed)
	require.Len(t, res.Rejected, 3)
	require.Equal(t, int32(0), event.ConfirmedRequests, "отклонение не трогает счётчик")

	for i, r := range res.Rejected {
		require.Equal(t, reqs[i].ID, r.ID)
		require.Equal(t, RequestStatusRejected, r.Status)
	}
}

// Инвариант: сколько бы заявок ни пришло, счётчик не превышает лимит.
func TestPartitionPending_NeverExceedsLimit(t *testing.T) {
	event := limitedEvent(5, 2)
	reqs := pendingRequests(20)

	res := PartitionPending(event, reqs, DecisionConfirm)

	require.Len(t, res.Confirmed, 3)
	require.Len(t, res.Rejected, 17)
	require.Equal(t, event.ParticipantLimit, event.ConfirmedRequests)
}
