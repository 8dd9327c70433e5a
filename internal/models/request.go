package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus — статус заявки на участие.
// Из PENDING заявка переходит ровно один раз в CONFIRMED/REJECTED
// (движок допуска или пакетное решение организатора) либо в CANCELED
// (сам заявитель).
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "PENDING"
	RequestStatusConfirmed RequestStatus = "CONFIRMED"
	RequestStatusRejected  RequestStatus = "REJECTED"
	RequestStatusCanceled  RequestStatus = "CANCELED"
)

// ParseRequestStatus разбирает строковое представление статуса.
func ParseRequestStatus(s string) (RequestStatus, bool) {
	switch RequestStatus(s) {
	case RequestStatusPending, RequestStatusConfirmed, RequestStatusRejected, RequestStatusCanceled:
		return RequestStatus(s), true
	}

	return "", false
}

// ResolveDecision — вердикт организатора в пакетном решении.
type ResolveDecision string

const (
	DecisionConfirm ResolveDecision = "CONFIRMED"
	DecisionReject  ResolveDecision = "REJECTED"
)

// ParseResolveDecision разбирает вердикт организатора.
func ParseResolveDecision(s string) (ResolveDecision, bool) {
	switch ResolveDecision(s) {
	case DecisionConfirm, DecisionReject:
		return ResolveDecision(s), true
	}

	return "", false
}

// Request — заявка пользователя на участие в событии.
// Пара (EventID, RequesterID) уникальна.
type Request struct {
	ID          uuid.UUID
	EventID     uuid.UUID
	RequesterID uuid.UUID
	Created     time.Time
	Status      RequestStatus
}

// ResolutionResult — разбиение пакета заявок по итогам решения
// организатора: какие подтверждены, какие отклонены.
type ResolutionResult struct {
	Confirmed []Request
	Rejected  []Request
}

// PartitionPending — ядро пакетного решения организатора.
//
// Заявки обходятся в порядке входного списка. Для вердикта CONFIRMED
// каждая заявка подтверждается, пока у события остаётся свободный
// лимит (счётчик event.ConfirmedRequests наращивается локально);
// после исчерпания лимита остаток пакета отклоняется. Для вердикта
// REJECTED отклоняется весь пакет безусловно.
//
// Вызывающая сторона обязана: передать только PENDING-заявки и
// удерживать эксклюзивность по событию на время применения результата
// (блокировка строки события), иначе счётчик может разойтись с лимитом.
func PartitionPending(event *Event, requests []Request, decision ResolveDecision) ResolutionResult {
	var result ResolutionResult

	if decision == DecisionReject {
		for _, r := range requests {
			r.Status = RequestStatusRejected
			result.Rejected = append(result.Rejected, r)
		}

		return result
	}

	for _, r := range requests {
		if event.HasCapacity() {
			r.Status = RequestStatusConfirmed
			event.ConfirmedRequests++
			result.Confirmed = append(result.Confirmed, r)
		} else {
			r.Status = RequestStatusRejected
			result.Rejected = append(result.Rejected, r)
		}
	}

	return result
}
