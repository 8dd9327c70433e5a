package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-events-platform/internal/models"
	apierrors "github.com/pribylovaa/go-events-platform/internal/transport/http/errors"
)

type requestResponse struct {
	ID        string `json:"id"`
	Event     string `json:"event"`
	Requester string `json:"requester"`
	Created   string `json:"created"`
	Status    string `json:"status"`
}

type resolveRequestsRequest struct {
	RequestIDs []string `json:"requestIds"`
	Status     string   `json:"status"`
}

type resolveRequestsResponse struct {
	ConfirmedRequests []requestResponse `json:"confirmedRequests"`
	RejectedRequests  []requestResponse `json:"rejectedRequests"`
}

func requestToResponse(r *models.Request) requestResponse {
	return requestResponse{
		ID:        r.ID.String(),
		Event:     r.EventID.String(),
		Requester: r.RequesterID.String(),
		Created:   apiTime(r.Created),
		Status:    string(r.Status),
	}
}

func requestsToResponse(requests []models.Request) []requestResponse {
	out := make([]requestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, requestToResponse(&requests[i]))
	}
	return out
}

// CreateRequest — POST /users/{userID}/requests?eventId=...
func (h *Handlers) CreateRequest(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "userID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	eventID, err := uuid.Parse(r.URL.Query().Get("eventId"))
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("malformed eventId"))
		return
	}

	request, err := h.service.SubmitRequest(r.Context(), userID, eventID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, requestToResponse(request))
}

// ListOwnRequests — GET /users/{userID}/requests.
func (h *Handlers) ListOwnRequests(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "userID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	requests, err := h.service.RequestsByUser(r.Context(), userID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, requestsToResponse(requests))
}

// CancelRequest — PATCH /users/{userID}/requests/{requestID}/cancel.
func (h *Handlers) CancelRequest(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "userID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	requestID, err := uuidParam(r, "requestID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	request, err := h.service.CancelRequest(r.Context(), userID, requestID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, requestToResponse(request))
}

// ListEventRequests — GET /users/{userID}/events/{eventID}/requests.
func (h *Handlers) ListEventRequests(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "userID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	eventID, err := uuidParam(r, "eventID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	requests, err := h.service.RequestsByEvent(r.Context(), userID, eventID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, requestsToResponse(requests))
}

// ResolveEventRequests — PATCH /users/{userID}/events/{eventID}/requests.
func (h *Handlers) ResolveEventRequests(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "userID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	eventID, err := uuidParam(r, "eventID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in resolveRequestsRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("malformed body"))
		return
	}

	decision, ok := models.ParseResolveDecision(in.Status)
	if !ok {
		apierrors.WriteError(w, r, errInvalidArgument("unknown status"))
		return
	}

	ids := make([]uuid.UUID, 0, len(in.RequestIDs))
	for _, raw := range in.RequestIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			apierrors.WriteError(w, r, errInvalidArgument("malformed requestIds"))
			return
		}
		ids = append(ids, id)
	}

	result, err := h.service.ResolveRequests(r.Context(), userID, eventID, ids, decision)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resolveRequestsResponse{
		ConfirmedRequests: requestsToResponse(result.Confirmed),
		RejectedRequests:  requestsToResponse(result.Rejected),
	})
}
