package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-events-platform/internal/models"
	"github.com/pribylovaa/go-events-platform/internal/service"
	apierrors "github.com/pribylovaa/go-events-platform/internal/transport/http/errors"
)

type locationDTO struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type newEventRequest struct {
	Title             string      `json:"title"`
	Annotation        string      `json:"annotation"`
	Description       string      `json:"description"`
	Category          string      `json:"category"`
	Location          locationDTO `json:"location"`
	EventDate         string      `json:"eventDate"`
	Paid              *bool       `json:"paid"`
	ParticipantLimit  *int32      `json:"participantLimit"`
	RequestModeration *bool       `json:"requestModeration"`
}

type updateEventRequest struct {
	Title             *string      `json:"title"`
	Annotation        *string      `json:"annotation"`
	Description       *string      `json:"description"`
	Category          *string      `json:"category"`
	Location          *locationDTO `json:"location"`
	EventDate         *string      `json:"eventDate"`
	Paid              *bool        `json:"paid"`
	ParticipantLimit  *int32       `json:"participantLimit"`
	RequestModeration *bool        `json:"requestModeration"`
	StateAction       *string      `json:"stateAction"`
}

type eventResponse struct {
	ID                string      `json:"id"`
	Initiator         string      `json:"initiator"`
	Category          string      `json:"category"`
	Title             string      `json:"title"`
	Annotation        string      `json:"annotation"`
	Description       string      `json:"description,omitempty"`
	Location          locationDTO `json:"location"`
	EventDate         string      `json:"eventDate"`
	Paid              bool        `json:"paid"`
	ParticipantLimit  int32       `json:"participantLimit"`
	RequestModeration bool        `json:"requestModeration"`
	ConfirmedRequests int32       `json:"confirmedRequests"`
	State             string      `json:"state"`
	CreatedOn         string      `json:"createdOn"`
	PublishedOn       string      `json:"publishedOn,omitempty"`
	Views             int64       `json:"views"`
}

func eventToResponse(e *models.Event) eventResponse {
	return eventResponse{
		ID:                e.ID.String(),
		Initiator:         e.InitiatorID.String(),
		Category:          e.CategoryID.String(),
		Title:             e.Title,
		Annotation:        e.Annotation,
		Description:       e.Description,
		Location:          locationDTO{Lat: e.Location.Lat, Lon: e.Location.Lon},
		EventDate:         apiTime(e.EventDate),
		Paid:              e.Paid,
		ParticipantLimit:  e.ParticipantLimit,
		RequestModeration: e.RequestModeration,
		ConfirmedRequests: e.ConfirmedRequests,
		State:             string(e.State),
		CreatedOn:         apiTime(e.CreatedOn),
		PublishedOn:       apiTimePtr(e.PublishedOn),
		Views:             e.Views,
	}
}

func eventsToResponse(events []models.Event) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for i := range events {
		out = append(out, eventToResponse(&events[i]))
	}
	return out
}

// CreateEvent — POST /users/{userID}/events.
func (h *Handlers) CreateEvent(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "userID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in newEventRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("malformed body"))
		return
	}

	categoryID, err := uuid.Parse(in.Category)
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("malformed category"))
		return
	}

	eventDate, err := time.Parse(timeLayout, in.EventDate)
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("malformed eventDate"))
		return
	}

	input := service.NewEventInput{
		CategoryID:  categoryID,
		Title:       in.Title,
		Annotation:  in.Annotation,
		Description: in.Description,
		Location:    models.Location{Lat: in.Location.Lat, Lon: in.Location.Lon},
		EventDate:   eventDate,
		// Умолчания внешнего API: платность выключена, лимита нет,
		// премодерация заявок включена.
		RequestModeration: true,
	}
	if in.Paid != nil {
		input.Paid = *in.Paid
	}
	if in.ParticipantLimit != nil {
		input.ParticipantLimit = *in.ParticipantLimit
	}
	if in.RequestModeration != nil {
		input.RequestModeration = *in.RequestModeration
	}

	event, err := h.service.AddEvent(r.Context(), userID, input)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, eventToResponse(event))
}

// ListOwnEvents — GET /users/{userID}/events.
func (h *Handlers) ListOwnEvents(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "userID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	from, err := int32Query(r, "from", 0)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	size, err := int32Query(r, "size", 0)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	events, err := h.service.EventsByInitiator(r.Context(), userID, from, size)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, eventsToResponse(events))
}

// GetOwnEvent — GET /users/{userID}/events/{eventID}.
func (h *Handlers) GetOwnEvent(w http.ResponseWriter, r *http.Request) {
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

	event, err := h.service.EventOfInitiator(r.Context(), userID, eventID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, eventToResponse(event))
}

// UpdateOwnEvent — PATCH /users/{userID}/events/{eventID}.
func (h *Handlers) UpdateOwnEvent(w http.ResponseWriter, r *http.Request) {
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

	var in updateEventRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("malformed body"))
		return
	}

	input, err := in.toInput(models.ParseUserStateAction)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	event, err := h.service.UpdateEventOfInitiator(r.Context(), userID, eventID, input)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, eventToResponse(event))
}

// DecideEvent — PATCH /admin/events/{eventID}.
func (h *Handlers) DecideEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := uuidParam(r, "eventID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in updateEventRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("malformed body"))
		return
	}

	input, err := in.toInput(models.ParseAdminStateAction)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	event, err := h.service.DecideEvent(r.Context(), eventID, input)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, eventToResponse(event))
}

// ListPublishedEvents — GET /events.
func (h *Handlers) ListPublishedEvents(w http.ResponseWriter, r *http.Request) {
	input := service.PublicSearchInput{
		Text: r.URL.Query().Get("text"),
		URI:  r.URL.Path,
		IP:   clientIP(r),
	}

	var err error
	if input.CategoryIDs, err = uuidListQuery(r, "categories"); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	if raw := r.URL.Query().Get("paid"); raw != "" {
		paid := raw == "true"
		if raw != "true" && raw != "false" {
			apierrors.WriteError(w, r, errInvalidArgument("malformed paid"))
			return
		}
		input.Paid = &paid
	}
	if input.RangeStart, err = timeQuery(r, "rangeStart"); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	if input.RangeEnd, err = timeQuery(r, "rangeEnd"); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	if input.From, err = int32Query(r, "from", 0); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	if input.Size, err = int32Query(r, "size", 0); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	events, err := h.service.PublishedEvents(r.Context(), input)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, eventsToResponse(events))
}

// GetPublishedEvent — GET /events/{eventID}.
func (h *Handlers) GetPublishedEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := uuidParam(r, "eventID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	event, err := h.service.PublishedEventByID(r.Context(), eventID, r.URL.Path, clientIP(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, eventToResponse(event))
}

// toInput конвертирует патч внешнего API во внутренний;
// parseAction ограничивает множество допустимых действий ролью вызывающего.
func (in *updateEventRequest) toInput(parseAction func(string) (models.StateAction, bool)) (service.UpdateEventInput, error) {
	var out service.UpdateEventInput

	out.Title = in.Title
	out.Annotation = in.Annotation
	out.Description = in.Description
	out.Paid = in.Paid
	out.ParticipantLimit = in.ParticipantLimit
	out.RequestModeration = in.RequestModeration

	if in.Category != nil {
		id, err := uuid.Parse(*in.Category)
		if err != nil {
			return out, errInvalidArgument("malformed category")
		}
		out.CategoryID = &id
	}

	if in.Location != nil {
		out.Location = &models.Location{Lat: in.Location.Lat, Lon: in.Location.Lon}
	}

	if in.EventDate != nil {
		t, err := time.Parse(timeLayout, *in.EventDate)
		if err != nil {
			return out, errInvalidArgument("malformed eventDate")
		}
		out.EventDate = &t
	}

	if in.StateAction != nil {
		action, ok := parseAction(*in.StateAction)
		if !ok {
			return out, errInvalidArgument("unknown stateAction")
		}
		out.StateAction = &action
	}

	return out, nil
}
