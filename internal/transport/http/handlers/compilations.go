package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-events-platform/internal/models"
	"github.com/pribylovaa/go-events-platform/internal/service"
	apierrors "github.com/pribylovaa/go-events-platform/internal/transport/http/errors"
)

type newCompilationRequest struct {
	Title  string   `json:"title"`
	Pinned *bool    `json:"pinned"`
	Events []string `json:"events"`
}

type updateCompilationRequest struct {
	Title  *string  `json:"title"`
	Pinned *bool    `json:"pinned"`
	Events []string `json:"events"`
}

type compilationResponse struct {
	ID     string          `json:"id"`
	Title  string          `json:"title"`
	Pinned bool            `json:"pinned"`
	Events []eventResponse `json:"events"`
}

func compilationToResponse(c *models.Compilation) compilationResponse {
	return compilationResponse{
		ID:     c.ID.String(),
		Title:  c.Title,
		Pinned: c.Pinned,
		Events: eventsToResponse(c.Events),
	}
}

// parseEventIDs разбирает список идентификаторов событий из тела запроса.
func parseEventIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, errInvalidArgument("malformed event id")
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// CreateCompilation — POST /admin/compilations.
func (h *Handlers) CreateCompilation(w http.ResponseWriter, r *http.Request) {
	var in newCompilationRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("malformed body"))
		return
	}

	eventIDs, err := parseEventIDs(in.Events)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	compilation, err := h.service.CreateCompilation(r.Context(), service.NewCompilationInput{
		Title:    in.Title,
		Pinned:   in.Pinned,
		EventIDs: eventIDs,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, compilationToResponse(compilation))
}

// UpdateCompilation — PATCH /admin/compilations/{compilationID}.
func (h *Handlers) UpdateCompilation(w http.ResponseWriter, r *http.Request) {
	compilationID, err := uuidParam(r, "compilationID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in updateCompilationRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("malformed body"))
		return
	}

	eventIDs, err := parseEventIDs(in.Events)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	compilation, err := h.service.UpdateCompilation(r.Context(), compilationID, service.UpdateCompilationInput{
		Title:    in.Title,
		Pinned:   in.Pinned,
		EventIDs: eventIDs,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, compilationToResponse(compilation))
}

// DeleteCompilation — DELETE /admin/compilations/{compilationID}.
func (h *Handlers) DeleteCompilation(w http.ResponseWriter, r *http.Request) {
	compilationID, err := uuidParam(r, "compilationID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.service.DeleteCompilation(r.Context(), compilationID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListCompilations — GET /compilations?pinned=&from=&size=.
func (h *Handlers) ListCompilations(w http.ResponseWriter, r *http.Request) {
	var pinned *bool
	switch r.URL.Query().Get("pinned") {
	case "":
	case "true":
		v := true
		pinned = &v
	case "false":
		v := false
		pinned = &v
	default:
		apierrors.WriteError(w, r, errInvalidArgument("pinned must be true or false"))
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

	compilations, err := h.service.Compilations(r.Context(), pinned, from, size)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]compilationResponse, 0, len(compilations))
	for i := range compilations {
		out = append(out, compilationToResponse(&compilations[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetCompilation — GET /compilations/{compilationID}.
func (h *Handlers) GetCompilation(w http.ResponseWriter, r *http.Request) {
	compilationID, err := uuidParam(r, "compilationID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	compilation, err := h.service.CompilationByID(r.Context(), compilationID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, compilationToResponse(compilation))
}
