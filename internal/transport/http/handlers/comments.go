package handlers

import (
	"net/http"

	"github.com/pribylovaa/go-events-platform/internal/models"
	"github.com/pribylovaa/go-events-platform/internal/service"
	apierrors "github.com/pribylovaa/go-events-platform/internal/transport/http/errors"
)

type commentTextRequest struct {
	Text string `json:"text"`
}

type moderateCommentRequest struct {
	Status string `json:"status"`
}

type commentResponse struct {
	ID       string `json:"id"`
	Event    string `json:"event"`
	Author   string `json:"author"`
	ParentID string `json:"parentId,omitempty"`
	Text     string `json:"text"`
	Status   string `json:"status"`
	Created  string `json:"created"`
	Updated  string `json:"updated"`
}

func commentToResponse(c *models.Comment) commentResponse {
	out := commentResponse{
		ID:      c.ID.String(),
		Event:   c.EventID.String(),
		Author:  c.AuthorID.String(),
		Text:    c.Text,
		Status:  string(c.Status),
		Created: apiTime(c.Created),
		Updated: apiTime(c.Updated),
	}
	if c.ParentID != nil {
		out.ParentID = c.ParentID.String()
	}
	return out
}

func commentsToResponse(comments []models.Comment) []commentResponse {
	out := make([]commentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, commentToResponse(&comments[i]))
	}
	return out
}

// CreateComment — POST /users/{userID}/comments/events/{eventID}.
func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
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

	var in commentTextRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("malformed body"))
		return
	}

	comment, err := h.service.AddComment(r.Context(), userID, eventID, in.Text)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, commentToResponse(comment))
}

// CreateReply — POST /users/{userID}/comments/events/{eventID}/replies/{parentID}.
func (h *Handlers) CreateReply(w http.ResponseWriter, r *http.Request) {
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
	parentID, err := uuidParam(r, "parentID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in commentTextRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("malformed body"))
		return
	}

	comment, err := h.service.AddReply(r.Context(), userID, eventID, parentID, in.Text)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, commentToResponse(comment))
}

// UpdateOwnComment — PATCH /users/{userID}/comments/{commentID}.
func (h *Handlers) UpdateOwnComment(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "userID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	commentID, err := uuidParam(r, "commentID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in commentTextRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("malformed body"))
		return
	}

	comment, err := h.service.UpdateCommentByAuthor(r.Context(), userID, commentID, in.Text)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commentToResponse(comment))
}

// DeleteOwnComment — DELETE /users/{userID}/comments/{commentID}.
func (h *Handlers) DeleteOwnComment(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "userID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	commentID, err := uuidParam(r, "commentID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.service.DeleteCommentByAuthor(r.Context(), userID, commentID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListOwnComments — GET /users/{userID}/comments.
func (h *Handlers) ListOwnComments(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "userID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	comments, err := h.service.CommentsByAuthor(r.Context(), userID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commentsToResponse(comments))
}

// GetOwnComment — GET /users/{userID}/comments/{commentID}.
func (h *Handlers) GetOwnComment(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "userID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	commentID, err := uuidParam(r, "commentID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	comment, err := h.service.CommentOfAuthor(r.Context(), userID, commentID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commentToResponse(comment))
}

// ListEventComments — GET /events/{eventID}/comments.
func (h *Handlers) ListEventComments(w http.ResponseWriter, r *http.Request) {
	eventID, err := uuidParam(r, "eventID")
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

	comments, err := h.service.PublishedCommentsByEvent(r.Context(), eventID, from, size)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commentsToResponse(comments))
}

// FilterComments — GET /admin/comments/filter.
// Выборка для модерации: корни по фильтру плюс их поддеревья.
func (h *Handlers) FilterComments(w http.ResponseWriter, r *http.Request) {
	input := service.ModerationFilterInput{
		Text: r.URL.Query().Get("text"),
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status, ok := models.ParseCommentStatus(raw)
		if !ok {
			apierrors.WriteError(w, r, errInvalidArgument("unknown status"))
			return
		}
		input.Status = &status
	}

	var err error
	if input.From, err = int32Query(r, "from", 0); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	if input.Size, err = int32Query(r, "size", 0); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	comments, err := h.service.CommentsForModeration(r.Context(), input)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commentsToResponse(comments))
}

// GetComment — GET /admin/comments/{commentID}.
func (h *Handlers) GetComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := uuidParam(r, "commentID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	comment, err := h.service.CommentByID(r.Context(), commentID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commentToResponse(comment))
}

// ModerateComment — PATCH /admin/comments/{commentID}.
func (h *Handlers) ModerateComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := uuidParam(r, "commentID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in moderateCommentRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("malformed body"))
		return
	}

	status, ok := models.ParseCommentStatus(in.Status)
	if !ok {
		apierrors.WriteError(w, r, errInvalidArgument("unknown status"))
		return
	}

	comment, err := h.service.ModerateComment(r.Context(), commentID, status)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commentToResponse(comment))
}

// DeleteComment — DELETE /admin/comments/{commentID}.
func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := uuidParam(r, "commentID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.service.DeleteCommentByAdmin(r.Context(), commentID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HardDeleteComment — DELETE /admin/comments/{commentID}/hard.
func (h *Handlers) HardDeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := uuidParam(r, "commentID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.service.HardDeleteComment(r.Context(), commentID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
