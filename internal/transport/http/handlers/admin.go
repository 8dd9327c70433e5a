package handlers

import (
	"net/http"

	"github.com/pribylovaa/go-events-platform/internal/models"
	apierrors "github.com/pribylovaa/go-events-platform/internal/transport/http/errors"
)

type newUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type newCategoryRequest struct {
	Name string `json:"name"`
}

type categoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func userToResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID.String(), Name: u.Name, Email: u.Email}
}

func categoryToResponse(c *models.Category) categoryResponse {
	return categoryResponse{ID: c.ID.String(), Name: c.Name}
}

// CreateUser — POST /admin/users.
func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in newUserRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("malformed body"))
		return
	}

	user, err := h.service.CreateUser(r.Context(), in.Name, in.Email)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, userToResponse(user))
}

// ListUsers — GET /admin/users?ids=&from=&size=.
func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	ids, err := uuidListQuery(r, "ids")
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

	users, err := h.service.Users(r.Context(), ids, from, size)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, userToResponse(&users[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// DeleteUser — DELETE /admin/users/{userID}.
func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(r, "userID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.service.DeleteUser(r.Context(), userID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateCategory — POST /admin/categories.
func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var in newCategoryRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument("malformed body"))
		return
	}

	category, err := h.service.CreateCategory(r.Context(), in.Name)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, categoryToResponse(category))
}

// DeleteCategory — DELETE /admin/categories/{categoryID}.
func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := uuidParam(r, "categoryID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), categoryID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListCategories — GET /categories.
func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
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

	categories, err := h.service.Categories(r.Context(), from, size)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, categoryToResponse(&categories[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetCategory — GET /categories/{categoryID}.
func (h *Handlers) GetCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := uuidParam(r, "categoryID")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	category, err := h.service.CategoryByID(r.Context(), categoryID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, categoryToResponse(category))
}
