package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vedran77/feedline/internal/service"
	"github.com/vedran77/feedline/internal/transport/http/middleware"
)

type PostHandler struct {
	postService *service.PostService
	log         *logrus.Logger
}

func NewPostHandler(postService *service.PostService, log *logrus.Logger) *PostHandler {
	return &PostHandler{postService: postService, log: log}
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetAuthResult(r.Context())

	var input service.PostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	post, err := h.postService.Create(r.Context(), caller, input)
	if err != nil {
		h.writePostError(w, "create post", err)
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetAuthResult(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	var input service.PostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	post, err := h.postService.Update(r.Context(), caller, id, input)
	if err != nil {
		h.writePostError(w, "update post", err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetAuthResult(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	if err := h.postService.Delete(r.Context(), caller, id); err != nil {
		h.writePostError(w, "delete post", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetAuthResult(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	post, err := h.postService.Get(r.Context(), caller, id)
	if err != nil {
		h.writePostError(w, "get post", err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetAuthResult(r.Context())

	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil {
			page = p
		}
	}

	resp, err := h.postService.List(r.Context(), caller, page)
	if err != nil {
		h.writePostError(w, "list posts", err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *PostHandler) writePostError(w http.ResponseWriter, op string, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeValidationErrors(w, vErr.Fields)
	case errors.Is(err, service.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	case errors.Is(err, service.ErrNotPostOwner):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "You can only modify your own posts")
	case errors.Is(err, service.ErrPostNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
	default:
		h.log.WithError(err).Errorf("%s failed", op)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
	}
}
